// Package config loads the style and display configuration of chart grids.
//
// Configuration files are TOML. [Load] overlays a file on top of
// [Default], so a file only needs the keys it changes:
//
//	[style]
//	font_family = "Georgia"
//	colors = ["#1f77b4", "#ff7f0e"]
//
//	[display.margin]
//	top = 60
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/errors"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
)

// Config is the style and display configuration shared by every chart.
type Config struct {
	Style   chart.StyleConfig   `toml:"style"`
	Display chart.DisplayConfig `toml:"display"`
}

// Default returns the built-in chart grid configuration.
func Default() Config {
	return Config{
		Style: chart.StyleConfig{
			FontFamily: "Khula-Light",
			FontSizes:  chart.FontSizes{Large: 20, Medium: 14, Small: 11},
			Colors: []string{
				"#ee3124", "#fdbb30", "#0f8c4a", "#0581c2",
				"#7b5aa6", "#f58220", "#6d6e71",
			},
			XOverTick:       12,
			YOverTick:       4,
			TextColor:       "#333333",
			GridLineColor:   "#dddddd",
			ZeroLineColor:   "#999999",
			BackgroundColor: "#ffffff",
			LineWidth:       2,
			DotRadius:       3,
		},
		Display: chart.DisplayConfig{
			Margin:  chart.Box{Top: 50, Right: 10, Bottom: 30, Left: 10},
			Padding: chart.Box{Top: 0, Right: 0, Bottom: 30, Left: 0},
			GridPadding: chart.GridPadding{
				XInnerPadding: 0.1,
				YInnerPadding: 0.1,
			},
			AfterLegend:       20,
			LabelRectangle:    10,
			BlockerRectOffset: 4,
			MaxXLabels:        8,
		},
	}
}

// Load reads the TOML file at path on top of Default and validates the result.
// Keys the file does not know about are rejected.
func Load(path string) (Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	s, d := c.Style, c.Display

	fs := s.FontSizes
	for name, v := range map[string]float64{"large": fs.Large, "medium": fs.Medium, "small": fs.Small} {
		if v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "style.font_sizes.%s must be positive, got %v", name, v)
		}
	}
	if len(s.Colors) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style.colors must not be empty")
	}
	if _, err := styles.NewPalette(s.Colors); err != nil {
		return err
	}
	for name, v := range map[string]string{
		"text_color":       s.TextColor,
		"grid_line_color":  s.GridLineColor,
		"zero_line_color":  s.ZeroLineColor,
		"background_color": s.BackgroundColor,
	} {
		if v == "" {
			continue
		}
		if _, err := styles.ParseColor(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "style.%s", name)
		}
	}
	if s.LineWidth < 0 || s.DotRadius < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style.line_width and style.dot_radius must not be negative")
	}

	gp := d.GridPadding
	for name, v := range map[string]float64{
		"x_inner_padding": gp.XInnerPadding,
		"x_outer_padding": gp.XOuterPadding,
		"y_inner_padding": gp.YInnerPadding,
		"y_outer_padding": gp.YOuterPadding,
	} {
		if v < 0 || v > 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "display.grid_padding.%s must be within [0, 1], got %v", name, v)
		}
	}
	for name, b := range map[string]chart.Box{"margin": d.Margin, "padding": d.Padding} {
		if b.Top < 0 || b.Right < 0 || b.Bottom < 0 || b.Left < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "display.%s must not be negative", name)
		}
	}
	if d.MaxXLabels < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "display.max_x_labels must not be negative")
	}
	return nil
}
