package chart

// Box is a CSS-style box of four edges.
type Box struct {
	Top    float64 `json:"top" toml:"top"`
	Right  float64 `json:"right" toml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Left   float64 `json:"left" toml:"left"`
}

// Horizontal returns Left + Right.
func (b Box) Horizontal() float64 { return b.Left + b.Right }

// Vertical returns Top + Bottom.
func (b Box) Vertical() float64 { return b.Top + b.Bottom }

// GridPadding holds the band padding fractions used to space grid cells.
type GridPadding struct {
	XInnerPadding float64 `json:"xInnerPadding" toml:"x_inner_padding"`
	XOuterPadding float64 `json:"xOuterPadding" toml:"x_outer_padding"`
	YInnerPadding float64 `json:"yInnerPadding" toml:"y_inner_padding"`
	YOuterPadding float64 `json:"yOuterPadding" toml:"y_outer_padding"`
}

// DisplayConfig is the geometric configuration of a chart grid.
type DisplayConfig struct {
	Margin            Box         `json:"margin" toml:"margin"`
	Padding           Box         `json:"padding" toml:"padding"`
	GridPadding       GridPadding `json:"gridPadding" toml:"grid_padding"`
	AfterLegend       float64     `json:"afterLegend" toml:"after_legend"`
	LabelRectangle    float64     `json:"labelRectangle" toml:"label_rectangle"`
	BlockerRectOffset float64     `json:"blockerRectOffset" toml:"blocker_rect_offset"`
	MaxXLabels        int         `json:"maxXLabels" toml:"max_x_labels"`
}

// FontSizes holds the named font sizes in pixels.
type FontSizes struct {
	Large  float64 `json:"large" toml:"large"`
	Medium float64 `json:"medium" toml:"medium"`
	Small  float64 `json:"small" toml:"small"`
}

// StyleConfig is the parsed global style configuration.
type StyleConfig struct {
	FontFamily      string    `json:"fontFamily" toml:"font_family"`
	FontSizes       FontSizes `json:"fontSizes" toml:"font_sizes"`
	Colors          []string  `json:"colors" toml:"colors"`
	XOverTick       float64   `json:"xOverTick" toml:"x_over_tick"`
	YOverTick       float64   `json:"yOverTick" toml:"y_over_tick"`
	TextColor       string    `json:"textColor" toml:"text_color"`
	GridLineColor   string    `json:"gridLineColor" toml:"grid_line_color"`
	ZeroLineColor   string    `json:"zeroLineColor" toml:"zero_line_color"`
	BackgroundColor string    `json:"backgroundColor" toml:"background_color"`
	LineWidth       float64   `json:"lineWidth" toml:"line_width"`
	DotRadius       float64   `json:"dotRadius" toml:"dot_radius"`
}
