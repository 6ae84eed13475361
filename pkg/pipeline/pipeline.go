// Package pipeline provides the chart grid rendering pipeline.
//
// The pipeline is shared by the CLI and the HTTP service so that both
// validate, lay out, cache and encode charts the same way.
//
// # Stages
//
//  1. Layout: validate the chart and compute the grid geometry
//  2. Build: assemble the SVG element tree
//  3. Render: encode the tree (or the layout) in each requested format
//
// Rendered artifacts are cached per format under a hash of the full input,
// so repeated renders of an unchanged chart skip stage 3.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Input{Chart: doc, Config: cfg}, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgrid/pkg/cache"
	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/config"
	"github.com/matzehuels/chartgrid/pkg/errors"
	chartio "github.com/matzehuels/chartgrid/pkg/io"
	"github.com/matzehuels/chartgrid/pkg/render/chartgrid"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
)

const (
	// DefaultWidth is the output width used when neither the options nor
	// the chart document set one.
	DefaultWidth = 600.0

	// DefaultHeight is the matching default output height.
	DefaultHeight = 400.0

	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// MaxScale bounds the PNG pixel density.
	MaxScale = 8.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// Options configures a pipeline run.
type Options struct {
	Formats []string `json:"formats,omitempty"`

	// Width and Height override the chart document's dimensions when positive.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Scale      float64 `json:"scale,omitempty"`      // PNG pixel density
	Highlight  bool    `json:"highlight,omitempty"`  // outline editable cells on hover (SVG)
	Standalone bool    `json:"standalone,omitempty"` // prepend an XML declaration (SVG)
	Refresh    bool    `json:"refresh,omitempty"`    // ignore cached artifacts

	Logger *log.Logger `json:"-"`

	validated bool
}

// Input is what a pipeline run renders.
type Input struct {
	Chart  chartio.Document
	Config config.Config
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed grid geometry.
	Layout chartgrid.Layout

	// Tree is the SVG element tree every format is derived from.
	Tree *svg.Element

	// InputHash identifies the input in cache keys and server responses.
	InputHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo

	// Skipped is set when the input had no data and the previous result
	// was returned unchanged.
	Skipped bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Series     int
	Rows, Cols int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks artifact cache hits.
type CacheInfo struct {
	Hits      int
	Misses    int
	RenderHit bool // every artifact came from cache
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := (chart.Dimensions{Width: o.Width, Height: o.Height}).Validate(); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 0 and %v, got %v", MaxScale, o.Scale)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		opts.Scale = o.Scale
	case FormatSVG:
		opts.Highlight = o.Highlight
	}
	return opts
}

// Props resolves the chart grid props for in. Dimensions come from opts,
// then from the chart document, then from the defaults.
func (in Input) Props(opts Options) chartgrid.Props {
	dims := chart.Dimensions{Width: DefaultWidth, Height: DefaultHeight}
	if d := in.Chart.Dimensions; d != nil {
		if d.Width > 0 {
			dims.Width = d.Width
		}
		if d.Height > 0 {
			dims.Height = d.Height
		}
	}
	if opts.Width > 0 {
		dims.Width = opts.Width
	}
	if opts.Height > 0 {
		dims.Height = opts.Height
	}
	return chartgrid.Props{
		Editable:      in.Chart.Editable,
		StyleConfig:   in.Config.Style,
		DisplayConfig: in.Config.Display,
		ChartProps:    in.Chart.ChartProps,
		Dimensions:    dims,
		Metadata:      in.Chart.Metadata,
	}
}
