package sink

import (
	"encoding/json"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/grid"
	"github.com/matzehuels/chartgrid/pkg/render/chartgrid"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
	"github.com/matzehuels/chartgrid/pkg/scale"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithJSONCompact drops the indentation from the output.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	Width          float64          `json:"width"`
	Height         float64          `json:"height"`
	ChartWidth     float64          `json:"chart_width"`
	ChartHeight    float64          `json:"chart_height"`
	Rows           int              `json:"rows"`
	Cols           int              `json:"cols"`
	TickFont       string           `json:"tick_font"`
	TickTextHeight float64          `json:"tick_text_height"`
	TickWidths     scale.TickWidths `json:"tick_widths"`
	XRangeOuter    [2]float64       `json:"x_range_outer"`
	YRangeOuter    [2]float64       `json:"y_range_outer"`
	XRangeInner    [2]float64       `json:"x_range_inner"`
	YRangeInner    [2]float64       `json:"y_range_inner"`
	Domain         []float64        `json:"domain"`
	Ticks          []float64        `json:"ticks"`
	Entries        []string         `json:"entries"`
	RowAxes        []float64        `json:"row_axes"`
	Cells          []jsonCell       `json:"cells"`
	Metadata       *chart.Metadata  `json:"metadata,omitempty"`
}

type jsonCell struct {
	grid.Placement
	Label string           `json:"label"`
	Kind  chart.SeriesType `json:"kind"`
	Color string           `json:"color"`
}

// RenderJSON exports the computed layout of p as a pretty-printed JSON
// document: outer and chart dimensions, the shared ranges and scale, one
// entry per cell and the offset of every row axis.
func RenderJSON(l chartgrid.Layout, p chartgrid.Props, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	palette, err := styles.NewPalette(p.StyleConfig.Colors)
	if err != nil {
		return nil, err
	}

	out := jsonOutput{
		Width:          l.Outer.Width,
		Height:         l.Outer.Height,
		ChartWidth:     l.ChartArea.Width,
		ChartHeight:    l.ChartArea.Height,
		Rows:           p.ChartProps.Grid.Rows,
		Cols:           p.ChartProps.Grid.Cols,
		TickFont:       l.TickFont.String(),
		TickTextHeight: l.TickTextHeight,
		TickWidths:     l.TickWidths,
		XRangeOuter:    l.XRangeOuter,
		YRangeOuter:    l.YRangeOuter,
		XRangeInner:    l.XRangeInner,
		YRangeInner:    l.YRangeInner,
		Domain:         l.Primary.Domain,
		Ticks:          l.Primary.TickValues,
		Entries:        l.XAxis.Entries,
		RowAxes:        l.GridScales.RowOffsets(),
		Cells:          make([]jsonCell, 0, len(p.ChartProps.Data)),
	}
	if !p.Metadata.IsEmpty() {
		md := p.Metadata
		out.Metadata = &md
	}

	settings := p.ChartProps.ChartSettings
	for i, pl := range l.Cells(len(p.ChartProps.Data)) {
		s := settings[i]
		out.Cells = append(out.Cells, jsonCell{
			Placement: pl,
			Label:     s.Label,
			Kind:      s.Type.OrDefault(),
			Color:     palette.Hex(s.ColorIndex),
		})
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
