package chartgrid

import (
	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/grid"
	"github.com/matzehuels/chartgrid/pkg/render/axis"
	"github.com/matzehuels/chartgrid/pkg/render/frame"
	"github.com/matzehuels/chartgrid/pkg/render/series"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/render/xychart"
)

// Build computes the layout of p and renders it.
func Build(p Props, m fonts.Measurer) (*svg.Element, error) {
	if m == nil {
		m = fonts.Default
	}
	l, err := ComputeLayout(p, m)
	if err != nil {
		return nil, err
	}
	return BuildLayout(p, l, m)
}

// BuildLayout renders p using a layout already computed by ComputeLayout.
func BuildLayout(p Props, l Layout, m fonts.Measurer) (*svg.Element, error) {
	if m == nil {
		m = fonts.Default
	}
	palette, err := styles.NewPalette(p.StyleConfig.Colors)
	if err != nil {
		return nil, err
	}

	outer := xychart.Props{
		ChartType:      xychart.ChartTypeGrid,
		StyleConfig:    p.StyleConfig,
		DisplayConfig:  p.DisplayConfig,
		PrimaryScale:   l.Primary,
		Editable:       p.Editable,
		XScale:         l.XAxis,
		YScale:         l.YAxis,
		TickTextHeight: l.TickTextHeight,
		TickFont:       l.TickFont,
		Palette:        palette,
		Measurer:       m,
	}

	settings := p.ChartProps.ChartSettings
	cells := grid.MakeMults[chart.Series, xychart.Component](outer.Cell, p.ChartProps.Data, l.GridScales,
		func(d chart.Series, i int) []xychart.Component {
			s := settings[i]
			return []xychart.Component{
				series.Label{Text: s.Label, ColorIndex: s.ColorIndex},
				axis.HorizontalGridLines{},
				axis.HorizontalAxis{MaxLabels: p.DisplayConfig.MaxXLabels},
				series.Create(s.Type.OrDefault(), series.Props{Data: d, ColorIndex: s.ColorIndex}),
			}
		})

	wrapper := svg.G("grid-wrapper", svg.Translate(0, p.DisplayConfig.Padding.Top))
	yAxis := axis.VerticalAxis{TickWidths: l.TickWidths}
	rowAxis := xychart.ComponentFunc(func(ctx xychart.Context) *svg.Element {
		return svg.G("axis grid-row-axis", svg.Translate(0, ctx.Placement.Y), yAxis.Render(ctx))
	})
	for row, y := range l.GridScales.RowOffsets() {
		ctx := xychart.Context{Props: outer, Placement: grid.Placement{Row: row, Y: y, Height: l.GridScales.Rows.RangeBand()}}
		wrapper.Append(rowAxis.Render(ctx))
	}
	wrapper.Append(svg.G("grid-charts", svg.Translate(l.TickWidths.Max, 0), cells...))

	return frame.Wrapper{
		Outer:    l.Outer,
		Metadata: p.Metadata,
		Display:  p.DisplayConfig,
		Style:    p.StyleConfig,
	}.Wrap(wrapper), nil
}
