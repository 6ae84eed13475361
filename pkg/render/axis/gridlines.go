package axis

import (
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/render/xychart"
)

// HorizontalGridLines draws one line across the cell per y tick.
// The line at zero is marked with the "zero" class.
type HorizontalGridLines struct{}

// Render implements xychart.Component.
func (HorizontalGridLines) Render(ctx xychart.Context) *svg.Element {
	g := svg.G("grid-lines horizontal", "")
	y := ctx.YScale.Linear
	if y == nil {
		return g
	}

	style := ctx.StyleConfig
	for _, v := range ctx.TickValues() {
		py := y.Map(v)
		l := svg.Line("grid-line", 0, py, ctx.Placement.Width, py)
		color := style.GridLineColor
		if v == 0 {
			l.Set("class", "grid-line zero")
			if style.ZeroLineColor != "" {
				color = style.ZeroLineColor
			}
		}
		if color != "" {
			l.Set("stroke", color)
		}
		g.Append(l)
	}
	return g
}

// VerticalGridLines draws one line per ordinal x position.
type VerticalGridLines struct{}

// Render implements xychart.Component.
func (VerticalGridLines) Render(ctx xychart.Context) *svg.Element {
	g := svg.G("grid-lines vertical", "")
	x := ctx.XScale.Ordinal
	if x == nil {
		return g
	}

	top, bottom := ctx.Top(), ctx.Bottom()
	for i := range x.Domain {
		px := x.At(i)
		l := svg.Line("grid-line", px, top, px, bottom)
		if c := ctx.StyleConfig.GridLineColor; c != "" {
			l.Set("stroke", c)
		}
		g.Append(l)
	}
	return g
}
