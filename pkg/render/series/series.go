// Package series draws the data primitive of one chart cell.
//
// [Create] returns the renderer for a series type. All renderers read the
// shared x and y scales from the cell context, skip points whose entry is
// not on the x scale, and take their color from the palette entry selected
// by ColorIndex.
package series

import (
	"math"
	"strings"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/render/xychart"
)

// columnWidthRatio is the share of one x step covered by a column.
const columnWidthRatio = 0.8

// Props are the inputs of one series renderer.
type Props struct {
	Data       chart.Series
	ColorIndex int
}

// Create returns the renderer for kind. An empty or unknown kind draws a line.
func Create(kind chart.SeriesType, props Props) xychart.Component {
	switch kind {
	case chart.SeriesColumn:
		return Column{props}
	case chart.SeriesDot:
		return Dot{props}
	default:
		return Line{props}
	}
}

// point is a data point mapped to cell pixels.
type point struct {
	x, y float64
}

// project maps the values of p onto the cell scales.
func project(ctx xychart.Context, p Props) []point {
	x, y := ctx.XScale.Ordinal, ctx.YScale.Linear
	if x == nil || y == nil {
		return nil
	}
	out := make([]point, 0, len(p.Data.Values))
	for _, v := range p.Data.Values {
		px, ok := x.Map(v.Entry)
		if !ok {
			continue
		}
		out = append(out, point{px, y.Clamp(y.Map(v.Value))})
	}
	return out
}

func group(kind chart.SeriesType, p Props) *svg.Element {
	g := svg.G("series series-"+string(kind), "")
	if p.Data.Name != "" {
		g.Set("data-name", p.Data.Name)
	}
	return g
}

// Line draws a series as a polyline path.
type Line struct{ Props }

// Render implements xychart.Component.
func (l Line) Render(ctx xychart.Context) *svg.Element {
	g := group(chart.SeriesLine, l.Props)
	pts := project(ctx, l.Props)
	if len(pts) == 0 {
		return g
	}

	var d strings.Builder
	for i, pt := range pts {
		if i == 0 {
			d.WriteByte('M')
		} else {
			d.WriteByte('L')
		}
		d.WriteString(svg.Num(pt.x))
		d.WriteByte(',')
		d.WriteString(svg.Num(pt.y))
	}

	path := svg.Path("line", d.String()).
		Set("fill", "none").
		Set("stroke", ctx.Palette.Hex(l.ColorIndex))
	if w := ctx.StyleConfig.LineWidth; w > 0 {
		path.SetNum("stroke-width", w)
	}
	return g.Append(path)
}

// Column draws one bar per point, rising from the zero baseline.
type Column struct{ Props }

// Render implements xychart.Component.
func (c Column) Render(ctx xychart.Context) *svg.Element {
	g := group(chart.SeriesColumn, c.Props)
	pts := project(ctx, c.Props)
	if len(pts) == 0 {
		return g
	}

	y := ctx.YScale.Linear
	base := y.Clamp(y.Map(0))
	w := ctx.XScale.Ordinal.Step() * columnWidthRatio
	fill := ctx.Palette.Hex(c.ColorIndex)
	for _, pt := range pts {
		top, h := min(pt.y, base), math.Abs(pt.y-base)
		g.Append(svg.Rect("column", pt.x-w/2, top, w, h).Set("fill", fill))
	}
	return g
}

// Dot draws one circle per point.
type Dot struct{ Props }

// Render implements xychart.Component.
func (d Dot) Render(ctx xychart.Context) *svg.Element {
	g := group(chart.SeriesDot, d.Props)
	r := ctx.StyleConfig.DotRadius
	fill := ctx.Palette.Hex(d.ColorIndex)
	for _, pt := range project(ctx, d.Props) {
		g.Append(svg.Circle("dot", pt.x, pt.y, r).Set("fill", fill))
	}
	return g
}
