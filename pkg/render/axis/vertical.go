package axis

import (
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/render/xychart"
	"github.com/matzehuels/chartgrid/pkg/scale"
)

// VerticalAxis draws the y tick labels of one grid row.
//
// Labels end at TickWidths.Max so that they line up against the cells,
// which the grid shifts right by the same amount.
type VerticalAxis struct {
	TickWidths scale.TickWidths
}

// Render implements xychart.Component.
func (a VerticalAxis) Render(ctx xychart.Context) *svg.Element {
	g := svg.G("axis y-axis", "")
	y := ctx.YScale.Linear
	if y == nil {
		return g
	}

	ticks := ctx.TickValues()
	color := ctx.StyleConfig.TextColor
	for i, v := range ticks {
		w := a.TickWidths.Max
		if i < len(a.TickWidths.Widths) {
			w = a.TickWidths.Widths[i]
		}
		label := scale.FormatTick(v, ctx.PrimaryScale, i == len(ticks)-1)
		t := svg.Text("tick", a.TickWidths.Max-w, y.Map(v)-ctx.StyleConfig.YOverTick, label)
		if size := ctx.TickFont.Size; size > 0 {
			t.SetNum("font-size", size)
		}
		if color != "" {
			t.Set("fill", color)
		}
		g.Append(t)
	}
	return g
}
