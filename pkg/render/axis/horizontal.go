package axis

import (
	"math"

	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/render/xychart"
)

// labelGap is the space between the cell baseline and the x labels.
const labelGap = 4.0

// HorizontalAxis labels the ordinal x entries below a cell.
type HorizontalAxis struct {
	// MaxLabels caps the number of labels drawn. Zero draws every entry.
	MaxLabels int
}

// Render implements xychart.Component.
func (a HorizontalAxis) Render(ctx xychart.Context) *svg.Element {
	g := svg.G("axis x-axis", svg.Translate(0, ctx.Bottom()))
	x := ctx.XScale.Ordinal
	if x == nil {
		return g
	}

	color := ctx.StyleConfig.TextColor
	for _, i := range LabelIndexes(len(x.Domain), a.MaxLabels) {
		t := svg.Text("tick", x.At(i), ctx.TickTextHeight+labelGap, x.Domain[i])
		t.Set("text-anchor", "middle")
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

// LabelIndexes picks at most limit evenly spaced indexes out of n,
// always keeping the first and the last. A limit of zero keeps all.
func LabelIndexes(n, limit int) []int {
	if n <= 0 {
		return nil
	}
	if limit <= 0 || n <= limit {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if limit == 1 {
		return []int{0}
	}

	step := float64(n-1) / float64(limit-1)
	out := make([]int, 0, limit)
	for k := 0; k < limit; k++ {
		i := int(math.Round(float64(k) * step))
		if len(out) > 0 && out[len(out)-1] == i {
			continue
		}
		out = append(out, i)
	}
	return out
}
