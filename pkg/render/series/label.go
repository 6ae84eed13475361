package series

import (
	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/render/xychart"
)

// labelGap separates the color swatch from the label text.
const labelGap = 4.0

// Label is the color swatch and series name drawn at the top of a cell.
type Label struct {
	Text       string
	ColorIndex int
	XVal       float64
}

// Render implements xychart.Component.
func (l Label) Render(ctx xychart.Context) *svg.Element {
	display, style := ctx.DisplayConfig, ctx.StyleConfig
	size := display.LabelRectangle
	f := fonts.Font{Size: style.FontSizes.Medium, Family: style.FontFamily}
	m := ctx.Font()

	textX := size + labelGap
	text := styles.TruncateLabel(l.Text, ctx.Placement.Width-l.XVal-textX, f, m)
	textW := m.Width(text, f)

	g := svg.G("series-label", svg.Translate(l.XVal, 0))
	if off := display.BlockerRectOffset; off > 0 {
		blocker := svg.Rect("blocker", -off, -off, textX+textW+2*off, max(size, ctx.TickTextHeight)+2*off)
		if bg := style.BackgroundColor; bg != "" {
			blocker.Set("fill", bg)
		} else {
			blocker.Set("fill", "none")
		}
		g.Append(blocker)
	}

	g.Append(svg.Rect("swatch", 0, 0, size, size).Set("fill", ctx.Palette.Hex(l.ColorIndex)))
	t := svg.Text("series-label-text", textX, size, text)
	if f.Size > 0 {
		t.SetNum("font-size", f.Size)
	}
	if c := style.TextColor; c != "" {
		t.Set("fill", c)
	}
	return g.Append(t)
}
