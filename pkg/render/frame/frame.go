// Package frame draws the outer SVG document around a chart.
package frame

import (
	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
)

// metaGap is the vertical space between stacked metadata lines.
const metaGap = 4.0

// Wrapper holds everything the outer document needs.
type Wrapper struct {
	Outer    chart.Dimensions
	Metadata chart.Metadata
	Display  chart.DisplayConfig
	Style    chart.StyleConfig
}

// Wrap returns the svg root with children placed inside the margin group.
//
// Title and subtitle are drawn in the top margin, source and credit along
// the bottom edge. The margins must leave room for them.
func (w Wrapper) Wrap(children ...*svg.Element) *svg.Element {
	width, height := w.Outer.Width, w.Outer.Height
	root := svg.New("svg", "xmlns", svg.Namespace).
		SetNum("width", width).
		SetNum("height", height).
		Set("viewBox", "0 0 "+svg.Num(width)+" "+svg.Num(height)).
		Set("class", "chartgrid")
	if f := w.Style.FontFamily; f != "" {
		root.Set("font-family", f)
	}
	if s := w.Style.FontSizes.Small; s > 0 {
		root.SetNum("font-size", s)
	}
	if w.Metadata.Size != "" {
		root.Set("data-size", w.Metadata.Size)
	}

	bg := svg.Rect("background", 0, 0, width, height)
	if c := w.Style.BackgroundColor; c != "" {
		bg.Set("fill", c)
	} else {
		bg.Set("fill", "none")
	}
	root.Append(bg)
	root.Append(w.header(), w.footer())

	m := w.Display.Margin
	return root.Append(svg.G("chart-margin", svg.Translate(m.Left, m.Top), children...))
}

func (w Wrapper) header() *svg.Element {
	md, fs := w.Metadata, w.Style.FontSizes
	if md.Title == "" && md.Subtitle == "" {
		return nil
	}
	g := svg.G("chart-header", "")
	x, y := w.Display.Margin.Left, 0.0
	if md.Title != "" {
		y += fs.Large
		g.Append(w.text("chart-title", x, y, md.Title, fs.Large))
	}
	if md.Subtitle != "" {
		y += fs.Medium + metaGap
		g.Append(w.text("chart-subtitle", x, y, md.Subtitle, fs.Medium))
	}
	return g
}

func (w Wrapper) footer() *svg.Element {
	md, fs := w.Metadata, w.Style.FontSizes
	if md.Source == "" && md.Credit == "" {
		return nil
	}
	g := svg.G("chart-footer", "")
	y := w.Outer.Height - metaGap
	if md.Source != "" {
		g.Append(w.text("chart-source", w.Display.Margin.Left, y, md.Source, fs.Small))
	}
	if md.Credit != "" {
		g.Append(w.text("chart-credit", w.Outer.Width-w.Display.Margin.Right, y, md.Credit, fs.Small).
			Set("text-anchor", "end"))
	}
	return g
}

func (w Wrapper) text(class string, x, y float64, content string, size float64) *svg.Element {
	t := svg.Text(class, x, y, content)
	if size > 0 {
		t.SetNum("font-size", size)
	}
	if c := w.Style.TextColor; c != "" {
		t.Set("fill", c)
	}
	return t
}
