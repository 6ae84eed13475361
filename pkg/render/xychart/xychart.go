// Package xychart is the single-cell XY chart wrapper.
//
// A grid of small multiples shares one [Props] value: style, display
// config, both axis scales and the tick font. [Props.Cell] draws one cell at
// its grid placement and renders each child [Component] inside it. Children
// receive a [Context] so they can read the shared scales and the cell size.
package xychart

import (
	"strconv"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/grid"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/scale"
)

// ChartTypeGrid tags cells drawn as part of an XY grid.
const ChartTypeGrid = "xy-grid"

// Props are the values shared by every cell of a grid.
type Props struct {
	ChartType      string
	StyleConfig    chart.StyleConfig
	DisplayConfig  chart.DisplayConfig
	PrimaryScale   chart.PrimaryScale // resolved; TickValues are the y ticks
	Editable       bool
	XScale         scale.Generated
	YScale         scale.Generated
	TickTextHeight float64
	TickFont       fonts.Font
	Palette        styles.Palette
	Measurer       fonts.Measurer
}

// TickValues returns the y tick values shared by every cell.
func (p Props) TickValues() []float64 { return p.PrimaryScale.TickValues }

// Context is what a child component sees while rendering.
type Context struct {
	Props
	Placement grid.Placement
}

// Component is anything drawn inside a cell.
type Component interface {
	Render(ctx Context) *svg.Element
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(ctx Context) *svg.Element

// Render calls f.
func (f ComponentFunc) Render(ctx Context) *svg.Element { return f(ctx) }

// Cell draws one chart cell at pl and renders children into it, in order.
func (p Props) Cell(pl grid.Placement, children []Component) *svg.Element {
	class := "xy-chart"
	if p.Editable {
		class += " editable"
	}
	g := svg.G(class, svg.Translate(pl.X, pl.Y))
	if p.ChartType != "" {
		g.Set("data-chart-type", p.ChartType)
	}
	if p.Editable {
		g.Set("data-index", strconv.Itoa(pl.Index))
	}

	bg := svg.Rect("xy-chart-background", 0, 0, pl.Width, pl.Height).Set("fill", orNone(p.StyleConfig.BackgroundColor))
	g.Append(bg)

	ctx := Context{Props: p, Placement: pl}
	for _, c := range children {
		if c == nil {
			continue
		}
		g.Append(c.Render(ctx))
	}
	return g
}

// Bottom returns the pixel y of the cell's baseline, the low end of the y range.
func (c Context) Bottom() float64 {
	if c.YScale.Linear == nil {
		return c.Placement.Height
	}
	return max(c.YScale.Linear.Range[0], c.YScale.Linear.Range[1])
}

// Top returns the pixel y of the top of the plot area.
func (c Context) Top() float64 {
	if c.YScale.Linear == nil {
		return 0
	}
	return min(c.YScale.Linear.Range[0], c.YScale.Linear.Range[1])
}

// Font returns the measurer to use, falling back to fonts.Default.
func (c Context) Font() fonts.Measurer {
	if c.Measurer == nil {
		return fonts.Default
	}
	return c.Measurer
}

func orNone(color string) string {
	if color == "" {
		return "none"
	}
	return color
}
