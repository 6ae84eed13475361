// Package axis draws the axes and grid lines of an XY chart cell.
//
// Every renderer here is a stateless value that implements
// xychart.Component: it reads the shared scales from the render context and
// returns a group of SVG primitives. Cells get a [HorizontalAxis] and
// [HorizontalGridLines]; the grid draws one [VerticalAxis] per row.
package axis
