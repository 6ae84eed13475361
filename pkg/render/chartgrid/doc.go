// Package chartgrid renders a grid of small-multiple XY charts.
//
// Every series in the chart props gets one cell. All cells share a
// y scale, so their axes stay comparable, and an ordinal x scale over the
// union of the series entries. Rendering happens in two phases:
//
//   - [ComputeLayout] measures the tick labels, derives the chart area and
//     the outer dimensions, and builds the grid and axis scales. The result
//     is a plain [Layout] value that other outputs (the JSON sink, the
//     inspector) can use without drawing anything.
//   - [Build] turns the layout into an svg.Element tree: one xy-chart cell
//     per series, one vertical axis per grid row, all inside the outer
//     frame.
//
// [Renderer] adds the re-render policy on top of Build: updates that arrive
// without data keep the previously rendered tree.
package chartgrid
