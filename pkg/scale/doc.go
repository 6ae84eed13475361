// Package scale maps data values to pixel positions.
//
// Three scale kinds cover everything a chart grid needs:
//
//   - [Linear] maps the shared numeric y domain onto a pixel range.
//   - [Point] spreads ordinal x entries evenly across a range, leaving half a
//     step of padding at either end.
//   - [Band] divides a range into equal bands with inner and outer padding;
//     the grid uses it to place cells.
//
// The semantics follow the d3 v3 scales that chart grids were originally
// designed against, so pixel positions line up with charts produced by
// browser-based editors.
//
// [GenerateScale] and [GetTickWidths] are the two entry points used by the
// grid orchestrator. [Resolve] fills in a primary scale's domain and tick
// values when the caller left them empty.
package scale
