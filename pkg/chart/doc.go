// Package chart defines the data model shared by every chartgrid renderer.
//
// A chart document has two halves. [Props] carries the caller's data: one
// [Series] per grid cell, a matching [Settings] entry per series, the shared
// [PrimaryScale] and the [Grid] shape. [StyleConfig] and [DisplayConfig]
// carry the pre-parsed presentation settings that the style config file
// supplies. Both halves are treated as immutable once a render pass starts.
//
// Call [Props.Validate] before laying out a grid. It checks the caller
// contract and reports violations as INVALID_CHART errors instead of
// letting an out-of-range index surface deep inside the renderer.
package chart
