// Package sink serializes a rendered chart grid.
//
// SVG output encodes the element tree directly. PNG output rasterizes the
// same tree with gg, so it needs no external tools. PDF output goes through
// rsvg-convert, which must be installed:
//
//	macOS:  brew install librsvg
//	Linux:  apt install librsvg2-bin
//
// JSON output is the computed layout rather than the drawing, for tools
// that want cell positions without parsing SVG.
package sink
