// Package styles resolves the visual style of chart cells.
//
// A [Palette] maps series color indexes onto the configured colors. Colors
// are parsed once, up front, so a malformed style config fails before any
// drawing starts. [TruncateLabel] shortens series labels that would overrun
// their cell.
package styles
