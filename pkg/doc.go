// Package pkg provides the core libraries for chartgrid, a small-multiples
// XY chart renderer.
//
// # Overview
//
// A chart grid lays out one XY chart per data series in a rows×columns grid.
// Every cell shares a single primary scale, and one set of axes runs along
// the left column and the bottom row. The pkg directory is organized into
// these areas:
//
//  1. [chart] - Input model (props, style and display config, validation)
//  2. [scale], [grid], [fonts] - Layout math (linear and ordinal scales,
//     tick generation, grid banding, text measurement)
//  3. [render/chartgrid] - Element tree construction and output sinks
//  4. [pipeline] - Orchestration (validate → layout → render → cache)
//  5. [io], [config], [cache] - Documents, configuration files and artifact
//     caching
//
// # Architecture
//
// The typical data flow:
//
//	Chart document (JSON/YAML) + style config (TOML)
//	         ↓
//	    [chart] package (validate props)
//	         ↓
//	    [render/chartgrid] package (compute layout + build element tree)
//	         ↓
//	    [render/sink] package (SVG/PNG/PDF/JSON)
//
// # Quick Start
//
// Render a chart document to SVG:
//
//	import (
//	    "github.com/matzehuels/chartgrid/pkg/chart"
//	    "github.com/matzehuels/chartgrid/pkg/config"
//	    "github.com/matzehuels/chartgrid/pkg/io"
//	    "github.com/matzehuels/chartgrid/pkg/render/chartgrid"
//	    "github.com/matzehuels/chartgrid/pkg/render/sink"
//	)
//
//	doc, _ := io.ReadChartFile("fruit.json")
//	cfg := config.Default()
//
//	p := chartgrid.Props{
//	    StyleConfig:   cfg.Style,
//	    DisplayConfig: cfg.Display,
//	    ChartProps:    doc.ChartProps,
//	    Dimensions:    chart.Dimensions{Width: 600, Height: 400},
//	}
//	root, _ := chartgrid.Build(p, nil)
//	out := sink.RenderSVG(root)
//
// Most callers should go through [pipeline] instead, which adds option
// defaults, caching and observability hooks.
//
// # Main Packages
//
// [chart] - Chart props, series data, primary scale settings and the style
// and display configuration records. Validation happens here, before any
// geometry is computed.
//
// [scale] - Linear and ordinal scales, nice domains, tick values and tick
// label generation including prefix/suffix handling.
//
// [grid] - Banded row/column scales that position each cell of the grid.
//
// [fonts] - Text measurement. [fonts.GoMeasurer] uses the Go Regular face so
// layout is deterministic across machines.
//
// [render/chartgrid] - Layout computation and element tree assembly. The
// Renderer skips rebuilds when the incoming props carry no data.
//
//   - [render/axis]: Horizontal and vertical axes plus grid lines
//   - [render/xychart]: One cell (frame, axes, series)
//   - [render/series]: Line, column and dot series plus labels
//   - [render/frame]: Outer document with title, subtitle, source and credit
//   - [render/styles]: Palette and text attribute helpers
//   - [render/svg]: Minimal SVG element tree
//   - [render/sink]: Output formats (SVG, PNG, PDF, JSON)
//
// [pipeline] - The render pipeline shared by the CLI and HTTP server.
//
// [cache] - Artifact caching with file, Redis and null backends.
//
// [observability] - Hook registries for layout, render, cache and server
// events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/...             # Rendering only
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/chart
// [scale]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/scale
// [grid]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/grid
// [fonts]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/fonts
// [fonts.GoMeasurer]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/fonts#GoMeasurer
// [render/chartgrid]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/chartgrid
// [render/axis]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/axis
// [render/xychart]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/xychart
// [render/series]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/series
// [render/frame]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/frame
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/styles
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/svg
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartgrid/pkg/observability
package pkg
