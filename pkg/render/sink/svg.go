package sink

import (
	"bytes"

	"github.com/matzehuels/chartgrid/pkg/render/svg"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

const cellHighlightCSS = `
    .xy-chart.editable { cursor: pointer; }
    .xy-chart.editable:hover .xy-chart-background { stroke: #999999; stroke-dasharray: 4 2; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	declaration bool
	highlight   bool
}

// WithXMLDeclaration prefixes the output with an XML declaration, for
// standalone .svg files.
func WithXMLDeclaration() SVGOption { return func(r *svgRenderer) { r.declaration = true } }

// WithCellHighlight embeds a stylesheet that outlines editable cells on hover.
func WithCellHighlight() SVGOption { return func(r *svgRenderer) { r.highlight = true } }

// RenderSVG encodes root as SVG markup. root is not modified.
func RenderSVG(root *svg.Element, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	if r.highlight && root != nil {
		style := svg.New("style")
		style.Text = cellHighlightCSS
		out := *root
		out.Children = append([]*svg.Element{style}, root.Children...)
		root = &out
	}

	var buf bytes.Buffer
	if r.declaration {
		buf.WriteString(xmlDeclaration)
	}
	_ = svg.Encode(&buf, root)
	return buf.Bytes()
}
