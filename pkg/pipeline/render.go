package pipeline

import (
	"github.com/matzehuels/chartgrid/pkg/errors"
	"github.com/matzehuels/chartgrid/pkg/render/chartgrid"
	"github.com/matzehuels/chartgrid/pkg/render/sink"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
)

// Render encodes a built chart grid in one format.
func Render(format string, root *svg.Element, l chartgrid.Layout, p chartgrid.Props, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(root, svgOptions(opts)...)
	case FormatPNG:
		data, err = sink.RenderPNG(root, sink.WithScale(opts.Scale))
	case FormatPDF:
		data, err = sink.RenderPDF(root)
	case FormatJSON:
		data, err = sink.RenderJSON(l, p)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.Standalone {
		out = append(out, sink.WithXMLDeclaration())
	}
	if opts.Highlight {
		out = append(out, sink.WithCellHighlight())
	}
	return out
}
