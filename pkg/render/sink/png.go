package sink

import (
	"bytes"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/chartgrid/pkg/errors"
	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
)

// defaultFontSize applies to text with no font-size anywhere up the tree.
const defaultFontSize = 12.0

// MaxPNGPixels bounds the raster canvas, width times height after scaling.
const MaxPNGPixels = 50_000_000

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	dc    *gg.Context
	faces map[float64]font.Face
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes root. It understands the subset of SVG the chart
// renderers produce: translated groups, rect, line, circle, M/L paths and
// text with a text-anchor.
func RenderPNG(root *svg.Element, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, faces: make(map[float64]font.Face)}
	for _, opt := range opts {
		opt(&r)
	}
	if root == nil || root.Name != "svg" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png: root element must be <svg>")
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png: scale must be positive, got %v", r.scale)
	}
	w, h := root.Float("width"), root.Float("height")
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png: svg has no size")
	}
	if px := w * h * r.scale * r.scale; !(px <= MaxPNGPixels) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png: %vx%v at scale %v exceeds %d pixels", w, h, r.scale, MaxPNGPixels)
	}

	r.dc = gg.NewContext(int(math.Ceil(w*r.scale)), int(math.Ceil(h*r.scale)))
	r.dc.Scale(r.scale, r.scale)
	r.draw(root, inherited{fill: color.Black, fontSize: defaultFontSize})

	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// inherited holds the presentation attributes that cascade to children.
type inherited struct {
	fill     color.Color
	stroke   color.Color
	width    float64
	fontSize float64
}

func (r *pngRenderer) draw(e *svg.Element, parent inherited) {
	st := cascade(e, parent)

	switch e.Name {
	case "svg", "g":
		x, y, translated := 0.0, 0.0, false
		if t, ok := e.Get("transform"); ok {
			x, y, translated = svg.ParseTranslate(t)
		}
		r.dc.Push()
		if translated {
			r.dc.Translate(x, y)
		}
		for _, c := range e.Children {
			r.draw(c, st)
		}
		r.dc.Pop()
	case "rect":
		r.dc.DrawRectangle(e.Float("x"), e.Float("y"), e.Float("width"), e.Float("height"))
		r.paint(st)
	case "circle":
		r.dc.DrawCircle(e.Float("cx"), e.Float("cy"), e.Float("r"))
		r.paint(st)
	case "line":
		r.dc.DrawLine(e.Float("x1"), e.Float("y1"), e.Float("x2"), e.Float("y2"))
		r.paint(inherited{stroke: st.stroke, width: st.width})
	case "path":
		d, _ := e.Get("d")
		if r.tracePath(d) {
			r.paint(st)
		}
	case "text":
		r.text(e, st)
	}
}

// paint fills and then strokes the current path, and clears it.
func (r *pngRenderer) paint(st inherited) {
	if st.fill != nil {
		r.dc.SetColor(st.fill)
		if st.stroke != nil {
			r.dc.FillPreserve()
		} else {
			r.dc.Fill()
		}
	}
	if st.stroke != nil {
		r.dc.SetColor(st.stroke)
		// gg does not scale line widths with the transform
		r.dc.SetLineWidth(st.width * r.scale)
		r.dc.Stroke()
	}
	r.dc.ClearPath()
}

func (r *pngRenderer) tracePath(d string) bool {
	cmds, ok := parsePath(d)
	if !ok || len(cmds) == 0 {
		return false
	}
	r.dc.NewSubPath()
	for _, c := range cmds {
		if c.move {
			r.dc.MoveTo(c.x, c.y)
		} else {
			r.dc.LineTo(c.x, c.y)
		}
	}
	return true
}

func (r *pngRenderer) text(e *svg.Element, st inherited) {
	if e.Text == "" || st.fill == nil {
		return
	}
	face, ok := r.faces[st.fontSize]
	if !ok {
		var err error
		if face, err = fonts.NewFace(st.fontSize); err != nil {
			return
		}
		r.faces[st.fontSize] = face
	}
	r.dc.SetFontFace(face)
	r.dc.SetColor(st.fill)

	ax := 0.0
	switch anchor, _ := e.Get("text-anchor"); anchor {
	case "middle":
		ax = 0.5
	case "end":
		ax = 1
	}
	r.dc.DrawStringAnchored(e.Text, e.Float("x"), e.Float("y"), ax, 0)
}

// cascade applies the presentation attributes of e on top of parent.
func cascade(e *svg.Element, parent inherited) inherited {
	st := parent
	if v, ok := e.Get("fill"); ok {
		st.fill = parsePaint(v)
	}
	if v, ok := e.Get("stroke"); ok {
		st.stroke = parsePaint(v)
	}
	if v, ok := e.Get("stroke-width"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			st.width = f
		}
	} else if st.width == 0 {
		st.width = 1
	}
	if v, ok := e.Get("font-size"); ok {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64); err == nil && f > 0 {
			st.fontSize = f
		}
	}
	return st
}

// parsePaint returns nil for "none" and for anything that is not a hex color.
func parsePaint(v string) color.Color {
	c, err := styles.ParseColor(v)
	if err != nil {
		return nil
	}
	return c
}

type pathCmd struct {
	move bool
	x, y float64
}

// parsePath reads absolute M and L commands with comma or space separated
// coordinates. Any other command fails the whole path.
func parsePath(d string) ([]pathCmd, bool) {
	var cmds []pathCmd
	var cur byte
	fields := strings.FieldsFunc(d, func(r rune) bool { return r == ',' || r == ' ' })
	var nums []float64
	flush := func() bool {
		if cur == 0 {
			return len(nums) == 0
		}
		if len(nums) == 0 || len(nums)%2 != 0 {
			return false
		}
		for i := 0; i < len(nums); i += 2 {
			// extra pairs after M are implicit L commands
			cmds = append(cmds, pathCmd{move: cur == 'M' && i == 0, x: nums[i], y: nums[i+1]})
		}
		nums = nums[:0]
		return true
	}

	for _, f := range fields {
		for f != "" {
			c := f[0]
			if c == 'M' || c == 'L' {
				if !flush() {
					return nil, false
				}
				cur, f = c, f[1:]
				continue
			}
			if (c < '0' || c > '9') && c != '-' && c != '.' {
				return nil, false
			}
			end := strings.IndexAny(f, "ML")
			if end < 0 {
				end = len(f)
			}
			v, err := strconv.ParseFloat(f[:end], 64)
			if err != nil {
				return nil, false
			}
			nums = append(nums, v)
			f = f[end:]
		}
	}
	if !flush() {
		return nil, false
	}
	return cmds, true
}
