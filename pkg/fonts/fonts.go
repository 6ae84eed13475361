// Package fonts measures label text for layout.
//
// Chart layout reserves room for tick labels before anything is drawn, so
// it needs pixel widths for strings in the configured tick font. Browsers
// answer that with canvas measureText; here the Go Regular face embedded in
// golang.org/x/image stands in for whatever family the style config names.
// The family is carried through to the SVG output untouched, only the
// metrics come from Go Regular.
package fonts

import (
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font is a CSS-style font selection.
type Font struct {
	Size   float64 // Pixel size
	Family string  // CSS font-family, passed through to SVG
}

// String returns the CSS shorthand, e.g. "14px Khula-Light".
func (f Font) String() string {
	return strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}

// Measurer returns the rendered width of text in a font.
type Measurer interface {
	Width(text string, f Font) float64
}

// GoMeasurer measures text with the embedded Go Regular face.
// It is safe for concurrent use.
type GoMeasurer struct {
	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewGoMeasurer returns a measurer backed by the embedded Go Regular face.
func NewGoMeasurer() *GoMeasurer {
	return &GoMeasurer{faces: make(map[float64]font.Face)}
}

// Width returns the advance width of text in pixels.
func (m *GoMeasurer) Width(text string, f Font) float64 {
	if text == "" || f.Size <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	face, ok := m.faces[f.Size]
	if !ok {
		var err error
		if face, err = NewFace(f.Size); err != nil {
			return 0
		}
		m.faces[f.Size] = face
	}
	return float64(font.MeasureString(face, text)) / 64
}

var _ Measurer = (*GoMeasurer)(nil)

// Parsed Go Regular font (computed once on first access).
var (
	goRegular     *opentype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

// NewFace opens a new Go Regular face at size pixels (72 DPI, so 1pt == 1px).
// Faces are not safe for concurrent use; callers own the returned face.
func NewFace(size float64) (font.Face, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("parse embedded font: %w", goRegularErr)
	}
	return opentype.NewFace(goRegular, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Default is the process-wide measurer used when callers pass nil.
var Default Measurer = NewGoMeasurer()
