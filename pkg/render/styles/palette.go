package styles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matzehuels/chartgrid/pkg/errors"
)

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// fallback is used when a palette is empty.
var fallback = drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 255}

// ParseColor parses a CSS hex color such as "#1f77b4" or "f80".
func ParseColor(s string) (drawing.Color, error) {
	s = strings.TrimSpace(s)
	if !hexColor.MatchString(s) {
		return drawing.Color{}, errors.New(errors.ErrCodeInvalidConfig, "invalid color %q: want #rgb or #rrggbb", s)
	}
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#")), nil
}

// Hex formats c as lowercase "#rrggbb".
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is an ordered list of series colors.
type Palette struct {
	colors []drawing.Color
}

// NewPalette parses every color in hex. The first invalid entry fails the whole palette.
func NewPalette(hex []string) (Palette, error) {
	p := Palette{colors: make([]drawing.Color, 0, len(hex))}
	for i, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return Palette{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette color %d", i)
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p.colors) }

// Color returns the color for index i, wrapping around the palette.
func (p Palette) Color(i int) drawing.Color {
	n := len(p.colors)
	if n == 0 {
		return fallback
	}
	return p.colors[((i%n)+n)%n]
}

// Hex returns the "#rrggbb" color for index i.
func (p Palette) Hex(i int) string { return Hex(p.Color(i)) }
