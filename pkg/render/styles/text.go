package styles

import (
	"github.com/matzehuels/chartgrid/pkg/fonts"
)

const ellipsis = ".."

// TruncateLabel shortens text so that it fits within maxWidth pixels in f,
// marking the cut with "..". Text that already fits is returned unchanged.
// A non-positive maxWidth disables truncation.
func TruncateLabel(text string, maxWidth float64, f fonts.Font, m fonts.Measurer) string {
	if m == nil {
		m = fonts.Default
	}
	if maxWidth <= 0 || m.Width(text, f) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		s := string(runes[:n]) + ellipsis
		if m.Width(s, f) <= maxWidth {
			return s
		}
	}
	return ellipsis
}
