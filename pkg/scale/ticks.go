package scale

import (
	"math"
	"strconv"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/fonts"
)

// DefaultTickCount is used when a primary scale gives neither tick values nor a count.
const DefaultTickCount = 5

// ExactTicks returns n ticks spaced evenly from domain[0] to domain[1] inclusive.
func ExactTicks(domain [2]float64, n int) []float64 {
	if n < 2 {
		return []float64{domain[0]}
	}
	step := (domain[1] - domain[0]) / float64(n-1)
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = domain[0] + step*float64(i)
	}
	ticks[n-1] = domain[1]
	return ticks
}

// FormatTick rounds v to the scale's precision. The last tick also gets the
// scale's prefix and suffix, so units are shown once at the top of the axis.
func FormatTick(v float64, s chart.PrimaryScale, isLast bool) string {
	p := s.Precision
	if p < 0 {
		p = 0
	}
	text := strconv.FormatFloat(v, 'f', p, 64)
	if text == "-"+strconv.FormatFloat(0, 'f', p, 64) {
		text = text[1:]
	}
	if isLast {
		text = s.Prefix + text + s.Suffix
	}
	return text
}

// TickWidths holds the measured widths of a scale's tick labels.
type TickWidths struct {
	Max    float64   `json:"max"`
	Widths []float64 `json:"widths"`
}

// GetTickWidths measures every formatted tick label of s in font f.
func GetTickWidths(s chart.PrimaryScale, f fonts.Font, m fonts.Measurer) TickWidths {
	if m == nil {
		m = fonts.Default
	}
	tw := TickWidths{Widths: make([]float64, len(s.TickValues))}
	for i, v := range s.TickValues {
		w := m.Width(FormatTick(v, s, i == len(s.TickValues)-1), f)
		tw.Widths[i] = w
		tw.Max = math.Max(tw.Max, w)
	}
	return tw
}

// Resolve fills in the domain and tick values of s when they are missing.
//
// A missing domain becomes the extent of data (always including zero),
// niced to the tick step. Missing tick values become s.Ticks evenly spaced
// values across the domain, or nice ticks when no count is given.
func Resolve(s chart.PrimaryScale, data []chart.Series) chart.PrimaryScale {
	out := s
	n := s.Ticks
	if n <= 0 {
		n = DefaultTickCount
	}

	if !s.HasDomain() {
		lo, hi := 0.0, 0.0
		for _, d := range data {
			for _, p := range d.Values {
				lo = math.Min(lo, p.Value)
				hi = math.Max(hi, p.Value)
			}
		}
		if lo == hi {
			hi = lo + 1
		}
		nice := NewLinear([2]float64{lo, hi}, [2]float64{0, 1}).Nice(n)
		out.Domain = []float64{nice.Domain[0], nice.Domain[1]}
	}

	if len(s.TickValues) == 0 {
		domain := [2]float64{out.Domain[0], out.Domain[1]}
		if s.Ticks > 0 {
			out.TickValues = ExactTicks(domain, s.Ticks)
		} else {
			out.TickValues = NewLinear(domain, [2]float64{0, 1}).Ticks(n)
		}
	}
	return out
}
