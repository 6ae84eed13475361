package scale

// Point is an ordinal scale that spreads entries evenly across a range.
//
// With n entries and padding p, step = (stop-start)/(n-1+p) and entry i sits
// at start + step*p/2 + step*i. A single entry sits in the middle.
type Point struct {
	Domain  []string
	Range   [2]float64
	Padding float64

	index map[string]int
}

// DefaultPointPadding leaves half a step before the first and after the last entry.
const DefaultPointPadding = 1.0

// NewPoint returns a point scale over domain.
func NewPoint(domain []string, rng [2]float64, padding float64) *Point {
	idx := make(map[string]int, len(domain))
	for i, d := range domain {
		if _, ok := idx[d]; !ok {
			idx[d] = i
		}
	}
	return &Point{Domain: domain, Range: rng, Padding: padding, index: idx}
}

// Step returns the distance between adjacent entries.
func (s *Point) Step() float64 {
	n := len(s.Domain)
	denom := float64(n-1) + s.Padding
	if n == 0 || denom <= 0 {
		return 0
	}
	return (s.Range[1] - s.Range[0]) / denom
}

// At returns the position of the i-th entry.
func (s *Point) At(i int) float64 {
	if len(s.Domain) == 1 && s.Padding == 0 {
		return (s.Range[0] + s.Range[1]) / 2
	}
	step := s.Step()
	return s.Range[0] + step*s.Padding/2 + step*float64(i)
}

// Map returns the position of entry and whether it belongs to the domain.
func (s *Point) Map(entry string) (float64, bool) {
	i, ok := s.index[entry]
	if !ok {
		return 0, false
	}
	return s.At(i), true
}

// Band divides a continuous range into equal bands, one per domain index.
//
// It follows d3 rangeBands: step = span / (n - inner + 2*outer), band
// width = step * (1 - inner), and the first band starts outer*step in from
// the range start. A reversed range lays bands out from the end.
type Band struct {
	Domain []int
	Range  [2]float64
	Inner  float64
	Outer  float64

	start float64
	step  float64
}

// NewBand returns a band scale with n bands.
func NewBand(n int, rng [2]float64, inner, outer float64) *Band {
	domain := make([]int, n)
	for i := range domain {
		domain[i] = i
	}
	b := &Band{Domain: domain, Range: rng, Inner: inner, Outer: outer}

	lo, hi := rng[0], rng[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if denom := float64(n) - inner + 2*outer; n > 0 && denom > 0 {
		b.step = (hi - lo) / denom
	}
	b.start = lo + b.step*outer
	return b
}

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// RangeBand returns the width of one band.
func (b *Band) RangeBand() float64 { return b.step * (1 - b.Inner) }

// Map returns the start position of band i.
func (b *Band) Map(i int) float64 {
	if b.Range[0] > b.Range[1] {
		i = len(b.Domain) - 1 - i
	}
	return b.start + b.step*float64(i)
}
