package scale

import "math"

// Linear is a continuous scale from Domain to Range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear returns a linear scale.
func NewLinear(domain, rng [2]float64) *Linear {
	return &Linear{Domain: domain, Range: rng}
}

// Map returns the range position of v. A degenerate domain maps everything
// to the start of the range.
func (s *Linear) Map(v float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	if d == 0 {
		return s.Range[0]
	}
	return s.Range[0] + (v-s.Domain[0])/d*(s.Range[1]-s.Range[0])
}

// Clamp limits px to the scale's range.
func (s *Linear) Clamp(px float64) float64 {
	lo, hi := math.Min(s.Range[0], s.Range[1]), math.Max(s.Range[0], s.Range[1])
	return math.Max(lo, math.Min(hi, px))
}

// Ticks returns roughly n human-friendly tick values within the domain.
func (s *Linear) Ticks(n int) []float64 {
	lo, hi := s.Domain[0], s.Domain[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	step := tickStep(lo, hi, n)
	if step == 0 {
		return []float64{lo}
	}
	first := math.Ceil(lo/step - tickEpsilon)
	last := math.Floor(hi/step + tickEpsilon)

	var ticks []float64
	for i := first; i <= last; i++ {
		ticks = append(ticks, cleanFloat(i*step, step))
	}
	return ticks
}

// Nice extends the domain outward to whole multiples of the tick step for n ticks.
func (s *Linear) Nice(n int) *Linear {
	lo, hi := s.Domain[0], s.Domain[1]
	reversed := lo > hi
	if reversed {
		lo, hi = hi, lo
	}
	if step := tickStep(lo, hi, n); step > 0 {
		lo = cleanFloat(math.Floor(lo/step+tickEpsilon)*step, step)
		hi = cleanFloat(math.Ceil(hi/step-tickEpsilon)*step, step)
	}
	if reversed {
		lo, hi = hi, lo
	}
	return &Linear{Domain: [2]float64{lo, hi}, Range: s.Range}
}

// tickEpsilon absorbs floating point error when snapping to step multiples.
const tickEpsilon = 1e-9

// tickStep returns a 1, 2 or 5 × 10^k step giving about n ticks over [lo, hi].
func tickStep(lo, hi float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	span := hi - lo
	if span <= 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return 0
	}
	step := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	switch e := float64(n) / span * step; {
	case e <= 0.15:
		step *= 10
	case e <= 0.35:
		step *= 5
	case e <= 0.75:
		step *= 2
	}
	return step
}

// cleanFloat removes accumulated floating point error relative to step.
func cleanFloat(v, step float64) float64 {
	digits := math.Max(0, -math.Floor(math.Log10(step))+1)
	p := math.Pow(10, digits)
	return math.Round(v*p) / p
}
