package scale

import (
	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/errors"
)

// Kind selects the scale produced by GenerateScale.
type Kind string

// Supported scale kinds.
const (
	KindOrdinal Kind = "ordinal"
	KindLinear  Kind = "linear"
)

// Generated is a scale built for one axis of a chart cell.
// Exactly one of Ordinal and Linear is set, matching Kind.
type Generated struct {
	Kind       Kind
	Ordinal    *Point
	Linear     *Linear
	Entries    []string  // ordinal domain
	TickValues []float64 // linear ticks
}

// GenerateScale builds a scale of the given kind over rng.
//
// Ordinal scales take their domain from the entries of data, in first-seen
// order across all series. Linear scales take the domain and tick values of
// primary, which should already be resolved with [Resolve].
func GenerateScale(kind Kind, primary chart.PrimaryScale, data []chart.Series, rng [2]float64) (Generated, error) {
	switch kind {
	case KindOrdinal:
		entries := Entries(data)
		return Generated{
			Kind:    kind,
			Ordinal: NewPoint(entries, rng, DefaultPointPadding),
			Entries: entries,
		}, nil
	case KindLinear:
		if !primary.HasDomain() {
			return Generated{}, errors.New(errors.ErrCodeInvalidChart, "linear scale needs a two-value domain")
		}
		return Generated{
			Kind:       kind,
			Linear:     NewLinear([2]float64{primary.Domain[0], primary.Domain[1]}, rng),
			TickValues: primary.TickValues,
		}, nil
	default:
		return Generated{}, errors.New(errors.ErrCodeInvalidInput, "unknown scale kind: %q", kind)
	}
}

// Entries returns the distinct x entries of data in first-seen order.
func Entries(data []chart.Series) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range data {
		for _, p := range d.Values {
			if _, ok := seen[p.Entry]; ok {
				continue
			}
			seen[p.Entry] = struct{}{}
			out = append(out, p.Entry)
		}
	}
	return out
}
