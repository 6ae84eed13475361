package chartgrid

import (
	"sync"

	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
)

// Renderer renders successive props and remembers the last tree it built.
// It is safe for concurrent use.
type Renderer struct {
	Measurer fonts.Measurer

	mu   sync.Mutex
	last *svg.Element
}

// ShouldUpdate reports whether next should produce a new tree.
// Props without data do not: upstream data is still loading.
func (r *Renderer) ShouldUpdate(next Props) bool {
	return next.ChartProps.Data != nil
}

// Render builds p, or returns the previous tree when p has no data.
// Before anything has been rendered the previous tree is nil.
// A failed build leaves the previous tree in place.
func (r *Renderer) Render(p Props) (*svg.Element, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ShouldUpdate(p) {
		return r.last, nil
	}
	root, err := Build(p, r.Measurer)
	if err != nil {
		return nil, err
	}
	r.last = root
	return root, nil
}

// Last returns the most recently rendered tree.
func (r *Renderer) Last() *svg.Element {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
