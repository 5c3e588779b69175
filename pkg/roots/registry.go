package roots

import "github.com/willbeason/newton-fractal/pkg/algebra"

// DefaultTolerance is the squared distance within which two points are the
// same root.
const DefaultTolerance = 0.001

// IDMode selects the identifier returned when a point matches a known root.
type IDMode int

const (
	// StableIDs numbers roots from 1 in discovery order, so a root keeps the
	// identifier it was given when first registered.
	StableIDs IDMode = iota

	// LegacyIDs returns the 0-based index of the matched root while new roots
	// still get their 1-based count. A root's first pixel is therefore
	// numbered one higher than every later pixel converging to it.
	LegacyIDs
)

// A Registry collects the distinct roots found during one render and tags
// each with an integer identifier.
//
// Roots are only ever appended. A Registry is not safe for concurrent use.
type Registry struct {
	Tolerance float64
	Mode      IDMode

	known []algebra.Complex
}

// NewRegistry returns an empty Registry using DefaultTolerance.
func NewRegistry(mode IDMode) *Registry {
	return &Registry{
		Tolerance: DefaultTolerance,
		Mode:      mode,
	}
}

// Identify returns the identifier of the known root within Tolerance of p,
// registering p as a new root if there is none.
//
// Every known root is checked; when several are within tolerance the last
// one wins. A newly registered root gets the registry's length after the
// append, so the first root is 1.
func (r *Registry) Identify(p algebra.Complex) int {
	match := -1
	for i, root := range r.known {
		if p.DistanceSquared(root) <= r.Tolerance {
			match = i
		}
	}

	if match < 0 {
		r.known = append(r.known, p)
		return len(r.known)
	}

	if r.Mode == LegacyIDs {
		return match
	}
	return match + 1
}

// Roots returns the known roots in discovery order.
func (r *Registry) Roots() []algebra.Complex {
	out := make([]algebra.Complex, len(r.known))
	copy(out, r.known)
	return out
}

// Len is the number of known roots.
func (r *Registry) Len() int {
	return len(r.known)
}
