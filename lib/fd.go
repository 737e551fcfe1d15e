package lib

import "github.com/cem-okulmus/hwidth/errs"

// FD is a functional dependency X -> Y over vertices of type V. The
// stored Y is normalized to X ∪ Y on construction; the caller-supplied
// X and Y must be disjoint on input. An FD is legal for a hypergraph
// only if its normalized Y is contained in some hyperedge, checked at
// SUBW build time via Validate.
type FD[V comparable] struct {
	x Subset
	y Subset // normalized: x ∪ raw-y
}

// NewFD validates and normalizes X, Y against the hypergraph's vertex
// index. It rejects duplicate members within X or within Y, and
// rejects X and Y overlapping on input.
func NewFD[V comparable](h *Hypergraph[V], x, y []V) (FD[V], error) {
	xs, err := h.EncodeStrict(x)
	if err != nil {
		return FD[V]{}, errs.NewConfigError("fd: %v", err)
	}
	if xs.Len() != len(x) {
		return FD[V]{}, errs.NewConfigError("fd: X contains duplicate vertices")
	}

	ys, err := h.EncodeStrict(y)
	if err != nil {
		return FD[V]{}, errs.NewConfigError("fd: %v", err)
	}
	if ys.Len() != len(y) {
		return FD[V]{}, errs.NewConfigError("fd: Y contains duplicate vertices")
	}

	if xs.Inter(ys) != 0 {
		return FD[V]{}, errs.NewConfigError("fd: X and Y must be disjoint on input")
	}

	return FD[V]{x: xs, y: xs.Union(ys)}, nil
}

// X returns the determining-side subset.
func (f FD[V]) X() Subset { return f.x }

// Y returns the normalized (X ∪ raw-Y) determined-side subset.
func (f FD[V]) Y() Subset { return f.y }

// Validate checks that f's normalized Y is contained in some hyperedge
// of h, as required before an FD may be used in a SUBW build.
func (f FD[V]) Validate(h *Hypergraph[V]) error {
	for _, e := range h.Edges() {
		if f.y.SubsetOf(e) {
			return nil
		}
	}
	return errs.NewConfigError("fd: normalized Y is not contained in any hyperedge")
}
