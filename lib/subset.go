package lib

import "math/bits"

// Subset encodes a subset of the vertex index space {0,...,n-1} as a
// bitmask: bit i is set iff the vertex at index i belongs to the
// subset. It doubles as the entropic-LP variable index (h[Subset])
// and as the TD/selector bag representation, so every hot
// containment check in the package is a single machine word compare.
type Subset uint64

// FullSubset returns the universe mask for n vertices.
func FullSubset(n int) Subset {
	if n >= 64 {
		panic("lib: vertex count exceeds Subset bit width")
	}
	return Subset(1<<uint(n)) - 1
}

func subsetOf(indices ...int) Subset {
	var s Subset
	for _, i := range indices {
		s |= Subset(1) << uint(i)
	}
	return s
}

// Has reports whether index i is a member.
func (s Subset) Has(i int) bool { return s&(Subset(1)<<uint(i)) != 0 }

// With returns the subset with index i added.
func (s Subset) With(i int) Subset { return s | (Subset(1) << uint(i)) }

// Without returns the subset with index i removed.
func (s Subset) Without(i int) Subset { return s &^ (Subset(1) << uint(i)) }

// Union returns s ∪ o.
func (s Subset) Union(o Subset) Subset { return s | o }

// Inter returns s ∩ o.
func (s Subset) Inter(o Subset) Subset { return s & o }

// Diff returns s \ o.
func (s Subset) Diff(o Subset) Subset { return s &^ o }

// SubsetOf reports whether s ⊆ o.
func (s Subset) SubsetOf(o Subset) bool { return s&o == s }

// Empty reports whether s is the empty set.
func (s Subset) Empty() bool { return s == 0 }

// Len returns the number of members (popcount).
func (s Subset) Len() int { return bits.OnesCount64(uint64(s)) }

// ForEachSubmask calls f once for every submask of s, including the
// empty set and s itself, using the standard "submask enumeration"
// trick so no intermediate slice is allocated even when s has many
// members.
func (s Subset) ForEachSubmask(f func(Subset)) {
	for x := s; ; x = (x - 1) & s {
		f(x)
		if x == 0 {
			break
		}
	}
}

// Indices returns the member indices in increasing order.
func (s Subset) Indices() []int {
	out := make([]int, 0, s.Len())
	for v := s; v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(uint64(v)))
	}
	return out
}

// Encode maps a subset of vertices to its Subset bitmask, using the
// hypergraph's vertex→index table. Unknown vertices are ignored by
// the zero-value lookup (callers are expected to only pass members
// of H.vars; NewHypergraph enforces this at construction time for
// edges, and EncodeStrict below is used anywhere an unvalidated
// caller-supplied vertex list needs checking).
func (h *Hypergraph[V]) Encode(vs []V) Subset {
	var s Subset
	for _, v := range vs {
		if i, ok := h.index[v]; ok {
			s = s.With(i)
		}
	}
	return s
}

// EncodeStrict is like Encode but reports an error for any vertex not
// present in the hypergraph.
func (h *Hypergraph[V]) EncodeStrict(vs []V) (Subset, error) {
	var s Subset
	for _, v := range vs {
		i, ok := h.index[v]
		if !ok {
			return 0, &unknownVertexError{v: v}
		}
		s = s.With(i)
	}
	return s, nil
}

// Decode maps a Subset bitmask back to the vertices it represents, in
// vertex-index order.
func (h *Hypergraph[V]) Decode(s Subset) []V {
	out := make([]V, 0, s.Len())
	for _, i := range s.Indices() {
		out = append(out, h.vars[i])
	}
	return out
}

type unknownVertexError struct {
	v any
}

func (e *unknownVertexError) Error() string {
	return "lib: vertex not present in hypergraph"
}
