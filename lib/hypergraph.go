// Package lib implements the hypergraph data model, the subset codec,
// tree-decomposition enumeration with subsumption pruning, selector
// enumeration, and the functional-dependency model that the width and
// lp packages build linear programs over.
package lib

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cem-okulmus/hwidth/errs"
)

// Hypergraph is a query hypergraph over vertices of type V: an opaque
// comparable value supplied by the caller. The core never interprets V
// beyond equality (as a map key) and printing in error messages; no
// ordering or String method is required of it.
type Hypergraph[V comparable] struct {
	vars    []V
	index   map[V]int
	edges   []Subset
	weights []float64
	// varEdges[i] lists, for vertex index i, the indices of edges
	// containing it — the incidence index the edge-cover LP uses to
	// build its per-vertex covering rows.
	varEdges [][]int

	tdsOnce sync.Once
	tds     []TD

	log zerolog.Logger
}

// Option configures a Hypergraph at construction time.
type Option[V comparable] func(*Hypergraph[V])

// WithLogger attaches a zerolog.Logger for coarse progress reporting.
// The default is zerolog.Nop(), so library consumers never see output
// unless they opt in.
func WithLogger[V comparable](log zerolog.Logger) Option[V] {
	return func(h *Hypergraph[V]) { h.log = log }
}

// WithTDs supplies a precomputed TD list, which TDs then returns
// instead of running EnumerateTDs on first use.
func WithTDs[V comparable](tds []TD) Option[V] {
	return func(h *Hypergraph[V]) {
		h.tds = tds
		h.tdsOnce.Do(func() {}) // mark as already computed
	}
}

// NewHypergraph constructs and validates a hypergraph over vars and
// edges. weights defaults to 1.0 per edge when nil. Any invariant
// violation aborts construction with a *errs.ConfigError.
func NewHypergraph[V comparable](vars []V, edges [][]V, weights []float64, opts ...Option[V]) (*Hypergraph[V], error) {
	h := &Hypergraph[V]{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(h)
	}

	h.vars = append([]V(nil), vars...)
	h.index = make(map[V]int, len(vars))
	for i, v := range vars {
		if _, dup := h.index[v]; dup {
			return nil, errs.NewConfigError("duplicate vertex %v in vars", v)
		}
		h.index[v] = i
	}

	if weights != nil && len(weights) != len(edges) {
		return nil, errs.NewConfigError("got %d weights for %d edges", len(weights), len(edges))
	}

	h.edges = make([]Subset, len(edges))
	h.weights = make([]float64, len(edges))
	seenUnion := Subset(0)
	for j, e := range edges {
		if len(e) == 0 {
			return nil, errs.NewConfigError("edge %d is empty", j)
		}
		seen := map[V]bool{}
		var s Subset
		for _, v := range e {
			if seen[v] {
				return nil, errs.NewConfigError("edge %d repeats vertex %v", j, v)
			}
			seen[v] = true
			i, ok := h.index[v]
			if !ok {
				return nil, errs.NewConfigError("edge %d contains vertex %v not in vars", j, v)
			}
			s = s.With(i)
		}
		h.edges[j] = s
		seenUnion = seenUnion.Union(s)

		w := 1.0
		if weights != nil {
			w = weights[j]
		}
		if w < 0 {
			return nil, errs.NewConfigError("edge %d has negative weight %v", j, w)
		}
		h.weights[j] = w
	}

	if seenUnion != FullSubset(len(h.vars)) {
		return nil, errs.NewConfigError("union of edges does not cover all vertices")
	}

	h.varEdges = make([][]int, len(h.vars))
	for j, s := range h.edges {
		for _, i := range s.Indices() {
			h.varEdges[i] = append(h.varEdges[i], j)
		}
	}

	return h, nil
}

// N returns the number of vertices.
func (h *Hypergraph[V]) N() int { return len(h.vars) }

// Vars returns the vertex list in index order. The returned slice must
// not be mutated.
func (h *Hypergraph[V]) Vars() []V { return h.vars }

// Edges returns the edge set as Subset bitmasks, in input order.
func (h *Hypergraph[V]) Edges() []Subset { return h.edges }

// Weight returns the weight of edge j.
func (h *Hypergraph[V]) Weight(j int) float64 { return h.weights[j] }

// VarIndex returns the dense index of vertex v, and whether it exists.
func (h *Hypergraph[V]) VarIndex(v V) (int, bool) {
	i, ok := h.index[v]
	return i, ok
}

// VarEdges returns the indices of edges containing vertex index i.
func (h *Hypergraph[V]) VarEdges(i int) []int { return h.varEdges[i] }

// Logger returns the hypergraph's configured progress logger.
func (h *Hypergraph[V]) Logger() zerolog.Logger { return h.log }

// TDs returns the non-redundant tree decompositions of the
// hypergraph, computing and caching them on first use via
// EnumerateTDs.
func (h *Hypergraph[V]) TDs() []TD {
	h.tdsOnce.Do(func() {
		h.tds = EnumerateTDs(h.edges, h.log)
	})
	return h.tds
}

// VerticesSorted returns the vertex indices contained in s, sorted for
// deterministic printing. Nothing in this module calls it.
func VerticesSorted(s Subset) []int {
	idx := s.Indices()
	sort.Ints(idx)
	return idx
}
