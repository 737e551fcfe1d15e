package lp

import "github.com/cem-okulmus/hwidth/lib"

// FractionalEdgeCover computes the minimum weighted fractional edge
// cover of target (default h.Vars() when target is nil): one
// nonnegative variable λj per edge, minimizing Σ weightj·λj subject to
// Σ{j: v∈edgej} λj ≥ 1 for every v in target. The LP is always
// feasible because the union of edges equals vars ⊇ target. Returns
// *errs.SolverError if the solver does not report optimal.
func FractionalEdgeCover[V comparable](h *lib.Hypergraph[V], target []V) (float64, error) {
	if target == nil {
		target = h.Vars()
	}
	targetSet, err := h.EncodeStrict(target)
	if err != nil {
		return 0, err
	}

	edges := h.Edges()
	b := NewBuilder()
	lambda := make([]int, len(edges))
	for j := range edges {
		lambda[j] = b.AddVar(NonNeg)
	}

	obj := make(map[int]float64, len(edges))
	for j := range edges {
		obj[lambda[j]] = h.Weight(j)
	}
	b.SetObjective(obj, false)

	for _, v := range targetSet.Indices() {
		terms := map[int]float64{}
		for _, j := range h.VarEdges(v) {
			terms[lambda[j]] += 1
		}
		b.AddConstraint(terms, GE, 1)
	}

	z, _, err := b.Solve(DefaultSolver)
	if err != nil {
		return 0, err
	}
	return z, nil
}
