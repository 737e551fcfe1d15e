package width

import (
	"github.com/google/uuid"

	"github.com/cem-okulmus/hwidth/errs"
	"github.com/cem-okulmus/hwidth/lib"
	"github.com/cem-okulmus/hwidth/lp"
)

// SubmodularWidth computes SUBW(H, fds): for every selector (a choice
// of one bag per TD, enumerated modulo bag-level and selector-level
// subsumption), an entropic LP over 2^n-1 free h-variables (h[∅] is
// fixed at zero and never materialized as a variable) plus a
// nonnegative scalar w, maximizing w subject to elemental
// monotonicity, elemental submodularity, edge-domination and FD
// equality constraints, with w bounded above by every bag's
// h-value. The running maximum across selectors, initialized at 0,
// is the result; an empty selector list (e.g. no edges) yields 0.
func SubmodularWidth[V comparable](h *lib.Hypergraph[V], fds []lib.FD[V]) (float64, error) {
	for _, fd := range fds {
		if err := fd.Validate(h); err != nil {
			return 0, err
		}
	}

	tds := h.TDs()
	selectors := lib.EnumerateSelectors(tds, h.Logger())
	if len(selectors) == 0 {
		return 0, nil
	}

	n := h.N()
	best := 0.0
	for _, sel := range selectors {
		runID := uuid.New()
		h.Logger().Debug().Str("run", runID.String()).Int("bags", len(sel)).Msg("solving subw lp for selector")

		obj, err := solveSelectorLP(h, fds, n, sel)
		if err != nil {
			return 0, err
		}
		if obj > best {
			best = obj
		}
	}
	return best, nil
}

func solveSelectorLP[V comparable](h *lib.Hypergraph[V], fds []lib.FD[V], n int, sel lib.Selector) (float64, error) {
	full := lib.FullSubset(n)

	b := lp.NewBuilder()
	hVar := make(map[lib.Subset]int, full.Len())
	varOf := func(s lib.Subset) (int, bool) {
		if s == 0 {
			return 0, false
		}
		id, ok := hVar[s]
		if !ok {
			id = b.AddVar(lp.Free)
			hVar[s] = id
		}
		return id, true
	}

	terms := func(coefs map[lib.Subset]float64) map[int]float64 {
		out := make(map[int]float64, len(coefs))
		for s, c := range coefs {
			if id, ok := varOf(s); ok {
				out[id] += c
			}
		}
		return out
	}

	// Elemental monotonicity: h[V] - h[V\{v}] >= 0 for each vertex v.
	for v := 0; v < n; v++ {
		b.AddConstraint(terms(map[lib.Subset]float64{
			full:            1,
			full.Without(v): -1,
		}), lp.GE, 0)
	}

	// Elemental submodularity: h[X∪y]+h[X∪z]-h[X]-h[X∪y∪z] >= 0 for
	// every pair y<z and every X disjoint from {y,z}. Together with
	// the monotonicity rows above this is the standard minimal basis
	// implying all monotonicity and submodularity on the subset
	// lattice (Yeung's elemental Shannon-type inequalities).
	for y := 0; y < n; y++ {
		for z := y + 1; z < n; z++ {
			complement := full.Without(y).Without(z)
			complement.ForEachSubmask(func(x lib.Subset) {
				xy := x.With(y)
				xz := x.With(z)
				xyz := xy.With(z)
				b.AddConstraint(terms(map[lib.Subset]float64{
					xy:  1,
					xz:  1,
					x:   -1,
					xyz: -1,
				}), lp.GE, 0)
			})
		}
	}

	// Edge domination: h[E] <= weight(E) for every hyperedge E.
	for j, e := range h.Edges() {
		b.AddConstraint(terms(map[lib.Subset]float64{e: 1}), lp.LE, h.Weight(j))
	}

	// Functional dependency equality: h[Y] - h[X] = 0.
	for _, fd := range fds {
		b.AddConstraint(terms(map[lib.Subset]float64{fd.Y(): 1, fd.X(): -1}), lp.EQ, 0)
	}

	// Min-target: w <= h[B] for every bag B of the selector.
	wVar := b.AddVar(lp.NonNeg)
	for _, bag := range sel {
		cs := terms(map[lib.Subset]float64{bag: 1})
		cs[wVar] -= 1
		b.AddConstraint(cs, lp.GE, 0)
	}

	b.SetObjective(map[int]float64{wVar: 1}, true)

	obj, _, err := b.Solve(lp.DefaultSolver)
	if err != nil {
		return 0, errs.NewSolverError("subw lp", err)
	}
	return obj, nil
}
