// Package lp wraps a black-box linear programming solver behind a
// small internal interface, and provides the standard-form constraint
// builder the width package's FHTW and SUBW drivers build their LPs
// with. The core never depends on a concrete solver: only this
// package imports gonum.org/v1/gonum/optimize/convex/lp.
package lp

import (
	glp "gonum.org/v1/gonum/optimize/convex/lp"
	"gonum.org/v1/gonum/mat"

	"github.com/cem-okulmus/hwidth/errs"
)

// Solver solves a standard-form LP: minimize c·x subject to A·x = b,
// x >= 0. Any implementation that can report
// optimal/infeasible/unbounded/other suffices.
type Solver interface {
	Solve(c []float64, A mat.Matrix, b []float64) (obj float64, x []float64, err error)
}

// GonumSimplex solves via gonum's dense Simplex implementation.
type GonumSimplex struct{}

// Tolerance used for gonum's own internal feasibility/optimality
// checks. Width comparisons use their own 10^-6 tolerance independent
// of this value.
const simplexTol = 1e-10

func (GonumSimplex) Solve(c []float64, A mat.Matrix, b []float64) (float64, []float64, error) {
	z, x, err := glp.Simplex(nil, c, A, b, simplexTol)
	if err != nil {
		return 0, nil, errs.NewSolverError("simplex", err)
	}
	return z, x, nil
}

// DefaultSolver is the solver used by FractionalEdgeCover and the
// width package's SUBW builder; a caller substitutes another by
// assigning a different Solver to this variable.
var DefaultSolver Solver = GonumSimplex{}
