package lp

import "gonum.org/v1/gonum/mat"

// VarKind controls whether a Builder variable is split into a
// nonnegative pair (Free) or left as a single nonnegative column
// (NonNeg), since the underlying Solver only accepts x >= 0.
type VarKind int

const (
	NonNeg VarKind = iota
	Free
)

// Rel is a constraint relation.
type Rel int

const (
	GE Rel = iota
	LE
	EQ
)

type term struct {
	v    int
	coef float64
}

type constraint struct {
	terms []term
	rel   Rel
	rhs   float64
}

// Builder accumulates a linear program over named variables and
// translates it to the standard form (minimize c·x s.t. A·x=b, x>=0)
// that Solver expects, handling free-variable splitting and
// inequality slack/surplus columns itself. It exists because the
// FHTW edge-cover LP and the SUBW entropic LP share this
// model-then-translate shape, and gonum's lp.Simplex only speaks
// standard form directly.
type Builder struct {
	kinds    []VarKind
	cons     []constraint
	obj      []term
	maximize bool
}

// NewBuilder returns an empty LP builder.
func NewBuilder() *Builder { return &Builder{} }

// AddVar registers a new decision variable and returns its index.
func (b *Builder) AddVar(kind VarKind) int {
	b.kinds = append(b.kinds, kind)
	return len(b.kinds) - 1
}

// AddConstraint adds sum(terms) `rel` rhs.
func (b *Builder) AddConstraint(terms map[int]float64, rel Rel, rhs float64) {
	ts := make([]term, 0, len(terms))
	for v, c := range terms {
		ts = append(ts, term{v: v, coef: c})
	}
	b.cons = append(b.cons, constraint{terms: ts, rel: rel, rhs: rhs})
}

// SetObjective sets the objective sum(terms), to be maximized or
// minimized as requested.
func (b *Builder) SetObjective(terms map[int]float64, maximize bool) {
	ts := make([]term, 0, len(terms))
	for v, c := range terms {
		ts = append(ts, term{v: v, coef: c})
	}
	b.obj = ts
	b.maximize = maximize
}

// NumConstraints reports how many constraint rows have been added.
func (b *Builder) NumConstraints() int { return len(b.cons) }

// Solve translates the accumulated model to standard form, solves it
// with s, and returns the objective value in the builder's original
// (possibly maximize) sense along with the value of each original
// variable (free variables re-combined from their positive/negative
// parts).
func (b *Builder) Solve(s Solver) (float64, []float64, error) {
	// Every original variable maps to one column (NonNeg) or two
	// columns, positive and negative part (Free).
	cols := make([][2]int, len(b.kinds))
	ncols := 0
	for i, k := range b.kinds {
		if k == NonNeg {
			cols[i] = [2]int{ncols, -1}
			ncols++
		} else {
			cols[i] = [2]int{ncols, ncols + 1}
			ncols += 2
		}
	}

	// Every inequality constraint gets its own slack/surplus column;
	// equalities need none.
	slackCol := make([]int, len(b.cons))
	for i, c := range b.cons {
		if c.rel == EQ {
			slackCol[i] = -1
			continue
		}
		slackCol[i] = ncols
		ncols++
	}

	rows := len(b.cons)
	data := make([]float64, rows*ncols)
	rhs := make([]float64, rows)
	for i, c := range b.cons {
		for _, t := range c.terms {
			pc, nc := cols[t.v][0], cols[t.v][1]
			data[i*ncols+pc] += t.coef
			if nc >= 0 {
				data[i*ncols+nc] -= t.coef
			}
		}
		switch c.rel {
		case GE:
			data[i*ncols+slackCol[i]] = -1
		case LE:
			data[i*ncols+slackCol[i]] = 1
		}
		rhs[i] = c.rhs
	}

	sign := 1.0
	if b.maximize {
		sign = -1.0
	}
	cvec := make([]float64, ncols)
	for _, t := range b.obj {
		pc, nc := cols[t.v][0], cols[t.v][1]
		cvec[pc] += sign * t.coef
		if nc >= 0 {
			cvec[nc] -= sign * t.coef
		}
	}

	A := mat.NewDense(rows, ncols, data)
	z, x, err := s.Solve(cvec, A, rhs)
	if err != nil {
		return 0, nil, err
	}

	orig := make([]float64, len(b.kinds))
	for i := range b.kinds {
		pc, nc := cols[i][0], cols[i][1]
		v := x[pc]
		if nc >= 0 {
			v -= x[nc]
		}
		orig[i] = v
	}

	objVal := z
	if b.maximize {
		objVal = -z
	}
	return objVal, orig, nil
}
