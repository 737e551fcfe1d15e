package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSolvesSimpleMinimization(t *testing.T) {
	b := NewBuilder()
	x := b.AddVar(NonNeg)
	y := b.AddVar(NonNeg)

	b.SetObjective(map[int]float64{x: 1, y: 1}, false)
	b.AddConstraint(map[int]float64{x: 1}, GE, 1)
	b.AddConstraint(map[int]float64{y: 1}, GE, 1)

	z, vals, err := b.Solve(DefaultSolver)
	require.NoError(t, err)
	assert.InDelta(t, 2, z, 1e-9)
	assert.InDelta(t, 1, vals[x], 1e-9)
	assert.InDelta(t, 1, vals[y], 1e-9)
}

func TestBuilderSolvesMaximization(t *testing.T) {
	b := NewBuilder()
	x := b.AddVar(NonNeg)

	b.SetObjective(map[int]float64{x: 1}, true)
	b.AddConstraint(map[int]float64{x: 1}, LE, 5)

	z, vals, err := b.Solve(DefaultSolver)
	require.NoError(t, err)
	assert.InDelta(t, 5, z, 1e-9)
	assert.InDelta(t, 5, vals[x], 1e-9)
}

func TestBuilderFreeVariableCanGoNegative(t *testing.T) {
	b := NewBuilder()
	f := b.AddVar(Free)

	b.SetObjective(map[int]float64{f: 1}, false)
	b.AddConstraint(map[int]float64{f: 1}, EQ, -3)

	z, vals, err := b.Solve(DefaultSolver)
	require.NoError(t, err)
	assert.InDelta(t, -3, z, 1e-9)
	assert.InDelta(t, -3, vals[f], 1e-9)
}
