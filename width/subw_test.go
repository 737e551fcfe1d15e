package width

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cem-okulmus/hwidth/lib"
)

func fd(t *testing.T, h *lib.Hypergraph[int], x, y int) lib.FD[int] {
	t.Helper()
	f, err := lib.NewFD[int](h, []int{x}, []int{y})
	require.NoError(t, err)
	return f
}

func TestSubmodularWidthWorkedExamples(t *testing.T) {
	t.Run("4-cycle", func(t *testing.T) {
		h := cycleHypergraph(t, 4)
		w, err := SubmodularWidth(h, nil)
		require.NoError(t, err)
		require.InDelta(t, 1.5, w, 1e-6)
	})

	t.Run("4-cycle with FDs", func(t *testing.T) {
		h := cycleHypergraph(t, 4)
		fds := []lib.FD[int]{fd(t, h, 1, 2), fd(t, h, 3, 2)}
		w, err := SubmodularWidth(h, fds)
		require.NoError(t, err)
		require.InDelta(t, 1.0, w, 1e-6)
	})

	t.Run("5-cycle", func(t *testing.T) {
		h := cycleHypergraph(t, 5)
		w, err := SubmodularWidth(h, nil)
		require.NoError(t, err)
		require.InDelta(t, 5.0/3.0, w, 1e-6)
	})

	t.Run("5-cycle with FDs", func(t *testing.T) {
		h := cycleHypergraph(t, 5)
		fds := []lib.FD[int]{fd(t, h, 1, 5), fd(t, h, 5, 1)}
		w, err := SubmodularWidth(h, fds)
		require.NoError(t, err)
		require.InDelta(t, 1.5, w, 1e-6)
	})

	t.Run("6-cycle", func(t *testing.T) {
		h := cycleHypergraph(t, 6)
		w, err := SubmodularWidth(h, nil)
		require.NoError(t, err)
		require.InDelta(t, 5.0/3.0, w, 1e-6)
	})

	t.Run("6-cycle with FDs", func(t *testing.T) {
		h := cycleHypergraph(t, 6)
		fds := []lib.FD[int]{fd(t, h, 2, 3), fd(t, h, 4, 5), fd(t, h, 6, 1)}
		w, err := SubmodularWidth(h, fds)
		require.NoError(t, err)
		require.InDelta(t, 1.5, w, 1e-6)
	})

	t.Run("Example-6", func(t *testing.T) {
		h := example6Hypergraph(t)
		w, err := SubmodularWidth(h, nil)
		require.NoError(t, err)
		require.InDelta(t, 1.75, w, 1e-6)
	})

	t.Run("Example-6 with FDs", func(t *testing.T) {
		h := example6Hypergraph(t)
		w, err := SubmodularWidth(h, example6FDs(t, h))
		require.NoError(t, err)
		require.InDelta(t, 1.5, w, 1e-6)
	})
}

func TestSubmodularWidthLEFractionalHypertreeWidth(t *testing.T) {
	for _, n := range []int{4, 5, 6} {
		h := cycleHypergraph(t, n)
		fhtw, err := FractionalHypertreeWidth(h)
		require.NoError(t, err)
		subw, err := SubmodularWidth(h, nil)
		require.NoError(t, err)
		require.LessOrEqual(t, subw, fhtw+1e-6)
	}
}

func TestAddingFDNeverIncreasesSUBW(t *testing.T) {
	h := cycleHypergraph(t, 4)
	base, err := SubmodularWidth(h, nil)
	require.NoError(t, err)

	withFD, err := SubmodularWidth(h, []lib.FD[int]{fd(t, h, 1, 2)})
	require.NoError(t, err)

	require.LessOrEqual(t, withFD, base+1e-6)
}

func TestSubmodularWidthInvariantUnderVarReordering(t *testing.T) {
	h1, err := lib.NewHypergraph[int]([]int{1, 2, 3, 4}, [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}}, nil)
	require.NoError(t, err)
	w1, err := SubmodularWidth(h1, nil)
	require.NoError(t, err)

	h2, err := lib.NewHypergraph[int]([]int{4, 3, 2, 1}, [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}}, nil)
	require.NoError(t, err)
	w2, err := SubmodularWidth(h2, nil)
	require.NoError(t, err)

	require.InDelta(t, w1, w2, 1e-6)
}
