package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPermutations(n int) [][]int {
	it := NewPermutationIterator(n)
	var out [][]int
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

func TestPermutationIteratorEnumeratesAllDistinctPermutations(t *testing.T) {
	for n := 0; n <= 5; n++ {
		perms := collectPermutations(n)

		factorial := 1
		for i := 2; i <= n; i++ {
			factorial *= i
		}
		require.Len(t, perms, factorial, "n=%d", n)

		seen := map[string]bool{}
		for _, p := range perms {
			key := keyOf(p)
			assert.False(t, seen[key], "n=%d: permutation %v repeated", n, p)
			seen[key] = true
		}
		assert.Len(t, seen, factorial, "n=%d: expected %d distinct permutations", n, factorial)
	}
}

func TestPermutationIteratorIncludesIdentityFirst(t *testing.T) {
	perms := collectPermutations(2)
	require.Len(t, perms, 2)
	assert.Equal(t, []int{0, 1}, perms[0])
	assert.Equal(t, []int{1, 0}, perms[1])
}

func TestPermutationIteratorReturnedSlicesAreIndependent(t *testing.T) {
	perms := collectPermutations(3)
	require.Len(t, perms, 6)
	// Mutating one returned permutation must not affect the others —
	// each call must hand back its own backing array.
	perms[0][0] = -1
	for _, p := range perms[1:] {
		assert.NotEqual(t, -1, p[0])
	}
}

func keyOf(p []int) string {
	key := ""
	for _, v := range p {
		key += string(rune('a' + v))
	}
	return key
}
