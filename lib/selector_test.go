package lib

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagFilterDropsSupersetsAndDuplicates(t *testing.T) {
	s := Selector{subsetOf(0, 1), subsetOf(0, 1, 2), subsetOf(0, 1)}
	out := bagFilter(s)
	require.Len(t, out, 1)
	assert.Equal(t, subsetOf(0, 1), out[0])
}

func TestSelectorSubsumedByDirectionIsMirrored(t *testing.T) {
	small := Selector{subsetOf(0, 1)}
	big := Selector{subsetOf(0, 1, 2)}
	// Opposite of TD subsumption: here the selector with the *smaller*
	// bag is subsumed by the one with the larger bag.
	assert.True(t, selectorSubsumedBy(small, big))
	assert.False(t, selectorSubsumedBy(big, small))
}

func TestEnumerateSelectorsOnePerTD(t *testing.T) {
	tds := []TD{
		{subsetOf(0, 1), subsetOf(1, 2)},
		{subsetOf(2, 3)},
	}
	sels := EnumerateSelectors(tds, zerolog.Nop())
	require.NotEmpty(t, sels)
	for _, s := range sels {
		assert.LessOrEqual(t, len(s), len(tds))
	}
}

func TestEnumerateSelectorsEmptyTDs(t *testing.T) {
	assert.Nil(t, EnumerateSelectors(nil, zerolog.Nop()))
}
