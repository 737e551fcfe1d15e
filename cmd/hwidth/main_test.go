package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cem-okulmus/hwidth/lib"
)

func TestSplitComma(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitComma("a,b,c"))
	assert.Equal(t, []string{"a"}, splitComma("a"))
	assert.Nil(t, splitComma(""))
}

func TestParseFDFlag(t *testing.T) {
	h, err := lib.NewHypergraph[string]([]string{"a", "b", "c"}, [][]string{{"a", "b", "c"}}, nil)
	require.NoError(t, err)

	fd, err := parseFDFlag(h, "a:b")
	require.NoError(t, err)
	require.NoError(t, fd.Validate(h))
}

func TestParseFDFlagMultiVertex(t *testing.T) {
	h, err := lib.NewHypergraph[string]([]string{"a", "b", "c", "d"}, [][]string{{"a", "b", "c", "d"}}, nil)
	require.NoError(t, err)

	fd, err := parseFDFlag(h, "a,b:c,d")
	require.NoError(t, err)
	require.NoError(t, fd.Validate(h))
}
