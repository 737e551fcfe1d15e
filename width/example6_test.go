package width

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cem-okulmus/hwidth/lib"
)

// example6Hypergraph builds a six-vertex, four-edge hypergraph: vars
// {x,y,z,u,v,w}, edges {xwz, xuy, yvz, uvw}. Unlike the cycle cases
// this is not a simple cycle of binary edges: x, y, z form a triangle, each
// "spoke" edge joins one triangle pair to a distinct fourth vertex,
// and a fourth "hub" edge joins the three spoke vertices together.
func example6Hypergraph(t *testing.T) *lib.Hypergraph[string] {
	t.Helper()
	h, err := lib.NewHypergraph[string](
		[]string{"x", "y", "z", "u", "v", "w"},
		[][]string{{"x", "w", "z"}, {"x", "u", "y"}, {"y", "v", "z"}, {"u", "v", "w"}},
		nil,
	)
	require.NoError(t, err)
	return h
}

// example6FDs builds the nine 2-to-1 functional dependencies among the
// triangle vertex pairs: for each of the three spoke edges (every edge
// but the hub "uvw"), every way of picking two of its three vertices
// to determine the third.
func example6FDs(t *testing.T, h *lib.Hypergraph[string]) []lib.FD[string] {
	t.Helper()
	spokes := [][3]string{
		{"x", "w", "z"},
		{"x", "u", "y"},
		{"y", "v", "z"},
	}
	var fds []lib.FD[string]
	for _, e := range spokes {
		for i := 0; i < 3; i++ {
			determined := e[i]
			var determining []string
			for j := 0; j < 3; j++ {
				if j != i {
					determining = append(determining, e[j])
				}
			}
			f, err := lib.NewFD[string](h, determining, []string{determined})
			require.NoError(t, err)
			fds = append(fds, f)
		}
	}
	return fds
}
