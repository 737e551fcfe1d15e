package lib

import "github.com/spakin/disjoint"

// ConnectedComponents partitions the hypergraph's vertices into
// connected components — two vertices belong to the same component
// iff some hyperedge contains both, transitively. One disjoint.Element
// per vertex index is unioned along edges, then grouped by root;
// useful for a caller that wants to report or skip trivially
// disconnected instances before paying for TD enumeration.
func ConnectedComponents[V comparable](h *Hypergraph[V]) [][]V {
	elems := make([]*disjoint.Element, h.N())
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	for _, e := range h.Edges() {
		idx := e.Indices()
		for k := 1; k < len(idx); k++ {
			disjoint.Union(elems[idx[0]], elems[idx[k]])
		}
	}

	groups := map[*disjoint.Element][]V{}
	var order []*disjoint.Element
	for i, v := range h.Vars() {
		root := elems[i].Find()
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], v)
	}

	out := make([][]V, len(order))
	for i, root := range order {
		out[i] = groups[root]
	}
	return out
}
