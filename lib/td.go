package lib

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cem-okulmus/hwidth/errs"
)

// TD (tree decomposition) is an unordered collection of bags. The
// running-intersection and connectivity conditions of the classical
// definition are not enforced by this type — TDs produced by
// EnumerateTDs satisfy them by construction, since they come from a
// variable-elimination schedule.
type TD []Subset

// canonKey returns a order-independent identity for a TD, used to
// collapse duplicate TDs produced by distinct permutations.
func canonKey(td TD) string {
	sorted := append(TD(nil), td...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	for i, s := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(s), 36))
	}
	return b.String()
}

// eliminate runs the variable-elimination procedure of one vertex
// ordering against edge set E, returning the resulting bag set as a
// TD (duplicate bags within one ordering collapse into a single map
// entry; the caller dedupes whole TDs across orderings).
func eliminate(edges []Subset, order []int) TD {
	working := append([]Subset(nil), edges...)
	bags := map[Subset]struct{}{}

	for _, v := range order {
		var bag Subset
		found := false
		for _, e := range working {
			if e.Has(v) {
				bag = bag.Union(e)
				found = true
			}
		}
		if !found {
			continue
		}
		bags[bag] = struct{}{}

		kept := working[:0:0]
		for _, e := range working {
			if !e.SubsetOf(bag) {
				kept = append(kept, e)
			}
		}

		var unionRemaining Subset
		for _, e := range kept {
			unionRemaining = unionRemaining.Union(e)
		}
		newEdge := bag.Inter(unionRemaining)
		if !newEdge.Empty() {
			kept = append(kept, newEdge)
		}
		working = kept
	}

	td := make(TD, 0, len(bags))
	for b := range bags {
		td = append(td, b)
	}
	return td
}

// EnumerateTDs produces every non-redundant tree decomposition of the
// given edge set: it runs variable elimination over every permutation
// of the vertex index space, collects the distinct resulting TDs, and
// applies TD-level subsumption. It is pure and deterministic in the
// input ordering of the edges' vertex indices; complexity is O(n!) in
// vertex count and dominates for n >= 8.
func EnumerateTDs(edges []Subset, log zerolog.Logger) []TD {
	n := 0
	for _, e := range edges {
		for _, i := range e.Indices() {
			if i+1 > n {
				n = i + 1
			}
		}
	}

	seen := map[string]TD{}
	it := NewPermutationIterator(n)
	count := 0
	for it.HasNext() {
		perm := it.Next()
		td := eliminate(edges, perm)
		key := canonKey(td)
		if _, ok := seen[key]; !ok {
			seen[key] = td
		}
		count++
		if count%10000 == 0 {
			log.Debug().Int("permutations", count).Int("distinct_tds", len(seen)).Msg("enumerating tree decompositions")
		}
	}

	tds := make([]TD, 0, len(seen))
	for _, td := range seen {
		tds = append(tds, td)
	}
	// Deterministic base ordering before subsumption's index-based
	// tie-break: sort by canonical key so the surviving set does not
	// depend on map iteration order.
	sort.Slice(tds, func(i, j int) bool { return canonKey(tds[i]) < canonKey(tds[j]) })

	result := filterSubsumedTDs(tds)
	log.Debug().Int("permutations", count).Int("candidate_tds", len(tds)).Int("surviving_tds", len(result)).Msg("tree decomposition enumeration complete")
	return result
}

// subsumedBy reports whether td1 is subsumed by td2: for every bag b2
// in td2 there exists a bag b1 in td1 with b2 ⊆ b1.
func subsumedBy(td1, td2 TD) bool {
	for _, b2 := range td2 {
		ok := false
		for _, b1 := range td1 {
			if b2.SubsetOf(b1) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// filterSubsumedTDs removes TDs dominated by another: TD[i] is
// removed when subsumedBy(TD[i], TD[j]) holds for some j and TD[j]
// does not also subsume TD[i] back; on mutual subsumption the higher
// list index is removed. Panics with a *errs.LogicError if a
// non-empty input ever yields an empty output, which subsumedBy's
// reflexivity makes impossible absent an implementation bug.
func filterSubsumedTDs(tds []TD) []TD {
	removed := make([]bool, len(tds))
	for i := range tds {
		for j := range tds {
			if i == j {
				continue
			}
			iSubsumedByJ := subsumedBy(tds[i], tds[j])
			if !iSubsumedByJ {
				continue
			}
			jSubsumedByI := subsumedBy(tds[j], tds[i])
			if jSubsumedByI {
				if i > j {
					removed[i] = true
				}
			} else {
				removed[i] = true
			}
		}
	}

	out := make([]TD, 0, len(tds))
	for i, td := range tds {
		if !removed[i] {
			out = append(out, td)
		}
	}
	if len(tds) > 0 && len(out) == 0 {
		// subsumedBy is reflexive, so every TD subsumes itself; the
		// removal rule above can only ever eliminate a TD in favor of
		// another surviving one. A non-empty input producing an empty
		// output means that invariant broke, not that the input had no
		// maximal element.
		panic(errs.NewLogicError("filterSubsumedTDs: removed every candidate from %d non-empty TDs", len(tds)))
	}
	return out
}
