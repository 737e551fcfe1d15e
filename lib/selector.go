package lib

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cem-okulmus/hwidth/errs"
)

// Selector is an unordered collection of bags, one per underlying TD
// after bag-level filtering: conceptually a choice function over the
// TD list, but stored only as the resulting set of bags, not the
// source-TD assignment.
type Selector []Subset

func selectorKey(s Selector) string {
	sorted := append(Selector(nil), s...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	for i, x := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(x), 36))
	}
	return b.String()
}

// bagFilter removes any bag strictly containing another bag of the
// same selector. On exact duplicates the later-indexed one is
// dropped. This is required separately from selector-level
// subsumption: the SUBW objective is a max-of-min over a selector's
// bags, and a strict superset bag can only weaken that min, so
// keeping it around would both waste LP constraints and (if left
// unfiltered) corrupt selector-level subsumption's own direction.
func bagFilter(s Selector) Selector {
	keep := make([]bool, len(s))
	for i := range s {
		keep[i] = true
	}
	for i := range s {
		for j := range s {
			if i == j || !keep[i] || !keep[j] {
				continue
			}
			if s[j].SubsetOf(s[i]) && s[i] != s[j] {
				keep[i] = false
			} else if s[i] == s[j] && j < i {
				keep[i] = false
			}
		}
	}
	out := make(Selector, 0, len(s))
	for i, b := range s {
		if keep[i] {
			out = append(out, b)
		}
	}
	return out
}

// selectorSubsumedBy reports whether s1 is subsumed by s2 in the
// selector sense: for every bag b2 in s2 there is a bag b1 in s1 with
// b1 ⊆ b2. Note the containment direction is the mirror image of TD
// subsumption (the smaller bag dominates here), because SUBW is a
// max-of-min rather than a min-of-max.
func selectorSubsumedBy(s1, s2 Selector) bool {
	for _, b2 := range s2 {
		ok := false
		for _, b1 := range s1 {
			if b1.SubsetOf(b2) {
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

// filterSubsumedSelectors removes selectors dominated by another,
// mirroring filterSubsumedTDs: selector[i] is removed when it is
// subsumed by selector[j] and selector[j] does not also subsume it
// back; on mutual subsumption the higher index is removed. Panics
// with a *errs.LogicError on the same non-empty-in/empty-out
// impossibility filterSubsumedTDs guards against.
func filterSubsumedSelectors(sels []Selector) []Selector {
	removed := make([]bool, len(sels))
	for i := range sels {
		for j := range sels {
			if i == j {
				continue
			}
			iSubsumedByJ := selectorSubsumedBy(sels[i], sels[j])
			if !iSubsumedByJ {
				continue
			}
			jSubsumedByI := selectorSubsumedBy(sels[j], sels[i])
			if jSubsumedByI {
				if i > j {
					removed[i] = true
				}
			} else {
				removed[i] = true
			}
		}
	}

	out := make([]Selector, 0, len(sels))
	for i, s := range sels {
		if !removed[i] {
			out = append(out, s)
		}
	}
	if len(sels) > 0 && len(out) == 0 {
		// Mirrors the invariant guarded in filterSubsumedTDs: selectorSubsumedBy
		// is reflexive, so a non-empty input always has a surviving maximal
		// element.
		panic(errs.NewLogicError("filterSubsumedSelectors: removed every candidate from %d non-empty selectors", len(sels)))
	}
	return out
}

// EnumerateSelectors builds the set of selectors over tds — one bag
// chosen from each TD — modulo bag-level and selector-level
// subsumption, incrementally: extending the running selector list by
// one TD at a time and pruning after each extension keeps the count
// tractable, where the raw cross-product would blow up exponentially.
func EnumerateSelectors(tds []TD, log zerolog.Logger) []Selector {
	if len(tds) == 0 {
		return nil
	}

	sels := make([]Selector, 0, len(tds[0]))
	for _, b := range tds[0] {
		sels = append(sels, Selector{b})
	}
	sels = dedupeSelectors(bagFilterAll(sels))

	for i := 1; i < len(tds); i++ {
		var extended []Selector
		for _, s := range sels {
			for _, b := range tds[i] {
				ns := make(Selector, len(s), len(s)+1)
				copy(ns, s)
				ns = append(ns, b)
				extended = append(extended, bagFilter(ns))
			}
		}
		extended = dedupeSelectors(extended)
		sels = filterSubsumedSelectors(extended)
		log.Debug().Int("td_index", i).Int("selectors", len(sels)).Msg("extending selectors")
	}

	return sels
}

func bagFilterAll(sels []Selector) []Selector {
	out := make([]Selector, len(sels))
	for i, s := range sels {
		out[i] = bagFilter(s)
	}
	return out
}

func dedupeSelectors(sels []Selector) []Selector {
	seen := map[string]Selector{}
	order := make([]string, 0, len(sels))
	for _, s := range sels {
		k := selectorKey(s)
		if _, ok := seen[k]; !ok {
			seen[k] = s
			order = append(order, k)
		}
	}
	out := make([]Selector, 0, len(order))
	for _, k := range order {
		out = append(out, seen[k])
	}
	return out
}
