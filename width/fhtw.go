// Package width implements the two width drivers: fractional
// hypertree width (FHTW), a min-over-TDs of max-over-bags of the
// edge-cover LP, and submodular width (SUBW), a max-over-selectors of
// a per-selector entropic LP.
package width

import (
	"math"
	"runtime"
	"sync"

	"github.com/cem-okulmus/hwidth/lib"
	"github.com/cem-okulmus/hwidth/lp"
)

// tol is the tolerance used throughout for width equality comparisons
// and tie-breaks.
const tol = 1e-6

// FractionalHypertreeWidth computes FHTW(H): for each TD, the maximum
// over its bags of the fractional edge cover of that bag (an empty TD
// counts as width 0); then the minimum over TDs, tie-broken toward
// fewer bags.
func FractionalHypertreeWidth[V comparable](h *lib.Hypergraph[V]) (float64, error) {
	tds := h.TDs()
	if len(tds) == 0 {
		return 0, nil
	}

	best := math.Inf(1)
	bestBags := math.MaxInt
	for _, td := range tds {
		w, err := tdWidth(h, td)
		if err != nil {
			return 0, err
		}
		if w < best-tol {
			best, bestBags = w, len(td)
		} else if math.Abs(w-best) <= tol && len(td) < bestBags {
			best, bestBags = w, len(td)
		}
	}
	return best, nil
}

func tdWidth[V comparable](h *lib.Hypergraph[V], td lib.TD) (float64, error) {
	w := 0.0
	for _, bag := range td {
		cover, err := lp.FractionalEdgeCover(h, h.Decode(bag))
		if err != nil {
			return 0, err
		}
		if cover > w {
			w = cover
		}
	}
	return w, nil
}

// ParallelFractionalHypertreeWidth is the concurrent variant of
// FractionalHypertreeWidth: every TD's bag-cover LP is independent and
// pure, so a fixed worker pool sized to GOMAXPROCS can solve them
// concurrently — fixed goroutines draining a shared index channel and
// collecting results over a result channel. Results are identical to
// the sequential driver; only wall-clock time differs.
func ParallelFractionalHypertreeWidth[V comparable](h *lib.Hypergraph[V]) (float64, error) {
	tds := h.TDs()
	if len(tds) == 0 {
		return 0, nil
	}

	type result struct {
		idx int
		w   float64
		err error
	}

	jobs := make(chan int, len(tds))
	results := make(chan result, len(tds))

	numWorkers := runtime.GOMAXPROCS(-1)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				w, err := tdWidth(h, tds[idx])
				results <- result{idx: idx, w: w, err: err}
			}
		}()
	}

	go func() {
		for i := range tds {
			jobs <- i
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	widths := make([]float64, len(tds))
	for r := range results {
		if r.err != nil {
			return 0, r.err
		}
		widths[r.idx] = r.w
	}

	best := math.Inf(1)
	bestBags := math.MaxInt
	for i, w := range widths {
		n := len(tds[i])
		if w < best-tol {
			best, bestBags = w, n
		} else if math.Abs(w-best) <= tol && n < bestBags {
			best, bestBags = w, n
		}
	}
	return best, nil
}
