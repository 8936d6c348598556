package evict

import (
	"golang.org/x/exp/slices"
)

// Rand is the random source used for NRU's tie-break. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
//
//go:generate mockgen -source selector.go -destination selector_mocks.go -package evict
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// LowestClass returns the smallest NRU class present in ps.
func LowestClass(ps *PageSet) (Class, error) {
	if ps.Len() == 0 {
		return 0, newEmptyInputError(NRU, ps.Len())
	}
	lowest := ClassHot
	for _, p := range ps.pages {
		if p.Class() < lowest {
			lowest = p.Class()
		}
	}
	return lowest, nil
}

// SelectNRU picks uniformly at random among the pages of the lowest class.
// r is only consulted when more than one page shares that class.
func SelectNRU(ps *PageSet, r Rand) (Result, error) {
	lowest, err := LowestClass(ps)
	if err != nil {
		return Result{}, err
	}
	candidates := make([]Page, 0, ps.Len())
	for _, p := range ps.pages {
		if p.Class() == lowest {
			candidates = append(candidates, p)
		}
	}
	chosen := candidates[0]
	if len(candidates) > 1 {
		chosen = candidates[r.Intn(len(candidates))]
	}
	return Result{Policy: NRU, Page: chosen, Class: lowest}, nil
}

// SelectFIFO picks the earliest loaded page.
func SelectFIFO(ps *PageSet) (Result, error) {
	if ps.Len() == 0 {
		return Result{}, newEmptyInputError(FIFO, ps.Len())
	}
	queue := byLoadTime(ps)
	return Result{Policy: FIFO, Page: queue[0], Class: queue[0].Class()}, nil
}

// SelectLRU picks the page with the oldest last reference.
func SelectLRU(ps *PageSet) (Result, error) {
	if ps.Len() == 0 {
		return Result{}, newEmptyInputError(LRU, ps.Len())
	}
	pages := ps.Pages()
	slices.SortStableFunc(pages, func(a, b Page) int {
		return a.LastReference() - b.LastReference()
	})
	return Result{Policy: LRU, Page: pages[0], Class: pages[0].Class()}, nil
}

// SelectSecondChance walks the load-ordered queue and picks the first page
// whose reference bit is clear. Skipped pages would have their bit cleared
// and be moved to the back; if all of them are skipped the queue wraps and
// the original front is evicted. Nothing in ps is modified.
func SelectSecondChance(ps *PageSet) (Result, error) {
	if ps.Len() == 0 {
		return Result{}, newEmptyInputError(SecondChance, ps.Len())
	}
	queue := byLoadTime(ps)
	for _, p := range queue {
		if !p.Referenced() {
			return Result{Policy: SecondChance, Page: p, Class: p.Class()}, nil
		}
	}
	return Result{Policy: SecondChance, Page: queue[0], Class: queue[0].Class(), Fallback: true}, nil
}

// byLoadTime returns a copy of the pages in FIFO queue order, stable on ties.
func byLoadTime(ps *PageSet) []Page {
	pages := ps.Pages()
	slices.SortStableFunc(pages, func(a, b Page) int {
		return a.LoadTime() - b.LoadTime()
	})
	return pages
}
