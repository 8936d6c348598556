// Package dataset builds the page sets fed to the eviction engine: the
// classic four page table, or pages with random attributes.
package dataset

import (
	"fmt"

	"evict"
)

// Static returns the reference table.
//
//	page  load  last ref  M  R
//	0     126   280       1  0
//	1     230   265       0  1
//	2     140   270       0  0
//	3     110   285       1  1
func Static() (*evict.PageSet, error) {
	rows := []struct {
		load, ref int
		m, r      bool
	}{
		{126, 280, true, false},
		{230, 265, false, true},
		{140, 270, false, false},
		{110, 285, true, true},
	}
	pages := make([]evict.Page, 0, len(rows))
	for id, row := range rows {
		p, err := evict.NewPage(id, row.load, row.ref, row.m, row.r)
		if err != nil {
			return nil, fmt.Errorf("static page %d: %w", id, err)
		}
		pages = append(pages, p)
	}
	return evict.NewPageSet(pages...)
}

// Rand is what Generate draws from. *rand.Rand from golang.org/x/exp/rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generator draws load times from [LoadMin, LoadMax] and last reference
// times from [RefMin, RefMax], both inclusive. The reference range sits
// above the load range so every page is referenced after it is loaded.
type Generator struct {
	LoadMin, LoadMax int
	RefMin, RefMax   int
}

func DefaultGenerator() Generator {
	return Generator{
		LoadMin: 1,
		LoadMax: 500,
		RefMin:  501,
		RefMax:  1000,
	}
}

func (g Generator) Validate() error {
	switch {
	case g.LoadMin < 0 || g.RefMin < 0:
		return fmt.Errorf("ranges must be non-negative, got load %d..%d, reference %d..%d", g.LoadMin, g.LoadMax, g.RefMin, g.RefMax)
	case g.LoadMin > g.LoadMax:
		return fmt.Errorf("empty load range %d..%d", g.LoadMin, g.LoadMax)
	case g.RefMin > g.RefMax:
		return fmt.Errorf("empty reference range %d..%d", g.RefMin, g.RefMax)
	case g.RefMin <= g.LoadMax:
		return fmt.Errorf("reference range %d..%d must start above load range %d..%d", g.RefMin, g.RefMax, g.LoadMin, g.LoadMax)
	}
	return nil
}

// Generate builds n pages with ids 0..n-1.
func (g Generator) Generate(r Rand, n int) (*evict.PageSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("page count must be positive, got %d", n)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	pages := make([]evict.Page, 0, n)
	for id := 0; id < n; id++ {
		load := g.LoadMin + r.Intn(g.LoadMax-g.LoadMin+1)
		ref := g.RefMin + r.Intn(g.RefMax-g.RefMin+1)
		modified := r.Intn(2) == 1
		referenced := r.Intn(2) == 1
		p, err := evict.NewPage(id, load, ref, modified, referenced)
		if err != nil {
			return nil, fmt.Errorf("random page %d: %w", id, err)
		}
		pages = append(pages, p)
	}
	return evict.NewPageSet(pages...)
}
