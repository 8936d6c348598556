package evict

import (
	"fmt"

	set "github.com/deckarep/golang-set"
)

// PageSet is the ordered snapshot handed to the selectors. Insertion order
// only matters to Second-Chance, which uses it as the stable tie-break on
// equal load times.
type PageSet struct {
	pages []Page
}

// NewPageSet copies pages into a new set. Ids must be unique. An empty set is
// accepted here; every selector rejects it with ErrEmptyInput.
func NewPageSet(pages ...Page) (*PageSet, error) {
	seen := set.NewThreadUnsafeSet()
	for _, p := range pages {
		if !seen.Add(p.ID()) {
			return nil, newConstructionError(opNewPageSet, fmt.Sprintf("duplicate page id %d", p.ID()))
		}
	}
	cp := make([]Page, len(pages))
	copy(cp, pages)
	return &PageSet{pages: cp}, nil
}

func (s *PageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pages)
}

func (s *PageSet) At(i int) Page { return s.pages[i] }

// Pages returns a copy of the pages in insertion order.
func (s *PageSet) Pages() []Page {
	if s == nil {
		return nil
	}
	cp := make([]Page, len(s.pages))
	copy(cp, s.pages)
	return cp
}

// Lookup returns the page with the given id.
func (s *PageSet) Lookup(id int) (Page, bool) {
	for _, p := range s.Pages() {
		if p.ID() == id {
			return p, true
		}
	}
	return Page{}, false
}
