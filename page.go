package evict

import "fmt"

// Class is the NRU priority tier of a page. Lower classes are evicted first.
type Class int

const (
	ClassClean Class = iota // not referenced, not modified
	ClassDirty              // not referenced, modified
	ClassReferenced         // referenced, not modified
	ClassHot                // referenced, modified
)

func classOf(referenced, modified bool) Class {
	c := 0
	if referenced {
		c += 2
	}
	if modified {
		c++
	}
	return Class(c)
}

func (c Class) String() string {
	switch c {
	case ClassClean:
		return "class 0 (R=0, M=0)"
	case ClassDirty:
		return "class 1 (R=0, M=1)"
	case ClassReferenced:
		return "class 2 (R=1, M=0)"
	case ClassHot:
		return "class 3 (R=1, M=1)"
	}
	return fmt.Sprintf("class %d", int(c))
}

// Page is a snapshot of one resident page. It is a value type and has no
// setters, so a Page never changes after NewPage returns it.
type Page struct {
	id         int
	loadTime   int
	lastRef    int
	modified   bool
	referenced bool
	class      Class
}

// NewPage validates the attributes and derives the NRU class.
func NewPage(id, loadTime, lastReference int, modified, referenced bool) (Page, error) {
	switch {
	case id < 0:
		return Page{}, newConstructionError(opNewPage, fmt.Sprintf("negative page id %d", id))
	case loadTime < 0:
		return Page{}, newConstructionError(opNewPage, fmt.Sprintf("page %d: negative load time %d", id, loadTime))
	case lastReference < 0:
		return Page{}, newConstructionError(opNewPage, fmt.Sprintf("page %d: negative last reference time %d", id, lastReference))
	}
	return Page{
		id:         id,
		loadTime:   loadTime,
		lastRef:    lastReference,
		modified:   modified,
		referenced: referenced,
		class:      classOf(referenced, modified),
	}, nil
}

func (p Page) ID() int            { return p.id }
func (p Page) LoadTime() int      { return p.loadTime }
func (p Page) LastReference() int { return p.lastRef }
func (p Page) Modified() bool     { return p.modified }
func (p Page) Referenced() bool   { return p.referenced }
func (p Page) Class() Class       { return p.class }

func (p Page) String() string {
	return fmt.Sprintf("page %d (load=%d, ref=%d, M=%t, R=%t)", p.id, p.loadTime, p.lastRef, p.modified, p.referenced)
}
