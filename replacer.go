package evict

import (
	"container/list"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/slices"
)

// Replacer is the running-queue form of a policy: ids enter as they become
// evictable and Victim removes them one at a time.
type Replacer interface {
	// Remove the victim as defined by the replacement policy
	// return evicted id if found
	Victim() (int, bool)

	// id should not be victimized until unpin
	Pin(id int)

	// allow id to be victimized
	Unpin(id int)

	// record an access to id
	Reference(id int)

	// items that can be victimized
	Size() int
}

// CheckQueueModel reports whether p has a queue form. NRU has none.
func CheckQueueModel(p Policy) error {
	switch p {
	case FIFO, LRU, SecondChance:
		return nil
	}
	return &Error{Code: ErrCodeUnknownPolicy, Op: "new-replacer", Message: "no queue model for " + p.String()}
}

// NewReplacer returns an empty replacer for the queue-modelled policies.
// NRU has no queue form.
func NewReplacer(p Policy, capacity int) (Replacer, error) {
	switch p {
	case LRU:
		if capacity <= 0 {
			return nil, newConstructionError("new-replacer", "lru capacity must be positive")
		}
		return NewLRUReplacer(capacity), nil
	case FIFO:
		r := NewClockReplacer()
		r.fifo = true
		return r, nil
	case SecondChance:
		return NewClockReplacer(), nil
	}
	return nil, CheckQueueModel(p)
}

// NewReplacerFromPageSet seeds a replacer with every page of ps.
func NewReplacerFromPageSet(p Policy, ps *PageSet) (Replacer, error) {
	var (
		r   Replacer
		err error
	)
	switch p {
	case LRU:
		var lr *LRUReplacer
		lr, err = NewLRUReplacerFromPageSet(ps)
		r = lr
	case FIFO:
		var cr *ClockReplacer
		cr, err = NewFIFOReplacerFromPageSet(ps)
		r = cr
	case SecondChance:
		var cr *ClockReplacer
		cr, err = NewClockReplacerFromPageSet(ps)
		r = cr
	default:
		return nil, CheckQueueModel(p)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Drain evicts until r is empty and returns the eviction order.
func Drain(r Replacer) []int {
	order := make([]int, 0, r.Size())
	for {
		id, ok := r.Victim()
		if !ok {
			return order
		}
		order = append(order, id)
	}
}

type LRUReplacer struct {
	internal *lru.Cache
}

// NewLRUReplacer panics if capacity is not positive.
func NewLRUReplacer(capacity int) *LRUReplacer {
	c, err := lru.New(capacity)
	if err != nil {
		panic(err)
	}
	return &LRUReplacer{
		internal: c,
	}
}

// NewLRUReplacerFromPageSet unpins the pages oldest reference first, so the
// first victim is the page SelectLRU picks.
func NewLRUReplacerFromPageSet(ps *PageSet) (*LRUReplacer, error) {
	if ps.Len() == 0 {
		return nil, newEmptyInputError(LRU, ps.Len())
	}
	pages := ps.Pages()
	slices.SortStableFunc(pages, func(a, b Page) int {
		return a.LastReference() - b.LastReference()
	})
	r := NewLRUReplacer(len(pages))
	for _, p := range pages {
		r.Unpin(p.ID())
	}
	return r, nil
}

func (r *LRUReplacer) Pin(id int) {
	r.internal.Remove(id)
}

func (r *LRUReplacer) Victim() (int, bool) {
	key, _, ok := r.internal.RemoveOldest()
	if !ok {
		return 0, false
	}
	return key.(int), ok
}

func (r *LRUReplacer) Unpin(id int) {
	r.internal.ContainsOrAdd(id, struct{}{})
}

// Reference moves id to the most recently used end if it is evictable.
func (r *LRUReplacer) Reference(id int) {
	r.internal.Get(id)
}

func (r *LRUReplacer) Size() int { return r.internal.Len() }

type clockEntry struct {
	id         int
	referenced bool
}

// ClockReplacer is the second-chance queue. Victim inspects the front: a set
// reference bit is cleared and the entry moves to the back, a clear bit is
// evicted. The front of the queue is the clock hand.
type ClockReplacer struct {
	queue   *list.List
	entries map[int]*list.Element
	// give no second chances; the replacer degrades to plain FIFO
	fifo bool
}

func NewClockReplacer() *ClockReplacer {
	return &ClockReplacer{
		queue:   list.New(),
		entries: map[int]*list.Element{},
	}
}

// NewClockReplacerFromPageSet enqueues the pages in load order with their
// reference bits, so the first victim is the page SelectSecondChance picks.
func NewClockReplacerFromPageSet(ps *PageSet) (*ClockReplacer, error) {
	if ps.Len() == 0 {
		return nil, newEmptyInputError(SecondChance, ps.Len())
	}
	r := NewClockReplacer()
	for _, p := range byLoadTime(ps) {
		r.push(p.ID(), p.Referenced())
	}
	return r, nil
}

// NewFIFOReplacerFromPageSet is a clock queue that ignores reference bits.
func NewFIFOReplacerFromPageSet(ps *PageSet) (*ClockReplacer, error) {
	if ps.Len() == 0 {
		return nil, newEmptyInputError(FIFO, ps.Len())
	}
	r := NewClockReplacer()
	r.fifo = true
	for _, p := range byLoadTime(ps) {
		r.push(p.ID(), false)
	}
	return r, nil
}

func (r *ClockReplacer) push(id int, referenced bool) {
	r.entries[id] = r.queue.PushBack(&clockEntry{id: id, referenced: referenced})
}

func (r *ClockReplacer) Victim() (int, bool) {
	// every entry is visited at most twice: once to clear, once to evict
	for r.queue.Len() > 0 {
		front := r.queue.Front()
		entry := front.Value.(*clockEntry)
		if entry.referenced && !r.fifo {
			entry.referenced = false
			r.queue.MoveToBack(front)
			continue
		}
		r.queue.Remove(front)
		delete(r.entries, entry.id)
		return entry.id, true
	}
	return 0, false
}

func (r *ClockReplacer) Pin(id int) {
	if elem, ok := r.entries[id]; ok {
		r.queue.Remove(elem)
		delete(r.entries, id)
	}
}

// Unpin enqueues id at the back with its reference bit set. An id already in
// the queue keeps its position.
func (r *ClockReplacer) Unpin(id int) {
	if _, ok := r.entries[id]; ok {
		return
	}
	r.push(id, true)
}

func (r *ClockReplacer) Reference(id int) {
	if elem, ok := r.entries[id]; ok {
		elem.Value.(*clockEntry).referenced = true
	}
}

func (r *ClockReplacer) Size() int { return r.queue.Len() }
