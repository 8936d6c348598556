package evict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReplacer(t *testing.T, r Replacer) {
	r.Unpin(1)
	r.Unpin(2)
	r.Unpin(3)
	r.Unpin(4)
	r.Unpin(5)
	r.Unpin(6)
	r.Unpin(1)
	assert.Equal(t, 6, r.Size())

	var (
		evicted int
		ok      bool
	)
	evicted, ok = r.Victim()
	assert.True(t, ok)
	assert.Equal(t, 1, evicted)

	evicted, ok = r.Victim()
	assert.True(t, ok)
	assert.Equal(t, 2, evicted)

	evicted, ok = r.Victim()
	assert.True(t, ok)
	assert.Equal(t, 3, evicted)

	r.Pin(3)
	r.Pin(4)

	assert.Equal(t, 2, r.Size())

	r.Unpin(4)

	evicted, ok = r.Victim()
	assert.True(t, ok)
	assert.Equal(t, 5, evicted)

	evicted, ok = r.Victim()
	assert.True(t, ok)
	assert.Equal(t, 6, evicted)

	evicted, ok = r.Victim()
	assert.True(t, ok)
	assert.Equal(t, 4, evicted)

	_, ok = r.Victim()
	assert.False(t, ok)
}

func Test_LRUReplacer(t *testing.T) {
	r := NewLRUReplacer(7)
	testReplacer(t, r)
}

func Test_ClockReplacer(t *testing.T) {
	r := NewClockReplacer()
	testReplacer(t, r)
}

func Test_FIFOReplacer(t *testing.T) {
	r, err := NewReplacer(FIFO, 0)
	require.NoError(t, err)
	testReplacer(t, r)
}

func Test_LRUReplacerReference(t *testing.T) {
	r := NewLRUReplacer(3)
	r.Unpin(1)
	r.Unpin(2)
	r.Unpin(3)
	r.Reference(1)
	assert.Equal(t, []int{2, 3, 1}, Drain(r))
}

func Test_ClockReplacerReference(t *testing.T) {
	r := NewClockReplacer()
	r.push(1, false)
	r.push(2, false)
	r.push(3, false)
	r.Reference(1)
	// 1 gets its second chance and goes behind 3
	assert.Equal(t, []int{2, 3, 1}, Drain(r))
}

func Test_ReplacerFirstVictimMatchesSelector(t *testing.T) {
	ps := fixture(t)
	for _, tc := range []struct {
		policy Policy
		expect int
		order  []int
	}{
		{policy: FIFO, expect: 3, order: []int{3, 0, 2, 1}},
		{policy: LRU, expect: 1, order: []int{1, 2, 0, 3}},
		// 3 is referenced and rotates behind 1, 1 is referenced and rotates behind 3
		{policy: SecondChance, expect: 0, order: []int{0, 2, 3, 1}},
	} {
		t.Run(tc.policy.String(), func(t *testing.T) {
			r, err := NewReplacerFromPageSet(tc.policy, ps)
			require.NoError(t, err)
			assert.Equal(t, ps.Len(), r.Size())
			order := Drain(r)
			assert.Equal(t, tc.order, order)

			res, err := NewEngine().Select(tc.policy, ps)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, res.Page.ID())
			assert.Equal(t, order[0], res.Page.ID())
		})
	}
}

func Test_ClockReplacerAllReferencedWraps(t *testing.T) {
	ps := pageSet(t,
		mustPage(t, 0, 30, 600, false, true),
		mustPage(t, 1, 10, 700, true, true),
		mustPage(t, 2, 20, 800, false, true),
	)
	r, err := NewClockReplacerFromPageSet(ps)
	require.NoError(t, err)
	id, ok := r.Victim()
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, r.Size())
}

func Test_CheckQueueModel(t *testing.T) {
	for _, p := range []Policy{FIFO, LRU, SecondChance} {
		assert.NoError(t, CheckQueueModel(p))
	}
	err := CheckQueueModel(NRU)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Contains(t, err.Error(), "no queue model for nru")
}

func Test_ReplacerRejectsEmptyAndNRU(t *testing.T) {
	empty := pageSet(t)
	for _, p := range []Policy{FIFO, LRU, SecondChance} {
		_, err := NewReplacerFromPageSet(p, empty)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
	_, err := NewReplacerFromPageSet(NRU, empty)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	_, err = NewReplacer(NRU, 4)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	_, err = NewReplacer(LRU, 0)
	assert.ErrorIs(t, err, ErrConstruction)
}
