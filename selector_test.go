package evict

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func Test_FixtureSelections(t *testing.T) {
	ps := fixture(t)

	lowest, err := LowestClass(ps)
	require.NoError(t, err)
	assert.Equal(t, ClassClean, lowest)

	nru, err := SelectNRU(ps, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 2, nru.Page.ID())
	assert.Equal(t, ClassClean, nru.Class)

	fifo, err := SelectFIFO(ps)
	require.NoError(t, err)
	assert.Equal(t, 3, fifo.Page.ID())

	lru, err := SelectLRU(ps)
	require.NoError(t, err)
	assert.Equal(t, 1, lru.Page.ID())

	sc, err := SelectSecondChance(ps)
	require.NoError(t, err)
	assert.Equal(t, 0, sc.Page.ID())
	assert.False(t, sc.Fallback)

	// outside NRU the class is the chosen page's own
	assert.Equal(t, ClassHot, fifo.Class)
	assert.Equal(t, ClassReferenced, lru.Class)
	assert.Equal(t, ClassDirty, sc.Class)
}

func Test_SelectorsRejectEmpty(t *testing.T) {
	empty := pageSet(t)
	_, err := LowestClass(empty)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = SelectNRU(empty, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = SelectFIFO(empty)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = SelectLRU(empty)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = SelectSecondChance(empty)
	assert.ErrorIs(t, err, ErrEmptyInput)

	var nilSet *PageSet
	_, err = SelectFIFO(nilSet)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func Test_EmptyInputErrorCarriesContext(t *testing.T) {
	empty := pageSet(t)
	for _, tc := range []struct {
		op  string
		sel func(*PageSet) (Result, error)
	}{
		{"fifo", SelectFIFO},
		{"lru", SelectLRU},
		{"second-chance", SelectSecondChance},
	} {
		_, err := tc.sel(empty)
		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, tc.op, e.Op)
		assert.Equal(t, empty.Len(), e.Size)
		assert.Equal(t, tc.op+": no page to evict (size 0)", e.Error())
	}
}

func Test_SinglePage(t *testing.T) {
	ps := pageSet(t, mustPage(t, 5, 10, 700, true, true))
	ctrl := gomock.NewController(t)
	// a single candidate never consults the random source
	r := NewMockRand(ctrl)

	nru, err := SelectNRU(ps, r)
	require.NoError(t, err)
	assert.Equal(t, 5, nru.Page.ID())
	assert.Equal(t, ClassHot, nru.Class)

	for _, sel := range []func(*PageSet) (Result, error){SelectFIFO, SelectLRU, SelectSecondChance} {
		res, err := sel(ps)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Page.ID())
	}
}

func Test_NRUDrawsAmongLowestClass(t *testing.T) {
	ps := pageSet(t,
		mustPage(t, 0, 10, 600, true, false),
		mustPage(t, 1, 20, 610, false, true),
		mustPage(t, 2, 30, 620, true, false),
		mustPage(t, 3, 40, 630, true, true),
		mustPage(t, 4, 50, 640, true, false),
	)
	ctrl := gomock.NewController(t)
	r := NewMockRand(ctrl)
	// candidates are 0, 2, 4 in insertion order
	r.EXPECT().Intn(3).Return(2)

	res, err := SelectNRU(ps, r)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Page.ID())
	assert.Equal(t, ClassDirty, res.Class)
}

func Test_NRUAlwaysInLowestClass(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	seen := map[int]bool{}
	ps := pageSet(t,
		mustPage(t, 0, 10, 600, false, false),
		mustPage(t, 1, 20, 610, false, false),
		mustPage(t, 2, 30, 620, true, false),
		mustPage(t, 3, 40, 630, false, false),
	)
	for i := 0; i < 200; i++ {
		res, err := SelectNRU(ps, src)
		require.NoError(t, err)
		assert.Equal(t, ClassClean, res.Page.Class())
		seen[res.Page.ID()] = true
	}
	assert.False(t, seen[2])
	assert.Len(t, seen, 3)
}

func Test_NRUSeedIsReproducible(t *testing.T) {
	ps := pageSet(t,
		mustPage(t, 0, 10, 600, false, false),
		mustPage(t, 1, 20, 610, false, false),
		mustPage(t, 2, 30, 620, false, false),
	)
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		ra, err := SelectNRU(ps, a)
		require.NoError(t, err)
		rb, err := SelectNRU(ps, b)
		require.NoError(t, err)
		assert.Equal(t, ra.Page.ID(), rb.Page.ID())
	}
}

func Test_StableTieBreak(t *testing.T) {
	ps := pageSet(t,
		mustPage(t, 4, 50, 700, false, true),
		mustPage(t, 1, 20, 700, false, true),
		mustPage(t, 2, 20, 700, false, true),
	)
	fifo, err := SelectFIFO(ps)
	require.NoError(t, err)
	assert.Equal(t, 1, fifo.Page.ID())

	lru, err := SelectLRU(ps)
	require.NoError(t, err)
	assert.Equal(t, 4, lru.Page.ID())

	sc, err := SelectSecondChance(ps)
	require.NoError(t, err)
	assert.Equal(t, 1, sc.Page.ID())
	assert.True(t, sc.Fallback)
}

func Test_SecondChanceFallback(t *testing.T) {
	ps := pageSet(t,
		mustPage(t, 0, 300, 900, true, true),
		mustPage(t, 1, 100, 800, false, true),
		mustPage(t, 2, 200, 700, true, true),
	)
	res, err := SelectSecondChance(ps)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page.ID())
	assert.True(t, res.Fallback)
}

func Test_DeterministicSelectorsAreIdempotent(t *testing.T) {
	ps := fixture(t)
	before := ps.Pages()
	for _, sel := range []func(*PageSet) (Result, error){SelectFIFO, SelectLRU, SelectSecondChance} {
		first, err := sel(ps)
		require.NoError(t, err)
		second, err := sel(ps)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
	assert.Equal(t, before, ps.Pages())
}
