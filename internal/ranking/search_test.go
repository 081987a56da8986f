package ranking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/types"
)

func idSortedCorpus(t *testing.T, ids []int64) *corpus.Corpus {
	t.Helper()
	c := corpus.New()
	for _, id := range ids {
		require.NoError(t, c.Insert(types.Document{ID: id}))
	}
	SortByID(c)
	return c
}

func TestSearch_AgreementOnPresentIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ids := make([]int64, 0, 64)
	seen := map[int64]bool{}
	for len(ids) < 64 {
		id := int64(rng.Intn(10_000) + 1)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	c := idSortedCorpus(t, ids)

	for _, id := range ids {
		bin, okBin := BinarySearch(c, id)
		interp, okInterp := InterpolationSearch(c, id)
		lin, okLin := LinearSearch(c, id)

		require.True(t, okBin, "binary search missed id %d", id)
		require.True(t, okInterp, "interpolation search missed id %d", id)
		require.True(t, okLin, "linear search missed id %d", id)
		assert.Same(t, bin, interp)
		assert.Same(t, bin, lin)
	}
}

func TestSearch_AgreementOnAbsentIDs(t *testing.T) {
	c := idSortedCorpus(t, []int64{10, 20, 30, 40, 50})

	for _, id := range []int64{1, 15, 35, 999} {
		_, okBin := BinarySearch(c, id)
		_, okInterp := InterpolationSearch(c, id)
		_, okLin := LinearSearch(c, id)
		assert.False(t, okBin, "binary search found absent id %d", id)
		assert.False(t, okInterp, "interpolation search found absent id %d", id)
		assert.False(t, okLin, "linear search found absent id %d", id)
	}
}

func TestSearch_SingleElement(t *testing.T) {
	c := idSortedCorpus(t, []int64{7})

	doc, ok := InterpolationSearch(c, 7)
	require.True(t, ok)
	assert.Equal(t, int64(7), doc.ID)

	_, ok = InterpolationSearch(c, 8)
	assert.False(t, ok)

	_, ok = BinarySearch(c, 8)
	assert.False(t, ok)
}

func TestSearch_EmptyCorpus(t *testing.T) {
	c := corpus.New()

	_, ok := BinarySearch(c, 1)
	assert.False(t, ok)
	_, ok = InterpolationSearch(c, 1)
	assert.False(t, ok)
	_, ok = LinearSearch(c, 1)
	assert.False(t, ok)
}

func TestInterpolationSearch_SkewedDistribution(t *testing.T) {
	// Clustered ids plus one far outlier push the interpolation probe hard
	// toward one boundary; the narrowing loop must still terminate and agree
	// with binary search.
	ids := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 1_000_000}
	c := idSortedCorpus(t, ids)

	for _, id := range ids {
		doc, ok := InterpolationSearch(c, id)
		require.True(t, ok, "id %d", id)
		assert.Equal(t, id, doc.ID)
	}

	_, ok := InterpolationSearch(c, 500_000)
	assert.False(t, ok)
}

func TestLinearSearch_UnsortedCorpus(t *testing.T) {
	// Linear search must not depend on order.
	c := corpus.New()
	for _, id := range []int64{30, 10, 20} {
		require.NoError(t, c.Insert(types.Document{ID: id}))
	}

	doc, ok := LinearSearch(c, 10)
	require.True(t, ok)
	assert.Equal(t, int64(10), doc.ID)
}
