package ranking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/types"
)

func corpusWithScores(t *testing.T, scores []float64) *corpus.Corpus {
	t.Helper()
	c := corpus.New()
	for i, score := range scores {
		require.NoError(t, c.Insert(types.Document{ID: int64(i + 1), Score: score}))
	}
	return c
}

func assertDescendingScores(t *testing.T, c *corpus.Corpus) {
	t.Helper()
	for i := 0; i+1 < c.Count(); i++ {
		assert.GreaterOrEqual(t, c.Store().At(i).Score, c.Store().At(i+1).Score,
			"adjacent pair %d,%d out of order", i, i+1)
	}
}

func TestSortByScore_SmallRange(t *testing.T) {
	// Below the insertion-sort threshold.
	c := corpusWithScores(t, []float64{0.2, 0.9, 0.1, 0.5, 0.7})

	SortByScore(c)

	assertDescendingScores(t, c)
	assert.Equal(t, 0.9, c.Store().At(0).Score)
}

func TestSortByScore_LargeRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	scores := make([]float64, 500)
	for i := range scores {
		scores[i] = rng.Float64()
	}
	c := corpusWithScores(t, scores)

	SortByScore(c)

	assertDescendingScores(t, c)
}

func TestSortByScore_ManyTies(t *testing.T) {
	// Heavy duplication exercises the 3-way partition.
	scores := make([]float64, 200)
	for i := range scores {
		scores[i] = float64(i % 3)
	}
	c := corpusWithScores(t, scores)

	SortByScore(c)

	assertDescendingScores(t, c)
}

func TestSortByScore_AlreadySorted(t *testing.T) {
	// Sorted input is a classic quicksort worst case; median-of-three and the
	// depth budget must keep it correct.
	scores := make([]float64, 300)
	for i := range scores {
		scores[i] = float64(len(scores) - i)
	}
	c := corpusWithScores(t, scores)

	SortByScore(c)

	assertDescendingScores(t, c)
}

func TestSortByID_Ascending(t *testing.T) {
	c := corpus.New()
	ids := []int64{42, 7, 100, 3, 55, 19, 81, 2, 64, 33, 91, 11, 28, 76, 5, 48, 60, 15, 37, 99}
	for _, id := range ids {
		require.NoError(t, c.Insert(types.Document{ID: id}))
	}

	SortByID(c)

	for i := 0; i+1 < c.Count(); i++ {
		assert.Less(t, c.Store().At(i).ID, c.Store().At(i+1).ID)
	}
}

func TestSort_ReindexKeepsLookupsConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := corpus.New()
	for id := int64(1); id <= 100; id++ {
		require.NoError(t, c.Insert(types.Document{ID: id, Score: rng.Float64()}))
	}

	SortByScore(c)
	for id := int64(1); id <= 100; id++ {
		doc, ok := c.GetByID(id)
		require.True(t, ok)
		assert.Equal(t, id, doc.ID)
	}

	SortByID(c)
	for id := int64(1); id <= 100; id++ {
		i, ok := c.IndexOf(id)
		require.True(t, ok)
		assert.Equal(t, id, c.Store().At(i).ID)
	}
}

func TestSort_EmptyAndSingle(t *testing.T) {
	empty := corpus.New()
	SortByScore(empty)
	assert.Equal(t, 0, empty.Count())

	single := corpusWithScores(t, []float64{0.5})
	SortByScore(single)
	assert.Equal(t, 1, single.Count())
}
