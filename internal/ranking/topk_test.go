package ranking

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func resultsWithScores(scores ...float64) []types.MatchResult {
	out := make([]types.MatchResult, len(scores))
	for i, s := range scores {
		out[i] = types.MatchResult{JobID: int64(i + 1), ResumeID: 1, OverallScore: s}
	}
	return out
}

func TestTopK_PartialSelection(t *testing.T) {
	results := resultsWithScores(0.1, 0.9, 0.3, 0.7, 0.5)

	top := TopK(results, 2)

	require.Len(t, top, 2)
	assert.Equal(t, 0.9, top[0].OverallScore)
	assert.Equal(t, 0.7, top[1].OverallScore)
}

func TestTopK_KAtLeastN(t *testing.T) {
	results := resultsWithScores(0.1, 0.9, 0.3)

	top := TopK(results, 10)

	require.Len(t, top, 3)
	assert.Equal(t, []float64{0.9, 0.3, 0.1},
		[]float64{top[0].OverallScore, top[1].OverallScore, top[2].OverallScore})
}

func TestTopK_NonPositiveK(t *testing.T) {
	results := resultsWithScores(0.5)

	assert.Empty(t, TopK(results, 0))
	assert.Empty(t, TopK(results, -1))
}

func TestTopK_EmptyInput(t *testing.T) {
	assert.Empty(t, TopK(nil, 5))
	assert.Empty(t, TopK([]types.MatchResult{}, 5))
}

func TestTopK_DoesNotMutateInput(t *testing.T) {
	results := resultsWithScores(0.1, 0.9, 0.3)
	before := make([]types.MatchResult, len(results))
	copy(before, results)

	TopK(results, 2)

	assert.Equal(t, before, results)
}

func TestTopK_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	scores := make([]float64, 200)
	for i := range scores {
		scores[i] = rng.Float64()
	}
	results := resultsWithScores(scores...)

	want := make([]float64, len(scores))
	copy(want, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(want)))

	for _, k := range []int{1, 7, 50, 199} {
		top := TopK(results, k)
		require.Len(t, top, k)
		for i := 0; i < k; i++ {
			assert.InDelta(t, want[i], top[i].OverallScore, 1e-12, "k=%d position %d", k, i)
		}
	}
}
