package ranking

import (
	"sort"

	"github.com/jonathan/skillmatch/internal/types"
)

// TopK returns the k highest-scoring results, ordered descending. When
// k >= len(results) every result comes back fully sorted; k <= 0 yields an
// empty slice. The input is not modified.
//
// A bounded min-heap keeps the partial sort at O(n + k log k) instead of
// sorting all n results when k is small.
func TopK(results []types.MatchResult, k int) []types.MatchResult {
	if k <= 0 || len(results) == 0 {
		return []types.MatchResult{}
	}

	if k >= len(results) {
		out := make([]types.MatchResult, len(results))
		copy(out, results)
		sort.Slice(out, func(i, j int) bool {
			return out[i].OverallScore > out[j].OverallScore
		})
		return out
	}

	// Min-heap of the k best seen so far; the root is the weakest keeper.
	heap := make([]types.MatchResult, 0, k)
	for _, r := range results {
		if len(heap) < k {
			heap = append(heap, r)
			siftUpResult(heap, len(heap)-1)
			continue
		}
		if r.OverallScore > heap[0].OverallScore {
			heap[0] = r
			siftDownResult(heap, 0)
		}
	}

	// Drain the heap into descending order.
	out := make([]types.MatchResult, len(heap))
	for i := len(heap) - 1; i >= 0; i-- {
		out[i] = heap[0]
		last := len(heap) - 1
		heap[0] = heap[last]
		heap = heap[:last]
		siftDownResult(heap, 0)
	}
	return out
}

func siftUpResult(h []types.MatchResult, i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h[parent].OverallScore <= h[i].OverallScore {
			return
		}
		h[parent], h[i] = h[i], h[parent]
		i = parent
	}
}

func siftDownResult(h []types.MatchResult, i int) {
	n := len(h)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if child+1 < n && h[child+1].OverallScore < h[child].OverallScore {
			child++
		}
		if h[i].OverallScore <= h[child].OverallScore {
			return
		}
		h[i], h[child] = h[child], h[i]
		i = child
	}
}
