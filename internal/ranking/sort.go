// Package ranking provides the in-place hybrid sort, the id searches, and
// top-K retrieval over a corpus's backing store.
package ranking

import (
	"math"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/store"
	"github.com/jonathan/skillmatch/internal/types"
)

// insertionThreshold is the subrange size below which insertion sort takes
// over from quicksort.
const insertionThreshold = 16

// lessFunc reports whether a must be ordered before b.
type lessFunc func(a, b *types.Document) bool

// SortByScore orders the corpus by score, descending, in place. Equal scores
// keep no guaranteed relative order. The id index is rebuilt afterwards.
func SortByScore(c *corpus.Corpus) {
	sortCorpus(c, func(a, b *types.Document) bool { return a.Score > b.Score })
}

// SortByID orders the corpus by id, ascending, in place. This is the
// required pre-pass for BinarySearch and InterpolationSearch.
func SortByID(c *corpus.Corpus) {
	sortCorpus(c, func(a, b *types.Document) bool { return a.ID < b.ID })
}

func sortCorpus(c *corpus.Corpus, less lessFunc) {
	n := c.Count()
	if n > 1 {
		depth := 2 * int(math.Ceil(math.Log2(float64(n))))
		introsort(c.Store(), 0, n-1, depth, less)
	}
	c.Reindex()
}

// introsort runs quicksort with 3-way partitioning and median-of-three pivot
// selection, handing small subranges to insertion sort and falling back to
// heapsort when the recursion depth budget is exhausted. O(n log n) worst
// case.
func introsort(s *store.Store[types.Document], low, high, depth int, less lessFunc) {
	for low < high {
		if high-low < insertionThreshold {
			insertionSort(s, low, high, less)
			return
		}
		if depth == 0 {
			heapSort(s, low, high, less)
			return
		}
		depth--

		pivot := medianOfThree(s, low, low+(high-low)/2, high, less)
		s.Swap(low, pivot)
		lt, gt := partition3Way(s, low, high, less)

		// Recurse into the smaller side, loop on the larger one.
		if lt-low < high-gt {
			introsort(s, low, lt-1, depth, less)
			low = gt + 1
		} else {
			introsort(s, gt+1, high, depth, less)
			high = lt - 1
		}
	}
}

// partition3Way partitions around the element at low: on return, elements in
// [lt, gt] equal the pivot, [low, lt-1] order before it, [gt+1, high] after.
func partition3Way(s *store.Store[types.Document], low, high int, less lessFunc) (lt, gt int) {
	pivot := *s.At(low)
	lt, gt = low, high
	i := low + 1

	for i <= gt {
		switch {
		case less(s.At(i), &pivot):
			s.Swap(lt, i)
			lt++
			i++
		case less(&pivot, s.At(i)):
			s.Swap(i, gt)
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

// medianOfThree returns the index of the median of the three sampled
// elements.
func medianOfThree(s *store.Store[types.Document], a, b, c int, less lessFunc) int {
	ab := less(s.At(a), s.At(b))
	if ab {
		switch {
		case less(s.At(b), s.At(c)):
			return b
		case less(s.At(a), s.At(c)):
			return c
		default:
			return a
		}
	}
	switch {
	case less(s.At(a), s.At(c)):
		return a
	case less(s.At(b), s.At(c)):
		return c
	default:
		return b
	}
}

func insertionSort(s *store.Store[types.Document], low, high int, less lessFunc) {
	for i := low + 1; i <= high; i++ {
		key := *s.At(i)
		j := i - 1
		for j >= low && less(&key, s.At(j)) {
			*s.At(j + 1) = *s.At(j)
			j--
		}
		*s.At(j + 1) = key
	}
}

// heapSort sorts [low, high] via an in-place binary heap built with respect
// to less.
func heapSort(s *store.Store[types.Document], low, high int, less lessFunc) {
	n := high - low + 1
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, low, i, n, less)
	}
	for end := n - 1; end > 0; end-- {
		s.Swap(low, low+end)
		siftDown(s, low, 0, end, less)
	}
}

func siftDown(s *store.Store[types.Document], low, root, n int, less lessFunc) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(s.At(low+child), s.At(low+child+1)) {
			child++
		}
		if !less(s.At(low+root), s.At(low+child)) {
			return
		}
		s.Swap(low+root, low+child)
		root = child
	}
}
