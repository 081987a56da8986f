package ranking

import (
	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/types"
)

// BinarySearch finds the document with the given id in a corpus previously
// ordered with SortByID. O(log n); returns false when absent.
func BinarySearch(c *corpus.Corpus, id int64) (*types.Document, bool) {
	s := c.Store()
	low, high := 0, s.Len()-1

	for low <= high {
		mid := low + (high-low)/2
		doc := s.At(mid)
		switch {
		case doc.ID == id:
			return doc, true
		case doc.ID < id:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return nil, false
}

// InterpolationSearch finds the document with the given id in a corpus
// previously ordered with SortByID, probing at the position linear
// interpolation between the boundary ids predicts. Average O(log log n) on
// uniformly distributed ids; degrades to O(n) on adversarial distributions,
// which is accepted.
func InterpolationSearch(c *corpus.Corpus, id int64) (*types.Document, bool) {
	s := c.Store()
	low, high := 0, s.Len()-1

	for low <= high && id >= s.At(low).ID && id <= s.At(high).ID {
		lowID := s.At(low).ID
		highID := s.At(high).ID

		// Equal boundary ids would divide by zero; the subrange then holds a
		// single candidate value, so check it directly.
		if low == high || lowID == highID {
			if lowID == id {
				return s.At(low), true
			}
			return nil, false
		}

		pos := low + int((id-lowID)*int64(high-low)/(highID-lowID))
		doc := s.At(pos)
		switch {
		case doc.ID == id:
			return doc, true
		case doc.ID < id:
			low = pos + 1
		default:
			high = pos - 1
		}
	}
	return nil, false
}

// LinearSearch scans for the document with the given id. O(n), but correct
// regardless of the corpus's current order.
func LinearSearch(c *corpus.Corpus, id int64) (*types.Document, bool) {
	s := c.Store()
	for i := 0; i < s.Len(); i++ {
		if doc := s.At(i); doc.ID == id {
			return doc, true
		}
	}
	return nil, false
}
