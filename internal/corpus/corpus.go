// Package corpus provides the ordered document collection a matching run
// operates on: a growable backing store plus an id index kept consistent
// with it.
package corpus

import (
	"fmt"

	"github.com/jonathan/skillmatch/internal/store"
	"github.com/jonathan/skillmatch/internal/types"
)

// Corpus owns the documents of one role (jobs or resumes). The id map is
// rebuilt whenever the store's order changes, so lookups by id never assume
// ids are dense or positional.
type Corpus struct {
	docs *store.Store[types.Document]
	byID map[int64]int
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{
		docs: store.New[types.Document](),
		byID: make(map[int64]int),
	}
}

// Count returns the number of documents.
func (c *Corpus) Count() int { return c.docs.Len() }

// Insert appends a document and indexes its id. The id must be positive and
// unique within the corpus. Pointers previously obtained from GetByIndex or
// GetByID may be invalidated by the growth this triggers.
func (c *Corpus) Insert(doc types.Document) error {
	if doc.ID <= 0 {
		return fmt.Errorf("document id must be positive, got %d", doc.ID)
	}
	if _, exists := c.byID[doc.ID]; exists {
		return fmt.Errorf("duplicate document id %d", doc.ID)
	}
	c.docs.Push(doc)
	c.byID[doc.ID] = c.docs.Len() - 1
	return nil
}

// GetByIndex returns the document at position i in the current order.
func (c *Corpus) GetByIndex(i int) (*types.Document, error) {
	return c.docs.Get(i)
}

// GetByID returns the document with the given id, or false if absent.
func (c *Corpus) GetByID(id int64) (*types.Document, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return c.docs.At(i), true
}

// IndexOf returns the current position of the document with the given id.
func (c *Corpus) IndexOf(id int64) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Store exposes the backing store for the in-place sort and search
// algorithms. Any caller that reorders it must call Reindex before the
// corpus is used for id lookups again.
func (c *Corpus) Store() *store.Store[types.Document] {
	return c.docs
}

// Reindex rebuilds the id map from the store's current order.
func (c *Corpus) Reindex() {
	for i := 0; i < c.docs.Len(); i++ {
		c.byID[c.docs.At(i).ID] = i
	}
}
