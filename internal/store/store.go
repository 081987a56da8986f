// Package store provides the growable contiguous container backing every
// document collection in the matcher.
package store

// initialCapacity is the allocation made on the first Push into an empty store.
const initialCapacity = 4

// growthFactor controls amortized reallocation. 1.5 keeps wasted space under
// 50% right after a growth while still giving O(1) amortized Push.
const growthFactor = 1.5

// Store is a growable array of T with index-based access. Elements are moved
// into a fresh backing slice when capacity is exhausted, so callers must
// re-fetch by index after any Push instead of holding element pointers.
type Store[T any] struct {
	data []T
	n    int
}

// New returns an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// NewWithCapacity returns an empty store with room for n elements.
func NewWithCapacity[T any](n int) *Store[T] {
	if n < 0 {
		n = 0
	}
	return &Store[T]{data: make([]T, n)}
}

// Len returns the number of stored elements.
func (s *Store[T]) Len() int { return s.n }

// Cap returns the current capacity.
func (s *Store[T]) Cap() int { return len(s.data) }

// Push appends item, growing the backing array if needed.
func (s *Store[T]) Push(item T) {
	if s.n >= len(s.data) {
		s.grow(s.n + 1)
	}
	s.data[s.n] = item
	s.n++
}

// Get returns a pointer to the element at index i, or an IndexError if i is
// out of range. The pointer is invalidated by the next growth-triggering Push.
func (s *Store[T]) Get(i int) (*T, error) {
	if i < 0 || i >= s.n {
		return nil, &IndexError{Index: i, Len: s.n}
	}
	return &s.data[i], nil
}

// At returns a pointer to the element at index i without a range check beyond
// the panic the runtime provides. It exists for the sort/search hot paths,
// which already operate on validated ranges.
func (s *Store[T]) At(i int) *T {
	if i < 0 || i >= s.n {
		panic(&IndexError{Index: i, Len: s.n})
	}
	return &s.data[i]
}

// Set replaces the element at index i.
func (s *Store[T]) Set(i int, item T) error {
	if i < 0 || i >= s.n {
		return &IndexError{Index: i, Len: s.n}
	}
	s.data[i] = item
	return nil
}

// Swap exchanges the elements at i and j.
func (s *Store[T]) Swap(i, j int) {
	if i < 0 || i >= s.n {
		panic(&IndexError{Index: i, Len: s.n})
	}
	if j < 0 || j >= s.n {
		panic(&IndexError{Index: j, Len: s.n})
	}
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

// Reserve ensures capacity for at least n elements without changing Len.
func (s *Store[T]) Reserve(n int) {
	if n > len(s.data) {
		fresh := make([]T, n)
		copy(fresh, s.data[:s.n])
		s.data = fresh
	}
}

// grow reallocates to max(need, ceil(cap*growthFactor)), moving all elements.
func (s *Store[T]) grow(need int) {
	newCap := int(float64(len(s.data)) * growthFactor)
	if len(s.data) == 0 {
		newCap = initialCapacity
	}
	if newCap < need {
		newCap = need
	}
	fresh := make([]T, newCap)
	copy(fresh, s.data[:s.n])
	s.data = fresh
}
