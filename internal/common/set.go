package common

// OrderedSet is a set that remembers insertion order.
// The zero value is not usable; create it with NewOrderedSet.
type OrderedSet[E comparable] struct {
	index map[E]struct{}
	items []E
}

// NewOrderedSet creates a set seeded with items. Duplicates keep their first position.
func NewOrderedSet[E comparable](items ...E) *OrderedSet[E] {
	s := &OrderedSet[E]{
		index: make(map[E]struct{}, len(items)),
		items: make([]E, 0, len(items)),
	}

	for _, e := range items {
		s.Add(e)
	}

	return s
}

// Add inserts e and reports whether it was absent.
func (s *OrderedSet[E]) Add(e E) bool {
	if _, ok := s.index[e]; ok {
		return false
	}

	s.index[e] = struct{}{}
	s.items = append(s.items, e)

	return true
}

// Has reports membership.
func (s *OrderedSet[E]) Has(e E) bool {
	_, ok := s.index[e]
	return ok
}

// Len returns the number of elements.
func (s *OrderedSet[E]) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements in insertion order.
func (s *OrderedSet[E]) Values() []E {
	out := make([]E, len(s.items))
	copy(out, s.items)

	return out
}
