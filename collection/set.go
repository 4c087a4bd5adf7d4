package collection

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// NewSet builds a set from the given members.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Delete removes v from the set.
func (s Set[T]) Delete(v T) { delete(s, v) }

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// First returns an arbitrary member of the set, or ok=false when the set is
// empty. Which member is returned is unspecified and may differ between
// runs; callers must not rely on any ordering.
func (s Set[T]) First() (T, bool) {
	for v := range s {
		return v, true
	}

	var zero T
	return zero, false
}
