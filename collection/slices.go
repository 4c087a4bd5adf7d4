package collection

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value
// and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Map returns a new slice holding fn applied to every element of s.
func Map[T, V any](s []T, fn func(T) V) []V {
	out := make([]V, len(s))
	for i, t := range s {
		out[i] = fn(t)
	}

	return out
}
