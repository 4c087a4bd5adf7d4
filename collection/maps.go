// Package collection provides generic helpers over maps, slices and sets.
package collection

// Entry is a single key/value pair extracted from a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Keys returns the keys of m. Ordering follows map iteration order and is
// not stable between runs.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

// Values returns the values of m, with the same ordering caveat as Keys.
func Values[K comparable, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}

	return values
}

// Entries returns the key/value pairs of m, with the same ordering caveat
// as Keys.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}

	return entries
}

// FromEntries rebuilds a map from key/value pairs. Later duplicates win.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}

	return m
}

// MapValues returns a new map with the same keys and fn applied to every
// value. The input map is left untouched.
func MapValues[K comparable, V, W any](m map[K]V, fn func(V, K) W) map[K]W {
	out := make(map[K]W, len(m))
	for k, v := range m {
		out[k] = fn(v, k)
	}

	return out
}
