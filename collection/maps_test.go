package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"state-binder/collection"
)

func TestKeysValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	assert.ElementsMatch(t, []string{"a", "b", "c"}, collection.Keys(m))
	assert.ElementsMatch(t, []int{1, 2, 3}, collection.Values(m))
}

func TestEntries_RoundTrip(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	entries := collection.Entries(m)
	require.Len(t, entries, 3)

	assert.Equal(t, m, collection.FromEntries(entries))
}

func TestFromEntries_LaterDuplicatesWin(t *testing.T) {
	entries := []collection.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "a", Value: 2},
	}

	assert.Equal(t, map[string]int{"a": 2}, collection.FromEntries(entries))
}

func TestMapValues(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}

	out := collection.MapValues(in, func(v int, _ string) int { return v * 2 })

	assert.Equal(t, map[string]int{"a": 2, "b": 4}, out)
	// The input map is left untouched.
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, in)
}

func TestMapValues_KeyIsPassed(t *testing.T) {
	in := map[string]int{"a": 1}

	out := collection.MapValues(in, func(v int, k string) string { return k })

	assert.Equal(t, map[string]string{"a": "a"}, out)
}
