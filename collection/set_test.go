package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"state-binder/collection"
)

func TestSet(t *testing.T) {
	s := collection.NewSet("a", "b")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))

	s.Add("z")
	assert.True(t, s.Has("z"))

	s.Delete("z")
	assert.False(t, s.Has("z"))
}

func TestSet_First(t *testing.T) {
	s := collection.NewSet(1, 2, 3)

	// First returns some member; which one is deliberately unspecified.
	v, ok := s.First()
	require.True(t, ok)
	assert.True(t, s.Has(v))
}

func TestSet_FirstEmpty(t *testing.T) {
	s := collection.NewSet[int]()

	v, ok := s.First()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSliceFirst(t *testing.T) {
	v, ok := collection.First([]int{7, 8})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = collection.First([]int(nil))
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, collection.IsEmpty([]string(nil)))
	assert.False(t, collection.IsEmpty([]string{"x"}))
}

func TestMap(t *testing.T) {
	out := collection.Map([]int{1, 2, 3}, func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9}, out)
}
