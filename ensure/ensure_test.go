package ensure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"state-binder/ensure"
)

func TestUnreachable(t *testing.T) {
	assert.PanicsWithValue(t,
		`ensure: reached unreachable branch with value "surprise"`,
		func() { ensure.Unreachable("surprise") },
	)
}

func TestUnreachable_CustomMessage(t *testing.T) {
	assert.PanicsWithValue(t, "unhandled tab kind", func() {
		ensure.Unreachable(42, "unhandled tab kind")
	})
}

func TestNotNil(t *testing.T) {
	v := 7
	assert.Equal(t, &v, ensure.NotNil(&v))
}

func TestNotNil_Nil(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, r.(string), "nil")
	}()

	ensure.NotNil[int](nil)
}

func TestNotNil_CustomMessage(t *testing.T) {
	assert.PanicsWithValue(t, "selected call node must exist", func() {
		ensure.NotNil[string](nil, "selected call node must exist")
	})
}

func TestPresent(t *testing.T) {
	// Zero values pass through untouched as long as ok is true.
	assert.Equal(t, 0, ensure.Present(0, true))
	assert.Equal(t, false, ensure.Present(false, true))
	assert.Equal(t, "", ensure.Present("", true))
}

func TestPresent_Missing(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, r.(string), "missing")
	}()

	m := map[string]int{}
	v, ok := m["absent"]
	ensure.Present(v, ok)
}
