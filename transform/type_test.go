package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"state-binder/transform"
)

func TestParse_RecognizesEveryTag(t *testing.T) {
	tags := transform.All()
	require.Len(t, tags, 10)

	for _, tag := range tags {
		parsed, ok := transform.Parse(string(tag))
		assert.True(t, ok, "tag %q must parse", tag)
		assert.Equal(t, tag, parsed)
	}
}

func TestParse_RejectsUnrecognized(t *testing.T) {
	invalid := []string{
		"",
		"focus",                 // prefix of a recognized tag
		"focus-subtree-extra",   // recognized tag plus suffix
		"Focus-Subtree",         // case mismatch
		"FOCUS-SUBTREE",         // case mismatch
		" focus-subtree",        // leading whitespace
		"focus-subtree ",        // trailing whitespace
		"merge_call_node",       // wrong separator
		"collapse",              // prefix
		"not-a-transform",       // unrelated
	}

	for _, s := range invalid {
		parsed, ok := transform.Parse(s)
		assert.False(t, ok, "input %q must not parse", s)
		assert.Equal(t, transform.Type(""), parsed)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, transform.MergeCallNode, transform.MustParse("merge-call-node"))
	assert.Panics(t, func() { transform.MustParse("merge-call-nodes") })
}

func TestValid(t *testing.T) {
	assert.True(t, transform.DropFunction.Valid())
	assert.False(t, transform.Type("drop").Valid())
}

func TestAll_IsACopy(t *testing.T) {
	tags := transform.All()
	tags[0] = "tampered"

	assert.Equal(t, transform.FocusSubtree, transform.All()[0])
}

func TestShortKey_RoundTrip(t *testing.T) {
	seen := map[string]transform.Type{}

	for _, tag := range transform.All() {
		key := tag.ShortKey()
		require.NotEmpty(t, key)

		prev, dup := seen[key]
		require.False(t, dup, "short key %q used by both %q and %q", key, prev, tag)
		seen[key] = tag

		back, ok := transform.FromShortKey(key)
		require.True(t, ok)
		assert.Equal(t, tag, back)
	}
}

func TestShortKey_UnknownTagPanics(t *testing.T) {
	assert.Panics(t, func() { transform.Type("bogus").ShortKey() })
}

func TestFromShortKey_Unknown(t *testing.T) {
	_, ok := transform.FromShortKey("zzz")
	assert.False(t, ok)
}

func TestCategory(t *testing.T) {
	assert.Equal(t, transform.CategoryFiltering, transform.FocusSubtree.Category())
	assert.Equal(t, transform.CategoryFiltering, transform.FocusCategory.Category())
	assert.Equal(t, transform.CategoryMerging, transform.MergeCallNode.Category())
	assert.Equal(t, transform.CategoryMerging, transform.DropFunction.Category())
	assert.Equal(t, transform.CategoryCollapsing, transform.CollapseResource.Category())
	assert.Equal(t, transform.CategoryCollapsing, transform.CollapseFunctionSubtree.Category())
}

func TestCategory_CoversEveryTag(t *testing.T) {
	for _, tag := range transform.All() {
		assert.NotPanics(t, func() { _ = tag.Category() }, "tag %q must have a category", tag)
	}
}

func TestCategory_UnknownTagPanics(t *testing.T) {
	assert.Panics(t, func() { transform.Type("bogus").Category() })
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "CategoryFiltering", transform.CategoryFiltering.String())
	assert.Equal(t, "CategoryMerging", transform.CategoryMerging.String())
	assert.Equal(t, "CategoryCollapsing", transform.CategoryCollapsing.String())
	assert.Equal(t, "Category(99)", transform.Category(99).String())
}
