package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"state-binder/transform"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want transform.Type
	}{
		{"merge-callnode", transform.MergeCallNode},
		{"mergeCallNode", transform.MergeCallNode},
		{"merge_call_node", transform.MergeCallNode},
		{"Focus-Subtree", transform.FocusSubtree},
		{"drop-functoin", transform.DropFunction},
		{"collapse-resources", transform.CollapseResource},
	}

	for _, tt := range tests {
		got, ok := transform.Suggest(tt.in)
		require.True(t, ok, "Suggest(%q) should find a near miss", tt.in)
		assert.Equal(t, tt.want, got, "Suggest(%q)", tt.in)
	}
}

func TestSuggest_NothingClose(t *testing.T) {
	for _, s := range []string{"", "   ", "zzzzzz", "open-file-dialog"} {
		_, ok := transform.Suggest(s)
		assert.False(t, ok, "Suggest(%q) should find nothing", s)
	}
}
