package match

import "strings"

// NormalizeTag folds a tag candidate into a canonical comparison form:
// lower-cased with separator runes removed, so "mergeCallNode",
// "merge_call_node" and "merge-call-node" all normalize identically.
func NormalizeTag(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '-', '_', ' ':
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
