package transform

import (
	"strconv"

	"state-binder/ensure"
)

// Short keys abbreviate transform tags when a pipeline of applied
// transforms is serialized into a URL.
var shortKeys = map[Type]string{
	FocusSubtree:              "f",
	FocusFunction:             "ff",
	FocusCategory:             "fg",
	MergeCallNode:             "mcn",
	MergeFunction:             "mf",
	DropFunction:              "df",
	CollapseResource:          "cr",
	CollapseDirectRecursion:   "rec",
	CollapseIndirectRecursion: "irec",
	CollapseFunctionSubtree:   "cfs",
}

var byShortKey = func() map[string]Type {
	m := make(map[string]Type, len(shortKeys))
	for t, k := range shortKeys {
		m[k] = t
	}

	return m
}()

// ShortKey returns the URL abbreviation of t. t must be a recognized tag.
func (t Type) ShortKey() string {
	k, ok := shortKeys[t]
	if !ok {
		ensure.Unreachable(t, "transform: no short key for tag "+strconv.Quote(string(t)))
	}

	return k
}

// FromShortKey resolves a URL abbreviation back to its transform tag.
func FromShortKey(k string) (Type, bool) {
	t, ok := byShortKey[k]
	return t, ok
}
