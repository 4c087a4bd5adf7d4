// Package transform defines the closed set of call-tree transform
// operations and the conversions between their wire tags, their short URL
// keys and their categories.
//
// Tags arrive untrusted, typically deserialized from shared URLs, and must
// go through Parse before use. Unrecognized input is an expected outcome
// and is reported, not raised.
package transform

import (
	"strconv"

	"state-binder/ensure"
)

// Type is the tag of a call-tree transform operation.
type Type string

const (
	FocusSubtree              Type = "focus-subtree"
	FocusFunction             Type = "focus-function"
	FocusCategory             Type = "focus-category"
	MergeCallNode             Type = "merge-call-node"
	MergeFunction             Type = "merge-function"
	DropFunction              Type = "drop-function"
	CollapseResource          Type = "collapse-resource"
	CollapseDirectRecursion   Type = "collapse-direct-recursion"
	CollapseIndirectRecursion Type = "collapse-indirect-recursion"
	CollapseFunctionSubtree   Type = "collapse-function-subtree"
)

// all lists every recognized tag in declaration order.
var all = []Type{
	FocusSubtree,
	FocusFunction,
	FocusCategory,
	MergeCallNode,
	MergeFunction,
	DropFunction,
	CollapseResource,
	CollapseDirectRecursion,
	CollapseIndirectRecursion,
	CollapseFunctionSubtree,
}

// All returns every recognized transform tag in declaration order.
func All() []Type {
	out := make([]Type, len(all))
	copy(out, all)

	return out
}

// Parse converts an arbitrary string into a recognized transform tag.
// Matching is exact and case-sensitive. Unrecognized input reports
// ok=false; stale or foreign URLs are a normal, non-fatal case.
func Parse(s string) (Type, bool) {
	// Every recognized tag is listed explicitly, so a new Type constant
	// that is not added here fails the round-trip test over All().
	switch t := Type(s); t {
	case FocusSubtree, FocusFunction, FocusCategory,
		MergeCallNode, MergeFunction, DropFunction,
		CollapseResource, CollapseDirectRecursion,
		CollapseIndirectRecursion, CollapseFunctionSubtree:
		return t, true
	default:
		return "", false
	}
}

// MustParse is Parse for tags the caller knows to be valid.
func MustParse(s string) Type {
	t, ok := Parse(s)
	if !ok {
		ensure.Unreachable(s, "transform: unrecognized tag "+strconv.Quote(s))
	}

	return t
}

// Valid reports whether t is one of the recognized tags.
func (t Type) Valid() bool {
	_, ok := Parse(string(t))
	return ok
}
