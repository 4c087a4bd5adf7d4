package transform

import "state-binder/ensure"

//go:generate go tool stringer -type=Category -output=category_string.go

// Category groups transform tags by the effect they have on the call tree.
type Category int

const (
	CategoryFiltering  Category = iota // removes samples outside the focused part of the tree
	CategoryMerging                    // folds a node or function into its caller
	CategoryCollapsing                 // replaces a subtree or group with a single node
)

// Category returns the category of t. t must be a recognized tag.
func (t Type) Category() Category {
	switch t {
	case FocusSubtree, FocusFunction, FocusCategory:
		return CategoryFiltering
	case MergeCallNode, MergeFunction, DropFunction:
		return CategoryMerging
	case CollapseResource, CollapseDirectRecursion,
		CollapseIndirectRecursion, CollapseFunctionSubtree:
		return CategoryCollapsing
	default:
		ensure.Unreachable(t)
		return 0 // not reached
	}
}
