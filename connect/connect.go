// Package connect binds view components to a store. A bound component's
// props are computed from three sources: its own props, props derived from
// the store state, and props derived from dispatch-capable action creators.
// The component is re-rendered when the computed props change.
//
// Wrap is the named-configuration entry point; Bind is the positional
// engine underneath it.
package connect

import "state-binder/store"

// Component consumes computed props. The rendering host implements it.
type Component[P any] interface {
	Render(P)
}

// StateMapper derives state props from the store state and own props.
type StateMapper[S, OP, SP any] func(state S, own OP) SP

// DispatchMapper derives dispatch props, typically closures over dispatch.
type DispatchMapper[OP, DP any] func(dispatch store.Dispatcher, own OP) DP

// PropsMerger combines the three prop sources into the final props. When
// none is supplied, the default reflective union is used (see Bind).
type PropsMerger[SP, DP, OP, P any] func(stateProps SP, dispatchProps DP, own OP) P
