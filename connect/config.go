package connect

// Config names the pieces of a binding. Only Component is required; an
// absent mapper contributes zero-valued props and a nil MergeProps selects
// the default reflective union.
//
// MapDispatch accepts either a function of the DispatchMapper[OP, DP] shape
// or a DP value whose exported func fields are action creators. Creator
// structs are passed through unchanged here and auto-bound to the store's
// dispatch when the component mounts.
type Config[S, OP, SP, DP, P any] struct {
	MapState    StateMapper[S, OP, SP]
	MapDispatch any
	MergeProps  PropsMerger[SP, DP, OP, P]
	Options     OptionEnum
	Component   Component[P]
}

// Wrap converts the named configuration into the positional Bind call. It
// performs no validation beyond requiring Component; problems with mapper
// shapes surface when the component mounts and the mappers actually run.
func Wrap[S, OP, SP, DP, P any](cfg Config[S, OP, SP, DP, P]) *Connected[S, OP, SP, DP, P] {
	return Bind(cfg.MapState, cfg.MapDispatch, cfg.MergeProps, cfg.Options, cfg.Component)
}
