package store

// Action describes a state change to be applied by a Store's reducer.
type Action interface {
	// Name is a stable tag used for logging and debugging.
	Name() string
}

// Reducer computes the next state from the current state and an action.
// It must not mutate the state it receives.
type Reducer[S any] func(S, Action) S

// Dispatcher feeds a single action into a store.
type Dispatcher func(Action)

// Middleware wraps a Dispatcher, observing or altering actions on their way
// to the reducer.
type Middleware func(next Dispatcher) Dispatcher
