// Package store implements the in-process state container that view
// components bind to: a single state value advanced by a reducer, with
// change subscriptions and dispatch middleware.
package store

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Store holds a single state value of type S and applies dispatched actions
// through its reducer. All methods are safe for concurrent use; dispatch is
// synchronous and spawns no goroutines.
type Store[S any] struct {
	mu      sync.RWMutex
	state   S
	reducer Reducer[S]

	dispatch Dispatcher
	logger   *zap.Logger
	mws      []Middleware

	lmu       sync.Mutex
	listeners map[int]func()
	nextID    int
}

// Option configures a Store at construction time.
type Option[S any] func(*Store[S])

// WithLogger attaches a logger; every dispatched action is logged at Debug.
// The default logger is a nop.
func WithLogger[S any](l *zap.Logger) Option[S] {
	return func(s *Store[S]) { s.logger = l }
}

// WithMiddleware installs dispatch middleware, outermost first.
func WithMiddleware[S any](mws ...Middleware) Option[S] {
	return func(s *Store[S]) { s.mws = append(s.mws, mws...) }
}

// New builds a Store seeded with initial. The reducer is required.
func New[S any](reducer Reducer[S], initial S, opts ...Option[S]) *Store[S] {
	if reducer == nil {
		panic("store: reducer is required")
	}

	s := &Store[S]{
		state:     initial,
		reducer:   reducer,
		logger:    zap.NewNop(),
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}

	d := s.apply
	for i := len(s.mws) - 1; i >= 0; i-- {
		d = s.mws[i](d)
	}
	s.dispatch = d

	return s
}

// State returns the current state value.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Logger returns the store's logger. Never nil.
func (s *Store[S]) Logger() *zap.Logger { return s.logger }

// Dispatch runs a through the middleware chain and the reducer. Listeners
// are notified only when the state value actually changed.
func (s *Store[S]) Dispatch(a Action) {
	s.dispatch(a)
}

func (s *Store[S]) apply(a Action) {
	if a == nil {
		panic("store: dispatched a nil action")
	}

	s.mu.Lock()
	prev := s.state
	next := s.reducer(prev, a)
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("store: dispatched", zap.String("action", a.Name()))

	if !reflect.DeepEqual(prev, next) {
		s.notify()
	}
}

func (s *Store[S]) notify() {
	// Listeners run outside the lock so they can read State or dispatch.
	s.lmu.Lock()
	snapshot := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		snapshot = append(snapshot, fn)
	}
	s.lmu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription; calling it more than once is fine.
func (s *Store[S]) Subscribe(fn func()) (unsubscribe func()) {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}
