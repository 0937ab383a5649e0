// Package feature provides a deterministic state-machine store with an
// asynchronous effect runtime. Each screen-level feature owns one Store:
// actions dispatched into it either mutate state synchronously or schedule
// an effect whose eventual result re-enters the store as a response action.
package feature

import (
	"context"
	"sync"
)

// Effect is an asynchronous operation scheduled by a state transition. It
// always completes with a response action; any underlying error must be
// captured into the action rather than escaping.
type Effect[A any] func(ctx context.Context) A

// Reducer is a deterministic transition function. It returns the next
// state and, optionally, an effect to run. Reduce must not block.
type Reducer[S, A any] interface {
	Reduce(state S, action A) (S, Effect[A])
}

// ReducerFunc adapts a plain function to the Reducer interface
type ReducerFunc[S, A any] func(state S, action A) (S, Effect[A])

// Reduce implements Reducer
func (f ReducerFunc[S, A]) Reduce(state S, action A) (S, Effect[A]) {
	return f(state, action)
}

// Store owns one feature's state and serializes transitions on it.
//
// Effects run concurrently with the caller and with each other. When
// multiple fetches of the same feature overlap, the response that
// completes last determines the final state, independent of dispatch
// order. That matches the behavior of the original client and is kept
// deliberately; callers wanting stricter ordering must not overlap
// fetches.
type Store[S, A any] struct {
	mu      sync.Mutex
	state   S
	reducer Reducer[S, A]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStore creates a store with an initial state and a reducer
func NewStore[S, A any](initial S, reducer Reducer[S, A]) *Store[S, A] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store[S, A]{
		state:   initial,
		reducer: reducer,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Dispatch applies one action. The state transition itself is a single
// critical section; a scheduled effect runs on its own goroutine and its
// response is delivered back into this store exactly once.
func (s *Store[S, A]) Dispatch(action A) {
	s.apply(action, false)
}

func (s *Store[S, A]) apply(action A, fromEffect bool) {
	s.mu.Lock()
	// A response arriving after teardown is dropped silently. The check
	// shares the state lock with Close, so a response can never land once
	// Close has returned.
	if fromEffect && s.ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	next, effect := s.reducer.Reduce(s.state, action)
	s.state = next
	s.mu.Unlock()

	if effect == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.apply(effect(s.ctx), true)
	}()
}

// State returns the current state snapshot
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Wait blocks until every effect scheduled so far has completed and its
// response has been applied. Intended for hosts that need a settled state,
// such as one-shot CLI runs and tests.
func (s *Store[S, A]) Wait() {
	s.wg.Wait()
}

// Close tears the store down. In-flight effects are not interrupted
// beyond context cancellation; their responses are discarded.
func (s *Store[S, A]) Close() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
}
