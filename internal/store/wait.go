package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrWaitTimeout is returned when an expected action was not dispatched in time.
	ErrWaitTimeout = errors.New("timed out waiting for action")

	// ErrWaitSuperseded is returned to a waiter replaced by a newer expectation
	// for the same action name.
	ErrWaitSuperseded = errors.New("wait superseded by a newer expectation")
)

type waitResult struct {
	action Action
	err    error
}

// Expectation is a pending one-shot wait for an action name.
type Expectation struct {
	name  ActionName
	store *Store
	ch    chan waitResult
}

// Name returns the awaited action name.
func (e *Expectation) Name() ActionName {
	return e.name
}

// Wait blocks until the awaited action is dispatched, the expectation is
// superseded, or ctx (bounded by the store's wait timeout) is done.
func (e *Expectation) Wait(ctx context.Context) (Action, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && e.store.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.store.waitTimeout)
		defer cancel()
	}

	select {
	case res := <-e.ch:
		return res.action, res.err
	case <-ctx.Done():
		e.store.dropExpectation(e)
		// The action may have raced the deadline.
		select {
		case res := <-e.ch:
			return res.action, res.err
		default:
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrWaitTimeout, e.name)
		}
		return nil, ctx.Err()
	}
}

// ExpectAction registers a waiter for the next dispatch of name. Register
// before triggering the code that dispatches, then call Wait.
func (s *Store) ExpectAction(name ActionName) *Expectation {
	e := &Expectation{name: name, store: s, ch: make(chan waitResult, 1)}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.waiters[name]; ok {
		select {
		case prev.ch <- waitResult{err: fmt.Errorf("%w: %s", ErrWaitSuperseded, name)}:
		default:
		}
	}
	s.waiters[name] = e
	return e
}

// WaitForAction waits for the next dispatch of name. Actions dispatched before
// the call are not observed; use ExpectAction when the trigger is synchronous.
func (s *Store) WaitForAction(ctx context.Context, name ActionName) (Action, error) {
	return s.ExpectAction(name).Wait(ctx)
}

func (s *Store) dropExpectation(e *Expectation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiters[e.name] == e {
		delete(s.waiters, e.name)
	}
}

// resolveWaiterLocked completes the waiter for action's name. Caller holds s.mu.
func (s *Store) resolveWaiterLocked(action Action) {
	e, ok := s.waiters[action.Name()]
	if !ok {
		return
	}
	delete(s.waiters, action.Name())
	select {
	case e.ch <- waitResult{action: action}:
	default:
	}
}
