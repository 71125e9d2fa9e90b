// Package bridge tracks the lifecycle of an observer binding between a
// provider's push-event channel and a store.
//
// Each domain observer embeds a Lifecycle. InitIfNeeded binds at most once;
// Shutdown closes the current Binding so that any remote still held by the
// provider stops dispatching, and allows a later re-initialization against a
// possibly different store.
package bridge

import (
	"sync"
	"sync/atomic"

	"personalization/internal/store"
	"personalization/pkg/logging"
)

// Binding is one bound generation of an observer. Remotes handed to providers
// dispatch through their Binding and go silent once it is closed.
type Binding struct {
	name   string
	store  store.Dispatcher
	closed atomic.Bool
}

// Active reports whether the binding still forwards events.
func (b *Binding) Active() bool {
	return !b.closed.Load()
}

// Dispatch forwards action to the bound store. Events arriving after
// shutdown are dropped and reported as false.
func (b *Binding) Dispatch(action store.Action) bool {
	if b.closed.Load() {
		logging.Debug(b.name, "Dropping %s from closed binding", action.Name())
		return false
	}
	b.store.Dispatch(action)
	return true
}

// Data returns the bound store's current state.
func (b *Binding) Data() store.State {
	return b.store.Data()
}

// Lifecycle implements the uninitialized -> bound -> uninitialized state
// machine shared by every observer bridge.
type Lifecycle struct {
	Name string

	mu      sync.Mutex
	current *Binding
	unbind  func()
}

// Init binds to s unless already bound. bind receives the fresh Binding and
// must register a remote with the provider; it returns the function that
// undoes the registration. Init reports whether a new binding was created.
func (l *Lifecycle) Init(s store.Dispatcher, bind func(*Binding) (unbind func())) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		return false
	}
	b := &Binding{name: l.Name, store: s}
	l.current = b
	l.unbind = bind(b)
	logging.Debug(l.Name, "Observer bound")
	return true
}

// Shutdown closes the current binding and unregisters it from the provider.
// It reports whether a binding existed.
func (l *Lifecycle) Shutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return false
	}
	l.current.closed.Store(true)
	if l.unbind != nil {
		l.unbind()
	}
	l.current = nil
	l.unbind = nil
	logging.Debug(l.Name, "Observer shut down")
	return true
}

// Bound reports whether the lifecycle currently holds a binding.
func (l *Lifecycle) Bound() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != nil
}
