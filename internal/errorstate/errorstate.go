// Package errorstate holds the user-visible error slice shown by the toast.
package errorstate

import (
	"personalization/internal/store"

	"github.com/google/uuid"
)

// DismissAction customizes how the user dismisses an error.
type DismissAction struct {
	// Text labels the dismiss button.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Callback, if set, runs when the error is dismissed, by the user or by
	// timeout.
	Callback func(fromUser bool) `json:"-" yaml:"-"`
}

// Error is a user-visible failure.
type Error struct {
	ID      string         `json:"id" yaml:"id"`
	Message string         `json:"message" yaml:"message"`
	Dismiss *DismissAction `json:"dismiss,omitempty" yaml:"dismiss,omitempty"`
}

// State is the error slice. Current is nil when no error is shown.
type State struct {
	Current *Error `json:"current" yaml:"current"`
}

// NewError builds an Error with a fresh id.
func NewError(message string) Error {
	return Error{ID: uuid.NewString(), Message: message}
}

const (
	ActionSetError     store.ActionName = "SetError"
	ActionDismissError store.ActionName = "DismissError"
)

// SetError shows err, replacing any current error.
type SetError struct {
	Error Error
}

func (SetError) Name() store.ActionName { return ActionSetError }
func (SetError) Slice() store.Slice     { return store.SliceError }

// DismissError clears the error with ID. An empty ID clears whatever is shown.
type DismissError struct {
	ID       string
	FromUser bool
}

func (DismissError) Name() store.ActionName { return ActionDismissError }
func (DismissError) Slice() store.Slice     { return store.SliceError }

// InitialState returns the empty error slice.
func InitialState() State {
	return State{}
}

func reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case SetError:
		e := a.Error
		state.Current = &e
	case DismissError:
		if state.Current != nil && (a.ID == "" || a.ID == state.Current.ID) {
			state.Current = nil
		}
	}
	return state
}

// Reducer is the error slice reducer.
var Reducer = store.For(reduce)

// Select returns the error slice of s.
func Select(s store.State) State {
	return store.Select[State](s, store.SliceError)
}

// Report dispatches a SetError for message and returns the new error's id.
func Report(d store.Dispatcher, message string) string {
	e := NewError(message)
	d.Dispatch(SetError{Error: e})
	return e.ID
}
