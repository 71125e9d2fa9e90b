// Package toast shows the current error from the error slice and dismisses it
// after a timeout or on user request.
package toast

import (
	"sync"
	"time"

	"personalization/internal/errorstate"
	"personalization/internal/store"
	"personalization/pkg/logging"

	"k8s.io/utils/clock"
)

const subsystem = "Toast"

// DefaultTimeout is how long an error stays visible without user action.
const DefaultTimeout = 10000 * time.Millisecond

// Source is the store a Toast watches and dispatches dismissals to.
type Source interface {
	store.Dispatcher
	Subscribe(fn store.Observer) *store.Subscription
	Unsubscribe(sub *store.Subscription)
}

// Toast tracks the visible error and its auto-dismiss timer.
type Toast struct {
	source  Source
	clock   clock.WithDelayedExecution
	timeout time.Duration

	mu    sync.Mutex
	sub   *store.Subscription
	shown *errorstate.Error
	timer clock.Timer
}

// Option configures a Toast.
type Option func(*Toast)

// WithClock replaces the real clock, for tests.
func WithClock(c clock.WithDelayedExecution) Option {
	return func(t *Toast) { t.clock = c }
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(t *Toast) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// New returns a stopped toast for source.
func New(source Source, opts ...Option) *Toast {
	t := &Toast{
		source:  source,
		clock:   clock.RealClock{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start subscribes to the store and picks up an error that is already shown.
func (t *Toast) Start() {
	t.mu.Lock()
	if t.sub != nil {
		t.mu.Unlock()
		return
	}
	t.sub = t.source.Subscribe(t.onState)
	t.mu.Unlock()

	t.onState(t.source.Data())
}

// Stop unsubscribes and cancels any pending timer. The error stays in the
// store.
func (t *Toast) Stop() {
	t.mu.Lock()
	sub := t.sub
	t.sub = nil
	t.stopTimerLocked()
	t.shown = nil
	t.mu.Unlock()

	t.source.Unsubscribe(sub)
}

// Current returns the error on screen, or nil.
func (t *Toast) Current() *errorstate.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.shown == nil {
		return nil
	}
	e := *t.shown
	return &e
}

// Timeout returns the auto-dismiss delay.
func (t *Toast) Timeout() time.Duration {
	return t.timeout
}

// Dismiss is the user closing the toast. It reports whether an error was
// shown.
func (t *Toast) Dismiss() bool {
	t.mu.Lock()
	e := t.shown
	t.stopTimerLocked()
	t.mu.Unlock()

	if e == nil {
		return false
	}
	t.dismiss(*e, true)
	return true
}

func (t *Toast) onState(s store.State) {
	current := errorstate.Select(s).Current

	t.mu.Lock()
	defer t.mu.Unlock()

	if current == nil {
		t.stopTimerLocked()
		t.shown = nil
		return
	}
	if t.shown != nil && t.shown.ID == current.ID {
		return
	}
	t.stopTimerLocked()
	e := *current
	t.shown = &e
	id := e.ID
	t.timer = t.clock.AfterFunc(t.timeout, func() { t.expire(id) })
	logging.Debug(subsystem, "Showing error %s, dismissing in %s", id, t.timeout)
}

func (t *Toast) expire(id string) {
	t.mu.Lock()
	if t.shown == nil || t.shown.ID != id {
		t.mu.Unlock()
		return
	}
	// Drop the fired timer without touching the clock.
	t.timer = nil
	e := *t.shown
	t.mu.Unlock()

	logging.Debug(subsystem, "Error %s timed out", id)
	t.dismiss(e, false)
}

func (t *Toast) dismiss(e errorstate.Error, fromUser bool) {
	if e.Dismiss != nil && e.Dismiss.Callback != nil {
		e.Dismiss.Callback(fromUser)
	}
	t.source.Dispatch(errorstate.DismissError{ID: e.ID, FromUser: fromUser})
}

func (t *Toast) stopTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
