package store

import (
	"sync"

	"github.com/google/uuid"
)

// Observer is called with the full state after each applied action.
type Observer func(State)

// Subscription represents one registered observer. Callback subscriptions are
// invoked synchronously by the dispatcher; channel subscriptions receive
// snapshots without blocking and drop them when the buffer is full.
type Subscription struct {
	ID string

	fn     Observer
	ch     chan State
	closed bool
	mu     sync.RWMutex
}

func newSubscription(fn Observer, ch chan State) *Subscription {
	return &Subscription{
		ID: uuid.NewString(),
		fn: fn,
		ch: ch,
	}
}

// C returns the delivery channel of a channel subscription, nil otherwise.
func (s *Subscription) C() <-chan State {
	return s.ch
}

// Close marks the subscription closed and closes its channel, if any.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		if s.ch != nil {
			close(s.ch)
		}
		s.closed = true
	}
}

// IsClosed returns whether the subscription is closed.
func (s *Subscription) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// deliver hands state to the subscriber. It reports false when a channel
// subscriber's buffer was full.
func (s *Subscription) deliver(state State) (delivered bool) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return false
	}
	if s.ch != nil {
		defer s.mu.RUnlock()
		select {
		case s.ch <- state:
			return true
		default:
			return false
		}
	}
	fn := s.fn
	s.mu.RUnlock()

	fn(state)
	return true
}
