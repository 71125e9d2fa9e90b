package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Unsubscribe(t *testing.T) {
	s := newCounterStore()

	calls := 0
	sub := s.Subscribe(func(State) { calls++ })
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, 1, s.Metrics().ActiveSubscriptions)

	s.Dispatch(incrementAction{By: 1})
	s.Unsubscribe(sub)
	s.Dispatch(incrementAction{By: 1})

	assert.Equal(t, 1, calls)
	assert.True(t, sub.IsClosed())
	assert.Equal(t, 0, s.Metrics().ActiveSubscriptions)
	assert.Equal(t, 1, s.Metrics().TotalSubscriptions)

	// Unsubscribing twice or nil is harmless.
	s.Unsubscribe(sub)
	s.Unsubscribe(nil)
}

func TestStore_ObserversCalledInRegistrationOrder(t *testing.T) {
	s := newCounterStore()

	var order []string
	s.Subscribe(func(State) { order = append(order, "first") })
	s.Subscribe(func(State) { order = append(order, "second") })
	s.Subscribe(func(State) { order = append(order, "third") })

	s.Dispatch(incrementAction{By: 1})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestStore_WatchDeliversAndDrops(t *testing.T) {
	s := newCounterStore()
	sub := s.Watch(1)
	require.NotNil(t, sub.C())

	s.Dispatch(incrementAction{By: 1})
	s.Dispatch(incrementAction{By: 1})

	state := <-sub.C()
	assert.Equal(t, 1, Select[counterState](state, SliceTheme).Count)
	assert.Equal(t, int64(1), s.Metrics().DroppedNotifications)

	s.Unsubscribe(sub)
	_, open := <-sub.C()
	assert.False(t, open)

	// Dispatch after close must not panic on the closed channel.
	s.Dispatch(incrementAction{By: 1})
}
