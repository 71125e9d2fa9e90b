package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ExpectActionResolvesOnDispatch(t *testing.T) {
	s := newCounterStore()

	exp := s.ExpectAction("SetLabel")
	s.Dispatch(incrementAction{By: 1})
	s.Dispatch(labelAction{Label: "x"})

	action, err := exp.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, labelAction{Label: "x"}, action)
}

func TestStore_WaitForActionFromAnotherGoroutine(t *testing.T) {
	s := newCounterStore()

	go func() {
		time.Sleep(10 * time.Millisecond)
		s.Dispatch(incrementAction{By: 4})
	}()

	action, err := s.WaitForAction(context.Background(), "Increment")
	require.NoError(t, err)
	assert.Equal(t, incrementAction{By: 4}, action)
}

func TestStore_ExpectActionResolvesWithReducersDisabled(t *testing.T) {
	s := newCounterStore(WithReducersEnabled(false))

	exp := s.ExpectAction("Increment")
	s.Dispatch(incrementAction{By: 1})

	_, err := exp.Wait(context.Background())
	assert.NoError(t, err)
}

func TestStore_WaitTimeout(t *testing.T) {
	s := newCounterStore(WithWaitTimeout(20 * time.Millisecond))

	_, err := s.WaitForAction(context.Background(), "Increment")
	assert.True(t, errors.Is(err, ErrWaitTimeout))

	// A later dispatch must not block on the abandoned waiter.
	s.Dispatch(incrementAction{By: 1})
}

func TestStore_WaitRespectsCallerContext(t *testing.T) {
	s := newCounterStore(WithWaitTimeout(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.WaitForAction(ctx, "Increment")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_LastExpectationWins(t *testing.T) {
	s := newCounterStore()

	first := s.ExpectAction("Increment")
	second := s.ExpectAction("Increment")

	_, err := first.Wait(context.Background())
	assert.ErrorIs(t, err, ErrWaitSuperseded)

	s.Dispatch(incrementAction{By: 9})
	action, err := second.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, incrementAction{By: 9}, action)
}

func TestStore_ExpectationIsOneShot(t *testing.T) {
	s := newCounterStore(WithWaitTimeout(20 * time.Millisecond))

	exp := s.ExpectAction("Increment")
	s.Dispatch(incrementAction{By: 1})
	s.Dispatch(incrementAction{By: 2})

	action, err := exp.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, incrementAction{By: 1}, action)
	assert.Equal(t, ActionName("Increment"), exp.Name())
}
