package toast

import (
	"sync"
	"testing"
	"time"

	"personalization/internal/errorstate"
	"personalization/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func newStore() *store.Store {
	s := store.NewStore()
	s.RegisterReducer(store.SliceError, errorstate.InitialState(), errorstate.Reducer)
	return s
}

func newToast(s *store.Store) (*Toast, *testingclock.FakeClock) {
	fc := testingclock.NewFakeClock(time.Unix(0, 0))
	t := New(s, WithClock(fc))
	t.Start()
	return t, fc
}

func lastDismiss(t *testing.T, s *store.Store) errorstate.DismissError {
	t.Helper()
	var found *errorstate.DismissError
	for _, a := range s.Actions() {
		if d, ok := a.(errorstate.DismissError); ok {
			found = &d
		}
	}
	require.NotNil(t, found, "no DismissError dispatched")
	return *found
}

type callbackLog struct {
	mu    sync.Mutex
	calls []bool
}

func (c *callbackLog) record(fromUser bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, fromUser)
}

func (c *callbackLog) get() []bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]bool(nil), c.calls...)
}

func TestAutoDismissAfterExactly10000ms(t *testing.T) {
	s := newStore()
	toast, fc := newToast(s)
	defer toast.Stop()
	assert.Equal(t, 10000*time.Millisecond, toast.Timeout())

	var log callbackLog
	e := errorstate.NewError("Couldn't set wallpaper")
	e.Dismiss = &errorstate.DismissAction{Text: "Got it", Callback: log.record}
	s.Dispatch(errorstate.SetError{Error: e})
	require.NotNil(t, toast.Current())
	require.True(t, fc.HasWaiters())

	fc.Step(9999 * time.Millisecond)
	assert.NotNil(t, errorstate.Select(s.Data()).Current)

	fc.Step(time.Millisecond)
	require.Eventually(t, func() bool {
		return errorstate.Select(s.Data()).Current == nil
	}, time.Second, time.Millisecond)

	d := lastDismiss(t, s)
	assert.Equal(t, e.ID, d.ID)
	assert.False(t, d.FromUser)
	assert.Equal(t, []bool{false}, log.get())
	assert.Nil(t, toast.Current())
}

func TestUserDismissal(t *testing.T) {
	s := newStore()
	toast, fc := newToast(s)
	defer toast.Stop()

	var log callbackLog
	var dispatchedBeforeCallback bool
	e := errorstate.NewError("Couldn't load images")
	e.Dismiss = &errorstate.DismissAction{Callback: func(fromUser bool) {
		dispatchedBeforeCallback = errorstate.Select(s.Data()).Current == nil
		log.record(fromUser)
	}}
	s.Dispatch(errorstate.SetError{Error: e})

	assert.True(t, toast.Dismiss())

	d := lastDismiss(t, s)
	assert.True(t, d.FromUser)
	assert.Equal(t, []bool{true}, log.get())
	assert.False(t, dispatchedBeforeCallback)
	assert.False(t, fc.HasWaiters())
	assert.False(t, toast.Dismiss())
}

func TestNewErrorRestartsTimer(t *testing.T) {
	s := newStore()
	toast, fc := newToast(s)
	defer toast.Stop()

	first := errorstate.NewError("first")
	s.Dispatch(errorstate.SetError{Error: first})
	fc.Step(6 * time.Second)

	second := errorstate.NewError("second")
	s.Dispatch(errorstate.SetError{Error: second})
	fc.Step(6 * time.Second)

	current := errorstate.Select(s.Data()).Current
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, second.ID, toast.Current().ID)

	fc.Step(4 * time.Second)
	require.Eventually(t, func() bool {
		return errorstate.Select(s.Data()).Current == nil
	}, time.Second, time.Millisecond)
	assert.Equal(t, second.ID, lastDismiss(t, s).ID)
}

func TestStartPicksUpShownError(t *testing.T) {
	s := newStore()
	e := errorstate.NewError("already there")
	s.Dispatch(errorstate.SetError{Error: e})

	toast, fc := newToast(s)
	defer toast.Stop()

	assert.Equal(t, e.ID, toast.Current().ID)
	assert.True(t, fc.HasWaiters())
}

func TestStopCancelsTimer(t *testing.T) {
	s := newStore()
	toast, fc := newToast(s)
	s.Dispatch(errorstate.SetError{Error: errorstate.NewError("x")})

	toast.Stop()
	fc.Step(DefaultTimeout)

	assert.NotNil(t, errorstate.Select(s.Data()).Current)
	assert.False(t, fc.HasWaiters())
}

func TestWithTimeout(t *testing.T) {
	toast := New(newStore(), WithTimeout(time.Second), WithTimeout(-1))
	assert.Equal(t, time.Second, toast.Timeout())
}
