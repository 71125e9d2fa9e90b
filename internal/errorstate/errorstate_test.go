package errorstate

import (
	"testing"

	"personalization/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *store.Store {
	s := store.NewStore()
	s.RegisterReducer(store.SliceError, InitialState(), Reducer)
	return s
}

func TestReport(t *testing.T) {
	s := newStore()

	id := Report(s, "Couldn't load photos")

	current := Select(s.Data()).Current
	require.NotNil(t, current)
	assert.Equal(t, id, current.ID)
	assert.Equal(t, "Couldn't load photos", current.Message)
}

func TestDismissError(t *testing.T) {
	s := newStore()
	id := Report(s, "first")

	s.Dispatch(DismissError{ID: "someone-else", FromUser: true})
	assert.NotNil(t, Select(s.Data()).Current, "dismissing another id keeps the error")

	s.Dispatch(DismissError{ID: id, FromUser: true})
	assert.Nil(t, Select(s.Data()).Current)

	Report(s, "second")
	s.Dispatch(DismissError{})
	assert.Nil(t, Select(s.Data()).Current)
}

func TestReducerDoesNotShareErrorValue(t *testing.T) {
	e := NewError("boom")
	next := reduce(State{}, SetError{Error: e})
	e.Message = "changed"

	assert.Equal(t, "boom", next.Current.Message)
}
