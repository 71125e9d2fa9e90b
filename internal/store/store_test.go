package store

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"

	"personalization/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type counterState struct {
	Count int
	Label string
}

type incrementAction struct{ By int }

func (incrementAction) Name() ActionName { return "Increment" }
func (incrementAction) Slice() Slice     { return SliceTheme }

type labelAction struct{ Label string }

func (labelAction) Name() ActionName { return "SetLabel" }
func (labelAction) Slice() Slice     { return SliceTheme }

type unknownSliceAction struct{}

func (unknownSliceAction) Name() ActionName { return "Orphan" }
func (unknownSliceAction) Slice() Slice     { return Slice("nowhere") }

type otherAction struct{}

func (otherAction) Name() ActionName { return "Other" }
func (otherAction) Slice() Slice     { return SliceTheme }

func counterReducer(state counterState, action Action) counterState {
	switch a := action.(type) {
	case incrementAction:
		state.Count += a.By
	case labelAction:
		state.Label = a.Label
	}
	return state
}

func newCounterStore(opts ...Option) *Store {
	s := NewStore(opts...)
	s.RegisterReducer(SliceTheme, counterState{}, For(counterReducer))
	return s
}

func TestNewStore(t *testing.T) {
	s := NewStore()
	assert.True(t, s.ReducersEnabled())
	assert.Empty(t, s.Data().Slices())

	metrics := s.Metrics()
	assert.Equal(t, int64(0), metrics.ActionsDispatched)
	assert.NotNil(t, metrics.ActionsByName)
}

func TestStore_DispatchAppliesReducerAndNotifies(t *testing.T) {
	s := newCounterStore()

	var seen []int
	s.Subscribe(func(state State) {
		seen = append(seen, Select[counterState](state, SliceTheme).Count)
	})

	s.Dispatch(incrementAction{By: 2})
	s.Dispatch(incrementAction{By: 3})

	assert.Equal(t, []int{2, 5}, seen)
	assert.Equal(t, 5, Select[counterState](s.Data(), SliceTheme).Count)
}

func TestStore_UnknownSliceIsNoOp(t *testing.T) {
	s := newCounterStore()
	s.Dispatch(incrementAction{By: 1})
	before := s.Data()

	notified := 0
	s.Subscribe(func(State) { notified++ })

	s.Dispatch(unknownSliceAction{})

	assert.Equal(t, before.Map(), s.Data().Map())
	assert.Equal(t, 0, notified)
	assert.Equal(t, int64(1), s.Metrics().ActionsIgnored)
}

func TestStore_UnknownSliceIsLoggedAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logging.InitForCLI(logging.LevelDebug, &buf)
	t.Cleanup(func() { logging.InitForCLI(logging.LevelInfo, os.Stderr) })

	newCounterStore().Dispatch(unknownSliceAction{})

	assert.Contains(t, buf.String(), "Ignoring Orphan")
	assert.Contains(t, buf.String(), "subsystem=Store")
}

func TestStore_UnhandledActionReturnsSliceUnchanged(t *testing.T) {
	s := newCounterStore()
	s.Dispatch(labelAction{Label: "a"})

	s.Dispatch(otherAction{})

	assert.Equal(t, counterState{Label: "a"}, Select[counterState](s.Data(), SliceTheme))
}

func TestStore_ReducersDisabledRecordsOnly(t *testing.T) {
	s := newCounterStore(WithReducersEnabled(false))

	notified := 0
	s.Subscribe(func(State) { notified++ })

	s.Dispatch(incrementAction{By: 7})

	assert.Equal(t, 0, Select[counterState](s.Data(), SliceTheme).Count)
	assert.Equal(t, 0, notified)
	assert.Equal(t, []ActionName{"Increment"}, s.ActionNames())
	assert.Equal(t, int64(1), s.Metrics().ActionsRecordedOnly)

	s.SetSlice(SliceTheme, counterState{Count: 42})
	s.NotifyObservers()
	assert.Equal(t, 1, notified)
	assert.Equal(t, 42, Select[counterState](s.Data(), SliceTheme).Count)

	s.SetReducersEnabled(true)
	s.Dispatch(incrementAction{By: 1})
	assert.Equal(t, 43, Select[counterState](s.Data(), SliceTheme).Count)
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := newCounterStore()
	snapshot := s.Data()

	s.Dispatch(incrementAction{By: 1})

	assert.Equal(t, 0, Select[counterState](snapshot, SliceTheme).Count)
	assert.Equal(t, 1, Select[counterState](s.Data(), SliceTheme).Count)
}

func TestStore_ReentrantDispatchIsQueued(t *testing.T) {
	s := newCounterStore()

	var seen []counterState
	s.Subscribe(func(state State) {
		cs := Select[counterState](state, SliceTheme)
		seen = append(seen, cs)
		if cs.Count == 1 && cs.Label == "" {
			s.Dispatch(labelAction{Label: "after-one"})
		}
	})

	s.Dispatch(incrementAction{By: 1})

	require.Len(t, seen, 2)
	assert.Equal(t, counterState{Count: 1}, seen[0])
	assert.Equal(t, counterState{Count: 1, Label: "after-one"}, seen[1])
}

func TestStore_ObserversSeeCompleteActions(t *testing.T) {
	s := newCounterStore()

	var mu sync.Mutex
	var counts []int
	s.Subscribe(func(state State) {
		mu.Lock()
		counts = append(counts, Select[counterState](state, SliceTheme).Count)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(incrementAction{By: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, Select[counterState](s.Data(), SliceTheme).Count)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, counts, 20)
	for i, c := range counts {
		assert.Equal(t, i+1, c, "observer saw out-of-order state")
	}
}

func TestStore_ConcurrentDispatchAppliesBeforeReturning(t *testing.T) {
	s := newCounterStore()

	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var counts []int
	s.Subscribe(func(state State) {
		count := Select[counterState](state, SliceTheme).Count
		mu.Lock()
		counts = append(counts, count)
		mu.Unlock()
		if count == 1 {
			close(entered)
			<-release
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Dispatch(incrementAction{By: 1})
	}()
	<-entered

	s.Dispatch(incrementAction{By: 1})
	assert.Equal(t, 2, Select[counterState](s.Data(), SliceTheme).Count)

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, counts)
}

func TestStore_NestedDispatchIsVisibleToDispatcher(t *testing.T) {
	s := newCounterStore()

	var labelSeen string
	s.Subscribe(func(state State) {
		if Select[counterState](state, SliceTheme).Label != "" {
			return
		}
		s.Dispatch(labelAction{Label: "nested"})
		labelSeen = Select[counterState](s.Data(), SliceTheme).Label
	})

	s.Dispatch(incrementAction{By: 1})

	assert.Equal(t, "nested", labelSeen)
}

func TestStore_ReducerPanicPropagates(t *testing.T) {
	s := NewStore()
	s.RegisterReducer(SliceTheme, counterState{}, func(any, Action) any { panic("bad reducer") })

	assert.PanicsWithValue(t, "bad reducer", func() { s.Dispatch(incrementAction{}) })

	// Store stays usable after the panic.
	s.RegisterReducer(SliceTheme, counterState{}, For(counterReducer))
	s.Dispatch(incrementAction{By: 1})
	assert.Equal(t, 1, Select[counterState](s.Data(), SliceTheme).Count)
}

func TestStore_Batch(t *testing.T) {
	s := newCounterStore()
	notified := 0
	s.Subscribe(func(State) { notified++ })

	s.BeginBatch()
	s.Dispatch(incrementAction{By: 1})
	s.BeginBatch()
	s.Dispatch(incrementAction{By: 1})
	s.EndBatch()
	assert.Equal(t, 0, notified)
	s.EndBatch()

	assert.Equal(t, 1, notified)
	assert.Equal(t, 2, Select[counterState](s.Data(), SliceTheme).Count)

	s.BeginBatch()
	s.Dispatch(unknownSliceAction{})
	s.EndBatch()
	assert.Equal(t, 1, notified, "empty batch must not notify")
}

func TestStore_Reset(t *testing.T) {
	s := newCounterStore()
	s.Dispatch(incrementAction{By: 3})

	s.Reset()

	assert.Equal(t, counterState{}, Select[counterState](s.Data(), SliceTheme))
	assert.Empty(t, s.Actions())
}

func TestStore_ActionLogIsBounded(t *testing.T) {
	s := newCounterStore(WithActionLogSize(3))
	for i := 0; i < 5; i++ {
		s.Dispatch(incrementAction{By: i})
	}

	actions := s.Actions()
	require.Len(t, actions, 3)
	assert.Equal(t, incrementAction{By: 2}, actions[0])
	assert.Equal(t, int64(5), s.Metrics().ActionsByName["Increment"])
}

type recordingRecorder struct {
	mu       sync.Mutex
	outcomes []Outcome
	notified int
}

func (r *recordingRecorder) ActionDispatched(_ Action, outcome Outcome, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingRecorder) ObserversNotified(delivered, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notified += delivered
}

func TestStore_Recorder(t *testing.T) {
	rec := &recordingRecorder{}
	s := newCounterStore(WithRecorder(rec))
	s.Subscribe(func(State) {})

	s.Dispatch(incrementAction{By: 1})
	s.Dispatch(unknownSliceAction{})
	s.SetReducersEnabled(false)
	s.Dispatch(incrementAction{By: 1})

	assert.Equal(t, []Outcome{OutcomeApplied, OutcomeIgnored, OutcomeRecorded}, rec.outcomes)
	assert.Equal(t, 1, rec.notified)
}

type mockRecorder struct{ mock.Mock }

func (m *mockRecorder) ActionDispatched(action Action, outcome Outcome, took time.Duration) {
	m.Called(action, outcome, took)
}

func (m *mockRecorder) ObserversNotified(delivered, dropped int) {
	m.Called(delivered, dropped)
}

func TestStore_AddRecorderSeesLaterDispatches(t *testing.T) {
	rec := &mockRecorder{}
	rec.On("ActionDispatched", labelAction{Label: "x"}, OutcomeApplied, mock.AnythingOfType("time.Duration")).Once()
	rec.On("ObserversNotified", mock.Anything, mock.Anything).Maybe()

	s := newCounterStore()
	s.Dispatch(incrementAction{By: 1})
	s.AddRecorder(rec)
	s.Dispatch(labelAction{Label: "x"})

	rec.AssertExpectations(t)
}
