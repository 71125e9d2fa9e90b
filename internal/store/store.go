package store

import (
	"sync"
	"time"

	"personalization/pkg/logging"
)

const subsystem = "Store"

const (
	defaultWaitTimeout   = 5 * time.Second
	defaultActionLogSize = 1000
)

// Option configures a Store.
type Option func(*Store)

// WithReducersEnabled sets whether dispatched actions run reducers.
func WithReducersEnabled(enabled bool) Option {
	return func(s *Store) { s.reducersEnabled = enabled }
}

// WithWaitTimeout bounds ExpectAction waits whose context has no deadline.
// Zero disables the bound.
func WithWaitTimeout(d time.Duration) Option {
	return func(s *Store) { s.waitTimeout = d }
}

// WithActionLogSize caps the number of actions kept for inspection.
func WithActionLogSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.actionLogSize = n
		}
	}
}

// WithRecorder attaches a Recorder. May be given more than once.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		if r != nil {
			s.recorders = append(s.recorders, r)
		}
	}
}

// Store holds the state tree, applies dispatched actions through reducers and
// notifies observers.
type Store struct {
	mu sync.Mutex

	state    map[Slice]any
	initial  map[Slice]any
	reducers map[Slice]Reducer

	reducersEnabled bool
	waitTimeout     time.Duration
	actionLogSize   int

	subscriptions []*Subscription
	waiters       map[ActionName]*Expectation
	actions       []Action
	recorders     []Recorder
	metrics       Metrics

	queue         []pending
	dispatching   bool
	batchDepth    int
	pendingNotify bool
}

// NewStore creates an empty store. Slices are added with RegisterReducer.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:           make(map[Slice]any),
		initial:         make(map[Slice]any),
		reducers:        make(map[Slice]Reducer),
		reducersEnabled: true,
		waitTimeout:     defaultWaitTimeout,
		actionLogSize:   defaultActionLogSize,
		waiters:         make(map[ActionName]*Expectation),
		metrics: Metrics{
			ActionsByName: make(map[ActionName]int64),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterReducer installs the reducer owning slice and seeds the slice with
// initial. Re-registering replaces the reducer but keeps the current value.
func (s *Store) RegisterReducer(slice Slice, initial any, reducer Reducer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reducers[slice] = reducer
	s.initial[slice] = initial
	if _, exists := s.state[slice]; !exists {
		s.state[slice] = initial
	}
}

// HasReducer reports whether a reducer is registered for slice.
func (s *Store) HasReducer(slice Slice) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.reducers[slice]
	return ok
}

// SetReducersEnabled toggles reducer application. With reducers disabled,
// dispatched actions are only recorded.
func (s *Store) SetReducersEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reducersEnabled = enabled
}

// ReducersEnabled reports whether reducers are applied on dispatch.
func (s *Store) ReducersEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reducersEnabled
}

// Data returns the current state snapshot.
func (s *Store) Data() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{slices: cloneSlices(s.state)}
}

// SetSlice replaces a slice directly without running reducers or notifying
// observers. Intended for tests running with reducers disabled; pair it with
// NotifyObservers.
func (s *Store) SetSlice(slice Slice, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[slice] = value
}

// NotifyObservers delivers the current snapshot to every observer, after any
// notification already queued.
func (s *Store) NotifyObservers() {
	s.mu.Lock()
	s.queue = append(s.queue, pending{notify: true, snapshot: State{slices: cloneSlices(s.state)}})
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	s.mu.Unlock()

	s.drain()
}

// Reset restores every slice to its registered initial value and clears the
// action log. Subscriptions and pending expectations are kept.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneSlices(s.initial)
	s.actions = nil
}

// Dispatch applies action. The reducer has run and Data reflects the result
// by the time Dispatch returns, whichever goroutine calls it. See the package
// documentation for notification ordering. A panicking reducer propagates out
// of Dispatch and discards any queued notifications.
func (s *Store) Dispatch(action Action) {
	if action == nil {
		return
	}
	if s.enqueue(action) {
		s.drain()
	}
}

// pending is one queued round of recorder and observer callbacks. action is
// nil for rounds that only notify.
type pending struct {
	action   Action
	outcome  Outcome
	took     time.Duration
	notify   bool
	snapshot State
}

// enqueue applies action and queues its callbacks. It reports whether the
// caller became the dispatcher and must drain the queue.
func (s *Store) enqueue(action Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	outcome := s.applyLocked(action)
	s.resolveWaiterLocked(action)

	p := pending{action: action, outcome: outcome, took: time.Since(start)}
	if outcome == OutcomeApplied {
		if s.batchDepth > 0 {
			s.pendingNotify = true
		} else {
			p.notify = true
			p.snapshot = State{slices: cloneSlices(s.state)}
		}
	}
	s.queue = append(s.queue, p)

	if s.dispatching {
		return false
	}
	s.dispatching = true
	return true
}

// drain runs queued callbacks in order until the queue is empty. Only one
// goroutine drains at a time.
func (s *Store) drain() {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.dispatching = false
			s.queue = nil
			s.mu.Unlock()
			panic(r)
		}
	}()

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.dispatching = false
			s.mu.Unlock()
			return
		}
		next := s.queue[0]
		s.queue = s.queue[1:]
		subs := append([]*Subscription(nil), s.subscriptions...)
		recorders := append([]Recorder(nil), s.recorders...)
		s.mu.Unlock()

		if next.action != nil {
			for _, r := range recorders {
				r.ActionDispatched(next.action, next.outcome, next.took)
			}
		}
		if next.notify {
			s.deliver(next.snapshot, subs)
		}
	}
}

// applyLocked runs the reducer for action. Caller holds s.mu.
func (s *Store) applyLocked(action Action) Outcome {
	s.recordLocked(action)

	if !s.reducersEnabled {
		s.metrics.ActionsRecordedOnly++
		return OutcomeRecorded
	}

	reducer, ok := s.reducers[action.Slice()]
	if !ok || reducer == nil {
		s.metrics.ActionsIgnored++
		logging.Debug(subsystem, "Ignoring %s: no reducer for slice %q", action.Name(), action.Slice())
		return OutcomeIgnored
	}

	s.state[action.Slice()] = reducer(s.state[action.Slice()], action)
	s.metrics.ActionsApplied++
	return OutcomeApplied
}

func (s *Store) recordLocked(action Action) {
	s.actions = append(s.actions, action)
	if over := len(s.actions) - s.actionLogSize; over > 0 {
		s.actions = append([]Action(nil), s.actions[over:]...)
	}
	s.metrics.ActionsDispatched++
	s.metrics.ActionsByName[action.Name()]++
	s.metrics.LastDispatch = time.Now()
}

// BeginBatch defers observer notification until the matching EndBatch.
// Batches nest; only the outermost EndBatch notifies.
func (s *Store) BeginBatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batchDepth++
}

// EndBatch closes a batch and, if any action was applied inside it, notifies
// observers once with the resulting state.
func (s *Store) EndBatch() {
	s.mu.Lock()
	if s.batchDepth == 0 {
		s.mu.Unlock()
		return
	}
	s.batchDepth--
	if s.batchDepth > 0 || !s.pendingNotify {
		s.mu.Unlock()
		return
	}
	s.pendingNotify = false
	s.queue = append(s.queue, pending{notify: true, snapshot: State{slices: cloneSlices(s.state)}})
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	s.mu.Unlock()

	s.drain()
}

// AddRecorder attaches r after construction. Dispatches already in flight
// may not report to it.
func (s *Store) AddRecorder(r Recorder) {
	if r == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorders = append(s.recorders, r)
}

// Subscribe registers fn to be called after each applied action.
func (s *Store) Subscribe(fn Observer) *Subscription {
	return s.addSubscription(newSubscription(fn, nil))
}

// Watch registers a channel subscription with the given buffer size.
func (s *Store) Watch(bufferSize int) *Subscription {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return s.addSubscription(newSubscription(nil, make(chan State, bufferSize)))
}

func (s *Store) addSubscription(sub *Subscription) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions = append(s.subscriptions, sub)
	s.metrics.TotalSubscriptions++
	s.metrics.ActiveSubscriptions++
	return sub
}

// Unsubscribe removes and closes sub. Unknown subscriptions are ignored.
func (s *Store) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.subscriptions {
		if existing == sub {
			s.subscriptions = append(s.subscriptions[:i:i], s.subscriptions[i+1:]...)
			s.metrics.ActiveSubscriptions--
			sub.Close()
			return
		}
	}
}

func (s *Store) deliver(snapshot State, subs []*Subscription) {
	delivered, dropped := 0, 0
	for _, sub := range subs {
		if sub.deliver(snapshot) {
			delivered++
		} else if !sub.IsClosed() {
			dropped++
		}
	}

	s.mu.Lock()
	s.metrics.Notifications += int64(delivered)
	s.metrics.DroppedNotifications += int64(dropped)
	recorders := append([]Recorder(nil), s.recorders...)
	s.mu.Unlock()

	for _, r := range recorders {
		r.ObserversNotified(delivered, dropped)
	}
}

// Actions returns the dispatched actions, oldest first.
func (s *Store) Actions() []Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Action(nil), s.actions...)
}

// ActionNames returns the names of the dispatched actions, oldest first.
func (s *Store) ActionNames() []ActionName {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]ActionName, len(s.actions))
	for i, a := range s.actions {
		names[i] = a.Name()
	}
	return names
}

// ClearActions empties the action log.
func (s *Store) ClearActions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = nil
}

// Metrics returns a copy of the store metrics.
func (s *Store) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics.clone()
}
