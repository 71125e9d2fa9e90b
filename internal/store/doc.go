// Package store implements the personalization state container.
//
// A Store owns a single state tree split into named slices ("ambient",
// "wallpaper", "user", ...). Each slice is owned by exactly one Reducer.
// State changes are requested by dispatching an Action; the store looks up
// the reducer for the action's slice, replaces that slice with the reducer's
// result and then notifies every subscribed observer with the full snapshot.
//
// # Dispatch Semantics
//
//   - Actions are applied one at a time, to completion, under the store lock.
//     Observers never see a partially applied action.
//   - Dispatch applies its action before returning on every goroutine, so a
//     caller reading Data afterwards sees its own change.
//   - Recorder and observer callbacks run on one goroutine at a time, in the
//     order the actions were applied. Dispatching from inside an observer, or
//     from another goroutine while callbacks are running, queues the
//     callbacks for the new action behind the current round; the goroutine
//     already running callbacks delivers them before it returns.
//   - An action whose slice has no registered reducer is ignored: the state is
//     not touched and observers are not notified.
//   - Reducers can be disabled (test-only). Dispatched actions are then only
//     recorded; tests may mutate state directly through SetSlice.
//
// # Waiting for Actions
//
// ExpectAction registers a one-shot waiter for an action name. At most one
// waiter per name is outstanding; registering another supersedes the first,
// whose Wait returns ErrWaitSuperseded. Waits time out after the store's wait
// timeout unless the caller's context already carries a deadline.
//
// # Usage Example
//
//	s := store.NewStore()
//	s.RegisterReducer(store.SliceTheme, theme.InitialState(), theme.Reducer)
//
//	sub := s.Subscribe(func(state store.State) {
//	    fmt.Println(store.Select[theme.State](state, store.SliceTheme).DarkModeEnabled)
//	})
//	defer s.Unsubscribe(sub)
//
//	s.Dispatch(theme.SetDarkModeEnabled{Enabled: true})
package store
