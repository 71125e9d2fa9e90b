package store

// Reducer maps the current value of a slice and an action to the slice's next
// value. Reducers must be pure: no input mutation, no dispatching, and actions
// they do not handle are returned unchanged.
type Reducer func(current any, action Action) any

// For adapts a typed reducer to the untyped Reducer signature. A missing or
// mistyped current value is passed to fn as the zero value of T.
func For[T any](fn func(T, Action) T) Reducer {
	return func(current any, action Action) any {
		v, _ := current.(T)
		return fn(v, action)
	}
}
