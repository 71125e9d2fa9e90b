package store

// Slice names a subtree of the state tree owned by one reducer.
type Slice string

const (
	SliceAmbient           Slice = "ambient"
	SliceWallpaper         Slice = "wallpaper"
	SliceUser              Slice = "user"
	SliceTheme             Slice = "theme"
	SliceKeyboardBacklight Slice = "keyboardBacklight"
	SliceSeaPen            Slice = "seaPen"
	SliceError             Slice = "error"
)

// String makes Slice satisfy the fmt.Stringer interface.
func (s Slice) String() string {
	return string(s)
}

// ActionName is the discriminant of an action.
type ActionName string

// String makes ActionName satisfy the fmt.Stringer interface.
func (n ActionName) String() string {
	return string(n)
}

// Action describes a requested state transition. Concrete actions are plain
// structs; their fields are the payload.
type Action interface {
	// Name returns the action discriminant.
	Name() ActionName

	// Slice returns the slice whose reducer handles the action.
	Slice() Slice
}

// Outcome describes what the store did with a dispatched action.
type Outcome string

const (
	// OutcomeApplied means a reducer ran and observers were (or will be, at
	// the end of a batch) notified.
	OutcomeApplied Outcome = "applied"
	// OutcomeIgnored means no reducer is registered for the action's slice.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeRecorded means reducers are disabled and the action was only logged.
	OutcomeRecorded Outcome = "recorded"
)

// Dispatcher is the store surface used by bridges and controllers.
type Dispatcher interface {
	Dispatch(action Action)
	Data() State
}

var _ Dispatcher = (*Store)(nil)
