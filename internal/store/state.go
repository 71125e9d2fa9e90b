package store

import "sort"

// State is an immutable snapshot of the state tree.
type State struct {
	slices map[Slice]any
}

// Get returns the value stored for slice.
func (s State) Get(slice Slice) (any, bool) {
	v, ok := s.slices[slice]
	return v, ok
}

// Slices returns the slice names present in the snapshot, sorted.
func (s State) Slices() []Slice {
	names := make([]Slice, 0, len(s.slices))
	for name := range s.slices {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Map returns a copy of the tree keyed by slice name, suitable for encoding.
func (s State) Map() map[string]any {
	out := make(map[string]any, len(s.slices))
	for name, v := range s.slices {
		out[string(name)] = v
	}
	return out
}

// Select returns the typed value of slice, or the zero value of T if the slice
// is missing or holds another type.
func Select[T any](s State, slice Slice) T {
	v, _ := s.slices[slice].(T)
	return v
}

func cloneSlices(in map[Slice]any) map[Slice]any {
	out := make(map[Slice]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
