// Package keyboard manages the keyboard backlight slice.
package keyboard

import "personalization/internal/store"

// BacklightColor is a preset backlight color.
type BacklightColor int

const (
	ColorWallpaper BacklightColor = iota
	ColorWhite
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
	ColorIndigo
	ColorPurple
	ColorRainbow
)

var colorNames = [...]string{"wallpaper", "white", "red", "yellow", "green", "blue", "indigo", "purple", "rainbow"}

func (c BacklightColor) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ParseBacklightColor is the inverse of BacklightColor.String.
func ParseBacklightColor(s string) (BacklightColor, bool) {
	for i, n := range colorNames {
		if n == s {
			return BacklightColor(i), true
		}
	}
	return 0, false
}

// BacklightState is either one color for the whole keyboard or one color per
// zone.
type BacklightState struct {
	Color      *BacklightColor  `json:"color,omitempty" yaml:"color,omitempty"`
	ZoneColors []BacklightColor `json:"zoneColors,omitempty" yaml:"zoneColors,omitempty"`
}

// State is the keyboard backlight slice.
type State struct {
	Current         *BacklightState `json:"currentBacklightState" yaml:"currentBacklightState"`
	WallpaperColor  *uint32         `json:"wallpaperColor" yaml:"wallpaperColor"`
	ShouldShowNudge bool            `json:"shouldShowNudge" yaml:"shouldShowNudge"`
	ZoneCount       int             `json:"zoneCount" yaml:"zoneCount"`
}

func InitialState() State {
	return State{}
}

const (
	ActionSetBacklightState  store.ActionName = "SetCurrentBacklightState"
	ActionSetWallpaperColor  store.ActionName = "SetWallpaperColor"
	ActionSetShouldShowNudge store.ActionName = "SetShouldShowNudge"
	ActionSetZoneCount       store.ActionName = "SetZoneCount"
)

type SetBacklightState struct{ State BacklightState }

func (SetBacklightState) Name() store.ActionName { return ActionSetBacklightState }
func (SetBacklightState) Slice() store.Slice     { return store.SliceKeyboardBacklight }

type SetWallpaperColor struct{ Color uint32 }

func (SetWallpaperColor) Name() store.ActionName { return ActionSetWallpaperColor }
func (SetWallpaperColor) Slice() store.Slice     { return store.SliceKeyboardBacklight }

type SetShouldShowNudge struct{ Show bool }

func (SetShouldShowNudge) Name() store.ActionName { return ActionSetShouldShowNudge }
func (SetShouldShowNudge) Slice() store.Slice     { return store.SliceKeyboardBacklight }

type SetZoneCount struct{ Count int }

func (SetZoneCount) Name() store.ActionName { return ActionSetZoneCount }
func (SetZoneCount) Slice() store.Slice     { return store.SliceKeyboardBacklight }

func reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case SetBacklightState:
		next := BacklightState{ZoneColors: append([]BacklightColor(nil), a.State.ZoneColors...)}
		if a.State.Color != nil {
			c := *a.State.Color
			next.Color = &c
		}
		state.Current = &next
	case SetWallpaperColor:
		c := a.Color
		state.WallpaperColor = &c
	case SetShouldShowNudge:
		state.ShouldShowNudge = a.Show
	case SetZoneCount:
		state.ZoneCount = a.Count
	}
	return state
}

// Reducer is the keyboard backlight slice reducer.
var Reducer = store.For(reduce)

// Select returns the keyboard backlight slice of s.
func Select(s store.State) State {
	return store.Select[State](s, store.SliceKeyboardBacklight)
}
