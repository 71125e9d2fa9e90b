// Package theme manages the theme slice: dark/light mode, its automatic
// schedule, and dynamic color (scheme or static color).
package theme

import (
	"fmt"

	"personalization/internal/store"
)

// ColorScheme is the dynamic color scheme derived from the wallpaper.
type ColorScheme int

const (
	ColorSchemeStatic ColorScheme = iota
	ColorSchemeTonalSpot
	ColorSchemeNeutral
	ColorSchemeExpressive
	ColorSchemeVibrant
)

// String returns the scheme name.
func (c ColorScheme) String() string {
	switch c {
	case ColorSchemeStatic:
		return "static"
	case ColorSchemeTonalSpot:
		return "tonal-spot"
	case ColorSchemeNeutral:
		return "neutral"
	case ColorSchemeExpressive:
		return "expressive"
	case ColorSchemeVibrant:
		return "vibrant"
	default:
		return "unknown"
	}
}

// ParseColorScheme is the inverse of String.
func ParseColorScheme(name string) (ColorScheme, error) {
	for c := ColorSchemeStatic; c <= ColorSchemeVibrant; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color scheme %q", name)
}

// SampleColorScheme previews a scheme with a few representative colors.
type SampleColorScheme struct {
	Scheme    ColorScheme `json:"scheme" yaml:"scheme"`
	Primary   uint32      `json:"primary" yaml:"primary"`
	Secondary uint32      `json:"secondary" yaml:"secondary"`
	Tertiary  uint32      `json:"tertiary" yaml:"tertiary"`
}

// State is the theme slice. Nil pointers mean "not loaded yet".
type State struct {
	DarkModeEnabled              *bool               `json:"darkModeEnabled" yaml:"darkModeEnabled"`
	ColorModeAutoScheduleEnabled *bool               `json:"colorModeAutoScheduleEnabled" yaml:"colorModeAutoScheduleEnabled"`
	ColorSchemeSelected          *ColorScheme        `json:"colorSchemeSelected" yaml:"colorSchemeSelected"`
	StaticColorSelected          *uint32             `json:"staticColorSelected" yaml:"staticColorSelected"`
	SampleColorSchemes           []SampleColorScheme `json:"sampleColorSchemes" yaml:"sampleColorSchemes"`
	GeolocationPermissionEnabled *bool               `json:"geolocationPermissionEnabled" yaml:"geolocationPermissionEnabled"`
}

// InitialState returns the unloaded theme slice.
func InitialState() State {
	return State{}
}

const (
	ActionSetDarkModeEnabled              store.ActionName = "SetDarkModeEnabled"
	ActionSetColorModeAutoScheduleEnabled store.ActionName = "SetColorModeAutoScheduleEnabled"
	ActionSetColorScheme                  store.ActionName = "SetColorScheme"
	ActionSetStaticColor                  store.ActionName = "SetStaticColor"
	ActionSetSampleColorSchemes           store.ActionName = "SetSampleColorSchemes"
	ActionSetGeolocationPermission        store.ActionName = "SetGeolocationPermissionEnabled"
)

type SetDarkModeEnabled struct{ Enabled bool }

func (SetDarkModeEnabled) Name() store.ActionName { return ActionSetDarkModeEnabled }
func (SetDarkModeEnabled) Slice() store.Slice     { return store.SliceTheme }

type SetColorModeAutoScheduleEnabled struct{ Enabled bool }

func (SetColorModeAutoScheduleEnabled) Name() store.ActionName {
	return ActionSetColorModeAutoScheduleEnabled
}
func (SetColorModeAutoScheduleEnabled) Slice() store.Slice { return store.SliceTheme }

type SetColorScheme struct{ Scheme ColorScheme }

func (SetColorScheme) Name() store.ActionName { return ActionSetColorScheme }
func (SetColorScheme) Slice() store.Slice     { return store.SliceTheme }

// SetStaticColor selects a static color; nil clears it.
type SetStaticColor struct{ Color *uint32 }

func (SetStaticColor) Name() store.ActionName { return ActionSetStaticColor }
func (SetStaticColor) Slice() store.Slice     { return store.SliceTheme }

type SetSampleColorSchemes struct{ Samples []SampleColorScheme }

func (SetSampleColorSchemes) Name() store.ActionName { return ActionSetSampleColorSchemes }
func (SetSampleColorSchemes) Slice() store.Slice     { return store.SliceTheme }

type SetGeolocationPermissionEnabled struct{ Enabled bool }

func (SetGeolocationPermissionEnabled) Name() store.ActionName {
	return ActionSetGeolocationPermission
}
func (SetGeolocationPermissionEnabled) Slice() store.Slice { return store.SliceTheme }

func reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case SetDarkModeEnabled:
		v := a.Enabled
		state.DarkModeEnabled = &v
	case SetColorModeAutoScheduleEnabled:
		v := a.Enabled
		state.ColorModeAutoScheduleEnabled = &v
	case SetColorScheme:
		v := a.Scheme
		state.ColorSchemeSelected = &v
	case SetStaticColor:
		if a.Color == nil {
			state.StaticColorSelected = nil
		} else {
			v := *a.Color
			state.StaticColorSelected = &v
		}
	case SetSampleColorSchemes:
		state.SampleColorSchemes = append([]SampleColorScheme(nil), a.Samples...)
	case SetGeolocationPermissionEnabled:
		v := a.Enabled
		state.GeolocationPermissionEnabled = &v
	}
	return state
}

// Reducer is the theme slice reducer.
var Reducer = store.For(reduce)

// Select returns the theme slice of s.
func Select(s store.State) State {
	return store.Select[State](s, store.SliceTheme)
}
