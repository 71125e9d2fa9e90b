package testing

import (
	"personalization/internal/config"
	"personalization/internal/personalization"
)

// Mocks holds one in-memory provider per domain.
type Mocks struct {
	Ambient   *AmbientProvider
	Wallpaper *WallpaperProvider
	Theme     *ThemeProvider
	User      *UserProvider
	Keyboard  *KeyboardBacklightProvider
	SeaPen    *SeaPenProvider
}

// NewMocks returns providers loaded with the built-in canned data.
func NewMocks() *Mocks {
	return &Mocks{
		Ambient:   NewAmbientProvider(),
		Wallpaper: NewWallpaperProvider(),
		Theme:     NewThemeProvider(),
		User:      NewUserProvider(),
		Keyboard:  NewKeyboardBacklightProvider(),
		SeaPen:    NewSeaPenProvider(),
	}
}

// Providers returns the mocks as the app's provider set.
func (m *Mocks) Providers() personalization.Providers {
	return personalization.Providers{
		Ambient:   m.Ambient,
		Wallpaper: m.Wallpaper,
		Theme:     m.Theme,
		User:      m.User,
		Keyboard:  m.Keyboard,
		SeaPen:    m.SeaPen,
	}
}

// SetEcho turns push-on-select on or off for every provider that supports it.
// Call it before the providers are in use.
func (m *Mocks) SetEcho(echo bool) {
	m.Wallpaper.Echo = echo
	m.User.Echo = echo
	m.Keyboard.Echo = echo
	m.SeaPen.Echo = echo
}

// ApplyFixtures replaces canned data with the non-empty parts of f. Call it
// before the providers are in use.
func (m *Mocks) ApplyFixtures(f config.Fixtures) {
	if f.UserInfo != nil {
		m.User.Info = *f.UserInfo
	}
	if len(f.DefaultUserImages) > 0 {
		m.User.DefaultImages = f.DefaultUserImages
	}
	if len(f.AmbientAlbums) > 0 {
		m.Ambient.Settings.Albums = f.AmbientAlbums
	}
	if len(f.Collections) > 0 {
		m.Wallpaper.Collections = f.Collections
	}
	if len(f.Images) > 0 {
		m.Wallpaper.Images = f.Images
	}
}
