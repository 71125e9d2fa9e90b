package theme

import "context"

// Observer receives theme push events.
type Observer interface {
	OnColorModeChanged(darkModeEnabled bool)
	OnColorModeAutoScheduleChanged(enabled bool)
	OnColorSchemeChanged(scheme ColorScheme)
	OnStaticColorChanged(color *uint32)
	OnGeolocationPermissionChanged(enabled bool)
}

// Provider is the theme backend. Current values are pushed to the observer as
// soon as it is registered.
type Provider interface {
	SetThemeObserver(observer Observer)

	SetColorModePref(ctx context.Context, darkModeEnabled bool) error
	SetColorModeAutoScheduleEnabled(ctx context.Context, enabled bool) error
	SetColorScheme(ctx context.Context, scheme ColorScheme) error
	SetStaticColor(ctx context.Context, color uint32) error
	GenerateSampleColorSchemes(ctx context.Context) ([]SampleColorScheme, error)
	EnableGeolocationForSystemServices(ctx context.Context) error
}
