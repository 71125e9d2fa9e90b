package theme

import (
	"context"
	"fmt"

	"personalization/internal/store"
)

// InitializeData loads the sample color schemes; the rest arrives via the bridge.
func InitializeData(ctx context.Context, provider Provider, s store.Dispatcher) error {
	return FetchSampleColorSchemes(ctx, provider, s)
}

// SetColorModePref switches dark mode. Choosing a mode manually turns the
// automatic schedule off.
func SetColorModePref(ctx context.Context, darkModeEnabled bool, provider Provider, s store.Dispatcher) error {
	if err := provider.SetColorModePref(ctx, darkModeEnabled); err != nil {
		return fmt.Errorf("set color mode pref: %w", err)
	}
	s.Dispatch(SetDarkModeEnabled{Enabled: darkModeEnabled})
	if auto := Select(s.Data()).ColorModeAutoScheduleEnabled; auto != nil && *auto {
		return SetColorModeAutoSchedule(ctx, false, provider, s)
	}
	return nil
}

// SetColorModeAutoSchedule toggles the sunrise/sunset schedule.
func SetColorModeAutoSchedule(ctx context.Context, enabled bool, provider Provider, s store.Dispatcher) error {
	if err := provider.SetColorModeAutoScheduleEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("set color mode auto schedule: %w", err)
	}
	s.Dispatch(SetColorModeAutoScheduleEnabled{Enabled: enabled})
	return nil
}

// UpdateColorScheme selects a dynamic scheme and clears the static color.
func UpdateColorScheme(ctx context.Context, scheme ColorScheme, provider Provider, s store.Dispatcher) error {
	if err := provider.SetColorScheme(ctx, scheme); err != nil {
		return fmt.Errorf("set color scheme: %w", err)
	}
	s.Dispatch(SetColorScheme{Scheme: scheme})
	if scheme != ColorSchemeStatic {
		s.Dispatch(SetStaticColor{Color: nil})
	}
	return nil
}

// UpdateStaticColor selects a static color, which implies the static scheme.
func UpdateStaticColor(ctx context.Context, color uint32, provider Provider, s store.Dispatcher) error {
	if err := provider.SetStaticColor(ctx, color); err != nil {
		return fmt.Errorf("set static color: %w", err)
	}
	s.Dispatch(SetStaticColor{Color: &color})
	s.Dispatch(SetColorScheme{Scheme: ColorSchemeStatic})
	return nil
}

// FetchSampleColorSchemes loads the scheme previews.
func FetchSampleColorSchemes(ctx context.Context, provider Provider, s store.Dispatcher) error {
	samples, err := provider.GenerateSampleColorSchemes(ctx)
	if err != nil {
		return fmt.Errorf("generate sample color schemes: %w", err)
	}
	s.Dispatch(SetSampleColorSchemes{Samples: samples})
	return nil
}

// EnableGeolocation grants the location permission needed by the schedule.
func EnableGeolocation(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := provider.EnableGeolocationForSystemServices(ctx); err != nil {
		return fmt.Errorf("enable geolocation: %w", err)
	}
	s.Dispatch(SetGeolocationPermissionEnabled{Enabled: true})
	return nil
}
