package testing

import (
	"context"
	"sync"

	"personalization/internal/theme"
)

// ThemeProvider is an in-memory theme.Provider. Registering an observer pushes
// the current values, the way the system service does.
type ThemeProvider struct {
	CallRecorder

	mu       sync.Mutex
	observer theme.Observer

	DarkModeEnabled    bool
	AutoSchedule       bool
	ColorScheme        theme.ColorScheme
	StaticColor        *uint32
	Geolocation        bool
	SampleColorSchemes []theme.SampleColorScheme
}

var _ theme.Provider = (*ThemeProvider)(nil)

// NewThemeProvider returns a light-mode provider on the tonal spot scheme.
func NewThemeProvider() *ThemeProvider {
	return &ThemeProvider{
		ColorScheme: theme.ColorSchemeTonalSpot,
		Geolocation: true,
		SampleColorSchemes: []theme.SampleColorScheme{
			{Scheme: theme.ColorSchemeTonalSpot, Primary: 0xff3f51b5, Secondary: 0xff7986cb, Tertiary: 0xffc5cae9},
			{Scheme: theme.ColorSchemeNeutral, Primary: 0xff607d8b, Secondary: 0xff90a4ae, Tertiary: 0xffcfd8dc},
			{Scheme: theme.ColorSchemeVibrant, Primary: 0xffe91e63, Secondary: 0xfff06292, Tertiary: 0xfff8bbd0},
			{Scheme: theme.ColorSchemeExpressive, Primary: 0xff009688, Secondary: 0xff4db6ac, Tertiary: 0xffb2dfdb},
		},
	}
}

// Observer returns the registered observer remote, or nil.
func (p *ThemeProvider) Observer() theme.Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observer
}

func (p *ThemeProvider) SetThemeObserver(observer theme.Observer) {
	p.MethodCalled("SetThemeObserver", observer)
	p.mu.Lock()
	p.observer = observer
	p.mu.Unlock()
	if observer == nil {
		return
	}
	observer.OnColorModeChanged(p.DarkModeEnabled)
	observer.OnColorModeAutoScheduleChanged(p.AutoSchedule)
	observer.OnColorSchemeChanged(p.ColorScheme)
	observer.OnStaticColorChanged(p.StaticColor)
	observer.OnGeolocationPermissionChanged(p.Geolocation)
}

func (p *ThemeProvider) SetColorModePref(ctx context.Context, darkModeEnabled bool) error {
	return p.MethodCalled("SetColorModePref", darkModeEnabled)
}

func (p *ThemeProvider) SetColorModeAutoScheduleEnabled(ctx context.Context, enabled bool) error {
	return p.MethodCalled("SetColorModeAutoScheduleEnabled", enabled)
}

func (p *ThemeProvider) SetColorScheme(ctx context.Context, scheme theme.ColorScheme) error {
	return p.MethodCalled("SetColorScheme", scheme)
}

func (p *ThemeProvider) SetStaticColor(ctx context.Context, color uint32) error {
	return p.MethodCalled("SetStaticColor", color)
}

func (p *ThemeProvider) GenerateSampleColorSchemes(ctx context.Context) ([]theme.SampleColorScheme, error) {
	if err := p.MethodCalled("GenerateSampleColorSchemes"); err != nil {
		return nil, err
	}
	return append([]theme.SampleColorScheme(nil), p.SampleColorSchemes...), nil
}

func (p *ThemeProvider) EnableGeolocationForSystemServices(ctx context.Context) error {
	return p.MethodCalled("EnableGeolocationForSystemServices")
}
