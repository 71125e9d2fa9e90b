// Package personalization wires the domain slices, providers and observer
// bridges into one application core.
package personalization

import (
	"context"
	"errors"
	"fmt"

	"personalization/internal/ambient"
	"personalization/internal/errorstate"
	"personalization/internal/keyboard"
	"personalization/internal/router"
	"personalization/internal/seapen"
	"personalization/internal/store"
	"personalization/internal/theme"
	"personalization/internal/toast"
	"personalization/internal/user"
	"personalization/internal/wallpaper"
	"personalization/pkg/logging"
)

const subsystem = "Bootstrap"

// RegisterReducers installs every slice reducer with its initial state.
func RegisterReducers(s *store.Store) {
	s.RegisterReducer(store.SliceAmbient, ambient.InitialState(), ambient.Reducer)
	s.RegisterReducer(store.SliceWallpaper, wallpaper.InitialState(), wallpaper.Reducer)
	s.RegisterReducer(store.SliceTheme, theme.InitialState(), theme.Reducer)
	s.RegisterReducer(store.SliceUser, user.InitialState(), user.Reducer)
	s.RegisterReducer(store.SliceKeyboardBacklight, keyboard.InitialState(), keyboard.Reducer)
	s.RegisterReducer(store.SliceSeaPen, seapen.InitialState(), seapen.Reducer)
	s.RegisterReducer(store.SliceError, errorstate.InitialState(), errorstate.Reducer)
}

// NewStore returns a store with every slice registered.
func NewStore(opts ...store.Option) *store.Store {
	s := store.NewStore(opts...)
	RegisterReducers(s)
	return s
}

// Providers groups one backend per domain.
type Providers struct {
	Ambient   ambient.Provider
	Wallpaper wallpaper.Provider
	Theme     theme.Provider
	User      user.Provider
	Keyboard  keyboard.Provider
	SeaPen    seapen.Provider
}

// Validate reports missing providers.
func (p Providers) Validate() error {
	var errs []error
	check := func(name string, missing bool) {
		if missing {
			errs = append(errs, fmt.Errorf("missing %s provider", name))
		}
	}
	check("ambient", p.Ambient == nil)
	check("wallpaper", p.Wallpaper == nil)
	check("theme", p.Theme == nil)
	check("user", p.User == nil)
	check("keyboard backlight", p.Keyboard == nil)
	check("SeaPen", p.SeaPen == nil)
	return errors.Join(errs...)
}

// Bridges groups one observer bridge per domain.
type Bridges struct {
	Ambient   *ambient.Bridge
	Wallpaper *wallpaper.Bridge
	Theme     *theme.Bridge
	User      *user.Bridge
	Keyboard  *keyboard.Bridge
	SeaPen    *seapen.Bridge
}

// NewBridges returns unbound bridges.
func NewBridges() *Bridges {
	return &Bridges{
		Ambient:   ambient.NewBridge(),
		Wallpaper: wallpaper.NewBridge(),
		Theme:     theme.NewBridge(),
		User:      user.NewBridge(),
		Keyboard:  keyboard.NewBridge(),
		SeaPen:    seapen.NewBridge(),
	}
}

// InitIfNeeded binds every bridge that is not bound yet.
func (b *Bridges) InitIfNeeded(p Providers, s store.Dispatcher) {
	b.Ambient.InitIfNeeded(p.Ambient, s)
	b.Wallpaper.InitIfNeeded(p.Wallpaper, s)
	b.Theme.InitIfNeeded(p.Theme, s)
	b.User.InitIfNeeded(p.User, s)
	b.Keyboard.InitIfNeeded(p.Keyboard, s)
	b.SeaPen.InitIfNeeded(p.SeaPen, s)
}

// Shutdown unbinds every bridge.
func (b *Bridges) Shutdown() {
	b.Ambient.Shutdown()
	b.Wallpaper.Shutdown()
	b.Theme.Shutdown()
	b.User.Shutdown()
	b.Keyboard.Shutdown()
	b.SeaPen.Shutdown()
}

// Bound returns the bound state of each bridge by domain name.
func (b *Bridges) Bound() map[string]bool {
	return map[string]bool{
		"ambient":           b.Ambient.Bound(),
		"wallpaper":         b.Wallpaper.Bound(),
		"theme":             b.Theme.Bound(),
		"user":              b.User.Bound(),
		"keyboardBacklight": b.Keyboard.Bound(),
		"seaPen":            b.SeaPen.Bound(),
	}
}

// App is the running core: one store, its providers, bridges, router and
// error toast.
type App struct {
	Store     *store.Store
	Providers Providers
	Bridges   *Bridges
	Router    *router.Router
	Toast     *toast.Toast
}

// New assembles an App. Nothing is bound until Start.
func New(p Providers, s *store.Store, toastOpts ...toast.Option) (*App, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &App{
		Store:     s,
		Providers: p,
		Bridges:   NewBridges(),
		Router:    router.New(),
		Toast:     toast.New(s, toastOpts...),
	}, nil
}

// Start binds the bridges, starts the toast and loads every domain's data.
// Load failures are logged and joined; the app stays usable.
func (a *App) Start(ctx context.Context) error {
	a.Bridges.InitIfNeeded(a.Providers, a.Store)
	a.Toast.Start()
	return a.InitializeData(ctx)
}

// InitializeData runs every domain's initial load.
func (a *App) InitializeData(ctx context.Context) error {
	p, s := a.Providers, a.Store
	loads := []struct {
		name string
		fn   func() error
	}{
		{"ambient", func() error { return ambient.InitializeData(ctx, p.Ambient, s) }},
		{"wallpaper", func() error { return wallpaper.InitializeBackdropData(ctx, p.Wallpaper, s) }},
		{"daily refresh", func() error { return wallpaper.FetchDailyRefreshState(ctx, p.Wallpaper, s) }},
		{"google photos", func() error { return wallpaper.FetchGooglePhotosEnabled(ctx, p.Wallpaper, s) }},
		{"theme", func() error { return theme.InitializeData(ctx, p.Theme, s) }},
		{"user", func() error { return user.InitializeData(ctx, p.User, s) }},
		{"keyboard backlight", func() error { return keyboard.InitializeData(ctx, p.Keyboard, s) }},
		{"SeaPen", func() error { return seapen.InitializeData(ctx, p.SeaPen, s) }},
	}

	var errs []error
	for _, l := range loads {
		if err := l.fn(); err != nil {
			logging.Error(subsystem, err, "Failed to initialize %s data", l.name)
			errs = append(errs, fmt.Errorf("%s: %w", l.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close stops the toast and unbinds the bridges.
func (a *App) Close() {
	a.Toast.Stop()
	a.Bridges.Shutdown()
}
