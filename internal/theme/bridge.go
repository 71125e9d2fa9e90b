package theme

import (
	"personalization/internal/bridge"
	"personalization/internal/store"
)

// Bridge binds a theme Provider's push events to a store.
type Bridge struct {
	lifecycle bridge.Lifecycle
}

// NewBridge returns an unbound bridge.
func NewBridge() *Bridge {
	return &Bridge{lifecycle: bridge.Lifecycle{Name: "Bridge-Theme"}}
}

// InitIfNeeded binds once; later calls are no-ops until Shutdown.
func (b *Bridge) InitIfNeeded(provider Provider, s store.Dispatcher) {
	b.lifecycle.Init(s, func(binding *bridge.Binding) func() {
		provider.SetThemeObserver(&remote{binding: binding})
		return func() { provider.SetThemeObserver(nil) }
	})
}

// Shutdown unbinds from the provider.
func (b *Bridge) Shutdown() {
	b.lifecycle.Shutdown()
}

// Bound reports whether the bridge is currently bound.
func (b *Bridge) Bound() bool {
	return b.lifecycle.Bound()
}

type remote struct {
	binding *bridge.Binding
}

func (r *remote) OnColorModeChanged(darkModeEnabled bool) {
	r.binding.Dispatch(SetDarkModeEnabled{Enabled: darkModeEnabled})
}

func (r *remote) OnColorModeAutoScheduleChanged(enabled bool) {
	r.binding.Dispatch(SetColorModeAutoScheduleEnabled{Enabled: enabled})
}

func (r *remote) OnColorSchemeChanged(scheme ColorScheme) {
	r.binding.Dispatch(SetColorScheme{Scheme: scheme})
}

func (r *remote) OnStaticColorChanged(color *uint32) {
	r.binding.Dispatch(SetStaticColor{Color: color})
}

func (r *remote) OnGeolocationPermissionChanged(enabled bool) {
	r.binding.Dispatch(SetGeolocationPermissionEnabled{Enabled: enabled})
}
