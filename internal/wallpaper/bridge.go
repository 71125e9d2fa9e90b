package wallpaper

import (
	"personalization/internal/bridge"
	"personalization/internal/store"
)

// Bridge binds a wallpaper Provider's push events to a store.
type Bridge struct {
	lifecycle bridge.Lifecycle
}

// NewBridge returns an unbound bridge.
func NewBridge() *Bridge {
	return &Bridge{lifecycle: bridge.Lifecycle{Name: "Bridge-Wallpaper"}}
}

// InitIfNeeded binds once; later calls are no-ops until Shutdown.
func (b *Bridge) InitIfNeeded(provider Provider, s store.Dispatcher) {
	b.lifecycle.Init(s, func(binding *bridge.Binding) func() {
		provider.SetWallpaperObserver(&remote{binding: binding})
		return func() { provider.SetWallpaperObserver(nil) }
	})
}

func (b *Bridge) Shutdown() {
	b.lifecycle.Shutdown()
}

func (b *Bridge) Bound() bool {
	return b.lifecycle.Bound()
}

type remote struct {
	binding *bridge.Binding
}

func (r *remote) OnWallpaperChanged(current *CurrentWallpaper) {
	r.binding.Dispatch(SetSelectedImage{Image: current})
}

func (r *remote) OnWallpaperPreviewEnded() {
	r.binding.Dispatch(SetFullscreenEnabled{Enabled: false})
}

func (r *remote) OnAttributionChanged(attribution *Attribution) {
	r.binding.Dispatch(SetAttribution{Attribution: attribution})
}
