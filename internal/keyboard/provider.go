package keyboard

import (
	"context"

	"personalization/internal/bridge"
	"personalization/internal/store"
)

// Observer receives keyboard backlight push events.
type Observer interface {
	OnBacklightStateChanged(state BacklightState)
	OnWallpaperColorChanged(color uint32)
}

// Provider is the keyboard backlight backend.
type Provider interface {
	SetKeyboardBacklightObserver(observer Observer)

	SetBacklightColor(ctx context.Context, color BacklightColor) error
	SetBacklightZoneColor(ctx context.Context, zone int, color BacklightColor) error
	GetZoneCount(ctx context.Context) (int, error)
	ShouldShowNudge(ctx context.Context) (bool, error)
	HandleNudgeShown(ctx context.Context) error
}

// Bridge binds a keyboard backlight Provider's push events to a store.
type Bridge struct {
	lifecycle bridge.Lifecycle
}

func NewBridge() *Bridge {
	return &Bridge{lifecycle: bridge.Lifecycle{Name: "Bridge-KeyboardBacklight"}}
}

func (b *Bridge) InitIfNeeded(provider Provider, s store.Dispatcher) {
	b.lifecycle.Init(s, func(binding *bridge.Binding) func() {
		provider.SetKeyboardBacklightObserver(&remote{binding: binding})
		return func() { provider.SetKeyboardBacklightObserver(nil) }
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

func (r *remote) OnBacklightStateChanged(state BacklightState) {
	r.binding.Dispatch(SetBacklightState{State: state})
}

func (r *remote) OnWallpaperColorChanged(color uint32) {
	r.binding.Dispatch(SetWallpaperColor{Color: color})
}
