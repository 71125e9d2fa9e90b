package seapen

import (
	"context"

	"personalization/internal/bridge"
	"personalization/internal/store"
)

// Observer receives SeaPen push events.
type Observer interface {
	OnSelectedSeaPenImageChanged(id *ImageID)
}

// Provider is the SeaPen backend.
type Provider interface {
	SetSeaPenObserver(observer Observer)

	SearchWallpaper(ctx context.Context, query Query) ([]Thumbnail, error)
	SelectSeaPenThumbnail(ctx context.Context, id ImageID, previewMode bool) error
	GetRecentSeaPenImages(ctx context.Context) ([]RecentImage, error)
	SelectRecentSeaPenImage(ctx context.Context, id ImageID, previewMode bool) error
	DeleteRecentSeaPenImage(ctx context.Context, id ImageID) error
	ShouldShowSeaPenIntroductionDialog(ctx context.Context) (bool, error)
	HandleSeaPenIntroductionDialogClosed(ctx context.Context) error
}

// Bridge binds a SeaPen Provider's push events to a store.
type Bridge struct {
	lifecycle bridge.Lifecycle
}

func NewBridge() *Bridge {
	return &Bridge{lifecycle: bridge.Lifecycle{Name: "Bridge-SeaPen"}}
}

func (b *Bridge) InitIfNeeded(provider Provider, s store.Dispatcher) {
	b.lifecycle.Init(s, func(binding *bridge.Binding) func() {
		provider.SetSeaPenObserver(&remote{binding: binding})
		return func() { provider.SetSeaPenObserver(nil) }
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

func (r *remote) OnSelectedSeaPenImageChanged(id *ImageID) {
	r.binding.Dispatch(SetSelectedImage{ID: id})
}
