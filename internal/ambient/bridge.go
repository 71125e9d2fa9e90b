package ambient

import (
	"personalization/internal/bridge"
	"personalization/internal/store"
)

const subsystem = "Bridge-Ambient"

// Bridge binds an ambient Provider's push events to a store.
type Bridge struct {
	lifecycle bridge.Lifecycle
}

// NewBridge returns an unbound bridge.
func NewBridge() *Bridge {
	return &Bridge{lifecycle: bridge.Lifecycle{Name: subsystem}}
}

// InitIfNeeded registers an observer with provider that dispatches into s.
// Calling it while bound is a no-op.
func (b *Bridge) InitIfNeeded(provider Provider, s store.Dispatcher) {
	b.lifecycle.Init(s, func(binding *bridge.Binding) func() {
		provider.SetAmbientObserver(&remote{binding: binding})
		return func() { provider.SetAmbientObserver(nil) }
	})
}

// Shutdown unbinds from the provider. Events sent to the old remote are dropped.
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

func (r *remote) OnAmbientModeEnabledChanged(enabled bool) {
	r.binding.Dispatch(SetAmbientModeEnabled{Enabled: enabled})
}

// OnAlbumsChanged keeps the stored preview URL of the recent highlights album
// so its thumbnail does not flicker on every refresh.
func (r *remote) OnAlbumsChanged(albums []Album) {
	if !r.binding.Active() {
		return
	}
	r.binding.Dispatch(SetAlbums{Albums: MergeAlbums(Select(r.binding.Data()).Albums, albums)})
}

func (r *remote) OnTopicSourceChanged(source TopicSource) {
	r.binding.Dispatch(SetTopicSource{Source: source})
}

func (r *remote) OnAmbientThemeChanged(theme Theme) {
	r.binding.Dispatch(SetAmbientTheme{Theme: theme})
}

func (r *remote) OnScreenSaverDurationChanged(minutes int) {
	r.binding.Dispatch(SetScreenSaverDuration{Minutes: minutes})
}

func (r *remote) OnTemperatureUnitChanged(unit TemperatureUnit) {
	r.binding.Dispatch(SetTemperatureUnit{Unit: unit})
}

func (r *remote) OnPreviewsFetched(previews []string) {
	r.binding.Dispatch(SetPreviews{Previews: previews})
}

func (r *remote) OnAmbientUIVisibilityChanged(visibility UIVisibility) {
	r.binding.Dispatch(SetUIVisibility{Visibility: visibility})
}

// MergeAlbums returns incoming with the recent highlights album's URL taken
// from current when current already has a non-empty one.
func MergeAlbums(current, incoming []Album) []Album {
	var storedURL string
	for _, a := range current {
		if a.ID == RecentHighlightsAlbumID && a.URL != "" {
			storedURL = a.URL
			break
		}
	}

	merged := make([]Album, len(incoming))
	for i, a := range incoming {
		if a.ID == RecentHighlightsAlbumID && storedURL != "" {
			a.URL = storedURL
		}
		merged[i] = a
	}
	return merged
}
