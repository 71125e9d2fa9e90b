package ambient

import "context"

// Observer receives ambient push events from the provider.
type Observer interface {
	OnAmbientModeEnabledChanged(enabled bool)
	OnAlbumsChanged(albums []Album)
	OnTopicSourceChanged(source TopicSource)
	OnAmbientThemeChanged(theme Theme)
	OnScreenSaverDurationChanged(minutes int)
	OnTemperatureUnitChanged(unit TemperatureUnit)
	OnPreviewsFetched(previews []string)
	OnAmbientUIVisibilityChanged(visibility UIVisibility)
}

// Provider is the ambient backend. Settings and albums are delivered through
// the registered Observer.
type Provider interface {
	// SetAmbientObserver registers the push-event sink. Nil unregisters.
	SetAmbientObserver(observer Observer)

	FetchSettingsAndAlbums(ctx context.Context) error
	SetAmbientModeEnabled(ctx context.Context, enabled bool) error
	SetAmbientTheme(ctx context.Context, theme Theme) error
	SetScreenSaverDuration(ctx context.Context, minutes int) error
	SetTopicSource(ctx context.Context, source TopicSource) error
	SetTemperatureUnit(ctx context.Context, unit TemperatureUnit) error
	SetAlbumSelected(ctx context.Context, id string, source TopicSource, selected bool) error
	SetPageViewed(ctx context.Context) error
	StartScreenPreview(ctx context.Context) error
	ShouldShowTimeOfDayBanner(ctx context.Context) (bool, error)
	HandleTimeOfDayBannerDismissed(ctx context.Context) error
}
