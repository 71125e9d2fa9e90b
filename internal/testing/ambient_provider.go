package testing

import (
	"context"
	"sync"

	"personalization/internal/ambient"
)

// AmbientProvider is an in-memory ambient.Provider.
type AmbientProvider struct {
	CallRecorder

	mu       sync.Mutex
	observer ambient.Observer

	// Settings is pushed to the observer on FetchSettingsAndAlbums.
	Settings ambient.Settings
	// TimeOfDayBanner is returned by ShouldShowTimeOfDayBanner.
	TimeOfDayBanner bool
}

var _ ambient.Provider = (*AmbientProvider)(nil)

// DefaultAmbientAlbums mirrors a signed-in account with Google Photos albums,
// recent highlights and the art gallery.
func DefaultAmbientAlbums() []ambient.Album {
	return []ambient.Album{
		{ID: "0", Checked: false, Title: "Album 0", NumberOfPhotos: 1, URL: "http://test_url0", TopicSource: ambient.TopicSourceGooglePhotos},
		{ID: "1", Checked: false, Title: "Album 1", NumberOfPhotos: 1, URL: "http://test_url1", TopicSource: ambient.TopicSourceGooglePhotos},
		{ID: ambient.RecentHighlightsAlbumID, Checked: true, Title: "Recent Highlights", NumberOfPhotos: 1, URL: "http://test_url2", TopicSource: ambient.TopicSourceGooglePhotos},
		{ID: "3", Checked: true, Title: "Earth and Space", Description: "Art gallery", URL: "http://test_url3", TopicSource: ambient.TopicSourceArtGallery},
		{ID: "4", Checked: false, Title: "Street Art", Description: "Art gallery", URL: "http://test_url4", TopicSource: ambient.TopicSourceArtGallery},
		{ID: "5", Checked: false, Title: "Fine Art", Description: "Art gallery", URL: "http://test_url5", TopicSource: ambient.TopicSourceArtGallery},
	}
}

// NewAmbientProvider returns a provider with ambient mode disabled and the
// default album set.
func NewAmbientProvider() *AmbientProvider {
	return &AmbientProvider{
		Settings: ambient.Settings{
			AmbientModeEnabled:  false,
			TopicSource:         ambient.TopicSourceArtGallery,
			Theme:               ambient.ThemeSlideShow,
			TemperatureUnit:     ambient.TemperatureUnitFahrenheit,
			ScreenSaverDuration: 10,
			Albums:              DefaultAmbientAlbums(),
			Previews:            []string{"http://preview0", "http://preview1"},
		},
	}
}

// Observer returns the registered observer remote, or nil.
func (p *AmbientProvider) Observer() ambient.Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observer
}

func (p *AmbientProvider) SetAmbientObserver(observer ambient.Observer) {
	p.MethodCalled("SetAmbientObserver", observer)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observer = observer
}

func (p *AmbientProvider) FetchSettingsAndAlbums(ctx context.Context) error {
	if err := p.MethodCalled("FetchSettingsAndAlbums"); err != nil {
		return err
	}
	o := p.Observer()
	if o == nil {
		return nil
	}
	settings := p.Settings
	o.OnAmbientModeEnabledChanged(settings.AmbientModeEnabled)
	o.OnTopicSourceChanged(settings.TopicSource)
	o.OnAmbientThemeChanged(settings.Theme)
	o.OnScreenSaverDurationChanged(settings.ScreenSaverDuration)
	o.OnTemperatureUnitChanged(settings.TemperatureUnit)
	o.OnAlbumsChanged(settings.Albums)
	o.OnPreviewsFetched(settings.Previews)
	return nil
}

func (p *AmbientProvider) SetAmbientModeEnabled(ctx context.Context, enabled bool) error {
	return p.MethodCalled("SetAmbientModeEnabled", enabled)
}

func (p *AmbientProvider) SetAmbientTheme(ctx context.Context, theme ambient.Theme) error {
	return p.MethodCalled("SetAmbientTheme", theme)
}

func (p *AmbientProvider) SetScreenSaverDuration(ctx context.Context, minutes int) error {
	return p.MethodCalled("SetScreenSaverDuration", minutes)
}

func (p *AmbientProvider) SetTopicSource(ctx context.Context, source ambient.TopicSource) error {
	return p.MethodCalled("SetTopicSource", source)
}

func (p *AmbientProvider) SetTemperatureUnit(ctx context.Context, unit ambient.TemperatureUnit) error {
	return p.MethodCalled("SetTemperatureUnit", unit)
}

func (p *AmbientProvider) SetAlbumSelected(ctx context.Context, id string, source ambient.TopicSource, selected bool) error {
	return p.MethodCalled("SetAlbumSelected", id, source, selected)
}

func (p *AmbientProvider) SetPageViewed(ctx context.Context) error {
	return p.MethodCalled("SetPageViewed")
}

func (p *AmbientProvider) StartScreenPreview(ctx context.Context) error {
	return p.MethodCalled("StartScreenPreview")
}

func (p *AmbientProvider) ShouldShowTimeOfDayBanner(ctx context.Context) (bool, error) {
	if err := p.MethodCalled("ShouldShowTimeOfDayBanner"); err != nil {
		return false, err
	}
	return p.TimeOfDayBanner, nil
}

func (p *AmbientProvider) HandleTimeOfDayBannerDismissed(ctx context.Context) error {
	return p.MethodCalled("HandleTimeOfDayBannerDismissed")
}
