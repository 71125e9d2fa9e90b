package ambient

import (
	"context"
	"fmt"

	"personalization/internal/store"
	"personalization/pkg/logging"
)

const controllerSubsystem = "Controller-Ambient"

// InitializeData asks the provider for settings and albums; results arrive via
// the bridge. It also loads the time-of-day banner flag.
func InitializeData(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := provider.FetchSettingsAndAlbums(ctx); err != nil {
		logging.Error(controllerSubsystem, err, "Failed to fetch ambient settings")
		return fmt.Errorf("fetch ambient settings and albums: %w", err)
	}
	show, err := provider.ShouldShowTimeOfDayBanner(ctx)
	if err != nil {
		return fmt.Errorf("fetch time of day banner state: %w", err)
	}
	s.Dispatch(SetShouldShowTimeOfDayBanner{Show: show})
	return nil
}

// UpdateAmbientModeEnabled persists enabled and updates the toggle immediately.
func UpdateAmbientModeEnabled(ctx context.Context, enabled bool, provider Provider, s store.Dispatcher) error {
	if err := provider.SetAmbientModeEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("set ambient mode enabled: %w", err)
	}
	s.Dispatch(SetAmbientModeEnabled{Enabled: enabled})
	return nil
}

// UpdateAmbientTheme persists theme. The video theme forces the video topic source.
func UpdateAmbientTheme(ctx context.Context, theme Theme, provider Provider, s store.Dispatcher) error {
	if err := provider.SetAmbientTheme(ctx, theme); err != nil {
		return fmt.Errorf("set ambient theme: %w", err)
	}
	s.Dispatch(SetAmbientTheme{Theme: theme})
	if theme == ThemeVideo {
		return UpdateTopicSource(ctx, TopicSourceVideo, provider, s)
	}
	return nil
}

// UpdateScreenSaverDuration persists the screen saver running duration in
// minutes; zero means "forever".
func UpdateScreenSaverDuration(ctx context.Context, minutes int, provider Provider, s store.Dispatcher) error {
	if minutes < 0 {
		return fmt.Errorf("invalid screen saver duration %d", minutes)
	}
	if err := provider.SetScreenSaverDuration(ctx, minutes); err != nil {
		return fmt.Errorf("set screen saver duration: %w", err)
	}
	s.Dispatch(SetScreenSaverDuration{Minutes: minutes})
	return nil
}

// UpdateTopicSource persists source.
func UpdateTopicSource(ctx context.Context, source TopicSource, provider Provider, s store.Dispatcher) error {
	if err := provider.SetTopicSource(ctx, source); err != nil {
		return fmt.Errorf("set topic source: %w", err)
	}
	s.Dispatch(SetTopicSource{Source: source})
	return nil
}

// UpdateTemperatureUnit persists unit.
func UpdateTemperatureUnit(ctx context.Context, unit TemperatureUnit, provider Provider, s store.Dispatcher) error {
	if err := provider.SetTemperatureUnit(ctx, unit); err != nil {
		return fmt.Errorf("set temperature unit: %w", err)
	}
	s.Dispatch(SetTemperatureUnit{Unit: unit})
	return nil
}

// UpdateAlbumSelected toggles album. The last selected art gallery album cannot
// be deselected; ErrLastArtAlbum is returned and nothing changes.
func UpdateAlbumSelected(ctx context.Context, album Album, provider Provider, s store.Dispatcher) error {
	if !album.Checked && album.TopicSource == TopicSourceArtGallery {
		selected := Select(s.Data()).SelectedAlbums(TopicSourceArtGallery)
		if len(selected) == 1 && selected[0].ID == album.ID {
			return ErrLastArtAlbum
		}
	}
	if err := provider.SetAlbumSelected(ctx, album.ID, album.TopicSource, album.Checked); err != nil {
		return fmt.Errorf("set album %s selected: %w", album.ID, err)
	}
	s.Dispatch(SetAlbumSelected{Album: album})
	return nil
}

// SetPageViewed records that the ambient subpage was opened.
func SetPageViewed(ctx context.Context, provider Provider) error {
	return provider.SetPageViewed(ctx)
}

// StartScreenPreview launches the screen saver preview.
func StartScreenPreview(ctx context.Context, provider Provider) error {
	if err := provider.StartScreenPreview(ctx); err != nil {
		return fmt.Errorf("start screen preview: %w", err)
	}
	return nil
}

// DismissTimeOfDayBanner hides the banner and tells the provider.
func DismissTimeOfDayBanner(ctx context.Context, provider Provider, s store.Dispatcher) error {
	s.Dispatch(SetShouldShowTimeOfDayBanner{Show: false})
	if err := provider.HandleTimeOfDayBannerDismissed(ctx); err != nil {
		return fmt.Errorf("dismiss time of day banner: %w", err)
	}
	return nil
}
