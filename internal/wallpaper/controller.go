package wallpaper

import (
	"context"
	"errors"
	"fmt"

	"personalization/internal/errorstate"
	"personalization/internal/store"
	"personalization/pkg/logging"
)

const controllerSubsystem = "Controller-Wallpaper"

// User-visible failure messages.
const (
	msgLoadCollections = "Couldn't load wallpaper collections"
	msgLoadImages      = "Couldn't load images"
	msgSetWallpaper    = "Couldn't set wallpaper"
	msgDailyRefresh    = "Couldn't refresh wallpaper"
	msgGooglePhotos    = "Couldn't load Google Photos"
)

// ErrUnknownCollection is returned for a collection id not in the slice.
var ErrUnknownCollection = errors.New("unknown collection")

// InitializeBackdropData loads the collections and then the images of each.
// Image failures are reported per collection and do not stop the others.
func InitializeBackdropData(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := FetchCollections(ctx, provider, s); err != nil {
		return err
	}
	var errs []error
	for _, c := range Select(s.Data()).Collections {
		if err := FetchImagesForCollection(ctx, c.ID, provider, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FetchCollections loads the backdrop collections.
func FetchCollections(ctx context.Context, provider Provider, s store.Dispatcher) error {
	s.Dispatch(BeginLoadCollections{})
	collections, err := provider.FetchCollections(ctx)
	if err != nil {
		logging.Error(controllerSubsystem, err, "Failed to fetch collections")
		s.Dispatch(SetCollections{})
		errorstate.Report(s, msgLoadCollections)
		return fmt.Errorf("fetch collections: %w", err)
	}
	s.Dispatch(SetCollections{Collections: collections})
	return nil
}

// FetchImagesForCollection loads one collection's images.
func FetchImagesForCollection(ctx context.Context, collectionID string, provider Provider, s store.Dispatcher) error {
	s.Dispatch(BeginLoadImagesForCollection{CollectionID: collectionID})
	images, err := provider.FetchImagesForCollection(ctx, collectionID)
	if err != nil {
		logging.Error(controllerSubsystem, err, "Failed to fetch images for collection %s", collectionID)
		s.Dispatch(SetImagesForCollection{CollectionID: collectionID})
		errorstate.Report(s, msgLoadImages)
		return fmt.Errorf("fetch images for collection %s: %w", collectionID, err)
	}
	s.Dispatch(SetImagesForCollection{CollectionID: collectionID, Images: images})
	return nil
}

// GetCurrentWallpaper reloads the wallpaper on screen.
func GetCurrentWallpaper(ctx context.Context, provider Provider, s store.Dispatcher) error {
	s.Dispatch(BeginLoadSelectedImage{})
	current, err := provider.GetCurrentWallpaper(ctx)
	if err != nil {
		s.Dispatch(SetSelectedImage{})
		return fmt.Errorf("get current wallpaper: %w", err)
	}
	s.Dispatch(SetSelectedImage{Image: current})
	return nil
}

func isSelected(s store.Dispatcher, key string) bool {
	current := Select(s.Data()).CurrentSelected
	return current != nil && current.Key == key
}

// SelectWallpaper sets a backdrop image. Selecting the wallpaper already on
// screen outside preview mode is a no-op. A manual choice turns daily refresh
// off.
func SelectWallpaper(ctx context.Context, image Image, previewMode bool, provider Provider, s store.Dispatcher) error {
	if !previewMode && isSelected(s, image.Key()) {
		return nil
	}
	pending := PendingSelection{Key: image.Key(), Type: TypeOnline}
	return selectImage(ctx, pending, previewMode, s, func() error {
		return provider.SelectWallpaper(ctx, image.AssetID, previewMode)
	})
}

// SelectDefaultImage restores the device default wallpaper.
func SelectDefaultImage(ctx context.Context, provider Provider, s store.Dispatcher) error {
	pending := PendingSelection{Key: "default", Type: TypeDefault}
	return selectImage(ctx, pending, false, s, func() error {
		return provider.SelectDefaultImage(ctx)
	})
}

// SelectGooglePhotosPhoto sets a photo from the user's library.
func SelectGooglePhotosPhoto(ctx context.Context, photo GooglePhotosPhoto, layout Layout, previewMode bool, provider Provider, s store.Dispatcher) error {
	if !previewMode && isSelected(s, photo.ID) {
		return nil
	}
	pending := PendingSelection{Key: photo.ID, Type: TypeGooglePhotos}
	return selectImage(ctx, pending, previewMode, s, func() error {
		return provider.SelectGooglePhotosPhoto(ctx, photo.ID, layout, previewMode)
	})
}

func selectImage(ctx context.Context, pending PendingSelection, previewMode bool, s store.Dispatcher, call func() error) error {
	s.Dispatch(BeginSelectImage{Pending: pending})
	err := call()
	s.Dispatch(EndSelectImage{Pending: pending, Success: err == nil})
	if err != nil {
		logging.Error(controllerSubsystem, err, "Failed to select %s wallpaper %s", pending.Type, pending.Key)
		errorstate.Report(s, msgSetWallpaper)
		return fmt.Errorf("select %s wallpaper %s: %w", pending.Type, pending.Key, err)
	}
	if previewMode {
		s.Dispatch(SetFullscreenEnabled{Enabled: true})
	}
	if Select(s.Data()).DailyRefresh != nil {
		s.Dispatch(SetDailyRefreshState{})
	}
	return nil
}

// FetchDailyRefreshState loads which collection, if any, rotates daily.
func FetchDailyRefreshState(ctx context.Context, provider Provider, s store.Dispatcher) error {
	id, err := provider.GetDailyRefreshCollectionID(ctx)
	if err != nil {
		return fmt.Errorf("get daily refresh collection: %w", err)
	}
	s.Dispatch(SetDailyRefreshState{State: dailyRefreshState(id)})
	return nil
}

// SetDailyRefreshCollectionID turns daily refresh on for collectionID, or off
// when it is empty.
func SetDailyRefreshCollectionID(ctx context.Context, collectionID string, provider Provider, s store.Dispatcher) error {
	if collectionID != "" && !hasCollection(Select(s.Data()), collectionID) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collectionID)
	}
	if err := provider.SetDailyRefreshCollectionID(ctx, collectionID); err != nil {
		return fmt.Errorf("set daily refresh collection: %w", err)
	}
	s.Dispatch(SetDailyRefreshState{State: dailyRefreshState(collectionID)})
	return nil
}

// UpdateDailyRefreshWallpaper advances the daily rotation immediately.
func UpdateDailyRefreshWallpaper(ctx context.Context, provider Provider, s store.Dispatcher) error {
	s.Dispatch(BeginUpdateDailyRefreshImage{})
	err := provider.UpdateDailyRefreshWallpaper(ctx)
	s.Dispatch(EndUpdateDailyRefreshImage{})
	if err != nil {
		errorstate.Report(s, msgDailyRefresh)
		return fmt.Errorf("update daily refresh wallpaper: %w", err)
	}
	return nil
}

func dailyRefreshState(id string) *DailyRefreshState {
	if id == "" {
		return nil
	}
	return &DailyRefreshState{ID: id, Type: TypeDaily}
}

func hasCollection(state State, id string) bool {
	for _, c := range state.Collections {
		if c.ID == id {
			return true
		}
	}
	return false
}

// FetchGooglePhotosEnabled loads whether the account may use Google Photos.
func FetchGooglePhotosEnabled(ctx context.Context, provider Provider, s store.Dispatcher) error {
	enabled, err := provider.FetchGooglePhotosEnabled(ctx)
	if err != nil {
		return fmt.Errorf("fetch google photos enabled: %w", err)
	}
	s.Dispatch(SetGooglePhotosEnabled{Enabled: enabled})
	return nil
}

// FetchGooglePhotosAlbums loads the user's own albums.
func FetchGooglePhotosAlbums(ctx context.Context, provider Provider, s store.Dispatcher) error {
	albums, err := provider.FetchGooglePhotosAlbums(ctx)
	if err != nil {
		errorstate.Report(s, msgGooglePhotos)
		return fmt.Errorf("fetch google photos albums: %w", err)
	}
	s.Dispatch(SetGooglePhotosAlbums{Albums: albums})
	return nil
}

// FetchGooglePhotosSharedAlbums loads albums shared with the user.
func FetchGooglePhotosSharedAlbums(ctx context.Context, provider Provider, s store.Dispatcher) error {
	albums, err := provider.FetchGooglePhotosSharedAlbums(ctx)
	if err != nil {
		errorstate.Report(s, msgGooglePhotos)
		return fmt.Errorf("fetch google photos shared albums: %w", err)
	}
	for i := range albums {
		albums[i].IsShared = true
	}
	s.Dispatch(SetGooglePhotosSharedAlbums{Albums: albums})
	return nil
}

// FetchGooglePhotosPhotos loads the photos of albumID, or the whole library
// when albumID is empty.
func FetchGooglePhotosPhotos(ctx context.Context, albumID string, provider Provider, s store.Dispatcher) error {
	photos, err := provider.FetchGooglePhotosPhotos(ctx, albumID)
	if err != nil {
		errorstate.Report(s, msgGooglePhotos)
		return fmt.Errorf("fetch google photos photos: %w", err)
	}
	if albumID == "" {
		s.Dispatch(SetGooglePhotosPhotos{Photos: photos})
	} else {
		s.Dispatch(SetGooglePhotosPhotosForAlbum{AlbumID: albumID, Photos: photos})
	}
	return nil
}

// SelectGooglePhotosAlbum opens album and loads its photos unless they are
// already loaded.
func SelectGooglePhotosAlbum(ctx context.Context, album GooglePhotosAlbum, nav Navigator, provider Provider, s store.Dispatcher) error {
	nav.SelectGooglePhotosAlbum(album)
	if _, ok := Select(s.Data()).GooglePhotos.PhotosByAlbumID[album.ID]; ok {
		return nil
	}
	return FetchGooglePhotosPhotos(ctx, album.ID, provider, s)
}

// ConfirmPreviewWallpaper keeps the previewed wallpaper and leaves fullscreen.
func ConfirmPreviewWallpaper(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := provider.ConfirmPreviewWallpaper(ctx); err != nil {
		return fmt.Errorf("confirm preview wallpaper: %w", err)
	}
	s.Dispatch(SetFullscreenEnabled{Enabled: false})
	return nil
}

// CancelPreviewWallpaper reverts to the wallpaper set before the preview.
func CancelPreviewWallpaper(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := provider.CancelPreviewWallpaper(ctx); err != nil {
		return fmt.Errorf("cancel preview wallpaper: %w", err)
	}
	s.Dispatch(SetFullscreenEnabled{Enabled: false})
	return nil
}
