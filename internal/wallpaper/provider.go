package wallpaper

import "context"

// Observer receives wallpaper push events.
type Observer interface {
	// OnWallpaperChanged reports the wallpaper on screen; nil means it could
	// not be determined.
	OnWallpaperChanged(current *CurrentWallpaper)
	OnWallpaperPreviewEnded()
	OnAttributionChanged(attribution *Attribution)
}

// Provider is the wallpaper backend.
type Provider interface {
	SetWallpaperObserver(observer Observer)

	FetchCollections(ctx context.Context) ([]Collection, error)
	FetchImagesForCollection(ctx context.Context, collectionID string) ([]Image, error)
	GetCurrentWallpaper(ctx context.Context) (*CurrentWallpaper, error)

	SelectWallpaper(ctx context.Context, assetID uint64, previewMode bool) error
	SelectDefaultImage(ctx context.Context) error
	SelectGooglePhotosPhoto(ctx context.Context, id string, layout Layout, previewMode bool) error

	GetDailyRefreshCollectionID(ctx context.Context) (string, error)
	SetDailyRefreshCollectionID(ctx context.Context, collectionID string) error
	UpdateDailyRefreshWallpaper(ctx context.Context) error

	FetchGooglePhotosEnabled(ctx context.Context) (bool, error)
	FetchGooglePhotosAlbums(ctx context.Context) ([]GooglePhotosAlbum, error)
	FetchGooglePhotosSharedAlbums(ctx context.Context) ([]GooglePhotosAlbum, error)
	// FetchGooglePhotosPhotos lists the photos of albumID, or the whole
	// library when albumID is empty.
	FetchGooglePhotosPhotos(ctx context.Context, albumID string) ([]GooglePhotosPhoto, error)

	ConfirmPreviewWallpaper(ctx context.Context) error
	CancelPreviewWallpaper(ctx context.Context) error
}

// Navigator opens a Google Photos album page.
type Navigator interface {
	SelectGooglePhotosAlbum(album GooglePhotosAlbum)
}
