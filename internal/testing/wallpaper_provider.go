package testing

import (
	"context"
	"sync"

	"personalization/internal/wallpaper"
)

// WallpaperProvider is an in-memory wallpaper.Provider.
type WallpaperProvider struct {
	CallRecorder

	mu       sync.Mutex
	observer wallpaper.Observer

	Collections         []wallpaper.Collection
	Images              map[string][]wallpaper.Image
	CurrentWallpaper    *wallpaper.CurrentWallpaper
	DailyRefreshID      string
	GooglePhotosEnabled bool
	Albums              []wallpaper.GooglePhotosAlbum
	SharedAlbums        []wallpaper.GooglePhotosAlbum
	Photos              []wallpaper.GooglePhotosPhoto
	PhotosByAlbum       map[string][]wallpaper.GooglePhotosPhoto

	// Echo makes successful selections push OnWallpaperChanged, the way the
	// system service does.
	Echo bool
}

var _ wallpaper.Provider = (*WallpaperProvider)(nil)

// NewWallpaperProvider returns a provider with two collections, a default
// wallpaper on screen and a small Google Photos library.
func NewWallpaperProvider() *WallpaperProvider {
	return &WallpaperProvider{
		Collections: []wallpaper.Collection{
			{ID: "id_0", Name: "zero", PreviewURLs: []string{"https://collections.googleusercontent.com/0"}},
			{ID: "id_1", Name: "one", PreviewURLs: []string{"https://collections.googleusercontent.com/1"}},
		},
		Images: map[string][]wallpaper.Image{
			"id_0": {
				{AssetID: 0, UnitID: 1, URL: "https://images.googleusercontent.com/0", Attribution: []string{"Image 0"}},
				{AssetID: 2, UnitID: 2, URL: "https://images.googleusercontent.com/2", Attribution: []string{"Image 2"}},
			},
			"id_1": {
				{AssetID: 1, UnitID: 3, URL: "https://images.googleusercontent.com/1", Attribution: []string{"Image 1"}},
			},
		},
		CurrentWallpaper: &wallpaper.CurrentWallpaper{
			Key:         "default",
			Type:        wallpaper.TypeDefault,
			Layout:      wallpaper.LayoutCenterCropped,
			Attribution: []string{"Default wallpaper"},
		},
		GooglePhotosEnabled: true,
		Albums: []wallpaper.GooglePhotosAlbum{
			{ID: "album_0", Title: "Album 0", PhotoCount: 2, PreviewURL: "https://photos.googleusercontent.com/album_0"},
		},
		SharedAlbums: []wallpaper.GooglePhotosAlbum{
			{ID: "shared_0", Title: "Shared 0", PhotoCount: 1, PreviewURL: "https://photos.googleusercontent.com/shared_0"},
		},
		Photos: []wallpaper.GooglePhotosPhoto{
			{ID: "photo_0", Name: "photo_0.jpg", Date: "Wednesday, February 16, 2022", URL: "https://photos.googleusercontent.com/photo_0"},
			{ID: "photo_1", Name: "photo_1.jpg", Date: "Thursday, February 17, 2022", URL: "https://photos.googleusercontent.com/photo_1"},
		},
		PhotosByAlbum: map[string][]wallpaper.GooglePhotosPhoto{
			"album_0": {
				{ID: "photo_0", Name: "photo_0.jpg", URL: "https://photos.googleusercontent.com/photo_0"},
				{ID: "photo_1", Name: "photo_1.jpg", URL: "https://photos.googleusercontent.com/photo_1"},
			},
			"shared_0": {
				{ID: "photo_2", Name: "photo_2.jpg", URL: "https://photos.googleusercontent.com/photo_2"},
			},
		},
	}
}

// Observer returns the registered observer remote, or nil.
func (p *WallpaperProvider) Observer() wallpaper.Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observer
}

func (p *WallpaperProvider) SetWallpaperObserver(observer wallpaper.Observer) {
	p.MethodCalled("SetWallpaperObserver", observer)
	p.mu.Lock()
	p.observer = observer
	current := p.CurrentWallpaper
	p.mu.Unlock()
	if observer != nil {
		observer.OnWallpaperChanged(current)
	}
}

func (p *WallpaperProvider) FetchCollections(ctx context.Context) ([]wallpaper.Collection, error) {
	if err := p.MethodCalled("FetchCollections"); err != nil {
		return nil, err
	}
	return p.Collections, nil
}

func (p *WallpaperProvider) FetchImagesForCollection(ctx context.Context, collectionID string) ([]wallpaper.Image, error) {
	if err := p.MethodCalled("FetchImagesForCollection", collectionID); err != nil {
		return nil, err
	}
	return p.Images[collectionID], nil
}

func (p *WallpaperProvider) GetCurrentWallpaper(ctx context.Context) (*wallpaper.CurrentWallpaper, error) {
	if err := p.MethodCalled("GetCurrentWallpaper"); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.CurrentWallpaper, nil
}

func (p *WallpaperProvider) SelectWallpaper(ctx context.Context, assetID uint64, previewMode bool) error {
	if err := p.MethodCalled("SelectWallpaper", assetID, previewMode); err != nil {
		return err
	}
	for _, images := range p.Images {
		for _, img := range images {
			if img.AssetID == assetID {
				p.echo(&wallpaper.CurrentWallpaper{Key: img.Key(), Type: wallpaper.TypeOnline, Layout: wallpaper.LayoutCenterCropped, Attribution: img.Attribution})
				return nil
			}
		}
	}
	return nil
}

func (p *WallpaperProvider) SelectDefaultImage(ctx context.Context) error {
	if err := p.MethodCalled("SelectDefaultImage"); err != nil {
		return err
	}
	p.echo(&wallpaper.CurrentWallpaper{Key: "default", Type: wallpaper.TypeDefault, Layout: wallpaper.LayoutCenterCropped})
	return nil
}

func (p *WallpaperProvider) SelectGooglePhotosPhoto(ctx context.Context, id string, layout wallpaper.Layout, previewMode bool) error {
	if err := p.MethodCalled("SelectGooglePhotosPhoto", id, layout, previewMode); err != nil {
		return err
	}
	p.echo(&wallpaper.CurrentWallpaper{Key: id, Type: wallpaper.TypeGooglePhotos, Layout: layout})
	return nil
}

func (p *WallpaperProvider) echo(current *wallpaper.CurrentWallpaper) {
	if !p.Echo {
		return
	}
	p.mu.Lock()
	p.CurrentWallpaper = current
	p.mu.Unlock()
	if o := p.Observer(); o != nil {
		o.OnWallpaperChanged(current)
	}
}

func (p *WallpaperProvider) GetDailyRefreshCollectionID(ctx context.Context) (string, error) {
	if err := p.MethodCalled("GetDailyRefreshCollectionID"); err != nil {
		return "", err
	}
	return p.DailyRefreshID, nil
}

func (p *WallpaperProvider) SetDailyRefreshCollectionID(ctx context.Context, collectionID string) error {
	if err := p.MethodCalled("SetDailyRefreshCollectionID", collectionID); err != nil {
		return err
	}
	p.DailyRefreshID = collectionID
	return nil
}

func (p *WallpaperProvider) UpdateDailyRefreshWallpaper(ctx context.Context) error {
	return p.MethodCalled("UpdateDailyRefreshWallpaper")
}

func (p *WallpaperProvider) FetchGooglePhotosEnabled(ctx context.Context) (bool, error) {
	if err := p.MethodCalled("FetchGooglePhotosEnabled"); err != nil {
		return false, err
	}
	return p.GooglePhotosEnabled, nil
}

func (p *WallpaperProvider) FetchGooglePhotosAlbums(ctx context.Context) ([]wallpaper.GooglePhotosAlbum, error) {
	if err := p.MethodCalled("FetchGooglePhotosAlbums"); err != nil {
		return nil, err
	}
	return append([]wallpaper.GooglePhotosAlbum(nil), p.Albums...), nil
}

func (p *WallpaperProvider) FetchGooglePhotosSharedAlbums(ctx context.Context) ([]wallpaper.GooglePhotosAlbum, error) {
	if err := p.MethodCalled("FetchGooglePhotosSharedAlbums"); err != nil {
		return nil, err
	}
	return append([]wallpaper.GooglePhotosAlbum(nil), p.SharedAlbums...), nil
}

func (p *WallpaperProvider) FetchGooglePhotosPhotos(ctx context.Context, albumID string) ([]wallpaper.GooglePhotosPhoto, error) {
	if err := p.MethodCalled("FetchGooglePhotosPhotos", albumID); err != nil {
		return nil, err
	}
	if albumID == "" {
		return p.Photos, nil
	}
	return p.PhotosByAlbum[albumID], nil
}

func (p *WallpaperProvider) ConfirmPreviewWallpaper(ctx context.Context) error {
	return p.MethodCalled("ConfirmPreviewWallpaper")
}

func (p *WallpaperProvider) CancelPreviewWallpaper(ctx context.Context) error {
	return p.MethodCalled("CancelPreviewWallpaper")
}
