package wallpaper

import "personalization/internal/store"

const (
	ActionBeginLoadCollections          store.ActionName = "BeginLoadCollections"
	ActionSetCollections                store.ActionName = "SetCollections"
	ActionBeginLoadImagesForCollection  store.ActionName = "BeginLoadImagesForCollection"
	ActionSetImagesForCollection        store.ActionName = "SetImagesForCollection"
	ActionBeginLoadSelectedImage        store.ActionName = "BeginLoadSelectedImage"
	ActionSetSelectedImage              store.ActionName = "SetSelectedImage"
	ActionBeginSelectImage              store.ActionName = "BeginSelectImage"
	ActionEndSelectImage                store.ActionName = "EndSelectImage"
	ActionSetAttribution                store.ActionName = "SetAttribution"
	ActionSetDailyRefreshState          store.ActionName = "SetDailyRefreshState"
	ActionBeginUpdateDailyRefreshImage  store.ActionName = "BeginUpdateDailyRefreshImage"
	ActionEndUpdateDailyRefreshImage    store.ActionName = "EndUpdateDailyRefreshImage"
	ActionSetFullscreenEnabled          store.ActionName = "SetFullscreenEnabled"
	ActionSetGooglePhotosEnabled        store.ActionName = "SetGooglePhotosEnabled"
	ActionSetGooglePhotosAlbums         store.ActionName = "SetGooglePhotosAlbums"
	ActionSetGooglePhotosSharedAlbums   store.ActionName = "SetGooglePhotosSharedAlbums"
	ActionSetGooglePhotosPhotos         store.ActionName = "SetGooglePhotosPhotos"
	ActionSetGooglePhotosPhotosForAlbum store.ActionName = "SetGooglePhotosPhotosByAlbumId"
)

type BeginLoadCollections struct{}

func (BeginLoadCollections) Name() store.ActionName { return ActionBeginLoadCollections }
func (BeginLoadCollections) Slice() store.Slice     { return store.SliceWallpaper }

// SetCollections ends collection loading. Nil Collections means the fetch
// failed.
type SetCollections struct{ Collections []Collection }

func (SetCollections) Name() store.ActionName { return ActionSetCollections }
func (SetCollections) Slice() store.Slice     { return store.SliceWallpaper }

type BeginLoadImagesForCollection struct{ CollectionID string }

func (BeginLoadImagesForCollection) Name() store.ActionName {
	return ActionBeginLoadImagesForCollection
}
func (BeginLoadImagesForCollection) Slice() store.Slice { return store.SliceWallpaper }

// SetImagesForCollection ends image loading for one collection. Nil Images
// means the fetch failed.
type SetImagesForCollection struct {
	CollectionID string
	Images       []Image
}

func (SetImagesForCollection) Name() store.ActionName { return ActionSetImagesForCollection }
func (SetImagesForCollection) Slice() store.Slice     { return store.SliceWallpaper }

type BeginLoadSelectedImage struct{}

func (BeginLoadSelectedImage) Name() store.ActionName { return ActionBeginLoadSelectedImage }
func (BeginLoadSelectedImage) Slice() store.Slice     { return store.SliceWallpaper }

// SetSelectedImage stores the wallpaper on screen. A nil Image means it could
// not be determined.
type SetSelectedImage struct{ Image *CurrentWallpaper }

func (SetSelectedImage) Name() store.ActionName { return ActionSetSelectedImage }
func (SetSelectedImage) Slice() store.Slice     { return store.SliceWallpaper }

type BeginSelectImage struct{ Pending PendingSelection }

func (BeginSelectImage) Name() store.ActionName { return ActionBeginSelectImage }
func (BeginSelectImage) Slice() store.Slice     { return store.SliceWallpaper }

type EndSelectImage struct {
	Pending PendingSelection
	Success bool
}

func (EndSelectImage) Name() store.ActionName { return ActionEndSelectImage }
func (EndSelectImage) Slice() store.Slice     { return store.SliceWallpaper }

type SetAttribution struct{ Attribution *Attribution }

func (SetAttribution) Name() store.ActionName { return ActionSetAttribution }
func (SetAttribution) Slice() store.Slice     { return store.SliceWallpaper }

// SetDailyRefreshState sets the rotated collection; nil turns daily refresh off.
type SetDailyRefreshState struct{ State *DailyRefreshState }

func (SetDailyRefreshState) Name() store.ActionName { return ActionSetDailyRefreshState }
func (SetDailyRefreshState) Slice() store.Slice     { return store.SliceWallpaper }

type BeginUpdateDailyRefreshImage struct{}

func (BeginUpdateDailyRefreshImage) Name() store.ActionName {
	return ActionBeginUpdateDailyRefreshImage
}
func (BeginUpdateDailyRefreshImage) Slice() store.Slice { return store.SliceWallpaper }

type EndUpdateDailyRefreshImage struct{}

func (EndUpdateDailyRefreshImage) Name() store.ActionName {
	return ActionEndUpdateDailyRefreshImage
}
func (EndUpdateDailyRefreshImage) Slice() store.Slice { return store.SliceWallpaper }

type SetFullscreenEnabled struct{ Enabled bool }

func (SetFullscreenEnabled) Name() store.ActionName { return ActionSetFullscreenEnabled }
func (SetFullscreenEnabled) Slice() store.Slice     { return store.SliceWallpaper }

type SetGooglePhotosEnabled struct{ Enabled bool }

func (SetGooglePhotosEnabled) Name() store.ActionName { return ActionSetGooglePhotosEnabled }
func (SetGooglePhotosEnabled) Slice() store.Slice     { return store.SliceWallpaper }

type SetGooglePhotosAlbums struct{ Albums []GooglePhotosAlbum }

func (SetGooglePhotosAlbums) Name() store.ActionName { return ActionSetGooglePhotosAlbums }
func (SetGooglePhotosAlbums) Slice() store.Slice     { return store.SliceWallpaper }

type SetGooglePhotosSharedAlbums struct{ Albums []GooglePhotosAlbum }

func (SetGooglePhotosSharedAlbums) Name() store.ActionName {
	return ActionSetGooglePhotosSharedAlbums
}
func (SetGooglePhotosSharedAlbums) Slice() store.Slice { return store.SliceWallpaper }

type SetGooglePhotosPhotos struct{ Photos []GooglePhotosPhoto }

func (SetGooglePhotosPhotos) Name() store.ActionName { return ActionSetGooglePhotosPhotos }
func (SetGooglePhotosPhotos) Slice() store.Slice     { return store.SliceWallpaper }

type SetGooglePhotosPhotosForAlbum struct {
	AlbumID string
	Photos  []GooglePhotosPhoto
}

func (SetGooglePhotosPhotosForAlbum) Name() store.ActionName {
	return ActionSetGooglePhotosPhotosForAlbum
}
func (SetGooglePhotosPhotosForAlbum) Slice() store.Slice { return store.SliceWallpaper }
