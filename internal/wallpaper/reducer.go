package wallpaper

import (
	"maps"

	"personalization/internal/store"
)

func reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case BeginLoadCollections:
		state.Loading.Collections = true
	case SetCollections:
		state.Loading.Collections = false
		state.Collections = cloneSlice(a.Collections)
	case BeginLoadImagesForCollection:
		state.Loading.Images = maps.Clone(state.Loading.Images)
		if state.Loading.Images == nil {
			state.Loading.Images = make(map[string]bool)
		}
		state.Loading.Images[a.CollectionID] = true
	case SetImagesForCollection:
		state.Loading.Images = maps.Clone(state.Loading.Images)
		delete(state.Loading.Images, a.CollectionID)
		state.Images = maps.Clone(state.Images)
		if state.Images == nil {
			state.Images = make(map[string][]Image)
		}
		state.Images[a.CollectionID] = cloneSlice(a.Images)
	case BeginLoadSelectedImage:
		state.Loading.Selected = true
	case SetSelectedImage:
		state.Loading.Selected = false
		state.CurrentSelected = clonePtr(a.Image)
	case BeginSelectImage:
		state.Loading.SetImage++
		p := a.Pending
		state.PendingSelected = &p
	case EndSelectImage:
		if state.Loading.SetImage > 0 {
			state.Loading.SetImage--
		}
		if state.Loading.SetImage == 0 || !a.Success {
			if state.PendingSelected != nil && *state.PendingSelected == a.Pending {
				state.PendingSelected = nil
			}
		}
	case SetAttribution:
		state.Attribution = clonePtr(a.Attribution)
	case SetDailyRefreshState:
		state.DailyRefresh = clonePtr(a.State)
	case BeginUpdateDailyRefreshImage:
		state.Loading.DailyRefresh = true
	case EndUpdateDailyRefreshImage:
		state.Loading.DailyRefresh = false
	case SetFullscreenEnabled:
		state.FullscreenPreview = a.Enabled
	case SetGooglePhotosEnabled:
		v := a.Enabled
		state.GooglePhotos.Enabled = &v
	case SetGooglePhotosAlbums:
		state.GooglePhotos.Albums = loadedSlice(a.Albums)
	case SetGooglePhotosSharedAlbums:
		state.GooglePhotos.AlbumsShared = loadedSlice(a.Albums)
	case SetGooglePhotosPhotos:
		state.GooglePhotos.Photos = loadedSlice(a.Photos)
	case SetGooglePhotosPhotosForAlbum:
		state.GooglePhotos.PhotosByAlbumID = maps.Clone(state.GooglePhotos.PhotosByAlbumID)
		if state.GooglePhotos.PhotosByAlbumID == nil {
			state.GooglePhotos.PhotosByAlbumID = make(map[string][]GooglePhotosPhoto)
		}
		state.GooglePhotos.PhotosByAlbumID[a.AlbumID] = loadedSlice(a.Photos)
	}
	return state
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append([]T{}, in...)
}

// loadedSlice copies in, mapping nil to empty so "loaded" is distinguishable
// from "not loaded".
func loadedSlice[T any](in []T) []T {
	return append([]T{}, in...)
}

func clonePtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

// Reducer is the wallpaper slice reducer.
var Reducer = store.For(reduce)

// Select returns the wallpaper slice of s.
func Select(s store.State) State {
	return store.Select[State](s, store.SliceWallpaper)
}
