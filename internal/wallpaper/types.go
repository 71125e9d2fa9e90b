// Package wallpaper manages the wallpaper slice: backdrop collections and
// images, the current and pending selection, daily refresh, fullscreen
// preview and the Google Photos library.
package wallpaper

import "strconv"

// Type is the source of a wallpaper.
type Type int

const (
	TypeCustomized Type = iota
	TypeDefault
	TypeOnline
	TypeDaily
	TypeGooglePhotos
	TypeDailyGooglePhotos
	TypePolicy
	TypeSeaPen
)

// String returns the type name used in logs and the dashboard.
func (t Type) String() string {
	switch t {
	case TypeCustomized:
		return "customized"
	case TypeDefault:
		return "default"
	case TypeOnline:
		return "online"
	case TypeDaily:
		return "daily"
	case TypeGooglePhotos:
		return "google-photos"
	case TypeDailyGooglePhotos:
		return "daily-google-photos"
	case TypePolicy:
		return "policy"
	case TypeSeaPen:
		return "sea-pen"
	default:
		return "unknown"
	}
}

// Layout is how a wallpaper image is fitted to the screen.
type Layout int

const (
	LayoutCenter Layout = iota
	LayoutCenterCropped
	LayoutStretch
)

// Collection is a backdrop collection.
type Collection struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	PreviewURLs []string `json:"previews,omitempty" yaml:"previews,omitempty"`
}

// Image is one backdrop image within a collection.
type Image struct {
	AssetID     uint64   `json:"assetId" yaml:"assetId"`
	URL         string   `json:"url" yaml:"url"`
	Attribution []string `json:"attribution,omitempty" yaml:"attribution,omitempty"`
	UnitID      uint64   `json:"unitId" yaml:"unitId"`
}

// Key identifies the image the way CurrentWallpaper.Key does.
func (i Image) Key() string {
	return strconv.FormatUint(i.UnitID, 10)
}

// CurrentWallpaper describes the wallpaper on screen.
type CurrentWallpaper struct {
	Key         string   `json:"key" yaml:"key"`
	Type        Type     `json:"type" yaml:"type"`
	Layout      Layout   `json:"layout" yaml:"layout"`
	Attribution []string `json:"attribution,omitempty" yaml:"attribution,omitempty"`
}

// Attribution is the credit shown for the current wallpaper.
type Attribution struct {
	Key   string   `json:"key" yaml:"key"`
	Lines []string `json:"lines" yaml:"lines"`
}

// DailyRefreshState is the collection or album rotated daily.
type DailyRefreshState struct {
	ID   string `json:"id" yaml:"id"`
	Type Type   `json:"type" yaml:"type"`
}

// GooglePhotosAlbum is an owned or shared Google Photos album.
type GooglePhotosAlbum struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	PhotoCount int    `json:"photoCount" yaml:"photoCount"`
	PreviewURL string `json:"preview,omitempty" yaml:"preview,omitempty"`
	IsShared   bool   `json:"isShared" yaml:"isShared"`
}

// GooglePhotosPhoto is one photo in the user's library.
type GooglePhotosPhoto struct {
	ID       string `json:"id" yaml:"id"`
	DedupKey string `json:"dedupKey,omitempty" yaml:"dedupKey,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
	URL      string `json:"url" yaml:"url"`
}

// PendingSelection is the image whose selection is in flight.
type PendingSelection struct {
	Key  string `json:"key" yaml:"key"`
	Type Type   `json:"type" yaml:"type"`
}

// Loading tracks in-flight requests.
type Loading struct {
	Collections  bool            `json:"collections" yaml:"collections"`
	Images       map[string]bool `json:"images,omitempty" yaml:"images,omitempty"`
	Selected     bool            `json:"selected" yaml:"selected"`
	SetImage     int             `json:"setImage" yaml:"setImage"`
	DailyRefresh bool            `json:"refreshWallpaper" yaml:"refreshWallpaper"`
}

// GooglePhotos is the Google Photos part of the slice. Nil fields are not
// loaded yet; an empty slice means loaded and empty.
type GooglePhotos struct {
	Enabled         *bool                          `json:"enabled" yaml:"enabled"`
	Albums          []GooglePhotosAlbum            `json:"albums" yaml:"albums"`
	AlbumsShared    []GooglePhotosAlbum            `json:"albumsShared" yaml:"albumsShared"`
	Photos          []GooglePhotosPhoto            `json:"photos" yaml:"photos"`
	PhotosByAlbumID map[string][]GooglePhotosPhoto `json:"photosByAlbumId,omitempty" yaml:"photosByAlbumId,omitempty"`
}

// State is the wallpaper slice.
type State struct {
	Collections       []Collection       `json:"collections" yaml:"collections"`
	Images            map[string][]Image `json:"images,omitempty" yaml:"images,omitempty"`
	Loading           Loading            `json:"loading" yaml:"loading"`
	CurrentSelected   *CurrentWallpaper  `json:"currentSelected" yaml:"currentSelected"`
	PendingSelected   *PendingSelection  `json:"pendingSelected" yaml:"pendingSelected"`
	Attribution       *Attribution       `json:"attribution" yaml:"attribution"`
	DailyRefresh      *DailyRefreshState `json:"dailyRefresh" yaml:"dailyRefresh"`
	FullscreenPreview bool               `json:"fullscreen" yaml:"fullscreen"`
	GooglePhotos      GooglePhotos       `json:"googlePhotos" yaml:"googlePhotos"`
}

// InitialState returns the unloaded wallpaper slice.
func InitialState() State {
	return State{}
}

// ImagesFor returns the loaded images of collectionID and whether they were
// loaded.
func (s State) ImagesFor(collectionID string) ([]Image, bool) {
	images, ok := s.Images[collectionID]
	return images, ok
}

// FindImage looks up a loaded image by asset id across all collections.
func (s State) FindImage(assetID uint64) (Image, bool) {
	for _, images := range s.Images {
		for _, img := range images {
			if img.AssetID == assetID {
				return img, true
			}
		}
	}
	return Image{}, false
}

// FindGooglePhotosAlbum looks up an owned or shared album by id.
func (s State) FindGooglePhotosAlbum(id string) (GooglePhotosAlbum, bool) {
	for _, albums := range [][]GooglePhotosAlbum{s.GooglePhotos.Albums, s.GooglePhotos.AlbumsShared} {
		for _, a := range albums {
			if a.ID == id {
				return a, true
			}
		}
	}
	return GooglePhotosAlbum{}, false
}
