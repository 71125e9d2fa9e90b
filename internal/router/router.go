// Package router tracks the app's current location and builds navigation
// URLs for the personalization pages.
package router

import (
	"net/url"
	"strconv"
	"sync"

	"personalization/internal/wallpaper"
	"personalization/pkg/logging"
)

// Path is an app page path.
type Path string

const (
	PathRoot                   Path = "/"
	PathAmbient                Path = "/ambient"
	PathAmbientAlbums          Path = "/ambient/albums"
	PathUser                   Path = "/user"
	PathWallpaper              Path = "/wallpaper"
	PathCollection             Path = "/wallpaper/collection"
	PathGooglePhotosCollection Path = "/wallpaper/google-photos"
	PathGooglePhotosAlbum      Path = "/wallpaper/google-photos/album"
	PathSeaPenCollection       Path = "/wallpaper/sea-pen"
)

// Query parameter names.
const (
	ParamID                  = "id"
	ParamTopicSource         = "topicSource"
	ParamGooglePhotosAlbumID = "googlePhotosAlbumId"
	ParamAlbumIsShared       = "googlePhotosAlbumIsShared"
)

// Listener is called with the new location after every navigation.
type Listener func(url.URL)

// Router holds the current location.
type Router struct {
	mu        sync.Mutex
	current   url.URL
	listeners []Listener
}

var _ wallpaper.Navigator = (*Router)(nil)

// New returns a router at the root page.
func New() *Router {
	return &Router{current: url.URL{Path: string(PathRoot)}}
}

// Current returns a copy of the current location.
func (r *Router) Current() url.URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Path returns the current page path.
func (r *Router) Path() Path {
	u := r.Current()
	return Path(u.Path)
}

// Query returns the current query parameters.
func (r *Router) Query() url.Values {
	u := r.Current()
	return u.Query()
}

// OnNavigate registers l for every later navigation.
func (r *Router) OnNavigate(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// SetLocation replaces the current location, e.g. from a deep link.
func (r *Router) SetLocation(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	r.navigate(*u)
	return nil
}

// Navigate goes to path with exactly params as its query.
func (r *Router) Navigate(path Path, params url.Values) {
	r.navigate(url.URL{Path: string(path), RawQuery: params.Encode()})
}

// SelectCollection opens a backdrop collection.
func (r *Router) SelectCollection(collectionID string) {
	r.Navigate(PathCollection, url.Values{ParamID: {collectionID}})
}

// SelectAmbientAlbums opens the album picker for a screen saver topic source.
func (r *Router) SelectAmbientAlbums(topicSource int) {
	r.Navigate(PathAmbientAlbums, url.Values{ParamTopicSource: {strconv.Itoa(topicSource)}})
}

// SelectGooglePhotosAlbum opens a Google Photos album. The query carries only
// the album id and, for shared albums, the shared flag.
func (r *Router) SelectGooglePhotosAlbum(album wallpaper.GooglePhotosAlbum) {
	params := url.Values{ParamGooglePhotosAlbumID: {album.ID}}
	if album.IsShared {
		params.Set(ParamAlbumIsShared, "true")
	}
	r.Navigate(PathGooglePhotosAlbum, params)
}

func (r *Router) navigate(u url.URL) {
	r.mu.Lock()
	r.current = u
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	logging.Debug("Router", "Navigated to %s", u.String())
	for _, l := range listeners {
		l(u)
	}
}
