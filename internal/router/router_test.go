package router

import (
	"net/url"
	"testing"

	"personalization/internal/wallpaper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectGooglePhotosAlbum_Shared(t *testing.T) {
	r := New()

	r.SelectGooglePhotosAlbum(wallpaper.GooglePhotosAlbum{ID: "shared_0", IsShared: true})

	assert.Equal(t, PathGooglePhotosAlbum, r.Path())
	q := r.Query()
	assert.Equal(t, "shared_0", q.Get(ParamGooglePhotosAlbumID))
	assert.Equal(t, "true", q.Get(ParamAlbumIsShared))
}

func TestSelectGooglePhotosAlbum_NotSharedRemovesFlag(t *testing.T) {
	r := New()
	require.NoError(t, r.SetLocation("/wallpaper/google-photos/album?googlePhotosAlbumId=shared_0&googlePhotosAlbumIsShared=true"))

	r.SelectGooglePhotosAlbum(wallpaper.GooglePhotosAlbum{ID: "album_0"})

	q := r.Query()
	assert.Equal(t, "album_0", q.Get(ParamGooglePhotosAlbumID))
	assert.False(t, q.Has(ParamAlbumIsShared))
}

func TestSelectGooglePhotosAlbum_DropsOtherPageParams(t *testing.T) {
	r := New()
	r.SelectCollection("id_0")

	r.SelectGooglePhotosAlbum(wallpaper.GooglePhotosAlbum{ID: "album_0"})

	u := r.Current()
	assert.Equal(t, "/wallpaper/google-photos/album?googlePhotosAlbumId=album_0", u.String())
}

func TestNavigateNotifiesListeners(t *testing.T) {
	r := New()
	var seen []string
	r.OnNavigate(func(u url.URL) { seen = append(seen, u.String()) })

	r.SelectCollection("id_0")
	r.SelectAmbientAlbums(1)

	assert.Equal(t, []string{"/wallpaper/collection?id=id_0", "/ambient/albums?topicSource=1"}, seen)
}

func TestSetLocationRejectsBadURL(t *testing.T) {
	r := New()
	assert.Error(t, r.SetLocation("%zz"))
	assert.Equal(t, PathRoot, r.Path())
}
