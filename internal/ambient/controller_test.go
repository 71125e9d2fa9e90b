package ambient_test

import (
	"context"
	"errors"
	"testing"

	"personalization/internal/ambient"
	"personalization/internal/store"
	mocks "personalization/internal/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeData(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewAmbientProvider()
	provider.TimeOfDayBanner = true
	s := newStore()
	ambient.NewBridge().InitIfNeeded(provider, s)

	require.NoError(t, ambient.InitializeData(ctx, provider, s))

	state := ambient.Select(s.Data())
	require.NotNil(t, state.AmbientModeEnabled)
	assert.False(t, *state.AmbientModeEnabled)
	assert.Equal(t, ambient.TopicSourceArtGallery, *state.TopicSource)
	assert.Len(t, state.Albums, len(mocks.DefaultAmbientAlbums()))
	assert.True(t, state.ShouldShowTimeOfDayBanner)
	assert.Equal(t, 1, provider.CallCount("FetchSettingsAndAlbums"))
}

func TestInitializeData_ProviderFailure(t *testing.T) {
	provider := mocks.NewAmbientProvider()
	boom := errors.New("backend down")
	provider.SetError("FetchSettingsAndAlbums", boom)
	s := newStore()

	err := ambient.InitializeData(context.Background(), provider, s)

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, s.Actions())
}

func TestSetAmbientModeEnabled(t *testing.T) {
	provider := mocks.NewAmbientProvider()
	s := newStore()

	require.NoError(t, ambient.UpdateAmbientModeEnabled(context.Background(), true, provider, s))

	assert.Equal(t, [][]any{{true}}, provider.ArgsFor("SetAmbientModeEnabled"))
	assert.True(t, *ambient.Select(s.Data()).AmbientModeEnabled)
}

func TestSetAmbientTheme_VideoForcesVideoTopicSource(t *testing.T) {
	provider := mocks.NewAmbientProvider()
	s := newStore()

	require.NoError(t, ambient.UpdateAmbientTheme(context.Background(), ambient.ThemeVideo, provider, s))

	assert.Equal(t, [][]any{{ambient.TopicSourceVideo}}, provider.ArgsFor("SetTopicSource"))
	assert.Equal(t, ambient.TopicSourceVideo, *ambient.Select(s.Data()).TopicSource)
}

func TestSetScreenSaverDuration_RejectsNegative(t *testing.T) {
	provider := mocks.NewAmbientProvider()
	assert.Error(t, ambient.UpdateScreenSaverDuration(context.Background(), -1, provider, newStore()))
	assert.Equal(t, 0, provider.CallCount("SetScreenSaverDuration"))
}

func TestSetAlbumSelected(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewAmbientProvider()
	s := newStore()
	s.Dispatch(ambient.SetAlbums{Albums: mocks.DefaultAmbientAlbums()})

	album := mocks.DefaultAmbientAlbums()[0]
	album.Checked = true
	require.NoError(t, ambient.UpdateAlbumSelected(ctx, album, provider, s))

	assert.Equal(t, [][]any{{"0", ambient.TopicSourceGooglePhotos, true}}, provider.ArgsFor("SetAlbumSelected"))
	assert.True(t, ambient.Select(s.Data()).Albums[0].Checked)
}

func TestSetAlbumSelected_KeepsLastArtAlbum(t *testing.T) {
	provider := mocks.NewAmbientProvider()
	s := newStore()
	s.Dispatch(ambient.SetAlbums{Albums: mocks.DefaultAmbientAlbums()})
	s.ClearActions()

	onlyArt := mocks.DefaultAmbientAlbums()[3]
	onlyArt.Checked = false
	err := ambient.UpdateAlbumSelected(context.Background(), onlyArt, provider, s)

	assert.ErrorIs(t, err, ambient.ErrLastArtAlbum)
	assert.Equal(t, 0, provider.CallCount("SetAlbumSelected"))
	assert.Empty(t, s.Actions())
}

func TestDismissTimeOfDayBanner(t *testing.T) {
	provider := mocks.NewAmbientProvider()
	s := newStore()
	s.Dispatch(ambient.SetShouldShowTimeOfDayBanner{Show: true})

	require.NoError(t, ambient.DismissTimeOfDayBanner(context.Background(), provider, s))

	assert.False(t, ambient.Select(s.Data()).ShouldShowTimeOfDayBanner)
	assert.Equal(t, 1, provider.CallCount("HandleTimeOfDayBannerDismissed"))
}

func TestWaitForBridgeDispatch(t *testing.T) {
	provider := mocks.NewAmbientProvider()
	s := newStore()
	ambient.NewBridge().InitIfNeeded(provider, s)

	exp := s.ExpectAction(ambient.ActionSetAlbums)
	require.NoError(t, provider.FetchSettingsAndAlbums(context.Background()))

	action, err := exp.Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, action.(ambient.SetAlbums).Albums, 6)
	assert.Equal(t, store.SliceAmbient, action.Slice())
}
