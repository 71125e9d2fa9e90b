package personalization_test

import (
	"context"
	"errors"
	"testing"

	"personalization/internal/ambient"
	"personalization/internal/errorstate"
	"personalization/internal/personalization"
	"personalization/internal/store"
	mocks "personalization/internal/testing"
	"personalization/internal/theme"
	"personalization/internal/wallpaper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreRegistersEverySlice(t *testing.T) {
	s := personalization.NewStore()
	for _, slice := range []store.Slice{
		store.SliceAmbient, store.SliceWallpaper, store.SliceTheme, store.SliceUser,
		store.SliceKeyboardBacklight, store.SliceSeaPen, store.SliceError,
	} {
		assert.True(t, s.HasReducer(slice), slice)
	}
}

func TestNewRejectsMissingProviders(t *testing.T) {
	p := mocks.NewMocks().Providers()
	p.SeaPen = nil

	_, err := personalization.New(p, personalization.NewStore())
	assert.ErrorContains(t, err, "SeaPen")
}

func TestStartLoadsEveryDomain(t *testing.T) {
	m := mocks.NewMocks()
	app, err := personalization.New(m.Providers(), personalization.NewStore())
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Start(context.Background()))

	data := app.Store.Data()
	assert.Len(t, ambient.Select(data).Albums, len(mocks.DefaultAmbientAlbums()))
	assert.Len(t, wallpaper.Select(data).Collections, 2)
	assert.NotNil(t, theme.Select(data).DarkModeEnabled)
	for domain, bound := range app.Bridges.Bound() {
		assert.True(t, bound, domain)
	}
}

func TestStartReportsFailuresButContinues(t *testing.T) {
	m := mocks.NewMocks()
	m.Wallpaper.SetError("FetchCollections", errors.New("offline"))
	app, err := personalization.New(m.Providers(), personalization.NewStore())
	require.NoError(t, err)
	defer app.Close()

	err = app.Start(context.Background())

	assert.ErrorContains(t, err, "wallpaper")
	assert.NotNil(t, errorstate.Select(app.Store.Data()).Current)
	assert.NotNil(t, theme.Select(app.Store.Data()).SampleColorSchemes)
}

func TestCloseUnbindsBridges(t *testing.T) {
	m := mocks.NewMocks()
	app, err := personalization.New(m.Providers(), personalization.NewStore())
	require.NoError(t, err)
	require.NoError(t, app.Start(context.Background()))

	app.Close()

	assert.Nil(t, m.Ambient.Observer())
	assert.Nil(t, m.Wallpaper.Observer())
	for _, bound := range app.Bridges.Bound() {
		assert.False(t, bound)
	}
}
