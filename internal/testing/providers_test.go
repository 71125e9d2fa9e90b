package testing

import (
	"testing"

	"personalization/internal/config"
	"personalization/internal/user"
	"personalization/internal/wallpaper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMocksProvidersComplete(t *testing.T) {
	m := NewMocks()
	require.NoError(t, m.Providers().Validate())
}

func TestApplyFixtures(t *testing.T) {
	m := NewMocks()
	m.ApplyFixtures(config.Fixtures{
		UserInfo:    &user.Info{Name: "Fixture"},
		Collections: []wallpaper.Collection{{ID: "c", Name: "Fixture collection"}},
	})

	assert.Equal(t, "Fixture", m.User.Info.Name)
	assert.Len(t, m.Wallpaper.Collections, 1)
	assert.Len(t, m.Ambient.Settings.Albums, len(DefaultAmbientAlbums()))
	assert.Len(t, m.Wallpaper.Images, 2)
}

func TestSetEcho(t *testing.T) {
	m := NewMocks()
	m.SetEcho(true)
	assert.True(t, m.Wallpaper.Echo)
	assert.True(t, m.SeaPen.Echo)
}
