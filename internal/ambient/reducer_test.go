package ambient

import (
	"testing"

	"personalization/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foreignAction struct{}

func (foreignAction) Name() store.ActionName { return "Foreign" }
func (foreignAction) Slice() store.Slice     { return store.SliceAmbient }

func TestReducer_Settings(t *testing.T) {
	state := InitialState()
	assert.Nil(t, state.AmbientModeEnabled)

	state = reduce(state, SetAmbientModeEnabled{Enabled: true})
	state = reduce(state, SetTopicSource{Source: TopicSourceGooglePhotos})
	state = reduce(state, SetAmbientTheme{Theme: ThemeFeelTheBreeze})
	state = reduce(state, SetScreenSaverDuration{Minutes: 0})
	state = reduce(state, SetTemperatureUnit{Unit: TemperatureUnitCelsius})
	state = reduce(state, SetUIVisibility{Visibility: UIVisibilityPreview})

	require.NotNil(t, state.AmbientModeEnabled)
	assert.True(t, *state.AmbientModeEnabled)
	assert.Equal(t, TopicSourceGooglePhotos, *state.TopicSource)
	assert.Equal(t, ThemeFeelTheBreeze, *state.AmbientTheme)
	assert.Equal(t, 0, *state.ScreenSaverDuration)
	assert.Equal(t, TemperatureUnitCelsius, *state.TemperatureUnit)
	assert.Equal(t, UIVisibilityPreview, state.UIVisibility)
}

func TestReducer_SetAlbumSelectedMatchesIDAndSource(t *testing.T) {
	state := reduce(InitialState(), SetAlbums{Albums: []Album{
		{ID: "1", TopicSource: TopicSourceGooglePhotos},
		{ID: "1", TopicSource: TopicSourceArtGallery},
	}})

	next := reduce(state, SetAlbumSelected{Album: Album{ID: "1", TopicSource: TopicSourceArtGallery, Checked: true}})

	assert.False(t, next.Albums[0].Checked)
	assert.True(t, next.Albums[1].Checked)
	assert.False(t, state.Albums[1].Checked, "input state must not be mutated")
}

func TestReducer_UnknownActionIsIdentity(t *testing.T) {
	state := reduce(InitialState(), SetPreviews{Previews: []string{"a"}})
	assert.Equal(t, state, reduce(state, foreignAction{}))
}

func TestReducer_CopiesIncomingSlices(t *testing.T) {
	albums := []Album{{ID: "1", URL: "a"}}
	state := reduce(InitialState(), SetAlbums{Albums: albums})
	albums[0].URL = "mutated"

	assert.Equal(t, "a", state.Albums[0].URL)
}

func TestState_SelectedAlbums(t *testing.T) {
	state := State{Albums: []Album{
		{ID: "a", Checked: true, TopicSource: TopicSourceArtGallery},
		{ID: "b", Checked: false, TopicSource: TopicSourceArtGallery},
		{ID: "c", Checked: true, TopicSource: TopicSourceGooglePhotos},
	}}

	assert.Len(t, state.AlbumsFor(TopicSourceArtGallery), 2)
	selected := state.SelectedAlbums(TopicSourceArtGallery)
	require.Len(t, selected, 1)
	assert.Equal(t, "a", selected[0].ID)
}

func TestMergeAlbums(t *testing.T) {
	current := []Album{
		{ID: RecentHighlightsAlbumID, URL: "asdf"},
		{ID: "other", URL: "old"},
	}
	incoming := []Album{
		{ID: RecentHighlightsAlbumID, URL: "new-recent-highlights-url"},
		{ID: "other", URL: "new-other-url"},
	}

	merged := MergeAlbums(current, incoming)

	assert.Equal(t, "asdf", merged[0].URL)
	assert.Equal(t, "new-other-url", merged[1].URL)
	assert.Equal(t, "new-recent-highlights-url", incoming[0].URL, "incoming must not be mutated")
}

func TestMergeAlbums_AdoptsURLWhenNoneStored(t *testing.T) {
	merged := MergeAlbums(nil, []Album{{ID: RecentHighlightsAlbumID, URL: "first"}})
	assert.Equal(t, "first", merged[0].URL)

	merged = MergeAlbums([]Album{{ID: RecentHighlightsAlbumID}}, []Album{{ID: RecentHighlightsAlbumID, URL: "second"}})
	assert.Equal(t, "second", merged[0].URL)
}
