package ambient

import "personalization/internal/store"

func reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case SetAlbums:
		state.Albums = append([]Album(nil), a.Albums...)
	case SetAlbumSelected:
		albums := make([]Album, len(state.Albums))
		for i, album := range state.Albums {
			if album.ID == a.Album.ID && album.TopicSource == a.Album.TopicSource {
				album = a.Album
			}
			albums[i] = album
		}
		state.Albums = albums
	case SetAmbientModeEnabled:
		enabled := a.Enabled
		state.AmbientModeEnabled = &enabled
	case SetAmbientTheme:
		theme := a.Theme
		state.AmbientTheme = &theme
	case SetPreviews:
		state.Previews = append([]string(nil), a.Previews...)
	case SetScreenSaverDuration:
		minutes := a.Minutes
		state.ScreenSaverDuration = &minutes
	case SetTemperatureUnit:
		unit := a.Unit
		state.TemperatureUnit = &unit
	case SetTopicSource:
		source := a.Source
		state.TopicSource = &source
	case SetUIVisibility:
		state.UIVisibility = a.Visibility
	case SetShouldShowTimeOfDayBanner:
		state.ShouldShowTimeOfDayBanner = a.Show
	}
	return state
}

// Reducer is the ambient slice reducer.
var Reducer = store.For(reduce)

// Select returns the ambient slice of s.
func Select(s store.State) State {
	return store.Select[State](s, store.SliceAmbient)
}
