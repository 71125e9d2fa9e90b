// Package ambient manages the ambient (screen saver) slice: enablement, topic
// source, animation theme, albums, previews and weather settings.
package ambient

// TopicSource selects where screen saver photos come from.
type TopicSource int

const (
	TopicSourceGooglePhotos TopicSource = iota
	TopicSourceArtGallery
	TopicSourceVideo
)

// String returns the user-facing topic source label.
func (t TopicSource) String() string {
	switch t {
	case TopicSourceGooglePhotos:
		return "Google Photos"
	case TopicSourceArtGallery:
		return "Art gallery"
	case TopicSourceVideo:
		return "Video"
	default:
		return "Unknown"
	}
}

// Theme is the screen saver animation.
type Theme int

const (
	ThemeSlideShow Theme = iota
	ThemeFeelTheBreeze
	ThemeFloatOnBy
	ThemeVideo
)

// String returns the user-facing theme label.
func (t Theme) String() string {
	switch t {
	case ThemeSlideShow:
		return "Slide show"
	case ThemeFeelTheBreeze:
		return "Feel the breeze"
	case ThemeFloatOnBy:
		return "Float on by"
	case ThemeVideo:
		return "Video"
	default:
		return "Unknown"
	}
}

// TemperatureUnit used by the weather overlay.
type TemperatureUnit int

const (
	TemperatureUnitFahrenheit TemperatureUnit = iota
	TemperatureUnitCelsius
)

// UIVisibility is the visibility of the screen saver itself.
type UIVisibility int

const (
	UIVisibilityClosed UIVisibility = iota
	UIVisibilityShown
	UIVisibilityPreview
	UIVisibilityHidden
)

// RecentHighlightsAlbumID is the id of the Google Photos "Recent highlights"
// album. Its preview URL changes on every fetch.
const RecentHighlightsAlbumID = "RecentHighlights"

// Album is a selectable photo album for the screen saver.
type Album struct {
	ID             string      `json:"id" yaml:"id"`
	Checked        bool        `json:"checked" yaml:"checked"`
	Title          string      `json:"title" yaml:"title"`
	Description    string      `json:"description,omitempty" yaml:"description,omitempty"`
	NumberOfPhotos int         `json:"numberOfPhotos" yaml:"numberOfPhotos"`
	URL            string      `json:"url" yaml:"url"`
	TopicSource    TopicSource `json:"topicSource" yaml:"topicSource"`
}

// Settings is the payload of a settings fetch.
type Settings struct {
	AmbientModeEnabled  bool            `yaml:"ambientModeEnabled"`
	TopicSource         TopicSource     `yaml:"topicSource"`
	Theme               Theme           `yaml:"theme"`
	TemperatureUnit     TemperatureUnit `yaml:"temperatureUnit"`
	ScreenSaverDuration int             `yaml:"screenSaverDuration"`
	Albums              []Album         `yaml:"albums"`
	Previews            []string        `yaml:"previews"`
}

// State is the ambient slice. Nil pointers mean "not loaded yet".
type State struct {
	AmbientModeEnabled        *bool            `json:"ambientModeEnabled" yaml:"ambientModeEnabled"`
	Albums                    []Album          `json:"albums" yaml:"albums"`
	TopicSource               *TopicSource     `json:"topicSource" yaml:"topicSource"`
	AmbientTheme              *Theme           `json:"ambientTheme" yaml:"ambientTheme"`
	ScreenSaverDuration       *int             `json:"screenSaverDuration" yaml:"screenSaverDuration"`
	TemperatureUnit           *TemperatureUnit `json:"temperatureUnit" yaml:"temperatureUnit"`
	Previews                  []string         `json:"previews" yaml:"previews"`
	UIVisibility              UIVisibility     `json:"ambientUiVisibility" yaml:"ambientUiVisibility"`
	ShouldShowTimeOfDayBanner bool             `json:"shouldShowTimeOfDayBanner" yaml:"shouldShowTimeOfDayBanner"`
}

// InitialState returns the unloaded ambient slice.
func InitialState() State {
	return State{}
}

// AlbumsFor returns the albums of the given topic source.
func (s State) AlbumsFor(source TopicSource) []Album {
	var out []Album
	for _, a := range s.Albums {
		if a.TopicSource == source {
			out = append(out, a)
		}
	}
	return out
}

// SelectedAlbums returns the checked albums of the given topic source.
func (s State) SelectedAlbums(source TopicSource) []Album {
	var out []Album
	for _, a := range s.AlbumsFor(source) {
		if a.Checked {
			out = append(out, a)
		}
	}
	return out
}
