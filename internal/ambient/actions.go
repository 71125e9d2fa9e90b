package ambient

import "personalization/internal/store"

const (
	ActionSetAlbums                    store.ActionName = "SetAlbums"
	ActionSetAlbumSelected             store.ActionName = "SetAlbumSelected"
	ActionSetAmbientModeEnabled        store.ActionName = "SetAmbientModeEnabled"
	ActionSetAmbientTheme              store.ActionName = "SetAmbientTheme"
	ActionSetPreviews                  store.ActionName = "SetPreviews"
	ActionSetScreenSaverDuration       store.ActionName = "SetScreenSaverDuration"
	ActionSetTemperatureUnit           store.ActionName = "SetTemperatureUnit"
	ActionSetTopicSource               store.ActionName = "SetTopicSource"
	ActionSetUIVisibility              store.ActionName = "SetAmbientUiVisibility"
	ActionSetShouldShowTimeOfDayBanner store.ActionName = "SetShouldShowTimeOfDayBanner"
)

type SetAlbums struct{ Albums []Album }

func (SetAlbums) Name() store.ActionName { return ActionSetAlbums }
func (SetAlbums) Slice() store.Slice     { return store.SliceAmbient }

// SetAlbumSelected replaces the album with the same id and topic source.
type SetAlbumSelected struct{ Album Album }

func (SetAlbumSelected) Name() store.ActionName { return ActionSetAlbumSelected }
func (SetAlbumSelected) Slice() store.Slice     { return store.SliceAmbient }

type SetAmbientModeEnabled struct{ Enabled bool }

func (SetAmbientModeEnabled) Name() store.ActionName { return ActionSetAmbientModeEnabled }
func (SetAmbientModeEnabled) Slice() store.Slice     { return store.SliceAmbient }

type SetAmbientTheme struct{ Theme Theme }

func (SetAmbientTheme) Name() store.ActionName { return ActionSetAmbientTheme }
func (SetAmbientTheme) Slice() store.Slice     { return store.SliceAmbient }

type SetPreviews struct{ Previews []string }

func (SetPreviews) Name() store.ActionName { return ActionSetPreviews }
func (SetPreviews) Slice() store.Slice     { return store.SliceAmbient }

type SetScreenSaverDuration struct{ Minutes int }

func (SetScreenSaverDuration) Name() store.ActionName { return ActionSetScreenSaverDuration }
func (SetScreenSaverDuration) Slice() store.Slice     { return store.SliceAmbient }

type SetTemperatureUnit struct{ Unit TemperatureUnit }

func (SetTemperatureUnit) Name() store.ActionName { return ActionSetTemperatureUnit }
func (SetTemperatureUnit) Slice() store.Slice     { return store.SliceAmbient }

type SetTopicSource struct{ Source TopicSource }

func (SetTopicSource) Name() store.ActionName { return ActionSetTopicSource }
func (SetTopicSource) Slice() store.Slice     { return store.SliceAmbient }

type SetUIVisibility struct{ Visibility UIVisibility }

func (SetUIVisibility) Name() store.ActionName { return ActionSetUIVisibility }
func (SetUIVisibility) Slice() store.Slice     { return store.SliceAmbient }

type SetShouldShowTimeOfDayBanner struct{ Show bool }

func (SetShouldShowTimeOfDayBanner) Name() store.ActionName {
	return ActionSetShouldShowTimeOfDayBanner
}
func (SetShouldShowTimeOfDayBanner) Slice() store.Slice { return store.SliceAmbient }
