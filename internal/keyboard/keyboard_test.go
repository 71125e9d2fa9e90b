package keyboard_test

import (
	"context"
	"errors"
	"testing"

	"personalization/internal/keyboard"
	"personalization/internal/store"
	mocks "personalization/internal/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *store.Store {
	s := store.NewStore()
	s.RegisterReducer(store.SliceKeyboardBacklight, keyboard.InitialState(), keyboard.Reducer)
	return s
}

func TestParseBacklightColor(t *testing.T) {
	for c := keyboard.ColorWallpaper; c <= keyboard.ColorRainbow; c++ {
		got, ok := keyboard.ParseBacklightColor(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
	_, ok := keyboard.ParseBacklightColor("magenta")
	assert.False(t, ok)
}

func TestBridge_PushesCurrentState(t *testing.T) {
	provider := mocks.NewKeyboardBacklightProvider()
	s := newStore()
	b := keyboard.NewBridge()
	b.InitIfNeeded(provider, s)

	state := keyboard.Select(s.Data())
	require.NotNil(t, state.Current)
	assert.Equal(t, keyboard.ColorWallpaper, *state.Current.Color)
	assert.Equal(t, uint32(0xff123456), *state.WallpaperColor)

	b.Shutdown()
	assert.Nil(t, provider.Observer())
}

func TestInitializeData(t *testing.T) {
	provider := mocks.NewKeyboardBacklightProvider()
	s := newStore()

	require.NoError(t, keyboard.InitializeData(context.Background(), provider, s))

	state := keyboard.Select(s.Data())
	assert.Equal(t, 5, state.ZoneCount)
	assert.True(t, state.ShouldShowNudge)
}

func TestSetBacklightColor_Echo(t *testing.T) {
	provider := mocks.NewKeyboardBacklightProvider()
	provider.Echo = true
	s := newStore()
	keyboard.NewBridge().InitIfNeeded(provider, s)

	require.NoError(t, keyboard.SetBacklightColor(context.Background(), keyboard.ColorBlue, provider, s))

	assert.Equal(t, keyboard.ColorBlue, *keyboard.Select(s.Data()).Current.Color)
}

func TestSetBacklightZoneColor(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewKeyboardBacklightProvider()
	provider.Echo = true
	s := newStore()
	keyboard.NewBridge().InitIfNeeded(provider, s)
	require.NoError(t, keyboard.InitializeData(ctx, provider, s))

	require.NoError(t, keyboard.SetBacklightZoneColor(ctx, 2, keyboard.ColorRed, provider, s))

	zones := keyboard.Select(s.Data()).Current.ZoneColors
	require.Len(t, zones, 5)
	assert.Equal(t, keyboard.ColorRed, zones[2])
	assert.Equal(t, keyboard.ColorWallpaper, zones[0])

	assert.Error(t, keyboard.SetBacklightZoneColor(ctx, 5, keyboard.ColorRed, provider, s))
	assert.Error(t, keyboard.SetBacklightZoneColor(ctx, 0, keyboard.ColorRainbow, provider, s))
	assert.Equal(t, 1, provider.CallCount("SetBacklightZoneColor"))
}

func TestHandleNudgeShown(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewKeyboardBacklightProvider()
	s := newStore()
	s.Dispatch(keyboard.SetShouldShowNudge{Show: true})

	require.NoError(t, keyboard.HandleNudgeShown(ctx, provider, s))
	assert.False(t, keyboard.Select(s.Data()).ShouldShowNudge)

	boom := errors.New("prefs unavailable")
	provider.SetError("HandleNudgeShown", boom)
	assert.ErrorIs(t, keyboard.HandleNudgeShown(ctx, provider, s), boom)
}
