package theme

import (
	"testing"

	"personalization/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_StaticColorCopiesValue(t *testing.T) {
	color := uint32(0xff00ff00)
	state := reduce(InitialState(), SetStaticColor{Color: &color})
	color = 0

	require.NotNil(t, state.StaticColorSelected)
	assert.Equal(t, uint32(0xff00ff00), *state.StaticColorSelected)

	state = reduce(state, SetStaticColor{})
	assert.Nil(t, state.StaticColorSelected)
}

func TestReduce_UnrelatedActionKeepsState(t *testing.T) {
	dark := true
	state := State{DarkModeEnabled: &dark}
	assert.Equal(t, state, reduce(state, store.Action(nil)))
}

func TestColorSchemeString(t *testing.T) {
	assert.Equal(t, "tonal-spot", ColorSchemeTonalSpot.String())
	assert.Equal(t, "unknown", ColorScheme(42).String())
}

func TestParseColorScheme(t *testing.T) {
	got, err := ParseColorScheme("vibrant")
	require.NoError(t, err)
	assert.Equal(t, ColorSchemeVibrant, got)

	_, err = ParseColorScheme("neon")
	assert.Error(t, err)
}
