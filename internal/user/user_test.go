package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_RemembersLastExternalImage(t *testing.T) {
	external := Image{Kind: ImageExternal, URL: "data:image/png;base64,AAAA"}
	state := reduce(InitialState(), SetUserImage{Image: external})
	assert.Nil(t, state.LastExternalImage)

	state = reduce(state, SetUserImage{Image: Image{Kind: ImageProfile, URL: "data://profile"}})
	require.NotNil(t, state.LastExternalImage)
	assert.Equal(t, external, *state.LastExternalImage)
	assert.Equal(t, ImageProfile, state.Image.Kind)
}

func TestReduce_DefaultImagesLoadedEmpty(t *testing.T) {
	state := reduce(InitialState(), SetDefaultUserImages{})
	assert.NotNil(t, state.DefaultUserImages)
	assert.Empty(t, state.DefaultUserImages)
}

func TestImageKindString(t *testing.T) {
	assert.Equal(t, "external", ImageExternal.String())
	assert.Equal(t, "invalid", ImageKind(7).String())
}
