package user_test

import (
	"context"
	"errors"
	"testing"

	"personalization/internal/store"
	mocks "personalization/internal/testing"
	"personalization/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *store.Store {
	s := store.NewStore()
	s.RegisterReducer(store.SliceUser, user.InitialState(), user.Reducer)
	return s
}

func TestBridge_PushesAndShutsDown(t *testing.T) {
	provider := mocks.NewUserProvider()
	s := newStore()
	b := user.NewBridge()
	b.InitIfNeeded(provider, s)
	b.InitIfNeeded(provider, s)

	assert.Equal(t, 1, provider.CallCount("SetUserImageObserver"))
	assert.Equal(t, []store.ActionName{
		user.ActionSetUserImage,
		user.ActionSetProfileImage,
		user.ActionSetIsCameraPresent,
		user.ActionSetIsEnterpriseManaged,
	}, s.ActionNames())

	stale := provider.Observer()
	b.Shutdown()
	s.ClearActions()
	stale.OnCameraPresenceChanged(true)
	assert.Empty(t, s.Actions())
}

func TestInitializeData(t *testing.T) {
	provider := mocks.NewUserProvider()
	s := newStore()

	require.NoError(t, user.InitializeData(context.Background(), provider, s))

	state := user.Select(s.Data())
	assert.Equal(t, "fake_email@example.com", state.Info.Email)
	assert.Len(t, state.DefaultUserImages, 2)
}

func TestInitializeData_InfoFailure(t *testing.T) {
	provider := mocks.NewUserProvider()
	boom := errors.New("no account")
	provider.SetError("GetUserInfo", boom)

	err := user.InitializeData(context.Background(), provider, newStore())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, provider.CallCount("GetDefaultUserImages"))
}

func TestSelectDefaultImage(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewUserProvider()
	provider.Echo = true
	s := newStore()
	user.NewBridge().InitIfNeeded(provider, s)
	require.NoError(t, user.InitializeData(ctx, provider, s))

	require.NoError(t, user.SelectDefaultImage(ctx, 9, provider, s))

	assert.Equal(t, [][]any{{9}}, provider.ArgsFor("SelectDefaultImage"))
	image := user.Select(s.Data()).Image
	require.NotNil(t, image.Default)
	assert.Equal(t, "Test title 2", image.Default.Title)

	err := user.SelectDefaultImage(ctx, 42, provider, s)
	assert.ErrorIs(t, err, user.ErrUnknownDefaultImage)
}

func TestSelectBlockedWhenEnterpriseManaged(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewUserProvider()
	provider.EnterpriseManaged = true
	s := newStore()
	user.NewBridge().InitIfNeeded(provider, s)

	assert.ErrorIs(t, user.SelectProfileImage(ctx, provider, s), user.ErrEnterpriseManaged)
	assert.ErrorIs(t, user.SelectImageFromDisk(ctx, provider, s), user.ErrEnterpriseManaged)
	assert.Equal(t, 0, provider.CallCount("SelectProfileImage"))
}

func TestSelectCameraImage(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewUserProvider()
	s := newStore()
	user.NewBridge().InitIfNeeded(provider, s)

	assert.ErrorIs(t, user.SelectCameraImage(ctx, []byte{1}, provider, s), user.ErrNoCamera)

	provider.Observer().OnCameraPresenceChanged(true)
	assert.Error(t, user.SelectCameraImage(ctx, nil, provider, s))
	require.NoError(t, user.SelectCameraImage(ctx, []byte{1, 2, 3}, provider, s))
	assert.Equal(t, 1, provider.CallCount("SelectCameraImage"))
}

func TestSelectLastExternalImage(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewUserProvider()
	provider.Echo = true
	s := newStore()
	user.NewBridge().InitIfNeeded(provider, s)

	assert.ErrorIs(t, user.SelectLastExternalImage(ctx, provider, s), user.ErrNoExternalImage)

	require.NoError(t, user.SelectImageFromDisk(ctx, provider, s))
	require.NoError(t, user.SelectProfileImage(ctx, provider, s))
	require.NoError(t, user.SelectLastExternalImage(ctx, provider, s))

	state := user.Select(s.Data())
	assert.Equal(t, user.ImageExternal, state.Image.Kind)
	assert.Equal(t, "file:///home/chronos/user/avatar.png", state.Image.URL)
}
