package user

import "context"

// Observer receives avatar push events.
type Observer interface {
	OnUserImageChanged(image Image)
	OnUserProfileImageUpdated(url string)
	OnCameraPresenceChanged(present bool)
	OnIsEnterpriseManagedChanged(managed bool)
}

// Provider is the avatar backend.
type Provider interface {
	SetUserImageObserver(observer Observer)

	GetUserInfo(ctx context.Context) (Info, error)
	GetDefaultUserImages(ctx context.Context) ([]DefaultImage, error)

	SelectDefaultImage(ctx context.Context, index int) error
	SelectProfileImage(ctx context.Context) error
	SelectCameraImage(ctx context.Context, data []byte) error
	SelectImageFromDisk(ctx context.Context) error
	SelectLastExternalUserImage(ctx context.Context) error
}
