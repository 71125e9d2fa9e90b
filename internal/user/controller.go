package user

import (
	"context"
	"errors"
	"fmt"

	"personalization/internal/store"
)

var (
	// ErrEnterpriseManaged is returned when policy locks the avatar.
	ErrEnterpriseManaged = errors.New("user image is managed by policy")
	// ErrUnknownDefaultImage is returned for an index outside the loaded
	// default images.
	ErrUnknownDefaultImage = errors.New("unknown default user image")
	// ErrNoExternalImage is returned when no previous external image exists.
	ErrNoExternalImage = errors.New("no previous external user image")
	// ErrNoCamera is returned when no camera is attached.
	ErrNoCamera = errors.New("no camera present")
)

// InitializeData loads account info and the default avatars.
func InitializeData(ctx context.Context, provider Provider, s store.Dispatcher) error {
	info, err := provider.GetUserInfo(ctx)
	if err != nil {
		return fmt.Errorf("get user info: %w", err)
	}
	s.Dispatch(SetUserInfo{Info: info})

	images, err := provider.GetDefaultUserImages(ctx)
	if err != nil {
		return fmt.Errorf("get default user images: %w", err)
	}
	s.Dispatch(SetDefaultUserImages{Images: images})
	return nil
}

func checkManaged(s store.Dispatcher) error {
	if m := Select(s.Data()).IsEnterpriseManaged; m != nil && *m {
		return ErrEnterpriseManaged
	}
	return nil
}

// SelectDefaultImage picks a built-in avatar by index.
func SelectDefaultImage(ctx context.Context, index int, provider Provider, s store.Dispatcher) error {
	if err := checkManaged(s); err != nil {
		return err
	}
	found := false
	for _, img := range Select(s.Data()).DefaultUserImages {
		if img.Index == index {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %d", ErrUnknownDefaultImage, index)
	}
	if err := provider.SelectDefaultImage(ctx, index); err != nil {
		return fmt.Errorf("select default image %d: %w", index, err)
	}
	return nil
}

// SelectProfileImage uses the account's profile picture.
func SelectProfileImage(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := checkManaged(s); err != nil {
		return err
	}
	if err := provider.SelectProfileImage(ctx); err != nil {
		return fmt.Errorf("select profile image: %w", err)
	}
	return nil
}

// SelectCameraImage uses a PNG captured from the camera.
func SelectCameraImage(ctx context.Context, data []byte, provider Provider, s store.Dispatcher) error {
	if err := checkManaged(s); err != nil {
		return err
	}
	if !Select(s.Data()).IsCameraPresent {
		return ErrNoCamera
	}
	if len(data) == 0 {
		return errors.New("empty camera image")
	}
	if err := provider.SelectCameraImage(ctx, data); err != nil {
		return fmt.Errorf("select camera image: %w", err)
	}
	return nil
}

// SelectImageFromDisk opens the file picker.
func SelectImageFromDisk(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := checkManaged(s); err != nil {
		return err
	}
	if err := provider.SelectImageFromDisk(ctx); err != nil {
		return fmt.Errorf("select image from disk: %w", err)
	}
	return nil
}

// SelectLastExternalImage restores the last camera or disk image.
func SelectLastExternalImage(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := checkManaged(s); err != nil {
		return err
	}
	if Select(s.Data()).LastExternalImage == nil {
		return ErrNoExternalImage
	}
	if err := provider.SelectLastExternalUserImage(ctx); err != nil {
		return fmt.Errorf("select last external image: %w", err)
	}
	return nil
}
