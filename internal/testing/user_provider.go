package testing

import (
	"context"
	"encoding/base64"
	"sync"

	"personalization/internal/user"
)

// UserProvider is an in-memory user.Provider.
type UserProvider struct {
	CallRecorder

	mu       sync.Mutex
	observer user.Observer
	image    user.Image
	external *user.Image

	Info              user.Info
	DefaultImages     []user.DefaultImage
	ProfileImageURL   string
	CameraPresent     bool
	EnterpriseManaged bool

	// Echo makes successful selections push OnUserImageChanged.
	Echo bool
}

var _ user.Provider = (*UserProvider)(nil)

// NewUserProvider returns a provider for an unmanaged account without a camera.
func NewUserProvider() *UserProvider {
	images := []user.DefaultImage{
		{Index: 8, Title: "Test title", URL: "data://test_url"},
		{Index: 9, Title: "Test title 2", URL: "data://test_url2"},
	}
	return &UserProvider{
		Info:            user.Info{Name: "Jane Doe", Email: "fake_email@example.com"},
		DefaultImages:   images,
		ProfileImageURL: "data://updated_test_url",
		image:           user.Image{Kind: user.ImageDefault, Default: &images[0]},
	}
}

// Observer returns the registered observer remote, or nil.
func (p *UserProvider) Observer() user.Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observer
}

func (p *UserProvider) SetUserImageObserver(observer user.Observer) {
	p.MethodCalled("SetUserImageObserver", observer)
	p.mu.Lock()
	p.observer = observer
	image := p.image
	p.mu.Unlock()
	if observer == nil {
		return
	}
	observer.OnUserImageChanged(image)
	observer.OnUserProfileImageUpdated(p.ProfileImageURL)
	observer.OnCameraPresenceChanged(p.CameraPresent)
	observer.OnIsEnterpriseManagedChanged(p.EnterpriseManaged)
}

func (p *UserProvider) GetUserInfo(ctx context.Context) (user.Info, error) {
	if err := p.MethodCalled("GetUserInfo"); err != nil {
		return user.Info{}, err
	}
	return p.Info, nil
}

func (p *UserProvider) GetDefaultUserImages(ctx context.Context) ([]user.DefaultImage, error) {
	if err := p.MethodCalled("GetDefaultUserImages"); err != nil {
		return nil, err
	}
	return append([]user.DefaultImage(nil), p.DefaultImages...), nil
}

func (p *UserProvider) SelectDefaultImage(ctx context.Context, index int) error {
	if err := p.MethodCalled("SelectDefaultImage", index); err != nil {
		return err
	}
	for i := range p.DefaultImages {
		if p.DefaultImages[i].Index == index {
			img := p.DefaultImages[i]
			p.echo(user.Image{Kind: user.ImageDefault, Default: &img})
		}
	}
	return nil
}

func (p *UserProvider) SelectProfileImage(ctx context.Context) error {
	if err := p.MethodCalled("SelectProfileImage"); err != nil {
		return err
	}
	p.echo(user.Image{Kind: user.ImageProfile, URL: p.ProfileImageURL})
	return nil
}

func (p *UserProvider) SelectCameraImage(ctx context.Context, data []byte) error {
	if err := p.MethodCalled("SelectCameraImage", data); err != nil {
		return err
	}
	p.echo(user.Image{Kind: user.ImageExternal, URL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)})
	return nil
}

func (p *UserProvider) SelectImageFromDisk(ctx context.Context) error {
	if err := p.MethodCalled("SelectImageFromDisk"); err != nil {
		return err
	}
	p.echo(user.Image{Kind: user.ImageExternal, URL: "file:///home/chronos/user/avatar.png"})
	return nil
}

func (p *UserProvider) SelectLastExternalUserImage(ctx context.Context) error {
	if err := p.MethodCalled("SelectLastExternalUserImage"); err != nil {
		return err
	}
	p.mu.Lock()
	external := p.external
	p.mu.Unlock()
	if external != nil {
		p.echo(*external)
	}
	return nil
}

func (p *UserProvider) echo(image user.Image) {
	if !p.Echo {
		return
	}
	p.mu.Lock()
	if p.image.Kind == user.ImageExternal && image.Kind != user.ImageExternal {
		prev := p.image
		p.external = &prev
	}
	p.image = image
	o := p.observer
	p.mu.Unlock()
	if o != nil {
		o.OnUserImageChanged(image)
	}
}
