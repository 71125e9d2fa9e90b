package testing

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"personalization/internal/seapen"
)

// SeaPenProvider is an in-memory seapen.Provider. Selecting a thumbnail
// saves it as a recent image.
type SeaPenProvider struct {
	CallRecorder

	mu       sync.Mutex
	observer seapen.Observer
	recent   []seapen.RecentImage

	Thumbnails   []seapen.Thumbnail
	Introduction bool

	// Echo makes successful selections push OnSelectedSeaPenImageChanged.
	Echo bool
}

var _ seapen.Provider = (*SeaPenProvider)(nil)

// NewSeaPenProvider returns a provider with four canned thumbnails and two
// recent images.
func NewSeaPenProvider() *SeaPenProvider {
	p := &SeaPenProvider{Introduction: true}
	for i := 1; i <= 4; i++ {
		p.Thumbnails = append(p.Thumbnails, seapen.Thumbnail{
			ID:  seapen.ImageID(fmt.Sprint(i)),
			URL: fmt.Sprintf("https://sea-pen-images.googleusercontent.com/%d", i),
		})
	}
	p.recent = []seapen.RecentImage{
		{ID: "/sea_pen/111.jpg", URL: "data:image/jpeg;base64,111", Query: seapen.Query{Text: "a lighthouse at dusk"}, CreationTime: "Dec 15, 2023"},
		{ID: "/sea_pen/222.jpg", URL: "data:image/jpeg;base64,222", Query: seapen.Query{TemplateID: "flower", Options: map[string]string{"color": "blue"}}, CreationTime: "Dec 16, 2023"},
	}
	return p
}

func (p *SeaPenProvider) Observer() seapen.Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observer
}

// RecentImages returns the saved images.
func (p *SeaPenProvider) RecentImages() []seapen.RecentImage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.recent)
}

func (p *SeaPenProvider) SetSeaPenObserver(observer seapen.Observer) {
	p.MethodCalled("SetSeaPenObserver", observer)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observer = observer
}

func (p *SeaPenProvider) SearchWallpaper(ctx context.Context, query seapen.Query) ([]seapen.Thumbnail, error) {
	if err := p.MethodCalled("SearchWallpaper", query); err != nil {
		return nil, err
	}
	return slices.Clone(p.Thumbnails), nil
}

func (p *SeaPenProvider) SelectSeaPenThumbnail(ctx context.Context, id seapen.ImageID, previewMode bool) error {
	if err := p.MethodCalled("SelectSeaPenThumbnail", id, previewMode); err != nil {
		return err
	}
	saved := seapen.ImageID(fmt.Sprintf("/sea_pen/%s.jpg", id))
	p.mu.Lock()
	p.recent = append([]seapen.RecentImage{{ID: saved, URL: "data:image/jpeg;base64," + string(id)}}, p.recent...)
	p.mu.Unlock()
	p.echo(saved)
	return nil
}

func (p *SeaPenProvider) GetRecentSeaPenImages(ctx context.Context) ([]seapen.RecentImage, error) {
	if err := p.MethodCalled("GetRecentSeaPenImages"); err != nil {
		return nil, err
	}
	return p.RecentImages(), nil
}

func (p *SeaPenProvider) SelectRecentSeaPenImage(ctx context.Context, id seapen.ImageID, previewMode bool) error {
	if err := p.MethodCalled("SelectRecentSeaPenImage", id, previewMode); err != nil {
		return err
	}
	p.echo(id)
	return nil
}

func (p *SeaPenProvider) DeleteRecentSeaPenImage(ctx context.Context, id seapen.ImageID) error {
	if err := p.MethodCalled("DeleteRecentSeaPenImage", id); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recent = slices.DeleteFunc(p.recent, func(img seapen.RecentImage) bool { return img.ID == id })
	return nil
}

func (p *SeaPenProvider) ShouldShowSeaPenIntroductionDialog(ctx context.Context) (bool, error) {
	if err := p.MethodCalled("ShouldShowSeaPenIntroductionDialog"); err != nil {
		return false, err
	}
	return p.Introduction, nil
}

func (p *SeaPenProvider) HandleSeaPenIntroductionDialogClosed(ctx context.Context) error {
	return p.MethodCalled("HandleSeaPenIntroductionDialogClosed")
}

func (p *SeaPenProvider) echo(id seapen.ImageID) {
	if !p.Echo {
		return
	}
	if o := p.Observer(); o != nil {
		o.OnSelectedSeaPenImageChanged(&id)
	}
}
