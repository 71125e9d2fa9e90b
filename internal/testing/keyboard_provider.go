package testing

import (
	"context"
	"sync"

	"personalization/internal/keyboard"
)

// KeyboardBacklightProvider is an in-memory keyboard.Provider.
type KeyboardBacklightProvider struct {
	CallRecorder

	mu       sync.Mutex
	observer keyboard.Observer
	state    keyboard.BacklightState

	WallpaperColor uint32
	ZoneCount      int
	Nudge          bool

	// Echo makes successful color changes push OnBacklightStateChanged.
	Echo bool
}

var _ keyboard.Provider = (*KeyboardBacklightProvider)(nil)

// NewKeyboardBacklightProvider returns a five-zone keyboard lit with the
// wallpaper color.
func NewKeyboardBacklightProvider() *KeyboardBacklightProvider {
	color := keyboard.ColorWallpaper
	return &KeyboardBacklightProvider{
		state:          keyboard.BacklightState{Color: &color},
		WallpaperColor: 0xff123456,
		ZoneCount:      5,
		Nudge:          true,
	}
}

func (p *KeyboardBacklightProvider) Observer() keyboard.Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observer
}

func (p *KeyboardBacklightProvider) SetKeyboardBacklightObserver(observer keyboard.Observer) {
	p.MethodCalled("SetKeyboardBacklightObserver", observer)
	p.mu.Lock()
	p.observer = observer
	state := p.state
	p.mu.Unlock()
	if observer == nil {
		return
	}
	observer.OnBacklightStateChanged(state)
	observer.OnWallpaperColorChanged(p.WallpaperColor)
}

func (p *KeyboardBacklightProvider) SetBacklightColor(ctx context.Context, color keyboard.BacklightColor) error {
	if err := p.MethodCalled("SetBacklightColor", color); err != nil {
		return err
	}
	p.echo(keyboard.BacklightState{Color: &color})
	return nil
}

func (p *KeyboardBacklightProvider) SetBacklightZoneColor(ctx context.Context, zone int, color keyboard.BacklightColor) error {
	if err := p.MethodCalled("SetBacklightZoneColor", zone, color); err != nil {
		return err
	}
	p.mu.Lock()
	zones := make([]keyboard.BacklightColor, p.ZoneCount)
	if len(p.state.ZoneColors) == p.ZoneCount {
		copy(zones, p.state.ZoneColors)
	} else if p.state.Color != nil {
		for i := range zones {
			zones[i] = *p.state.Color
		}
	}
	p.mu.Unlock()
	if zone < len(zones) {
		zones[zone] = color
	}
	p.echo(keyboard.BacklightState{ZoneColors: zones})
	return nil
}

func (p *KeyboardBacklightProvider) GetZoneCount(ctx context.Context) (int, error) {
	if err := p.MethodCalled("GetZoneCount"); err != nil {
		return 0, err
	}
	return p.ZoneCount, nil
}

func (p *KeyboardBacklightProvider) ShouldShowNudge(ctx context.Context) (bool, error) {
	if err := p.MethodCalled("ShouldShowNudge"); err != nil {
		return false, err
	}
	return p.Nudge, nil
}

func (p *KeyboardBacklightProvider) HandleNudgeShown(ctx context.Context) error {
	return p.MethodCalled("HandleNudgeShown")
}

func (p *KeyboardBacklightProvider) echo(state keyboard.BacklightState) {
	if !p.Echo {
		return
	}
	p.mu.Lock()
	p.state = state
	o := p.observer
	p.mu.Unlock()
	if o != nil {
		o.OnBacklightStateChanged(state)
	}
}
