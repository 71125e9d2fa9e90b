package controller

import (
	"context"
	"errors"

	"personalization/internal/ambient"
	"personalization/internal/keyboard"
	"personalization/internal/theme"
	"personalization/internal/tui/model"
	"personalization/internal/wallpaper"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoImages = errors.New("no wallpaper images loaded")

func toggleDarkMode(m *model.Model) tea.Cmd {
	current := theme.Select(m.State).DarkModeEnabled
	next := current == nil || !*current
	p, s := m.App.Providers.Theme, m.App.Store
	return model.RunOperation("Toggle dark mode", func(ctx context.Context) error {
		return theme.SetColorModePref(ctx, next, p, s)
	})
}

func toggleAmbientMode(m *model.Model) tea.Cmd {
	current := ambient.Select(m.State).AmbientModeEnabled
	next := current == nil || !*current
	p, s := m.App.Providers.Ambient, m.App.Store
	return model.RunOperation("Toggle ambient mode", func(ctx context.Context) error {
		return ambient.UpdateAmbientModeEnabled(ctx, next, p, s)
	})
}

// nextWallpaper selects the loaded image after the current one, in
// collection order, wrapping around.
func nextWallpaper(m *model.Model) tea.Cmd {
	w := wallpaper.Select(m.State)
	var images []wallpaper.Image
	for _, c := range w.Collections {
		loaded, _ := w.ImagesFor(c.ID)
		images = append(images, loaded...)
	}
	p, s := m.App.Providers.Wallpaper, m.App.Store
	if len(images) == 0 {
		return model.RunOperation("Next wallpaper", func(context.Context) error { return errNoImages })
	}

	next := images[0]
	if w.CurrentSelected != nil {
		for i, img := range images {
			if img.Key() == w.CurrentSelected.Key {
				next = images[(i+1)%len(images)]
				break
			}
		}
	}
	return model.RunOperation("Next wallpaper", func(ctx context.Context) error {
		return wallpaper.SelectWallpaper(ctx, next, false, p, s)
	})
}

// nextBacklightColor cycles through the preset colors, rainbow included.
func nextBacklightColor(m *model.Model) tea.Cmd {
	next := keyboard.ColorWallpaper
	if current := keyboard.Select(m.State).Current; current != nil && current.Color != nil {
		next = (*current.Color + 1) % (keyboard.ColorRainbow + 1)
	}
	p, s := m.App.Providers.Keyboard, m.App.Store
	return model.RunOperation("Set backlight "+next.String(), func(ctx context.Context) error {
		return keyboard.SetBacklightColor(ctx, next, p, s)
	})
}
