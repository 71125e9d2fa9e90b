package view

import (
	"fmt"
	"strings"

	"personalization/internal/ambient"
	"personalization/internal/color"
	"personalization/internal/keyboard"
	"personalization/internal/seapen"
	"personalization/internal/store"
	"personalization/internal/theme"
	"personalization/internal/user"
	"personalization/internal/wallpaper"
)

type row struct {
	label string
	value string
}

// PanelTitle returns the display title of a slice panel.
func PanelTitle(slice store.Slice) string {
	switch slice {
	case store.SliceWallpaper:
		return "Wallpaper"
	case store.SliceTheme:
		return "Theme"
	case store.SliceAmbient:
		return "Ambient"
	case store.SliceUser:
		return "User"
	case store.SliceKeyboardBacklight:
		return "Keyboard"
	case store.SliceSeaPen:
		return "SeaPen"
	default:
		return slice.String()
	}
}

// PanelRows summarizes one slice of state.
func PanelRows(slice store.Slice, s store.State) []row {
	switch slice {
	case store.SliceWallpaper:
		return wallpaperRows(wallpaper.Select(s))
	case store.SliceTheme:
		return themeRows(theme.Select(s))
	case store.SliceAmbient:
		return ambientRows(ambient.Select(s))
	case store.SliceUser:
		return userRows(user.Select(s))
	case store.SliceKeyboardBacklight:
		return keyboardRows(keyboard.Select(s))
	case store.SliceSeaPen:
		return seaPenRows(seapen.Select(s))
	}
	return nil
}

func wallpaperRows(w wallpaper.State) []row {
	current := "…"
	if w.CurrentSelected != nil {
		current = fmt.Sprintf("%s (%s)", w.CurrentSelected.Key, w.CurrentSelected.Type)
	}
	pending := "-"
	if w.PendingSelected != nil {
		pending = w.PendingSelected.Key
	}
	daily := "off"
	if w.DailyRefresh != nil {
		daily = w.DailyRefresh.ID
	}
	loaded := 0
	for _, images := range w.Images {
		loaded += len(images)
	}
	rows := []row{
		{"current", current},
		{"pending", pending},
		{"collections", fmt.Sprintf("%d (%d images)", len(w.Collections), loaded)},
		{"daily refresh", daily},
		{"google photos", boolText(w.GooglePhotos.Enabled, "enabled", "disabled")},
	}
	if w.FullscreenPreview {
		rows = append(rows, row{"preview", "fullscreen"})
	}
	if w.Attribution != nil && len(w.Attribution.Lines) > 0 {
		rows = append(rows, row{"by", w.Attribution.Lines[0]})
	}
	return rows
}

func themeRows(t theme.State) []row {
	scheme := "…"
	if t.ColorSchemeSelected != nil {
		scheme = t.ColorSchemeSelected.String()
	}
	static := "-"
	if t.StaticColorSelected != nil {
		static = fmt.Sprintf("#%08X", *t.StaticColorSelected)
	}
	return []row{
		{"mode", boolText(t.DarkModeEnabled, "dark", "light")},
		{"auto schedule", boolText(t.ColorModeAutoScheduleEnabled, "on", "off")},
		{"scheme", scheme},
		{"static color", static},
		{"samples", fmt.Sprintf("%d", len(t.SampleColorSchemes))},
	}
}

func ambientRows(a ambient.State) []row {
	source := "…"
	if a.TopicSource != nil {
		source = a.TopicSource.String()
	}
	anim := "…"
	if a.AmbientTheme != nil {
		anim = a.AmbientTheme.String()
	}
	selected := 0
	for _, album := range a.Albums {
		if album.Checked {
			selected++
		}
	}
	return []row{
		{"enabled", boolText(a.AmbientModeEnabled, "yes", "no")},
		{"topic", source},
		{"theme", anim},
		{"albums", fmt.Sprintf("%d/%d selected", selected, len(a.Albums))},
	}
}

func userRows(u user.State) []row {
	name := "…"
	if u.Info != nil {
		name = u.Info.Name
		if u.Info.Email != "" {
			name += " <" + u.Info.Email + ">"
		}
	}
	image := "…"
	if u.Image != nil {
		image = u.Image.Kind.String()
		if u.Image.Default != nil {
			image += ": " + u.Image.Default.Title
		}
	}
	return []row{
		{"user", name},
		{"image", image},
		{"defaults", fmt.Sprintf("%d", len(u.DefaultUserImages))},
		{"camera", fmt.Sprintf("%t", u.IsCameraPresent)},
		{"managed", boolText(u.IsEnterpriseManaged, "yes", "no")},
	}
}

func keyboardRows(k keyboard.State) []row {
	current := "…"
	if k.Current != nil {
		switch {
		case k.Current.Color != nil:
			current = k.Current.Color.String()
		case len(k.Current.ZoneColors) > 0:
			names := make([]string, len(k.Current.ZoneColors))
			for i, c := range k.Current.ZoneColors {
				names[i] = c.String()
			}
			current = "zones " + strings.Join(names, ",")
		}
	}
	return []row{
		{"backlight", current},
		{"zones", fmt.Sprintf("%d", k.ZoneCount)},
		{"nudge", fmt.Sprintf("%t", k.ShouldShowNudge)},
	}
}

func seaPenRows(s seapen.State) []row {
	query := "-"
	if s.CurrentQuery != nil {
		query = s.CurrentQuery.Text
		if query == "" {
			query = "template " + s.CurrentQuery.TemplateID
		}
	}
	selected := "-"
	if s.CurrentSelected != nil {
		selected = string(*s.CurrentSelected)
	}
	return []row{
		{"query", query},
		{"thumbnails", fmt.Sprintf("%d", len(s.Thumbnails))},
		{"recent", fmt.Sprintf("%d", len(s.RecentImages))},
		{"selected", selected},
	}
}

// renderPanel draws one slice panel of the given outer width.
func renderPanel(title string, rows []row, width int, focused bool) string {
	style := color.PanelStyle
	if focused {
		style = color.FocusedPanelStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	labelWidth := 0
	for _, r := range rows {
		if len(r.label) > labelWidth {
			labelWidth = len(r.label)
		}
	}
	lines := []string{color.PanelTitleStyle.Render(TruncateString(title, inner))}
	for _, r := range rows {
		label := fmt.Sprintf("%-*s ", labelWidth, r.label)
		value := TruncateString(r.value, inner-len(label))
		lines = append(lines, color.LabelStyle.Render(label)+value)
	}
	// Width covers padding but not the border.
	return style.Width(inner + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}
