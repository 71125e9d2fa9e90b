package view

import (
	"fmt"
	"strings"

	"personalization/internal/color"
	"personalization/internal/errorstate"
	"personalization/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	panelColumns = 3
	// minHeightForMainLogView is the terminal height below which the
	// activity log is only reachable through the overlay.
	minHeightForMainLogView = 24
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return color.StatusStyle.Render(m.QuittingMessage)
	case model.ModeInitializing:
		if m.Width == 0 || m.Height == 0 {
			return color.StatusStyle.Render("Initializing... (waiting for window size)")
		}
		return color.StatusStyle.Render("Initializing...")
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderViewportOverlay(m, "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)", m.LogViewport.View())
	case model.ModeStateOverlay:
		return renderViewportOverlay(m, "State  (↑/↓ scroll  •  y copy  •  Esc close)", m.StateViewport.View())
	default:
		return renderDashboard(m)
	}
}

func renderDashboard(m *model.Model) string {
	width := m.Width - color.AppStyle.GetHorizontalFrameSize()

	sections := []string{renderHeader(m, width)}
	if toast := renderToast(m, width); toast != "" {
		sections = append(sections, toast)
	}
	sections = append(sections, renderPanels(m, width), renderActivity(m, width))

	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	statusBar := renderStatusBar(m, width)
	if m.Height >= minHeightForMainLogView {
		if logHeight := m.Height - used - lipgloss.Height(statusBar) - 1; logHeight > 2 {
			sections = append(sections, renderLogPanel(m, width, logHeight))
		}
	}
	sections = append(sections, statusBar)
	return color.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderHeader(m *model.Model, width int) string {
	bound := 0
	domains := m.App.Bridges.Bound()
	for _, ok := range domains {
		if ok {
			bound++
		}
	}
	location := m.App.Router.Current()
	title := fmt.Sprintf("personalization  •  %s  •  bridges %d/%d", location.String(), bound, len(domains))
	return color.HeaderStyle.Width(width).Render(TruncateString(title, width-color.HeaderStyle.GetHorizontalPadding()))
}

// renderToast shows the current error, if any.
func renderToast(m *model.Model, width int) string {
	current := errorstate.Select(m.State).Current
	if current == nil {
		return ""
	}
	dismiss := "x dismiss"
	if current.Dismiss != nil && current.Dismiss.Text != "" {
		dismiss = "x " + current.Dismiss.Text
	}
	text := fmt.Sprintf("%s  [%s]", current.Message, dismiss)
	return color.ToastStyle.Render(TruncateString(text, width-color.ToastStyle.GetHorizontalFrameSize()))
}

func renderPanels(m *model.Model, width int) string {
	panelWidth := width / panelColumns
	var rows []string
	var current []string
	for i, slice := range model.Panels {
		focused := i == m.FocusedPanel
		current = append(current, renderPanel(PanelTitle(slice), PanelRows(slice, m.State), panelWidth, focused))
		if len(current) == panelColumns || i == len(model.Panels)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderActivity(m *model.Model, width int) string {
	last := "no actions yet"
	if m.LastReport != nil {
		last = fmt.Sprintf("last %s → %s (%s)", m.LastReport.Action, m.LastReport.Outcome, m.LastReport.Duration)
	}
	text := fmt.Sprintf("%d actions  •  %d dropped notifications  •  %s", m.ActionCount, m.DroppedCount, last)
	return color.SubtleStyle.Render(TruncateString(text, width))
}

func renderLogPanel(m *model.Model, width, height int) string {
	title := color.LogPanelTitleStyle.Render("Activity Log")
	body := m.LogViewport.View()
	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return color.PanelStyle.
		Width(width - color.PanelStyle.GetHorizontalBorderSize()).
		MaxHeight(height).
		Render(content)
}

func renderStatusBar(m *model.Model, width int) string {
	style := color.StatusBarInfoStyle
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		style = color.StatusBarSuccessStyle
	case model.StatusBarError:
		style = color.StatusBarErrorStyle
	}
	text := m.StatusBarMessage
	if text == "" {
		text = m.Help.ShortHelpView(m.Keys.ShortHelp())
	}
	return style.Width(width).Render(TruncateString(text, width-style.GetHorizontalPadding()))
}

func renderHelpOverlay(m *model.Model) string {
	m.Help.ShowAll = true
	body := m.Help.View(m.Keys)
	m.Help.ShowAll = false
	content := lipgloss.JoinVertical(lipgloss.Left, color.PanelTitleStyle.Render("Keys"), "", body)
	return color.OverlayStyle.Render(content)
}

func renderViewportOverlay(m *model.Model, title, body string) string {
	content := lipgloss.JoinVertical(lipgloss.Left, color.LogPanelTitleStyle.Render(title), body)
	return color.OverlayStyle.
		Width(max(m.Width-color.OverlayStyle.GetHorizontalBorderSize(), 0)).
		Height(max(m.Height-color.OverlayStyle.GetVerticalBorderSize(), 0)).
		Render(content)
}

// PrepareLogContent styles log lines by level and cuts them to width.
func PrepareLogContent(lines []string, width int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(TruncateString(l, width))
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return color.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return color.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return color.LogDebugStyle.Render(l)
	default:
		return color.LogInfoStyle.Render(l)
	}
}
