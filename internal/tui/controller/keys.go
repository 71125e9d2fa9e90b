package controller

import (
	"strings"
	"time"

	"personalization/internal/color"
	"personalization/internal/tui/model"
	"personalization/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) && (msg.String() == "ctrl+c" || m.CurrentAppMode == model.ModeMainDashboard) {
		m.CurrentAppMode = model.ModeQuitting
		m.QuittingMessage = "Shutting down..."
		m.Close()
		return m, tea.Quit
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleOverlayKey(m, msg, m.Keys.ToggleLog, "Logs", strings.Join(m.ActivityLog, "\n"))
	case model.ModeStateOverlay:
		return handleOverlayKey(m, msg, m.Keys.ToggleState, "State", stateYAML(m))
	case model.ModeHelpOverlay:
		if key.Matches(msg, m.Keys.Esc, m.Keys.Help) {
			m.CurrentAppMode = model.ModeMainDashboard
		}
		return m, nil
	case model.ModeMainDashboard:
		return handleDashboardKey(m, msg)
	}
	return m, nil
}

// handleOverlayKey handles a scrollable overlay: toggle or Esc closes, y
// copies content, everything else scrolls.
func handleOverlayKey(m *model.Model, msg tea.KeyMsg, toggle key.Binding, what, content string) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, toggle, m.Keys.Esc):
		closeOverlay(m)
		return m, nil
	case key.Matches(msg, m.Keys.Copy):
		if err := clipboardWrite(content); err != nil {
			logging.Error(subsystem, err, "Failed to copy %s", strings.ToLower(what))
			return m, m.SetStatusMessage("Copy failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage(what+" copied to clipboard", model.StatusBarSuccess, 3*time.Second)
	}

	var cmd tea.Cmd
	if m.CurrentAppMode == model.ModeStateOverlay {
		m.StateViewport, cmd = m.StateViewport.Update(msg)
	} else {
		m.LogViewport, cmd = m.LogViewport.Update(msg)
	}
	return m, cmd
}

func openOverlay(m *model.Model, mode model.AppMode) {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = mode
	handleWindowSizeMsg(m, tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
}

func closeOverlay(m *model.Model) {
	m.CurrentAppMode = model.ModeMainDashboard
	handleWindowSizeMsg(m, tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
}

func handleDashboardKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Tab):
		m.FocusedPanel = (m.FocusedPanel + 1) % len(model.Panels)
	case key.Matches(msg, m.Keys.ShiftTab):
		m.FocusedPanel = (m.FocusedPanel - 1 + len(model.Panels)) % len(model.Panels)
	case key.Matches(msg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
	case key.Matches(msg, m.Keys.ToggleLog):
		openOverlay(m, model.ModeLogOverlay)
	case key.Matches(msg, m.Keys.ToggleState):
		openOverlay(m, model.ModeStateOverlay)
	case key.Matches(msg, m.Keys.ToggleDashboard):
		m.DarkDashboard = !m.DarkDashboard
		color.Initialize(m.DarkDashboard)
	case key.Matches(msg, m.Keys.DismissError):
		if !m.App.Toast.Dismiss() {
			return m, m.SetStatusMessage("No error to dismiss", model.StatusBarInfo, 2*time.Second)
		}
	case key.Matches(msg, m.Keys.ToggleDarkMode):
		return m, toggleDarkMode(m)
	case key.Matches(msg, m.Keys.ToggleAmbient):
		return m, toggleAmbientMode(m)
	case key.Matches(msg, m.Keys.NextWallpaper):
		return m, nextWallpaper(m)
	case key.Matches(msg, m.Keys.NextBacklight):
		return m, nextBacklightColor(m)
	case key.Matches(msg, m.Keys.Reload):
		return m, model.RunOperation("Reload", m.App.InitializeData)
	}
	return m, nil
}
