package controller

import (
	"fmt"
	"time"

	"personalization/internal/reporting"
	"personalization/internal/tui/model"
	"personalization/internal/tui/view"
	"personalization/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

const subsystem = "TUI"

// Update routes msg to its handler and returns the commands to run next.
// Listener commands are re-armed by the handler of the message they produced.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.StateChangedMsg:
		m.State = msg.State
		if m.CurrentAppMode == model.ModeStateOverlay {
			refreshStateViewport(m)
		}
		return m, model.ListenForState(m.Subscription)

	case reporting.ActionReportMsg:
		report := msg.Report
		m.LastReport = &report
		m.ActionCount++
		return m, model.ListenForReports(m.ReportChannel)

	case reporting.NotificationMsg:
		m.DroppedCount += msg.Dropped
		return m, model.ListenForReports(m.ReportChannel)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(msg.Entry))
		refreshLogViewport(m)
		return m, model.ListenForLogs(m.LogChannel)

	case model.OperationResultMsg:
		if msg.Err != nil {
			logging.Error(subsystem, msg.Err, "%s failed", msg.Op)
			return m, m.SetStatusMessage(fmt.Sprintf("%s failed: %v", msg.Op, msg.Err), model.StatusBarError, 5*time.Second)
		}
		return m, m.SetStatusMessage(msg.Op+" done", model.StatusBarSuccess, 3*time.Second)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		switch m.CurrentAppMode {
		case model.ModeStateOverlay:
			m.StateViewport, cmd = m.StateViewport.Update(msg)
		default:
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width, m.Height = msg.Width, msg.Height
	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMainDashboard
	}

	// Overlays take the whole screen minus border, padding and title.
	overlayWidth := max(m.Width-6, 10)
	overlayHeight := max(m.Height-5, 3)
	m.StateViewport.Width, m.StateViewport.Height = overlayWidth, overlayHeight
	m.LogViewport.Width, m.LogViewport.Height = overlayWidth, overlayHeight
	if m.CurrentAppMode == model.ModeMainDashboard {
		m.LogViewport.Height = max(m.Height/4, 3)
	}
	refreshLogViewport(m)
	refreshStateViewport(m)
	return m, nil
}

func refreshLogViewport(m *model.Model) {
	if !m.LogDirty && m.LogViewport.TotalLineCount() > 0 {
		return
	}
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	m.LogViewport.GotoBottom()
	m.LogDirty = false
}

func refreshStateViewport(m *model.Model) {
	m.StateViewport.SetContent(stateYAML(m))
}

func stateYAML(m *model.Model) string {
	out, err := yaml.Marshal(m.State.Map())
	if err != nil {
		return fmt.Sprintf("failed to render state: %v", err)
	}
	return string(out)
}
