package reporting

import (
	"time"

	"personalization/internal/store"
	"personalization/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// TUIReporter forwards dispatch hooks to the dashboard as tea messages.
type TUIReporter struct {
	updateChan chan<- tea.Msg
}

// NewTUIReporter creates a TUIReporter sending to updateChan.
func NewTUIReporter(updateChan chan<- tea.Msg) *TUIReporter {
	if updateChan == nil {
		logging.Error("TUIReporter", nil, "NewTUIReporter called with nil updateChan. Using a dummy channel.")
		dummyChan := make(chan tea.Msg)
		go func() {
			for range dummyChan {
			}
		}()
		return &TUIReporter{updateChan: dummyChan}
	}
	return &TUIReporter{updateChan: updateChan}
}

// ActionDispatched sends an ActionReportMsg, dropping it if the dashboard is
// behind. Dispatch must never block on the UI.
func (t *TUIReporter) ActionDispatched(action store.Action, outcome store.Outcome, took time.Duration) {
	select {
	case t.updateChan <- ActionReportMsg{Report: NewActionReport(action, outcome, took)}:
	default:
		if outcome == store.OutcomeIgnored {
			logging.Warn("TUIReporter", "TUI channel full, dropping report for %s", action.Name())
		}
	}
}

// ObserversNotified sends a NotificationMsg when something was dropped.
func (t *TUIReporter) ObserversNotified(delivered, dropped int) {
	if dropped == 0 {
		return
	}
	select {
	case t.updateChan <- NotificationMsg{Delivered: delivered, Dropped: dropped}:
	default:
	}
}
