// Package reporting turns store dispatch hooks into console log lines and
// dashboard messages.
package reporting

import (
	"fmt"
	"time"

	"personalization/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ActionReport describes one dispatched action.
type ActionReport struct {
	Timestamp     time.Time
	CorrelationID string
	Action        store.ActionName
	Slice         store.Slice
	Outcome       store.Outcome
	Duration      time.Duration
}

// String provides a simple representation for debugging.
func (r ActionReport) String() string {
	return fmt.Sprintf("Report(TS: %s, Action: %s, Slice: %s, Outcome: %s, Took: %s, ID: %s)",
		r.Timestamp.Format(time.RFC3339), r.Action, r.Slice, r.Outcome, r.Duration, r.CorrelationID)
}

// NewActionReport builds a report stamped with the current time and a fresh
// correlation id.
func NewActionReport(action store.Action, outcome store.Outcome, took time.Duration) ActionReport {
	return ActionReport{
		Timestamp:     time.Now(),
		CorrelationID: uuid.NewString(),
		Action:        action.Name(),
		Slice:         action.Slice(),
		Outcome:       outcome,
		Duration:      took,
	}
}

// ActionReportMsg is the tea.Msg a TUIReporter sends for every dispatch.
type ActionReportMsg struct {
	Report ActionReport
}

// NotificationMsg is the tea.Msg a TUIReporter sends after observers were
// notified.
type NotificationMsg struct {
	Delivered int
	Dropped   int
}

var (
	_ tea.Msg        = ActionReportMsg{}
	_ store.Recorder = (*ConsoleReporter)(nil)
	_ store.Recorder = (*TUIReporter)(nil)
)
