package model

import (
	"context"
	"time"

	"personalization/internal/store"
	"personalization/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const operationTimeout = 10 * time.Second

// ListenForState waits for the next store snapshot. It returns nil once the
// subscription is closed, which ends the listening loop.
func ListenForState(sub *store.Subscription) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-sub.C()
		if !ok {
			return nil
		}
		return StateChangedMsg{State: state}
	}
}

// ListenForReports relays the next TUIReporter message.
func ListenForReports(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// ListenForLogs relays the next log entry.
func ListenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// RunOperation runs fn off the UI loop with a timeout.
func RunOperation(op string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
		defer cancel()
		return OperationResultMsg{Op: op, Err: fn(ctx)}
	}
}

// SetStatusMessage shows msg in the status bar and clears it after clearAfter.
func (m *Model) SetStatusMessage(msg string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = msg
	m.StatusBarMessageType = msgType
	return tea.Tick(clearAfter, func(time.Time) tea.Msg { return ClearStatusBarMsg{} })
}
