package model

import (
	"personalization/internal/store"
	"personalization/pkg/logging"
)

// StateChangedMsg carries a store snapshot.
type StateChangedMsg struct {
	State store.State
}

// NewLogEntryMsg carries one log entry from pkg/logging.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// OperationResultMsg reports the end of a controller operation started from
// a key press.
type OperationResultMsg struct {
	Op  string
	Err error
}

type ClearStatusBarMsg struct{}
