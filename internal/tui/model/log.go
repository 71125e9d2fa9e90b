package model

import (
	"fmt"

	"personalization/pkg/logging"
)

// AddRawLineToActivityLog appends a formatted line, keeping at most
// MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.LogDirty = true
}

// FormatLogEntry renders an entry as "15:04:05 [LEVEL] [Subsystem] message".
func FormatLogEntry(e logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s", e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += ": " + e.Err.Error()
	}
	return line
}
