package reporting

import (
	"time"

	"personalization/internal/store"
	"personalization/pkg/logging"
)

// SlowDispatchThreshold marks dispatches worth a warning.
const SlowDispatchThreshold = 50 * time.Millisecond

// ConsoleReporter logs every dispatch through pkg/logging.
type ConsoleReporter struct {
	slow time.Duration
}

// NewConsoleReporter creates a new ConsoleReporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{slow: SlowDispatchThreshold}
}

// ActionDispatched logs one dispatch. Applied actions are debug noise; actions
// for unregistered slices and slow reducers are worth a warning.
func (c *ConsoleReporter) ActionDispatched(action store.Action, outcome store.Outcome, took time.Duration) {
	report := NewActionReport(action, outcome, took)
	subsystem := "Store-" + string(report.Slice)

	switch {
	case outcome == store.OutcomeIgnored:
		logging.Warn(subsystem, "Ignored %s: no reducer for slice %q", report.Action, report.Slice)
	case took > c.slow:
		logging.Warn(subsystem, "Slow dispatch of %s took %s, CorrelationID: %s", report.Action, took, report.CorrelationID)
	case outcome == store.OutcomeRecorded:
		logging.Debug(subsystem, "Recorded %s without applying (reducers disabled)", report.Action)
	default:
		logging.Debug(subsystem, "Applied %s in %s", report.Action, took)
	}
}

// ObserversNotified warns when channel subscribers fell behind.
func (c *ConsoleReporter) ObserversNotified(delivered, dropped int) {
	if dropped > 0 {
		logging.Warn("Store", "Dropped %d notifications (%d delivered); a watcher is not keeping up", dropped, delivered)
	}
}
