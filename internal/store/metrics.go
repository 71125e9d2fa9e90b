package store

import "time"

// Metrics tracks store activity.
type Metrics struct {
	ActionsDispatched    int64
	ActionsApplied       int64
	ActionsIgnored       int64
	ActionsRecordedOnly  int64
	Notifications        int64
	DroppedNotifications int64
	TotalSubscriptions   int
	ActiveSubscriptions  int
	LastDispatch         time.Time
	ActionsByName        map[ActionName]int64
}

// Recorder receives store activity, e.g. for prometheus export or logging.
// Calls are made outside the store lock, in dispatch order.
type Recorder interface {
	ActionDispatched(action Action, outcome Outcome, duration time.Duration)
	ObserversNotified(delivered, dropped int)
}

func (m Metrics) clone() Metrics {
	out := m
	out.ActionsByName = make(map[ActionName]int64, len(m.ActionsByName))
	for k, v := range m.ActionsByName {
		out.ActionsByName[k] = v
	}
	return out
}
