package reporting

import (
	"bytes"
	"testing"
	"time"

	"personalization/internal/store"
	"personalization/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAction struct{ slice store.Slice }

func (testAction) Name() store.ActionName { return "TestAction" }
func (a testAction) Slice() store.Slice   { return a.slice }

func TestNewActionReport(t *testing.T) {
	r := NewActionReport(testAction{slice: store.SliceTheme}, store.OutcomeApplied, time.Millisecond)

	assert.Equal(t, store.ActionName("TestAction"), r.Action)
	assert.Equal(t, store.SliceTheme, r.Slice)
	assert.NotEmpty(t, r.CorrelationID)
	assert.False(t, r.Timestamp.IsZero())
	assert.Contains(t, r.String(), "Outcome: applied")
}

func TestConsoleReporterLogsIgnoredAsWarning(t *testing.T) {
	var buf bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &buf)

	c := NewConsoleReporter()
	c.ActionDispatched(testAction{slice: "nowhere"}, store.OutcomeIgnored, 0)
	c.ActionDispatched(testAction{slice: store.SliceTheme}, store.OutcomeApplied, time.Microsecond)

	out := buf.String()
	assert.Contains(t, out, "Ignored TestAction")
	assert.Contains(t, out, "subsystem=Store-nowhere")
	assert.NotContains(t, out, "Applied")
}

func TestConsoleReporterWarnsOnSlowDispatchAndDrops(t *testing.T) {
	var buf bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &buf)

	c := NewConsoleReporter()
	c.ActionDispatched(testAction{slice: store.SliceTheme}, store.OutcomeApplied, time.Second)
	c.ObserversNotified(1, 2)

	assert.Contains(t, buf.String(), "Slow dispatch of TestAction")
	assert.Contains(t, buf.String(), "Dropped 2 notifications")
}

func TestTUIReporterSendsWithoutBlocking(t *testing.T) {
	ch := make(chan tea.Msg, 1)
	r := NewTUIReporter(ch)

	r.ActionDispatched(testAction{slice: store.SliceUser}, store.OutcomeApplied, 0)
	r.ActionDispatched(testAction{slice: store.SliceUser}, store.OutcomeApplied, 0)
	r.ObserversNotified(3, 0)

	require.Len(t, ch, 1)
	msg := (<-ch).(ActionReportMsg)
	assert.Equal(t, store.SliceUser, msg.Report.Slice)

	r.ObserversNotified(1, 1)
	assert.Equal(t, NotificationMsg{Delivered: 1, Dropped: 1}, <-ch)
}

func TestStoreRecorderIntegration(t *testing.T) {
	ch := make(chan tea.Msg, 8)
	s := store.NewStore(store.WithRecorder(NewTUIReporter(ch)))

	s.Dispatch(testAction{slice: store.SliceSeaPen})

	require.Len(t, ch, 1)
	assert.Equal(t, store.OutcomeIgnored, (<-ch).(ActionReportMsg).Report.Outcome)
}
