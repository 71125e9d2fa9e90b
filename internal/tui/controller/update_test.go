package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"personalization/internal/errorstate"
	"personalization/internal/keyboard"
	"personalization/internal/personalization"
	"personalization/internal/reporting"
	mocks "personalization/internal/testing"
	"personalization/internal/theme"
	"personalization/internal/tui/model"
	"personalization/internal/wallpaper"
	"personalization/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	m := mocks.NewMocks()
	m.SetEcho(true)
	app, err := personalization.New(m.Providers(), personalization.NewStore())
	require.NoError(t, err)
	t.Cleanup(app.Close)
	require.NoError(t, app.Start(context.Background()))

	tm := model.New(app, nil, true)
	t.Cleanup(tm.Close)
	tm, _ = Update(tea.WindowSizeMsg{Width: 120, Height: 40}, tm)
	return tm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds its message back through Update.
func run(t *testing.T, m *model.Model, cmd tea.Cmd) *model.Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	m, _ = Update(msg, m)
	return m
}

func TestWindowSizeLeavesInitializing(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)
	assert.Equal(t, 120, m.Width)
}

func TestTabCyclesPanels(t *testing.T) {
	m := newTestModel(t)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyShiftTab}, m)
	assert.Equal(t, len(model.Panels)-1, m.FocusedPanel)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyTab}, m)
	assert.Equal(t, 0, m.FocusedPanel)
}

func TestStateChangedMsgUpdatesSnapshot(t *testing.T) {
	m := newTestModel(t)
	m.App.Store.Dispatch(errorstate.SetError{Error: errorstate.NewError("boom")})

	m, cmd := Update(model.StateChangedMsg{State: m.App.Store.Data()}, m)
	assert.NotNil(t, cmd)
	require.NotNil(t, errorstate.Select(m.State).Current)
	assert.Equal(t, "boom", errorstate.Select(m.State).Current.Message)
}

func TestToggleDarkModeRunsController(t *testing.T) {
	m := newTestModel(t)
	before := theme.Select(m.State).DarkModeEnabled
	require.NotNil(t, before)

	m, cmd := Update(runes("d"), m)
	m = run(t, m, cmd)

	after := theme.Select(m.App.Store.Data()).DarkModeEnabled
	require.NotNil(t, after)
	assert.Equal(t, !*before, *after)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
}

func TestNextWallpaperAdvances(t *testing.T) {
	m := newTestModel(t)
	m.State = m.App.Store.Data()

	m, cmd := Update(runes("w"), m)
	run(t, m, cmd)

	current := wallpaper.Select(m.App.Store.Data()).CurrentSelected
	require.NotNil(t, current)
	assert.Equal(t, "1", current.Key, "first loaded image when the default is on screen")
}

func TestNextBacklightColorCycles(t *testing.T) {
	m := newTestModel(t)
	m.State = m.App.Store.Data()

	m, cmd := Update(runes("b"), m)
	run(t, m, cmd)

	current := keyboard.Select(m.App.Store.Data()).Current
	require.NotNil(t, current)
	require.NotNil(t, current.Color)
	assert.Equal(t, keyboard.ColorWhite, *current.Color)
}

func TestOperationFailureShowsError(t *testing.T) {
	m := newTestModel(t)

	m, cmd := Update(model.OperationResultMsg{Op: "Toggle", Err: errors.New("denied")}, m)
	assert.NotNil(t, cmd)
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	assert.Contains(t, m.StatusBarMessage, "denied")

	m, _ = Update(model.ClearStatusBarMsg{}, m)
	assert.Empty(t, m.StatusBarMessage)
}

func TestReportsUpdateCounters(t *testing.T) {
	m := newTestModel(t)

	report := reporting.ActionReport{Action: theme.ActionSetDarkModeEnabled, Duration: time.Millisecond}
	m, _ = Update(reporting.ActionReportMsg{Report: report}, m)
	m, _ = Update(reporting.NotificationMsg{Delivered: 1, Dropped: 2}, m)

	assert.Equal(t, 1, m.ActionCount)
	assert.Equal(t, 2, m.DroppedCount)
	require.NotNil(t, m.LastReport)
	assert.Equal(t, theme.ActionSetDarkModeEnabled, m.LastReport.Action)
}

func TestLogOverlayCopy(t *testing.T) {
	m := newTestModel(t)
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = orig })

	m, _ = Update(model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelInfo, Subsystem: "Store", Message: "hello"}}, m)
	m, _ = Update(runes("L"), m)
	require.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)

	m, _ = Update(runes("y"), m)
	assert.Contains(t, copied, "[Store] hello")
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)
}

func TestStateOverlayShowsYAML(t *testing.T) {
	m := newTestModel(t)
	m.State = m.App.Store.Data()

	m, _ = Update(runes("S"), m)
	require.Equal(t, model.ModeStateOverlay, m.CurrentAppMode)
	assert.True(t, strings.Contains(stateYAML(m), "wallpaper:"))
}

func TestDismissErrorKey(t *testing.T) {
	m := newTestModel(t)
	m.App.Store.Dispatch(errorstate.SetError{Error: errorstate.NewError("boom")})

	m, _ = Update(runes("x"), m)
	assert.Nil(t, errorstate.Select(m.App.Store.Data()).Current)

	_, cmd := Update(runes("x"), m)
	assert.NotNil(t, cmd, "second dismiss reports that nothing is shown")
}

func TestQuitClosesSubscription(t *testing.T) {
	m := newTestModel(t)

	m, cmd := Update(runes("q"), m)
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	assert.True(t, m.Subscription.IsClosed())
	assert.NotNil(t, cmd)
}
