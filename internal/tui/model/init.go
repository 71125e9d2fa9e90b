package model

import (
	"personalization/internal/personalization"
	"personalization/internal/reporting"
	"personalization/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleState: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "show state as YAML"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy overlay content"),
		),
		ToggleDashboard: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dashboard dark/light"),
		),
		ToggleDarkMode: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle system dark mode"),
		),
		ToggleAmbient: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle ambient mode"),
		),
		NextWallpaper: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "next wallpaper"),
		),
		NextBacklight: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "next backlight color"),
		),
		DismissError: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss error"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload all data"),
		),
	}
}

// FullHelp returns bindings for the help overlay, one column per slice.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Esc},
		{k.ToggleDarkMode, k.ToggleAmbient, k.NextWallpaper, k.NextBacklight, k.DismissError, k.Reload},
		{k.Help, k.ToggleLog, k.ToggleState, k.Copy, k.ToggleDashboard, k.Quit},
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// New builds the dashboard model for app. The model subscribes to the store
// and attaches a TUIReporter; Close undoes both subscriptions' effects.
func New(app *personalization.App, logChannel <-chan logging.LogEntry, darkDashboard bool) *Model {
	reports := make(chan tea.Msg, reportBuffer)
	app.Store.AddRecorder(reporting.NewTUIReporter(reports))

	m := &Model{
		CurrentAppMode: ModeInitializing,
		LastAppMode:    ModeInitializing,
		DarkDashboard:  darkDashboard,
		App:            app,
		Subscription:   app.Store.Watch(stateWatchBuffer),
		State:          app.Store.Data(),
		ReportChannel:  reports,
		LogChannel:     logChannel,
		LogViewport:    viewport.New(0, 0),
		StateViewport:  viewport.New(0, 0),
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
	}
	return m
}

// Init starts the listeners.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		ListenForState(m.Subscription),
		ListenForReports(m.ReportChannel),
	}
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogs(m.LogChannel))
	}
	return tea.Batch(cmds...)
}

// Close releases the store subscription.
func (m *Model) Close() {
	m.App.Store.Unsubscribe(m.Subscription)
}
