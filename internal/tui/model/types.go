package model

import (
	"personalization/internal/personalization"
	"personalization/internal/reporting"
	"personalization/internal/store"
	"personalization/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMainDashboard
	ModeHelpOverlay
	ModeLogOverlay
	ModeStateOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeStateOverlay:
		return "StateOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

const (
	MaxActivityLogLines = 1000
	// stateWatchBuffer bounds pending snapshots; older ones are dropped since
	// only the latest matters for rendering.
	stateWatchBuffer = 16
	reportBuffer     = 256
)

// Panels lists the dashboard panels in focus order.
var Panels = []store.Slice{
	store.SliceWallpaper,
	store.SliceTheme,
	store.SliceAmbient,
	store.SliceUser,
	store.SliceKeyboardBacklight,
	store.SliceSeaPen,
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Tab             key.Binding
	ShiftTab        key.Binding
	Esc             key.Binding
	Quit            key.Binding
	Help            key.Binding
	ToggleLog       key.Binding
	ToggleState     key.Binding
	Copy            key.Binding
	ToggleDashboard key.Binding
	ToggleDarkMode  key.Binding
	ToggleAmbient   key.Binding
	NextWallpaper   key.Binding
	NextBacklight   key.Binding
	DismissError    key.Binding
	Reload          key.Binding
}

// Model is the dashboard state.
type Model struct {
	Width  int
	Height int

	CurrentAppMode  AppMode
	LastAppMode     AppMode
	FocusedPanel    int
	DarkDashboard   bool
	QuittingMessage string

	App          *personalization.App
	Subscription *store.Subscription
	State        store.State

	// Dispatch activity from the TUIReporter.
	ReportChannel chan tea.Msg
	LastReport    *reporting.ActionReport
	ActionCount   int
	DroppedCount  int

	LogChannel    <-chan logging.LogEntry
	ActivityLog   []string
	LogDirty      bool
	LogViewport   viewport.Model
	StateViewport viewport.Model

	StatusBarMessage     string
	StatusBarMessageType MessageType

	Keys KeyMap
	Help help.Model
}

// FocusedSlice returns the slice of the focused panel.
func (m *Model) FocusedSlice() store.Slice {
	return Panels[m.FocusedPanel%len(Panels)]
}
