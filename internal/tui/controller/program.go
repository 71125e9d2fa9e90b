package controller

import (
	"personalization/internal/color"
	"personalization/internal/personalization"
	"personalization/internal/tui/model"
	"personalization/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the dashboard program for app. logChannel may be nil.
func NewProgram(app *personalization.App, logChannel <-chan logging.LogEntry, darkDashboard bool) *tea.Program {
	color.Initialize(darkDashboard)
	m := model.New(app, logChannel, darkDashboard)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithMouseCellMotion())
}
