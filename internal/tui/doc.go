// Package tui is the interactive dashboard. It watches the store and renders
// one panel per slice, an error toast, and an activity log fed by
// pkg/logging and the store's dispatch reports.
//
// The package is split the way bubbletea apps usually are:
//
//   - model: the Model, key bindings, messages and the commands that feed
//     store notifications, log entries and reports into the program.
//   - view: pure rendering of a Model.
//   - controller: message routing, key handling and the tea.Program setup.
package tui
