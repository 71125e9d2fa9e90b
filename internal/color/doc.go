// Package color provides the dashboard palette and lipgloss styles.
//
// Colors are adaptive: each one has a light and a dark variant and lipgloss
// picks one based on the terminal background. Initialize forces the choice,
// which the dashboard does at startup and whenever the user toggles the
// dashboard theme.
//
// # Usage Example
//
//	color.Initialize(true)
//	fmt.Println(color.SuccessStyle.Render("bound"))
//	fmt.Println(color.ErrorStyle.Render("unbound"))
package color
