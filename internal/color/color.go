package color

import "github.com/charmbracelet/lipgloss"

// Initialize fixes lipgloss to a dark or light background.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Palette.
var (
	Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Success = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#05D176"}
	Error   = lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}
	Warning = lipgloss.AdaptiveColor{Light: "#E0A956", Dark: "#F9C171"}
	Info    = lipgloss.AdaptiveColor{Light: "#5A9FE0", Dark: "#71B7F9"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	Border  = lipgloss.AdaptiveColor{Light: "#D1D1D1", Dark: "#3C3C3C"}
	Text    = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)

	AppStyle = lipgloss.NewStyle().Margin(0, 0)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	// PanelStyle is the base for every slice panel.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	FocusedPanelStyle = PanelStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	PanelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(Text)
	LabelStyle      = lipgloss.NewStyle().Foreground(Subtle)
	StatusStyle     = lipgloss.NewStyle().Foreground(Text)

	LogInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#E0E0E0"})
	LogWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A07000", Dark: "#FFD066"}).Bold(true)
	LogErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"}).Bold(true)
	LogDebugStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).Italic(true)

	LogPanelTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(Text)

	// ToastStyle renders the current user-visible error.
	ToastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#8B1A1A"}).
			Padding(0, 1)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Text).
			Padding(1, 2)

	StatusBarInfoStyle    = lipgloss.NewStyle().Foreground(Text).Background(lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#2A2A3A"}).Padding(0, 1)
	StatusBarSuccessStyle = StatusBarInfoStyle.Foreground(Success)
	StatusBarErrorStyle   = StatusBarInfoStyle.Foreground(Error)
)
