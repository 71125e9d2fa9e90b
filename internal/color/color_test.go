package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
	}{
		{"set dark mode", true},
		{"set light mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			assert.Equal(t, tt.isDarkMode, lipgloss.HasDarkBackground())
		})
	}
}

func TestFocusedPanelKeepsFrameSize(t *testing.T) {
	assert.Equal(t, PanelStyle.GetHorizontalFrameSize(), FocusedPanelStyle.GetHorizontalFrameSize())
}
