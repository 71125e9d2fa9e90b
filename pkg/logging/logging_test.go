package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"ERROR", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCLILoggingIncludesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Store", errors.New("boom"), "dispatch of %s failed", "SetAlbums")

	out := buf.String()
	assert.Contains(t, out, "dispatch of SetAlbums failed")
	assert.Contains(t, out, "subsystem=Store")
	assert.Contains(t, out, "error=boom")
}

func TestCLILoggingRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("Store", "hidden")
	Warn("Store", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestTUIChannelReceivesEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("TUI", "filtered")
	Info("TUI", "hello %d", 1)

	entry := <-ch
	assert.Equal(t, LevelInfo, entry.Level)
	assert.Equal(t, "TUI", entry.Subsystem)
	assert.Equal(t, "hello 1", entry.Message)
	assert.Len(t, ch, 0)
}
