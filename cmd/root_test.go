package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "personalization", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-path"))
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "personalization version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "personalization version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"version", "self-update", "serve", "state", "call", "tools"} {
		assert.True(t, found[name], "subcommand %s", name)
	}
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "9.9.9"

	var buf bytes.Buffer
	c := newVersionCmd()
	c.SetOut(&buf)
	c.Run(c, nil)
	assert.Equal(t, "personalization version 9.9.9\n", buf.String())
}

func TestStateCommandPrintsSlice(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mcp:\n  enabled: false\n"), 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"state", "--config-path", dir, "-o", "json", "--slice", "theme"})
	defer func() { configPath, stateSlice, stateOutputFormat = "", "", "yaml" }()

	require.NoError(t, rootCmd.Execute())

	var theme map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &theme))
	assert.Contains(t, theme, "darkModeEnabled")
}

func TestStateCommandRejectsUnknownFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"state", "-o", "xml"})
	defer func() { stateOutputFormat = "yaml" }()

	assert.Error(t, rootCmd.Execute())
}
