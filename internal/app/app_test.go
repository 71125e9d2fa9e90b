package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"personalization/internal/config"
	"personalization/internal/theme"
	"personalization/internal/wallpaper"
	"personalization/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(mutate func(*config.Config)) *Config {
	pc := config.GetDefaultConfig()
	pc.MCP.Enabled = false
	if mutate != nil {
		mutate(&pc)
	}
	cfg := NewConfig(true, false, "")
	cfg.Personalization = &pc
	return cfg
}

func TestConfigLogLevel(t *testing.T) {
	cfg := NewConfig(false, false, "")
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel())

	cfg = testConfig(func(c *config.Config) { c.Logging.Level = "warn" })
	assert.Equal(t, logging.LevelWarn, cfg.LogLevel())

	cfg.Debug = true
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel())
}

func TestInitializeServicesAppliesStoreConfig(t *testing.T) {
	cfg := testConfig(func(c *config.Config) { c.Store.ReducersEnabled = false })

	services, err := InitializeServices(cfg)
	require.NoError(t, err)
	defer services.Stop()

	assert.False(t, services.Store.ReducersEnabled())
	assert.Nil(t, services.MCP)
	assert.Nil(t, services.Metrics)
	assert.True(t, services.Mocks.Wallpaper.Echo)
}

func TestInitializeServicesAppliesFixtures(t *testing.T) {
	cfg := testConfig(func(c *config.Config) {
		c.Fixtures.Collections = []wallpaper.Collection{{ID: "only", Name: "Only"}}
		c.Fixtures.Images = map[string][]wallpaper.Image{"only": {{AssetID: 9, UnitID: 9}}}
	})

	services, err := InitializeServices(cfg)
	require.NoError(t, err)
	defer services.Stop()

	services.Start(context.Background())
	w := wallpaper.Select(services.Store.Data())
	require.Len(t, w.Collections, 1)
	_, ok := w.FindImage(9)
	assert.True(t, ok)
	assert.NotNil(t, theme.Select(services.Store.Data()).DarkModeEnabled)
}

func TestInitializeServicesRejectsStdioWithTUI(t *testing.T) {
	cfg := testConfig(func(c *config.Config) {
		c.MCP.Enabled = true
		c.MCP.Transport = config.MCPTransportStdio
	})
	cfg.NoTUI = false

	_, err := InitializeServices(cfg)
	assert.ErrorContains(t, err, "--no-tui")
}

func TestServeMetricsUntilCancelled(t *testing.T) {
	cfg := testConfig(func(c *config.Config) {
		c.Metrics.Enabled = true
		c.Metrics.Address = "127.0.0.1:0"
	})
	services, err := InitializeServices(cfg)
	require.NoError(t, err)
	defer services.Stop()
	require.NotNil(t, services.Metrics)

	services.Start(context.Background())
	assert.Positive(t, services.Store.Metrics().ActionsDispatched)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- services.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServeWithoutServersReturns(t *testing.T) {
	services, err := InitializeServices(testConfig(nil))
	require.NoError(t, err)
	defer services.Stop()

	assert.NoError(t, services.Serve(context.Background()))
}

func TestNewApplicationFromPath(t *testing.T) {
	dir := t.TempDir()
	yaml := "logging:\n  level: debug\nmcp:\n  enabled: false\nstore:\n  actionLogSize: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	application, err := NewApplication(NewConfig(true, false, dir))
	require.NoError(t, err)
	defer application.Services().Stop()

	assert.Equal(t, 10, application.config.Personalization.Store.ActionLogSize)
	assert.Equal(t, logging.LevelDebug, application.config.LogLevel())
	assert.Nil(t, application.Services().MCP)
}

func TestNewApplicationMissingPath(t *testing.T) {
	_, err := NewApplication(NewConfig(true, false, filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
}
