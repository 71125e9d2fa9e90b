package app

import (
	"personalization/internal/config"
	"personalization/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath, when set, replaces the layered configuration lookup with a
	// single directory.
	ConfigPath string

	// Version is reported by the MCP server.
	Version string

	// Personalization is filled in by NewApplication.
	Personalization *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
		Version:    "dev",
	}
}

// LogLevel is the configured level, raised to debug by the debug flag.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.Personalization == nil {
		return logging.LevelInfo
	}
	level, err := logging.ParseLevel(c.Personalization.Logging.Level)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
