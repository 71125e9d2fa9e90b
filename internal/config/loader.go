package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/personalization"
	projectConfigDir = ".personalization"
	configFileName   = "config.yaml"
)

// LoadConfig layers the default, user and project configuration, then the
// environment.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if err := overlayFile(&config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if err := overlayFile(&config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := applyEnv(&config, nil); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

// LoadConfigFromPath reads config.yaml from dir only, over the defaults and
// under the environment. The file must exist.
func LoadConfigFromPath(dir string) (Config, error) {
	config := GetDefaultConfig()
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := overlayFile(&config, path); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	if err := applyEnv(&config, nil); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// overlayFile decodes filePath onto config. Keys absent from the file keep
// their current values. A missing file is not an error.
func overlayFile(config *Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

// Validate checks values that cannot be corrected silently.
func (c Config) Validate() error {
	switch c.MCP.Transport {
	case MCPTransportStreamableHTTP, MCPTransportSSE, MCPTransportStdio:
	default:
		return fmt.Errorf("unsupported mcp transport %q", c.MCP.Transport)
	}
	if c.MCP.Port < 0 || c.MCP.Port > 65535 {
		return fmt.Errorf("invalid mcp port %d", c.MCP.Port)
	}
	if c.Store.ActionLogSize < 0 {
		return fmt.Errorf("invalid store action log size %d", c.Store.ActionLogSize)
	}
	if c.Store.WaitTimeout < 0 || c.Toast.DismissTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
