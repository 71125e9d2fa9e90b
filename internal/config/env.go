package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "PERSONALIZATION_"

// envOverrides mirrors the settings that may come from the environment. Nil
// fields were not set.
type envOverrides struct {
	LogLevel        *string        `env:"LOG_LEVEL"`
	ReducersEnabled *bool          `env:"STORE_REDUCERS_ENABLED"`
	WaitTimeout     *time.Duration `env:"STORE_WAIT_TIMEOUT"`
	ActionLogSize   *int           `env:"STORE_ACTION_LOG_SIZE"`
	ToastTimeout    *time.Duration `env:"TOAST_DISMISS_TIMEOUT"`
	MCPEnabled      *bool          `env:"MCP_ENABLED"`
	MCPTransport    *string        `env:"MCP_TRANSPORT"`
	MCPHost         *string        `env:"MCP_HOST"`
	MCPPort         *int           `env:"MCP_PORT"`
	MetricsEnabled  *bool          `env:"METRICS_ENABLED"`
	MetricsAddress  *string        `env:"METRICS_ADDRESS"`
}

// applyEnv overrides config from environ, or from the process environment
// when environ is nil.
func applyEnv(config *Config, environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	set(&config.Logging.Level, o.LogLevel)
	set(&config.Store.ReducersEnabled, o.ReducersEnabled)
	set(&config.Store.WaitTimeout, o.WaitTimeout)
	set(&config.Store.ActionLogSize, o.ActionLogSize)
	set(&config.Toast.DismissTimeout, o.ToastTimeout)
	set(&config.MCP.Enabled, o.MCPEnabled)
	set(&config.MCP.Transport, o.MCPTransport)
	set(&config.MCP.Host, o.MCPHost)
	set(&config.MCP.Port, o.MCPPort)
	set(&config.Metrics.Enabled, o.MetricsEnabled)
	set(&config.Metrics.Address, o.MetricsAddress)
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
