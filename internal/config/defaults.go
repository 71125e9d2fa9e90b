package config

import "time"

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Store: StoreConfig{
			ReducersEnabled: true,
			WaitTimeout:     5 * time.Second,
			ActionLogSize:   1000,
		},
		Toast: ToastConfig{DismissTimeout: 10 * time.Second},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: MCPTransportStreamableHTTP,
			Host:      "localhost",
			Port:      8091,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Address: "localhost:9464",
		},
	}
}
