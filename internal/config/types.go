package config

import (
	"time"

	"personalization/internal/ambient"
	"personalization/internal/user"
	"personalization/internal/wallpaper"
)

// Config is the top-level configuration structure.
type Config struct {
	Logging  LoggingConfig `yaml:"logging"`
	Store    StoreConfig   `yaml:"store"`
	Toast    ToastConfig   `yaml:"toast"`
	MCP      MCPConfig     `yaml:"mcp"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Fixtures Fixtures      `yaml:"fixtures,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}

// StoreConfig tunes the state store.
type StoreConfig struct {
	ReducersEnabled bool          `yaml:"reducersEnabled"`
	WaitTimeout     time.Duration `yaml:"waitTimeout,omitempty"`   // default wait for WaitForAction; 0 disables
	ActionLogSize   int           `yaml:"actionLogSize,omitempty"` // bounded dispatched-action history
}

type ToastConfig struct {
	DismissTimeout time.Duration `yaml:"dismissTimeout,omitempty"`
}

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the server-sent events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// MCPConfig configures the MCP tool server.
type MCPConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Transport string `yaml:"transport,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address,omitempty"`
}

// Fixtures is canned data for the in-memory providers. Empty fields keep the
// built-in data.
type Fixtures struct {
	UserInfo          *user.Info                   `yaml:"userInfo,omitempty"`
	AmbientAlbums     []ambient.Album              `yaml:"ambientAlbums,omitempty"`
	Collections       []wallpaper.Collection       `yaml:"collections,omitempty"`
	Images            map[string][]wallpaper.Image `yaml:"images,omitempty"`
	DefaultUserImages []user.DefaultImage          `yaml:"defaultUserImages,omitempty"`
}
