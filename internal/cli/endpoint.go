package cli

import (
	"fmt"

	"personalization/internal/config"
)

// EndpointFor returns the client URL of an MCP server configured with cfg.
func EndpointFor(cfg config.MCPConfig) (string, error) {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 8091
	}
	switch cfg.Transport {
	case config.MCPTransportSSE:
		return fmt.Sprintf("http://%s:%d/sse", host, port), nil
	case config.MCPTransportStdio:
		return "", fmt.Errorf("the stdio MCP transport has no endpoint to connect to")
	default:
		return fmt.Sprintf("http://%s:%d/mcp", host, port), nil
	}
}

// DetectEndpoint reads the layered configuration and returns the endpoint of
// the server it describes, falling back to the defaults when the
// configuration cannot be loaded.
func DetectEndpoint() (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return EndpointFor(config.GetDefaultConfig().MCP)
	}
	return EndpointFor(cfg.MCP)
}
