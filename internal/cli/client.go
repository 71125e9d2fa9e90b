package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultTimeout = 30 * time.Second

// CLIClient is a short-lived MCP client for one command invocation against a
// running `personalization serve`.
type CLIClient struct {
	endpoint string
	client   client.MCPClient
	timeout  time.Duration
}

// NewCLIClient creates a client for endpoint. Endpoints ending in /sse use the
// SSE transport, everything else streamable HTTP.
func NewCLIClient(endpoint string) *CLIClient {
	return &CLIClient{
		endpoint: endpoint,
		timeout:  defaultTimeout,
	}
}

// Endpoint returns the server URL.
func (c *CLIClient) Endpoint() string {
	return c.endpoint
}

// Connect starts the transport and performs the MCP handshake.
func (c *CLIClient) Connect(ctx context.Context) error {
	var (
		transport interface {
			client.MCPClient
			Start(context.Context) error
		}
		err error
	)
	if strings.HasSuffix(c.endpoint, "/sse") {
		transport, err = client.NewSSEMCPClient(c.endpoint)
	} else {
		transport, err = client.NewStreamableHttpClient(c.endpoint)
	}
	if err != nil {
		return fmt.Errorf("failed to create client for %s: %w", c.endpoint, err)
	}
	if err := transport.Start(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.endpoint, err)
	}
	c.client = transport

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}
	return nil
}

// ListTools returns the tools the server offers.
func (c *CLIClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return result.Tools, nil
}

// CallTool executes a tool and returns the raw result.
func (c *CLIClient) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolSimple executes a tool and returns its first text content. A tool
// error is returned as an error.
func (c *CLIClient) CallToolSimple(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}
	texts := textContents(result)
	if result.IsError {
		return "", fmt.Errorf("tool error: %s", strings.Join(texts, "; "))
	}
	if len(texts) == 0 {
		return "", nil
	}
	return texts[0], nil
}

// CallToolJSON executes a tool and decodes its text as JSON, returning the
// text itself when it is not JSON.
func (c *CLIClient) CallToolJSON(ctx context.Context, name string, args map[string]any) (any, error) {
	text, err := c.CallToolSimple(ctx, name, args)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text, nil
	}
	return v, nil
}

// Close closes the connection.
func (c *CLIClient) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

func (c *CLIClient) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "personalization-cli",
		Version: "1.0.0",
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

func textContents(result *mcp.CallToolResult) []string {
	var out []string
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			out = append(out, text.Text)
		}
	}
	return out
}
