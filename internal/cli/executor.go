package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ExecutorOptions contains options for tool execution
type ExecutorOptions struct {
	Endpoint string
	Format   OutputFormat
	Out      io.Writer
}

// ToolExecutor calls tools on a running server and prints their results.
type ToolExecutor struct {
	client  *CLIClient
	printer Printer
}

// NewToolExecutor creates an executor. An empty endpoint is detected from the
// configuration.
func NewToolExecutor(options ExecutorOptions) (*ToolExecutor, error) {
	endpoint := options.Endpoint
	if endpoint == "" {
		detected, err := DetectEndpoint()
		if err != nil {
			return nil, err
		}
		endpoint = detected
	}
	out := options.Out
	if out == nil {
		out = os.Stdout
	}
	return &ToolExecutor{
		client:  NewCLIClient(endpoint),
		printer: Printer{Format: options.Format, Out: out},
	}, nil
}

// Connect establishes the connection to the server.
func (e *ToolExecutor) Connect(ctx context.Context) error {
	if err := e.client.Connect(ctx); err != nil {
		return fmt.Errorf("%w (is `personalization serve` running?)", err)
	}
	return nil
}

// Close closes the connection
func (e *ToolExecutor) Close() error {
	return e.client.Close()
}

// Execute calls toolName and prints its result.
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, args map[string]any) error {
	text, err := e.client.CallToolSimple(ctx, toolName, args)
	if err != nil {
		return fmt.Errorf("failed to execute tool %s: %w", toolName, err)
	}
	if text == "" {
		return nil
	}
	return e.printer.PrintJSONText(text)
}

// ListTools prints the server's tools.
func (e *ToolExecutor) ListTools(ctx context.Context) error {
	tools, err := e.client.ListTools(ctx)
	if err != nil {
		return err
	}
	rows := make([]any, 0, len(tools))
	for _, tool := range tools {
		rows = append(rows, map[string]any{
			"name":        tool.Name,
			"description": tool.Description,
		})
	}
	return e.printer.Print(rows)
}

// ParseArgs turns key=value pairs into tool arguments. Values that parse as
// booleans or numbers are passed as such.
func ParseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, want key=value", pair)
		}
		args[key] = parseValue(value)
	}
	return args, nil
}

func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}
