package cmd

import (
	"context"

	"personalization/internal/cli"

	"github.com/spf13/cobra"
)

var (
	callOutputFormat string
	callEndpoint     string
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value...]",
	Short: "Call an MCP tool on a running server",
	Long: `Calls one tool on a running 'personalization serve' and prints the result.

Arguments are key=value pairs. true and false are sent as booleans and numeric
values as numbers.

Examples:
  personalization call set_dark_mode enabled=true
  personalization call select_wallpaper asset_id=1
  personalization call get_state slice=theme -o table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools of a running server",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func newExecutor(cmd *cobra.Command) (*cli.ToolExecutor, context.Context, error) {
	format, err := cli.ParseOutputFormat(callOutputFormat)
	if err != nil {
		return nil, nil, err
	}
	exec, err := cli.NewToolExecutor(cli.ExecutorOptions{Endpoint: callEndpoint, Format: format, Out: cmd.OutOrStdout()})
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := exec.Connect(ctx); err != nil {
		return nil, nil, err
	}
	return exec, ctx, nil
}

func runCall(cmd *cobra.Command, args []string) error {
	toolArgs, err := cli.ParseArgs(args[1:])
	if err != nil {
		return err
	}
	exec, ctx, err := newExecutor(cmd)
	if err != nil {
		return err
	}
	defer exec.Close()
	return exec.Execute(ctx, args[0], toolArgs)
}

func runTools(cmd *cobra.Command, args []string) error {
	exec, ctx, err := newExecutor(cmd)
	if err != nil {
		return err
	}
	defer exec.Close()
	return exec.ListTools(ctx)
}

func init() {
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(toolsCmd)

	for _, c := range []*cobra.Command{callCmd, toolsCmd} {
		c.Flags().StringVarP(&callOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
		c.Flags().StringVar(&callEndpoint, "endpoint", "", "MCP endpoint of the running server (default from config)")
	}
}
