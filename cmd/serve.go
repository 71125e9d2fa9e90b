package cmd

import (
	"context"
	"fmt"

	"personalization/internal/app"

	"github.com/spf13/cobra"
)

// serveNoTUI controls whether to run in CLI mode (true) or TUI mode (false).
var serveNoTUI bool

// serveDebug enables verbose logging across the application.
var serveDebug bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the state core with an interactive TUI or in CLI mode.",
	Long: `Loads every personalization domain into the store and keeps it in sync
with the providers. It can run in two modes:

1. Interactive TUI Mode (default):
   - A dashboard with one panel per domain, the current error toast and the
     activity log. Keys toggle dark mode, ambient mode, the wallpaper and the
     keyboard backlight.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Logs every dispatched action to the console until interrupted.
   - Required for the stdio MCP transport.

When enabled in the configuration, the MCP server and the Prometheus metrics
endpoint run alongside either mode. Use 'personalization tools' and
'personalization call' to talk to a running server.

Configuration:
  personalization loads .personalization/config.yaml from the user config
  directory and the current directory, then PERSONALIZATION_* environment
  variables.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveNoTUI, serveDebug, configPath)
	cfg.Version = rootCmd.Version

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveNoTUI, "no-tui", false, "Disable TUI and log actions to the console")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable general debug logging")
}
