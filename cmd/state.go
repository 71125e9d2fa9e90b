package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"personalization/internal/app"
	"personalization/internal/cli"
	"personalization/internal/store"
	"personalization/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	stateOutputFormat string
	stateSlice        string
	stateLive         bool
	stateEndpoint     string
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the state tree",
	Long: `Prints the state tree after the initial load of every domain.

By default a fresh store is loaded in-process from the configured fixtures.
With --live the state is read from a running 'personalization serve' through
its MCP server instead.`,
	Args: cobra.NoArgs,
	RunE: runState,
}

func runState(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(stateOutputFormat)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if stateLive {
		exec, err := cli.NewToolExecutor(cli.ExecutorOptions{Endpoint: stateEndpoint, Format: format, Out: cmd.OutOrStdout()})
		if err != nil {
			return err
		}
		if err := exec.Connect(ctx); err != nil {
			return err
		}
		defer exec.Close()

		toolArgs := map[string]any{}
		if stateSlice != "" {
			toolArgs["slice"] = stateSlice
		}
		return exec.Execute(ctx, "get_state", toolArgs)
	}

	snapshot, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}
	var v any = snapshot.Map()
	if stateSlice != "" {
		slice, ok := snapshot.Get(store.Slice(stateSlice))
		if !ok {
			return fmt.Errorf("unknown slice %q", stateSlice)
		}
		v = slice
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return cli.Printer{Format: format, Out: cmd.OutOrStdout()}.PrintJSONText(string(data))
}

// loadSnapshot runs the initial load against the mock providers and returns
// the resulting state. Servers stay off and logs go to stderr.
func loadSnapshot(ctx context.Context) (store.State, error) {
	cfg := app.NewConfig(false, false, configPath)
	logging.InitForCLI(logging.LevelWarn, os.Stderr)

	pc, err := loadConfig(configPath)
	if err != nil {
		return store.State{}, err
	}
	pc.MCP.Enabled = false
	pc.Metrics.Enabled = false
	cfg.Personalization = &pc

	services, err := app.InitializeServices(cfg)
	if err != nil {
		return store.State{}, err
	}
	defer services.Stop()

	services.Start(ctx)
	return services.Store.Data(), nil
}

func init() {
	rootCmd.AddCommand(stateCmd)

	stateCmd.Flags().StringVarP(&stateOutputFormat, "output", "o", "yaml", "Output format (table, json, yaml)")
	stateCmd.Flags().StringVar(&stateSlice, "slice", "", "Print only this slice (ambient, wallpaper, user, theme, keyboardBacklight, seaPen, error)")
	stateCmd.Flags().BoolVar(&stateLive, "live", false, "Read the state from a running server")
	stateCmd.Flags().StringVar(&stateEndpoint, "endpoint", "", "MCP endpoint of the running server (default from config)")
}
