package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"personalization/internal/tui/controller"
	"personalization/pkg/logging"
)

// runCLIMode executes the non-interactive command line mode
func runCLIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	services.Start(ctx)
	defer services.Stop()

	logging.Info("CLI", "State loaded. Press Ctrl+C to exit.")
	if err := services.Serve(ctx); err != nil {
		logging.Error("CLI", err, "Server failed")
		return err
	}
	<-ctx.Done()

	logging.Info("CLI", "Shutting down")
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.LogLevel())
	defer logging.CloseTUIChannel()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	services.Start(ctx)
	defer services.Stop()

	go func() {
		if err := services.Serve(ctx); err != nil {
			logging.Error("TUI-Lifecycle", err, "Server failed")
		}
	}()

	p := controller.NewProgram(services.App, logChan, true)
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
