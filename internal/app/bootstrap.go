package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"personalization/internal/config"
	"personalization/pkg/logging"
)

// Application is the main application structure that bootstraps and runs
// the personalization state core.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration and initializes the services.
func NewApplication(cfg *Config) (*Application, error) {
	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(cfg.LogLevel(), cliLogOutput(nil))

	var pc config.Config
	var err error

	if cfg.ConfigPath != "" {
		pc, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		pc, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.Personalization = &pc
	// The file may lower or raise the level set before it was read.
	logging.InitForCLI(cfg.LogLevel(), cliLogOutput(&pc))

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}

// cliLogOutput keeps stdout free for the stdio MCP transport.
func cliLogOutput(pc *config.Config) io.Writer {
	if pc != nil && pc.MCP.Enabled && pc.MCP.Transport == config.MCPTransportStdio {
		return os.Stderr
	}
	return os.Stdout
}
