package app

import (
	"context"
	"errors"
	"fmt"

	"personalization/internal/config"
	"personalization/internal/mcpserver"
	"personalization/internal/metrics"
	"personalization/internal/personalization"
	"personalization/internal/reporting"
	"personalization/internal/store"
	mocks "personalization/internal/testing"
	"personalization/internal/toast"
	"personalization/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// Services holds all the initialized services
type Services struct {
	Mocks   *mocks.Mocks
	Store   *store.Store
	App     *personalization.App
	Metrics *metrics.Recorder
	MCP     *mcpserver.Server

	metricsAddress string
}

// InitializeServices wires the providers, the store and the optional MCP and
// metrics servers. Nothing is started.
func InitializeServices(cfg *Config) (*Services, error) {
	pc := cfg.Personalization
	if pc == nil {
		defaults := config.GetDefaultConfig()
		pc = &defaults
	}

	m := mocks.NewMocks()
	m.ApplyFixtures(pc.Fixtures)
	// Selections come back through the observers, like the system service.
	m.SetEcho(true)

	opts := []store.Option{
		store.WithReducersEnabled(pc.Store.ReducersEnabled),
		store.WithWaitTimeout(pc.Store.WaitTimeout),
		store.WithActionLogSize(pc.Store.ActionLogSize),
	}
	if cfg.NoTUI {
		opts = append(opts, store.WithRecorder(reporting.NewConsoleReporter()))
	}
	s := personalization.NewStore(opts...)

	services := &Services{Mocks: m, Store: s}
	if pc.Metrics.Enabled {
		services.Metrics = metrics.New(s)
		services.metricsAddress = pc.Metrics.Address
		s.AddRecorder(services.Metrics)
	}

	app, err := personalization.New(m.Providers(), s, toast.WithTimeout(pc.Toast.DismissTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create personalization app: %w", err)
	}
	services.App = app

	if pc.MCP.Enabled {
		if !cfg.NoTUI && pc.MCP.Transport == config.MCPTransportStdio {
			return nil, errors.New("the stdio MCP transport needs --no-tui")
		}
		services.MCP = mcpserver.New(app, pc.MCP, cfg.Version)
	}
	return services, nil
}

// Start binds the bridges and loads every domain. Load failures are logged and
// surfaced through the error slice; they do not stop startup.
func (s *Services) Start(ctx context.Context) {
	if err := s.App.Start(ctx); err != nil {
		logging.Warn("Bootstrap", "Initial load incomplete: %v", err)
	}
}

// Serve runs the MCP and metrics servers until ctx is done or one of them
// fails.
func (s *Services) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	if s.MCP != nil {
		g.Go(func() error { return s.MCP.Serve(ctx) })
	}
	if s.Metrics != nil {
		g.Go(func() error { return s.Metrics.Serve(ctx, s.metricsAddress) })
	}
	return g.Wait()
}

// Stop unbinds the bridges and stops the toast timer.
func (s *Services) Stop() {
	s.App.Close()
}
