// Package metrics exports store activity as prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"personalization/internal/store"
	"personalization/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const subsystem = "Metrics"

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "personalization").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the collectors. Default: a fresh registry.
	Registry *prometheus.Registry
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) { c.Buckets = buckets }
}

// WithRegistry sets the registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) { c.Registry = registry }
}

// Recorder implements store.Recorder on top of prometheus collectors.
//
// Metrics collected:
//   - personalization_actions_total: counter by action, slice and outcome
//   - personalization_dispatch_duration_seconds: histogram by slice
//   - personalization_notifications_total: delivered observer notifications
//   - personalization_dropped_notifications_total: notifications dropped on full watchers
//   - personalization_active_subscriptions: gauge read from the store
type Recorder struct {
	registry *prometheus.Registry

	actionsTotal     *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	notifications    prometheus.Counter
	dropped          prometheus.Counter
}

var _ store.Recorder = (*Recorder)(nil)

// New creates a Recorder and registers its collectors. When src is non-nil,
// gauges over its live metrics are registered too.
func New(src *store.Store, opts ...Option) *Recorder {
	cfg := Config{
		Namespace: "personalization",
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(cfg.Registry)
	r := &Recorder{
		registry: cfg.Registry,
		actionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "actions_total",
			Help:        "Total number of dispatched actions",
			ConstLabels: cfg.ConstLabels,
		}, []string{"action", "slice", "outcome"}),

		dispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "dispatch_duration_seconds",
			Help:        "Time spent applying a dispatched action",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"slice"}),

		notifications: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "notifications_total",
			Help:        "Total number of observer notifications delivered",
			ConstLabels: cfg.ConstLabels,
		}),

		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "dropped_notifications_total",
			Help:        "Total number of notifications dropped because a watcher was full",
			ConstLabels: cfg.ConstLabels,
		}),
	}

	if src != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "active_subscriptions",
			Help:        "Number of active store subscriptions",
			ConstLabels: cfg.ConstLabels,
		}, func() float64 { return float64(src.Metrics().ActiveSubscriptions) })

		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "logged_actions",
			Help:        "Number of actions currently held in the action log",
			ConstLabels: cfg.ConstLabels,
		}, func() float64 { return float64(len(src.Actions())) })
	}
	return r
}

// ActionDispatched implements store.Recorder.
func (r *Recorder) ActionDispatched(action store.Action, outcome store.Outcome, duration time.Duration) {
	slice := action.Slice().String()
	r.actionsTotal.WithLabelValues(action.Name().String(), slice, string(outcome)).Inc()
	r.dispatchDuration.WithLabelValues(slice).Observe(duration.Seconds())
}

// ObserversNotified implements store.Recorder.
func (r *Recorder) ObserversNotified(delivered, dropped int) {
	r.notifications.Add(float64(delivered))
	r.dropped.Add(float64(dropped))
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(subsystem, "Serving metrics on http://%s/metrics", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
