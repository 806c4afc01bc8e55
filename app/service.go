// Package app wires configuration, engine, stores and the HTTP surface into
// a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/voltpath/rangekit/api/analysis"
	"github.com/voltpath/rangekit/config"
	"github.com/voltpath/rangekit/core/engine"
	"github.com/voltpath/rangekit/core/snapshot"
	"github.com/voltpath/rangekit/infra/analysislog"
	"github.com/voltpath/rangekit/infra/logger"
	"github.com/voltpath/rangekit/infra/metrics"
)

// Service orchestrates the analytics engine and its HTTP surface.
type Service struct {
	Engine      *engine.Engine
	Snapshots   snapshot.Provider
	store       analysislog.Store
	srv         *http.Server
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []metrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink metrics.Sink
	switch len(sinks) {
	case 0:
		sink = metrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}

	store, err := analysislog.Open(cfg.Logging.Backend, cfg.Logging.Path,
		cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)
	if err != nil {
		return nil, fmt.Errorf("analysis log: %w", err)
	}

	snapshots := snapshot.NewMemoryStore()
	eng, err := engine.New(cfg.Engine, snapshots)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	mux := http.NewServeMux()
	analysis.New(eng, sink, store, logg).Register(mux)

	return &Service{
		Engine:      eng,
		Snapshots:   snapshots,
		store:       store,
		srv:         &http.Server{Addr: cfg.API.Addr, Handler: mux},
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run serves the API until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()

	s.log.Infof("analysis API listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases the service's resources.
func (s *Service) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
