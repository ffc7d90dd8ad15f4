// Package app wires configuration, logging, metrics and the HTTP API into a
// runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apischedule "github.com/kilianp07/crewsched/api/schedule"
	"github.com/kilianp07/crewsched/config"
	"github.com/kilianp07/crewsched/core/events"
	"github.com/kilianp07/crewsched/infra/logger"
	"github.com/kilianp07/crewsched/internal/eventbus"
	"github.com/kilianp07/crewsched/metrics"
)

// Service hosts the schedule analysis API and its observability plumbing.
type Service struct {
	cfg  *config.Config
	bus  *eventbus.TypedBus[events.AnalysisCompleted]
	sink metrics.AnalysisSink
	log  logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	cfg.Logging.Apply()
	logg := logger.New("service")

	var sinks []metrics.AnalysisSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink metrics.AnalysisSink = metrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{
		cfg:  cfg,
		bus:  eventbus.NewTyped[events.AnalysisCompleted](),
		sink: sink,
		log:  logg,
	}, nil
}

// Run starts the HTTP API and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	sub := s.bus.Subscribe()
	go s.record(ctx, sub)

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	handler := apischedule.New(s.cfg.Defaults, s.bus, logger.New("api"))
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: handler.Mux()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()

	s.log.Infof("listening on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// record forwards analysis events from the bus to the metrics sink.
func (s *Service) record(ctx context.Context, sub <-chan events.AnalysisCompleted) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			rec := metrics.AnalysisRecord{
				Source:   ev.Source,
				Analysis: ev.Analysis,
				Duration: ev.Duration,
				Time:     ev.Time,
			}
			if err := s.sink.RecordAnalysis(rec); err != nil {
				s.log.Warnf("record analysis: %v", err)
			}
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
