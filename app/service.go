package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/hostelmeal/api/predictions"
	"github.com/kilianp07/hostelmeal/config"
	coremetrics "github.com/kilianp07/hostelmeal/core/metrics"
	coremon "github.com/kilianp07/hostelmeal/core/monitoring"
	"github.com/kilianp07/hostelmeal/core/prediction"
	"github.com/kilianp07/hostelmeal/infra/logger"
	"github.com/kilianp07/hostelmeal/infra/metrics"
	"github.com/kilianp07/hostelmeal/infra/monitoring"
)

const shutdownTimeout = 5 * time.Second

// Service serves the prediction API and, when configured, the Prometheus
// exposition endpoint.
type Service struct {
	Predictor *prediction.Service
	server    *http.Server
	monitor   coremon.Monitor
	log       logger.Logger
	promAddr  string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.Configure(cfg.Logging.Options()); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logg := logger.New("service")

	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, err
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	predictor := prediction.NewService(prediction.NewStandardEngine(), sink, logger.New("prediction"))
	router := predictions.NewRouter(predictor, predictions.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Sink:           sink,
		Monitor:        mon,
		Log:            logger.New("api"),
	})
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
		ReadTimeout:       cfg.Server.ReadTimeout(),
		WriteTimeout:      cfg.Server.WriteTimeout(),
	}
	svc := &Service{Predictor: predictor, server: srv, monitor: mon, log: logg}
	if cfg.Metrics.PrometheusEnabled() {
		svc.promAddr = cfg.Metrics.PrometheusAddress
	}
	return svc, nil
}

// Handler returns the API handler, mainly for tests.
func (s *Service) Handler() http.Handler { return s.server.Handler }

// Run serves until the context is cancelled, then shuts the listeners down.
func (s *Service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infof("prediction API listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})
	if s.promAddr != "" {
		g.Go(func() error {
			s.log.Infof("metrics listening on %s", s.promAddr)
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				return fmt.Errorf("prom server: %w", err)
			}
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		s.monitor.CaptureException(err, map[string]string{"component": "service"})
	}
	return err
}

// Close flushes pending monitoring events.
func (s *Service) Close() error {
	s.monitor.Flush(2 * time.Second)
	return nil
}
