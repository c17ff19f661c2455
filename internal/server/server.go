// Package server wires configuration, services, and the HTTP surface
// together and owns startup and shutdown.
package server

import (
	"context"
	"log/slog"
	"net/http"

	searchapp "legalnav-api/internal/app/search"
	"legalnav-api/internal/app/verify"
	"legalnav-api/internal/attorneys"
	"legalnav-api/internal/config"
	httpserver "legalnav-api/internal/http"
	"legalnav-api/internal/http/handlers"
	"legalnav-api/internal/http/middleware"
	"legalnav-api/internal/logging"
	"legalnav-api/internal/metrics"
	"legalnav-api/internal/opinions"
	"legalnav-api/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	searchService *searchapp.Service
	verifyService *verify.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.CaseLawProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = selectProvider(cfg, logger)
	}
	provider = providers.NewInstrumentedProvider(provider, normalizeProviderName(cfg.Provider, provider), logger, recorder)

	normalizer := opinions.NewNormalizer(provider, logger)
	reconciler := attorneys.NewReconciler(provider, normalizer, logger)
	searchSvc := searchapp.NewService(provider, reconciler, recorder, logger)
	verifySvc := verify.NewService(nil, logger)

	httpSrv := buildHTTPServer(cfg, searchSvc, verifySvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		searchService: searchSvc,
		verifyService: verifySvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, searchSvc *searchapp.Service, verifySvc *verify.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(searchSvc, verifySvc, logger, cfg.CourtListener.Token != "")
	router := httpserver.NewRouter(handler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.CORSMiddleware(middleware.LoggingMiddleware(logger, recorder, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
