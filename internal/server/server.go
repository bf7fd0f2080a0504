package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/config"
	httpserver "github.com/arunreddynareddy/ipl-dashboard-app/internal/http"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/http/handlers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/http/middleware"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/logging"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/metrics"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/render"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/store"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/sweeper"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.TeamMatchesProvider
	views         *store.ViewStore
	httpServer    httpServer
	metricsServer httpServer
	sweeper       Sweeper
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider, view registry and sweeper.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(cfg, logger, nil, nil)
}

// newServerWithProvider builds the server around base; a nil base selects one from cfg.
func newServerWithProvider(cfg config.Config, logger *slog.Logger, base providers.TeamMatchesProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	var provider providers.TeamMatchesProvider
	if base == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, base)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}

	views := store.NewViewStore()
	swp := sweeper.New(views, logger, recorder, cfg.Views.SweepInterval, cfg.Views.TTL)
	httpSrv := buildHTTPServer(cfg, handlers.Config{
		Loader:     provider,
		Views:      views,
		Renderer:   renderer,
		Logger:     logger,
		Metrics:    recorder,
		RenderWait: cfg.Views.RenderWait,
		StatusFn:   swp.Status,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		views:         views,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		sweeper:       swp,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, views *store.ViewStore, httpSrv httpServer, swp Sweeper) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		views:      views,
		httpServer: httpSrv,
		sweeper:    swp,
	}
}

func buildHTTPServer(cfg config.Config, hcfg handlers.Config) httpServer {
	handler := handlers.NewHandler(hcfg)
	router := httpserver.NewRouter(handler, cfg.CORS.AllowedOrigins)
	wrapped := middleware.LoggingMiddleware(hcfg.Logger, hcfg.Metrics, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the sweeper and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.sweeper.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

// gracefulShutdown destroys views that are still loading before draining the HTTP server.
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

	if err := s.sweeper.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop sweeper", err)
	}

	if s.views != nil {
		if n := s.views.DeleteAll(); n > 0 {
			logging.Info(s.logger, "destroyed pending views", slog.Int(logging.FieldCount, n))
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if c, ok := s.provider.(interface{ Close() }); ok {
		c.Close()
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
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
