// Package server wires configuration, stores, services, the poller, and
// the HTTP stack into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"league-hub/internal/app/bracket"
	"league-hub/internal/app/scores"
	"league-hub/internal/config"
	httpapi "league-hub/internal/http"
	"league-hub/internal/http/handlers"
	"league-hub/internal/http/middleware"
	"league-hub/internal/logging"
	"league-hub/internal/metrics"
	"league-hub/internal/poller"
	"league-hub/internal/providers"
	"league-hub/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	scoresService  *scores.Service
	bracketService *bracket.Service
	httpServer     httpServer
	metricsServer  httpServer
	poller         Poller
	metricsStop    func(context.Context) error
	closers        []func() error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.LeagueProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	}

	memoryStore := store.NewMemoryStore()
	scoresSvc := scores.NewService(memoryStore)

	matchStore, matchClose := buildMatchStore(cfg, logger)
	viewCache, cacheClose := buildBracketCache(cfg, logger)
	var bracketCache bracket.ViewCache
	if viewCache != nil {
		bracketCache = viewCache
	}
	bracketSvc := bracket.NewService(matchStore, bracketCache, logger, recorder)

	snaps := buildSnapshots(cfg)
	plr := poller.New(provider, scoresSvc, snaps.writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, scoresSvc, bracketSvc, snaps, logger, recorder, plr)

	var closers []func() error
	if matchClose != nil {
		closers = append(closers, matchClose)
	}
	if cacheClose != nil {
		closers = append(closers, cacheClose)
	}

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		scoresService:  scoresSvc,
		bracketService: bracketSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		poller:         plr,
		metricsStop:    metricsShutdown,
		closers:        closers,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, scoresSvc *scores.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		scoresService: scoresSvc,
		httpServer:    httpSrv,
		poller:        plr,
	}
}

func buildHTTPServer(cfg config.Config, scoresSvc *scores.Service, bracketSvc *bracket.Service, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	currentWeek := func() int { return cfg.CurrentWeek }
	gamesHandler := handlers.NewGamesHandler(scoresSvc, snaps.store, logger, currentWeek, statusFn)
	playoffsHandler := handlers.NewPlayoffsHandler(bracketSvc, cfg.AdminToken, logger)

	var adminHandler *handlers.AdminHandler
	if cfg.AdminToken != "" && plr != nil {
		adminHandler = handlers.NewAdminHandler(plr, cfg.AdminToken, logger)
	}

	router := httpapi.NewRouter(gamesHandler, playoffsHandler, adminHandler, httpapi.RouterConfig{
		AllowedOrigins: cfg.CORSOrigins,
	})

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

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
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.pollerProvider().(interface{ Close() }); ok {
		rl.Close()
	}

	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && s.logger != nil {
			s.logger.Warn("close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// pollerProvider attempts to extract the underlying provider from the poller when available.
// Best-effort helper to enable cleanup of rate-limited tickers; safe if not supported.
func (s *Server) pollerProvider() providers.LeagueProvider {
	if pa, ok := s.poller.(interface {
		Provider() providers.LeagueProvider
	}); ok {
		return pa.Provider()
	}
	return nil
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
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
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
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
