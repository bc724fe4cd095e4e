package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/config"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/interfaces/httpapi"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/metrics"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
)

// App is the assembled service: HTTP server, background jobs and the
// data sources behind them.
type App struct {
	Server    *http.Server
	Scheduler *usecase.Scheduler
	Metrics   *metrics.Registry

	repos  repositories
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	registry := metrics.New(metrics.WithProcessCollectors())

	repos, err := buildRepositories(ctx, cfg, registry, logger)
	if err != nil {
		return nil, err
	}

	physicalSvc := usecase.NewPhysicalService(repos.matches, repos.results, cfg.RoundOrder, logger)
	microcycleSvc := usecase.NewMicrocycleService(repos.matches, repos.training, cfg.RoundOverrides, logger)
	leagueSvc := usecase.NewLeagueService(repos.league, cfg.HighlightTeam)
	healthSvc := usecase.NewHealthService(cfg.ServiceVersion, cfg.SourceQueryTimeout, repos.pingers...)
	refreshSvc := usecase.NewRefreshService(repos.snapshots, repos.matches, repos.training, repos.results, repos.league, logger)

	scheduler, err := usecase.NewScheduler(usecase.SchedulerConfig{
		Enabled:    cfg.AutoUpdateEnabled,
		Workers:    cfg.SchedulerWorkers,
		JobTimeout: 5 * time.Minute,
	}, registry, logger)
	if err != nil {
		repos.close(logger)
		return nil, err
	}
	if err := registerJobs(scheduler, cfg, refreshSvc, healthSvc, logger); err != nil {
		repos.close(logger)
		return nil, err
	}

	handler := httpapi.NewHandler(
		physicalSvc,
		microcycleSvc,
		leagueSvc,
		healthSvc,
		scheduler,
		cfg.CurrentRound.String(),
		logger,
	)

	routerCfg := httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Observer:           registry,
	}
	if cfg.MetricsEnabled {
		routerCfg.Metrics = registry.Handler()
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, logger, routerCfg),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	logger.Info("app assembled",
		"data_source", cfg.DataSource,
		"cache_enabled", cfg.CacheEnabled,
		"auto_update", cfg.AutoUpdateEnabled,
		"current_round", cfg.CurrentRound.String(),
		"round_table", cfg.RoundOverrides.Version,
	)

	return &App{
		Server:    server,
		Scheduler: scheduler,
		Metrics:   registry,
		repos:     repos,
		logger:    logger,
	}, nil
}

// Shutdown stops the HTTP server and the scheduler, then closes the data
// sources.
func (a *App) Shutdown(ctx context.Context) error {
	serverErr := a.Server.Shutdown(ctx)
	schedulerErr := a.Scheduler.Stop(ctx)
	a.repos.close(a.logger)

	if serverErr != nil {
		return fmt.Errorf("shutdown http server: %w", serverErr)
	}
	return schedulerErr
}
