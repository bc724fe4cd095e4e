package app

import (
	"context"
	"fmt"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/config"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
)

type refresher interface {
	Refresh(ctx context.Context) (usecase.RefreshResult, error)
	PurgeCache(ctx context.Context) int
}

type healthChecker interface {
	Check(ctx context.Context) usecase.HealthReport
}

func registerJobs(
	scheduler *usecase.Scheduler,
	cfg config.Config,
	refresh refresher,
	health healthChecker,
	logger *logging.Logger,
) error {
	jobs := []struct {
		name string
		spec string
		fn   usecase.JobFunc
	}{
		{
			name: usecase.JobRefresh,
			spec: usecase.Every(cfg.UpdateInterval),
			fn: func(ctx context.Context) error {
				_, err := refresh.Refresh(ctx)
				return err
			},
		},
		{
			name: usecase.JobCacheClean,
			spec: cfg.CacheCleanupCron,
			fn: func(ctx context.Context) error {
				refresh.PurgeCache(ctx)
				return nil
			},
		},
		{
			name: usecase.JobHealthCheck,
			spec: usecase.Every(cfg.HealthCheckInterval),
			fn: func(ctx context.Context) error {
				report := health.Check(ctx)
				if report.Status == usecase.HealthStatusHealthy {
					return nil
				}
				for _, check := range report.Checks {
					if !check.Healthy {
						logger.WarnContext(ctx, "data source unhealthy",
							"source", check.Name,
							"error", check.Error,
							"latency_ms", check.LatencyMs,
						)
					}
				}
				return fmt.Errorf("health status %s", report.Status)
			},
		},
	}

	for _, job := range jobs {
		if err := scheduler.Register(job.name, job.spec, job.fn); err != nil {
			return fmt.Errorf("register job %s: %w", job.name, err)
		}
	}
	return nil
}
