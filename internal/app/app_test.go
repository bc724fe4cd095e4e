package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/config"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvDev,
		ServiceName:         "plataforma-penafiel",
		ServiceVersion:      "test",
		HTTPAddr:            ":0",
		ReadTimeout:         time.Second,
		WriteTimeout:        time.Second,
		DataSource:          config.SourceMemory,
		SourceQueryTimeout:  time.Second,
		CacheEnabled:        true,
		CacheTTL:            time.Minute,
		UpdateInterval:      30 * time.Minute,
		CacheCleanupCron:    "0 3 * * *",
		HealthCheckInterval: 5 * time.Minute,
		SchedulerWorkers:    1,
		HighlightTeam:       "Penafiel",
		CurrentRound:        10,
		RoundOverrides:      round.DefaultOverrides(),
		RoundOrder:          round.DefaultOrder(),
		CORSAllowedOrigins:  []string{"*"},
		MetricsEnabled:      true,
	}
}

func TestNew_MemorySource(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = a.Scheduler.Stop(ctx)
	})

	for _, path := range []string{"/api/health", "/api/fisicos/barras-colectivas", "/api/microciclos/equipo", "/metrics"} {
		rec := httptest.NewRecorder()
		a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: unexpected status %d: %s", path, rec.Code, rec.Body.String())
		}
	}

	run, err := a.Scheduler.RunNow(context.Background(), usecase.JobRefresh)
	if err != nil || run.Err != nil {
		t.Fatalf("refresh job: %v %v", err, run.Err)
	}

	status := a.Scheduler.Status()
	if len(status.Jobs) != 3 {
		t.Fatalf("expected 3 registered jobs, got %d", len(status.Jobs))
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNew_MetricsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.MetricsEnabled = false
	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics to be unrouted, got %d", rec.Code)
	}
}

type fakeRefresher struct {
	err    error
	purged int
}

func (f *fakeRefresher) Refresh(context.Context) (usecase.RefreshResult, error) {
	return usecase.RefreshResult{}, f.err
}

func (f *fakeRefresher) PurgeCache(context.Context) int {
	f.purged++
	return 0
}

type fakeHealth struct {
	report usecase.HealthReport
}

func (f fakeHealth) Check(context.Context) usecase.HealthReport {
	return f.report
}

func TestRegisterJobs(t *testing.T) {
	scheduler, err := usecase.NewScheduler(usecase.SchedulerConfig{Workers: 1}, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	t.Cleanup(func() { _ = scheduler.Stop(context.Background()) })

	refresh := &fakeRefresher{err: errors.New("postgres down")}
	health := fakeHealth{report: usecase.HealthReport{
		Status: usecase.HealthStatusDegraded,
		Checks: []usecase.SourceCheck{{Name: "postgres", Error: "dial tcp: refused"}},
	}}
	if err := registerJobs(scheduler, memoryConfig(), refresh, health, logging.NewNop()); err != nil {
		t.Fatalf("register jobs: %v", err)
	}

	run, err := scheduler.RunNow(context.Background(), usecase.JobRefresh)
	if err != nil || run.Err == nil {
		t.Fatalf("expected refresh failure to surface, got %v %v", err, run.Err)
	}

	run, err = scheduler.RunNow(context.Background(), usecase.JobCacheClean)
	if err != nil || run.Err != nil || refresh.purged != 1 {
		t.Fatalf("cache cleanup: %v %v purged=%d", err, run.Err, refresh.purged)
	}

	run, err = scheduler.RunNow(context.Background(), usecase.JobHealthCheck)
	if err != nil || run.Err == nil || !strings.Contains(run.Err.Error(), "degraded") {
		t.Fatalf("expected degraded health to fail the job, got %v %v", err, run.Err)
	}
}
