package usecase

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"
)

const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)

// Pinger is a data source the health check can probe.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

type SourceCheck struct {
	Name      string
	Healthy   bool
	Error     string
	LatencyMs int64
}

type HealthReport struct {
	Status    string
	Timestamp time.Time
	Version   string
	Checks    []SourceCheck
}

type HealthService struct {
	version string
	pingers []Pinger
	timeout time.Duration
	now     func() time.Time
}

func NewHealthService(version string, timeout time.Duration, pingers ...Pinger) *HealthService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HealthService{
		version: version,
		pingers: pingers,
		timeout: timeout,
		now:     time.Now,
	}
}

// Check pings every source in parallel. The report is degraded when any
// source fails; it never returns an error itself.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	ctx, span := startUsecaseSpan(ctx, "usecase.HealthService.Check")
	defer span.End()

	checks := make([]SourceCheck, len(s.pingers))
	var wg conc.WaitGroup
	for i, p := range s.pingers {
		wg.Go(func() {
			pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			start := time.Now()
			err := p.Ping(pingCtx)
			check := SourceCheck{
				Name:      p.Name(),
				Healthy:   err == nil,
				LatencyMs: time.Since(start).Milliseconds(),
			}
			if err != nil {
				check.Error = err.Error()
			}
			checks[i] = check
		})
	}
	wg.Wait()

	report := HealthReport{
		Status:    HealthStatusHealthy,
		Timestamp: s.now().UTC(),
		Version:   s.version,
		Checks:    checks,
	}
	for _, c := range checks {
		if !c.Healthy {
			report.Status = HealthStatusDegraded
			break
		}
	}
	return report
}
