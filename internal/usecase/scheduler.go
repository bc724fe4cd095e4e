package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
	"github.com/robfig/cron/v3"
)

const (
	JobRefresh     = "refresh"
	JobCacheClean  = "cache_cleanup"
	JobHealthCheck = "health_check"
)

// JobFunc is one unit of scheduled work.
type JobFunc func(ctx context.Context) error

// JobObserver records job outcomes, e.g. as metrics.
type JobObserver interface {
	ObserveJob(job string, err error, elapsed time.Duration)
}

type nopJobObserver struct{}

func (nopJobObserver) ObserveJob(string, error, time.Duration) {}

type JobStatus struct {
	Name      string
	Spec      string
	Running   bool
	Runs      int
	LastRun   time.Time
	LastError string
	NextRun   time.Time
}

type SchedulerStatus struct {
	Enabled bool
	Running bool
	Jobs    []JobStatus
}

// JobRun is the outcome of a manually triggered job.
type JobRun struct {
	Job      string
	Skipped  bool
	Duration time.Duration
	Err      error
}

type scheduledJob struct {
	name    string
	spec    string
	fn      JobFunc
	entryID cron.EntryID
	busy    sync.Mutex

	mu        sync.Mutex
	running   bool
	runs      int
	lastRun   time.Time
	lastError string
}

type SchedulerConfig struct {
	Enabled    bool
	Workers    int
	JobTimeout time.Duration
}

// Scheduler runs background jobs on cron triggers through a bounded
// worker pool. A job never overlaps with itself.
type Scheduler struct {
	cfg      SchedulerConfig
	cron     *cron.Cron
	pool     *ants.Pool
	logger   *logging.Logger
	observer JobObserver

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu      sync.RWMutex
	jobs    map[string]*scheduledJob
	started bool
}

func NewScheduler(cfg SchedulerConfig, observer JobObserver, logger *logging.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if observer == nil {
		observer = nopJobObserver{}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 2
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 5 * time.Minute
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cfg:      cfg,
		cron:     cron.New(),
		pool:     pool,
		logger:   logger,
		observer: observer,
		baseCtx:  ctx,
		cancel:   cancel,
		jobs:     make(map[string]*scheduledJob),
	}, nil
}

// Every builds a cron spec for a fixed interval.
func Every(interval time.Duration) string {
	return "@every " + interval.String()
}

// Register adds a job under a cron spec.
func (s *Scheduler) Register(name, spec string, fn JobFunc) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return fmt.Errorf("%w: job name and func are required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("%w: job %s already registered", ErrInvalidInput, name)
	}

	job := &scheduledJob{name: name, spec: spec, fn: fn}
	entryID, err := s.cron.AddFunc(spec, func() { s.dispatch(job) })
	if err != nil {
		return fmt.Errorf("%w: job %s spec %q: %v", ErrInvalidInput, name, spec, err)
	}
	job.entryID = entryID
	s.jobs[name] = job
	return nil
}

// Start begins firing triggers. It is a no-op when the scheduler is disabled.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Enabled || s.started {
		return
	}
	s.cron.Start()
	s.started = true
	s.logger.Info("scheduler started", "jobs", len(s.jobs), "workers", s.cfg.Workers)
}

// Stop halts the triggers and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()

	if started {
		<-s.cron.Stop().Done()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.cancel()
		s.pool.Release()
		return fmt.Errorf("stop scheduler: %w", ctx.Err())
	}

	s.cancel()
	s.pool.Release()
	return nil
}

// RunNow runs a job synchronously. A job that is already running is
// reported as skipped.
func (s *Scheduler) RunNow(ctx context.Context, name string) (JobRun, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Scheduler.RunNow")
	defer span.End()

	s.mu.RLock()
	job, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return JobRun{}, fmt.Errorf("%w: job=%s", ErrNotFound, name)
	}

	if !job.busy.TryLock() {
		return JobRun{Job: name, Skipped: true}, nil
	}
	defer job.busy.Unlock()

	elapsed, err := s.execute(ctx, job)
	return JobRun{Job: name, Duration: elapsed, Err: err}, nil
}

func (s *Scheduler) Status() SchedulerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := SchedulerStatus{
		Enabled: s.cfg.Enabled,
		Running: s.started,
		Jobs:    make([]JobStatus, 0, len(s.jobs)),
	}
	for _, job := range s.jobs {
		job.mu.Lock()
		status := JobStatus{
			Name:      job.name,
			Spec:      job.spec,
			Running:   job.running,
			Runs:      job.runs,
			LastRun:   job.lastRun,
			LastError: job.lastError,
		}
		job.mu.Unlock()
		if s.started {
			status.NextRun = s.cron.Entry(job.entryID).Next
		}
		out.Jobs = append(out.Jobs, status)
	}
	sort.Slice(out.Jobs, func(i, j int) bool { return out.Jobs[i].Name < out.Jobs[j].Name })
	return out
}

func (s *Scheduler) dispatch(job *scheduledJob) {
	if !job.busy.TryLock() {
		s.logger.Warn("scheduled job still running, trigger skipped", "job", job.name)
		return
	}

	s.wg.Add(1)
	err := s.pool.Submit(func() {
		defer s.wg.Done()
		defer job.busy.Unlock()

		if _, err := s.execute(s.baseCtx, job); err != nil {
			s.logger.Error("scheduled job failed", "job", job.name, "error", err)
		}
	})
	if err != nil {
		s.wg.Done()
		job.busy.Unlock()
		s.logger.Warn("submit scheduled job failed", "job", job.name, "error", err)
	}
}

func (s *Scheduler) execute(ctx context.Context, job *scheduledJob) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	job.mu.Lock()
	job.running = true
	job.mu.Unlock()

	start := time.Now()
	err := runJob(ctx, job.fn)
	elapsed := time.Since(start)

	job.mu.Lock()
	job.running = false
	job.runs++
	job.lastRun = start
	job.lastError = ""
	if err != nil {
		job.lastError = err.Error()
	}
	job.mu.Unlock()

	s.observer.ObserveJob(job.name, err, elapsed)
	if err == nil {
		s.logger.InfoContext(ctx, "job finished", "job", job.name, "duration_ms", elapsed.Milliseconds())
	}
	return elapsed, err
}

func runJob(ctx context.Context, fn JobFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return fn(ctx)
}
