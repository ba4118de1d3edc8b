// Package scheduler runs the accrual and expiry sweep jobs on cron schedules. A job never
// overlaps itself: a trigger that fires while the previous run is in flight is skipped.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

var (
	ErrUnknownJob = fmt.Errorf("unknown job: %w", domain.ErrValidation)
	ErrJobRunning = fmt.Errorf("job is already running: %w", domain.ErrConflict)
)

// JobFunc performs one run of a job as of now.
type JobFunc func(ctx context.Context, now time.Time) error

// Locker serialises runs of the same job across scheduler processes.
//
//go:generate mockery --name Locker --output ../mocks
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Unlock(ctx context.Context, key, token string) error
}

type job struct {
	name     string
	schedule string
	run      JobFunc
	running  atomic.Bool
}

type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]*job
	locker  Locker
	config  *config.SchedulerConfig
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	started sync.WaitGroup
}

// New builds a scheduler. locker may be nil when a single scheduler process runs.
func New(cfg *config.SchedulerConfig, locker Locker, logger *logger.Logger, metrics *metrics.Metrics) *Scheduler {
	location := cfg.BillingLocation
	if location == nil {
		location = time.UTC
	}

	cronLogger := logger.Cron()
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		jobs:    make(map[string]*job),
		locker:  locker,
		config:  cfg,
		logger:  logger,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register adds a job with a standard 5-field cron schedule. Jobs must be registered
// before Start.
func (s *Scheduler) Register(name, schedule string, run JobFunc) error {
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s registered twice: %w", name, domain.ErrValidation)
	}

	j := &job{name: name, schedule: schedule, run: run}
	if _, err := s.cron.AddFunc(schedule, func() { s.trigger(j) }); err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", schedule, name, err)
	}
	s.jobs[name] = j
	return nil
}

// Jobs returns the registered job names in a stable order.
func (s *Scheduler) Jobs() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start runs every job once immediately, then hands them to the cron timers.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx, s.cancel = context.WithCancel(ctx)

	for _, name := range s.Jobs() {
		j := s.jobs[name]
		s.started.Add(1)
		go func() {
			defer s.started.Done()
			s.trigger(j)
		}()
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.Strings("jobs", s.Jobs()))
}

// Stop stops the timers, cancels in-flight runs and waits for them to return.
func (s *Scheduler) Stop() {
	stopped := s.cron.Stop()
	if s.cancel != nil {
		s.cancel()
	}
	<-stopped.Done()
	s.started.Wait()
	s.logger.Info("Scheduler stopped")
}

// RunNow runs a job synchronously through the same non-overlapping runner the timers
// use. It returns ErrJobRunning when the job is already in flight.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	j, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownJob)
	}
	return s.run(ctx, j)
}

func (s *Scheduler) trigger(j *job) {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.run(ctx, j); err != nil && !errors.Is(err, ErrJobRunning) {
		s.logger.Error("Scheduled job failed", err, zap.String("job", j.name))
	}
}

func (s *Scheduler) run(ctx context.Context, j *job) error {
	if !j.running.CompareAndSwap(false, true) {
		s.skip(j.name, "previous run still in progress")
		return ErrJobRunning
	}
	defer j.running.Store(false)

	if s.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RunTimeout)
		defer cancel()
	}

	if s.locker != nil {
		token, acquired, err := s.locker.TryLock(ctx, j.name, s.config.LockTTL)
		if err != nil {
			s.metrics.ObserveJob(j.name, "error", 0)
			return err
		}
		if !acquired {
			s.skip(j.name, "held by another scheduler")
			return ErrJobRunning
		}
		defer func() {
			if err := s.locker.Unlock(context.Background(), j.name, token); err != nil {
				s.logger.Warn("Failed to release job lock", zap.String("job", j.name), zap.Error(err))
			}
		}()
	}

	start := time.Now()
	err := j.run(ctx, s.now())
	elapsed := time.Since(start)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ObserveJob(j.name, outcome, elapsed.Seconds())
	if err != nil {
		return fmt.Errorf("job %s: %w", j.name, err)
	}

	s.logger.Info("Job finished", zap.String("job", j.name), zap.Duration("elapsed", elapsed))
	return nil
}

func (s *Scheduler) skip(name, reason string) {
	s.metrics.JobSkipped.WithLabelValues(name).Inc()
	s.logger.Warn("Job run skipped", zap.String("job", name), zap.String("reason", reason))
}
