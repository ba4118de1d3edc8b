package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/mocks"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// yearly keeps cron timers from firing during a test.
const yearly = "0 0 1 1 *"

func newTestScheduler(locker Locker, timeout time.Duration) (*Scheduler, *metrics.Metrics) {
	m := metrics.NewUnregistered()
	cfg := &config.SchedulerConfig{RunTimeout: timeout, LockTTL: time.Minute, BillingLocation: time.UTC}
	return New(cfg, locker, logger.NewNop(), m), m
}

func TestScheduler_RunNowUnknownJob(t *testing.T) {
	s, _ := newTestScheduler(nil, time.Second)

	err := s.RunNow(context.Background(), "reindex")

	assert.ErrorIs(t, err, ErrUnknownJob)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduler_RegisterRejectsBadSchedule(t *testing.T) {
	s, _ := newTestScheduler(nil, time.Second)

	require.NoError(t, s.Register("accrual", yearly, func(context.Context, time.Time) error { return nil }))

	assert.Error(t, s.Register("sweep", "every minute", func(context.Context, time.Time) error { return nil }))
	assert.ErrorIs(t, s.Register("accrual", yearly, func(context.Context, time.Time) error { return nil }), domain.ErrValidation)
	assert.Equal(t, []string{"accrual"}, s.Jobs())
}

func TestScheduler_SkipsOverlappingRun(t *testing.T) {
	// Arrange
	s, m := newTestScheduler(nil, time.Minute)
	entered := make(chan struct{})
	release := make(chan struct{})
	var runs atomic.Int32
	require.NoError(t, s.Register("accrual", yearly, func(ctx context.Context, now time.Time) error {
		runs.Add(1)
		close(entered)
		<-release
		return nil
	}))

	firstDone := make(chan error, 1)
	go func() { firstDone <- s.RunNow(context.Background(), "accrual") }()
	<-entered

	// Act
	err := s.RunNow(context.Background(), "accrual")
	close(release)

	// Assert
	assert.ErrorIs(t, err, ErrJobRunning)
	assert.NoError(t, <-firstDone)
	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobSkipped.WithLabelValues("accrual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRuns.WithLabelValues("accrual", "success")))
}

func TestScheduler_StartRunsEveryJobOnce(t *testing.T) {
	// Arrange
	s, _ := newTestScheduler(nil, time.Minute)
	ran := make(chan string, 2)
	for _, name := range []string{"accrual", "sweep"} {
		name := name
		require.NoError(t, s.Register(name, yearly, func(context.Context, time.Time) error {
			ran <- name
			return nil
		}))
	}

	// Act
	s.Start(context.Background())
	s.Stop()

	// Assert
	close(ran)
	var names []string
	for name := range ran {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"accrual", "sweep"}, names)
}

func TestScheduler_RunTimeoutBoundsRun(t *testing.T) {
	// Arrange
	s, m := newTestScheduler(nil, 20*time.Millisecond)
	require.NoError(t, s.Register("sweep", yearly, func(ctx context.Context, now time.Time) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	// Act
	err := s.RunNow(context.Background(), "sweep")

	// Assert
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRuns.WithLabelValues("sweep", "error")))

	// the guard is released after a timed-out run
	assert.ErrorIs(t, s.RunNow(context.Background(), "sweep"), context.DeadlineExceeded)
}

func TestScheduler_PassesUTCNow(t *testing.T) {
	s, _ := newTestScheduler(nil, time.Minute)
	fixed := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	var got time.Time
	require.NoError(t, s.Register("accrual", yearly, func(ctx context.Context, now time.Time) error {
		got = now
		return nil
	}))

	require.NoError(t, s.RunNow(context.Background(), "accrual"))
	assert.True(t, fixed.Equal(got))
}

func TestScheduler_DistributedLock(t *testing.T) {
	t.Run("runs and releases when acquired", func(t *testing.T) {
		locker := mocks.NewLocker(t)
		locker.On("TryLock", mock.Anything, "accrual", time.Minute).Return("token-1", true, nil).Once()
		locker.On("Unlock", mock.Anything, "accrual", "token-1").Return(nil).Once()
		s, _ := newTestScheduler(locker, time.Minute)
		var ran bool
		require.NoError(t, s.Register("accrual", yearly, func(context.Context, time.Time) error {
			ran = true
			return nil
		}))

		err := s.RunNow(context.Background(), "accrual")

		assert.NoError(t, err)
		assert.True(t, ran)
	})

	t.Run("skips when held elsewhere", func(t *testing.T) {
		locker := mocks.NewLocker(t)
		locker.On("TryLock", mock.Anything, "sweep", time.Minute).Return("", false, nil).Once()
		s, m := newTestScheduler(locker, time.Minute)
		require.NoError(t, s.Register("sweep", yearly, func(context.Context, time.Time) error {
			t.Fatal("job must not run without the lock")
			return nil
		}))

		err := s.RunNow(context.Background(), "sweep")

		assert.ErrorIs(t, err, ErrJobRunning)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.JobSkipped.WithLabelValues("sweep")))
	})

	t.Run("lock errors fail the run", func(t *testing.T) {
		locker := mocks.NewLocker(t)
		locker.On("TryLock", mock.Anything, "sweep", time.Minute).Return("", false, errors.New("redis down")).Once()
		s, _ := newTestScheduler(locker, time.Minute)
		require.NoError(t, s.Register("sweep", yearly, func(context.Context, time.Time) error { return nil }))

		assert.EqualError(t, s.RunNow(context.Background(), "sweep"), "redis down")
	})
}

type stubAccruer struct{ calls atomic.Int32 }

func (a *stubAccruer) AccrueBalances(ctx context.Context, now time.Time) (domain.AccrualResult, error) {
	a.calls.Add(1)
	return domain.AccrualResult{Scanned: 2, Accrued: 1}, nil
}

type stubSweeper struct{ err error }

func (w *stubSweeper) ExpirySweep(ctx context.Context, now time.Time) (domain.SweepResult, error) {
	return domain.SweepResult{}, w.err
}

func TestScheduler_RegisterDefaults(t *testing.T) {
	// Arrange
	s, _ := newTestScheduler(nil, time.Minute)
	accruer := &stubAccruer{}
	sweeper := &stubSweeper{err: domain.ErrTransientStore}
	cfg := &config.SchedulerConfig{AccrualSchedule: "0 0 * * *", SweepSchedule: "* * * * *"}

	// Act
	require.NoError(t, s.RegisterDefaults(cfg, accruer, sweeper))

	// Assert
	assert.Equal(t, []string{"accrual", "sweep"}, s.Jobs())
	assert.NoError(t, s.RunNow(context.Background(), "accrual"))
	assert.Equal(t, int32(1), accruer.calls.Load())
	assert.ErrorIs(t, s.RunNow(context.Background(), "sweep"), domain.ErrTransientStore)
}
