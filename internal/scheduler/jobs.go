package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/service"
)

type Accruer interface {
	AccrueBalances(ctx context.Context, now time.Time) (domain.AccrualResult, error)
}

type Sweeper interface {
	ExpirySweep(ctx context.Context, now time.Time) (domain.SweepResult, error)
}

// RegisterDefaults wires the accrual and expiry sweep jobs on their configured schedules.
func (s *Scheduler) RegisterDefaults(cfg *config.SchedulerConfig, accruer Accruer, sweeper Sweeper) error {
	err := s.Register(service.JobAccrual, cfg.AccrualSchedule, func(ctx context.Context, now time.Time) error {
		result, err := accruer.AccrueBalances(ctx, now)
		if err != nil {
			return err
		}
		s.logger.Info("Accrual run complete",
			zap.Int("scanned", result.Scanned),
			zap.Int("accrued", result.Accrued),
			zap.Int("failed", result.Failed),
		)
		return nil
	})
	if err != nil {
		return err
	}

	return s.Register(service.JobSweep, cfg.SweepSchedule, func(ctx context.Context, now time.Time) error {
		_, err := sweeper.ExpirySweep(ctx, now)
		return err
	})
}
