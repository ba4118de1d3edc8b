package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

const (
	maxAccrualAttempts        = 3
	defaultAccrualConcurrency = 8
)

// AccrualEngine adds one period of rent to every rented property that has crossed a
// calendar-month boundary since both its assignment and its last balance update.
type AccrualEngine struct {
	repo        repository.PostgresRepository
	logger      *logger.Logger
	metrics     *metrics.Metrics
	location    *time.Location
	concurrency int
}

func NewAccrualEngine(
	repo repository.PostgresRepository,
	logger *logger.Logger,
	metrics *metrics.Metrics,
	location *time.Location,
	concurrency int,
) *AccrualEngine {
	if location == nil {
		location = time.UTC
	}
	if concurrency <= 0 {
		concurrency = defaultAccrualConcurrency
	}
	return &AccrualEngine{
		repo:        repo,
		logger:      logger,
		metrics:     metrics,
		location:    location,
		concurrency: concurrency,
	}
}

// AccrueBalances processes each rented property independently. A failing property is
// logged and counted; it never stops the others. A failure to list properties abandons
// the run, and a cancelled ctx stops it before the remaining properties are touched.
func (e *AccrualEngine) AccrueBalances(ctx context.Context, now time.Time) (domain.AccrualResult, error) {
	properties, err := e.repo.Property().ListRented(ctx)
	if err != nil {
		return domain.AccrualResult{}, fmt.Errorf("failed to list rented properties: %w", err)
	}

	var accrued, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i := range properties {
		if ctx.Err() != nil {
			break
		}
		property := properties[i]
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			changed, err := e.accrueProperty(ctx, property, now)
			if err != nil {
				failed.Add(1)
				e.metrics.AccrualFailures.Inc()
				e.logger.Error("Failed to accrue property balance", err, zap.String("property_id", property.ID))
				return nil
			}
			if changed {
				accrued.Add(1)
				e.metrics.PropertiesAccrued.Inc()
			}
			return nil
		})
	}
	_ = g.Wait()

	result := domain.AccrualResult{
		Scanned: len(properties),
		Accrued: int(accrued.Load()),
		Failed:  int(failed.Load()),
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("accrual run interrupted: %w", err)
	}
	return result, nil
}

// accrueProperty retries a lost compare-and-swap against a fresh read, so a concurrent
// settlement or acceptance is never overwritten.
func (e *AccrualEngine) accrueProperty(ctx context.Context, property domain.Property, now time.Time) (bool, error) {
	for attempt := 1; ; attempt++ {
		expectedVersion := property.Version
		if !property.Accrue(now, e.location) {
			return false, nil
		}

		err := e.repo.Property().UpdateConditional(ctx, &property, expectedVersion)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, domain.ErrStaleVersion) || attempt >= maxAccrualAttempts {
			return false, err
		}

		fresh, err := e.repo.Property().GetByID(ctx, property.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		property = *fresh
	}
}
