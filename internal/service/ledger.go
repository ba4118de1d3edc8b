package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// LedgerService records settlements. The balance decrement and the Payment row are
// written in the same transaction, so neither exists without the other.
type LedgerService struct {
	repo    repository.PostgresRepository
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     Clock
}

func NewLedgerService(repo repository.PostgresRepository, logger *logger.Logger, metrics *metrics.Metrics) *LedgerService {
	return &LedgerService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		now:     utcNow,
	}
}

func (s *LedgerService) SetClock(now Clock) {
	s.now = now
}

func (s *LedgerService) Settle(ctx context.Context, ownerID, propertyID string, amount decimal.Decimal, note string, mode domain.PaymentMode) (*domain.Payment, error) {
	if mode == "" {
		mode = domain.PaymentModeCash
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("unknown payment mode %q: %w", mode, domain.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("settlement amount must be positive: %w", domain.ErrValidation)
	}

	now := s.now()

	var payment *domain.Payment
	err := retryOnConflict(ctx, func() error {
		return s.repo.WithTx(ctx, func(tx repository.PostgresRepository) error {
			property, err := tx.Property().GetByID(ctx, propertyID)
			if err != nil {
				return err
			}
			if !property.OwnedBy(ownerID) {
				return ErrNotPropertyOwner
			}

			expectedVersion := property.Version
			if err := property.Settle(amount); err != nil {
				return err
			}
			if err := tx.Property().UpdateConditional(ctx, property, expectedVersion); err != nil {
				return err
			}

			payment = &domain.Payment{
				PropertyID: property.ID,
				OwnerID:    ownerID,
				TenantID:   *property.TenantID,
				Address:    property.Address,
				Amount:     amount,
				Note:       note,
				Mode:       mode,
				Date:       now,
			}
			return tx.Payment().Append(ctx, payment)
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Settlements.WithLabelValues(string(mode)).Inc()
	s.logger.Info("Balance settled",
		zap.String("property_id", propertyID),
		zap.String("amount", amount.String()),
		zap.String("mode", string(mode)),
	)
	return payment, nil
}

func (s *LedgerService) ListPaymentsForOwner(ctx context.Context, ownerID string) ([]domain.Payment, error) {
	return s.repo.Payment().ListByOwner(ctx, ownerID)
}

func (s *LedgerService) ListPaymentsForTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	return s.repo.Payment().ListByTenant(ctx, tenantID)
}
