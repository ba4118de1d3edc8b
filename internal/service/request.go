package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// RequestService drives tenancy and payment requests through pending, accepted and
// rejected. Every multi-row change runs in one store transaction.
type RequestService struct {
	repo    repository.PostgresRepository
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     Clock
}

func NewRequestService(repo repository.PostgresRepository, logger *logger.Logger, metrics *metrics.Metrics) *RequestService {
	return &RequestService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		now:     utcNow,
	}
}

func (s *RequestService) SetClock(now Clock) {
	s.now = now
}

func (s *RequestService) SubmitRequest(ctx context.Context, tenantID, propertyID string) (*domain.Request, error) {
	property, err := s.repo.Property().GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.IsRented {
		return nil, ErrPropertyRented
	}

	_, err = s.repo.Request().FindPending(ctx, propertyID, tenantID)
	switch {
	case err == nil:
		return nil, ErrDuplicateRequest
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	request := &domain.Request{
		OwnerID:    property.OwnerID,
		PropertyID: propertyID,
		TenantID:   tenantID,
		Status:     domain.RequestPending,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Request().Create(ctx, request); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	return request, nil
}

// SubmitPaymentRequest lets the current tenant of a property report a payment for the
// owner to confirm.
func (s *RequestService) SubmitPaymentRequest(ctx context.Context, tenantID, propertyID string, amount decimal.Decimal) (*domain.PaymentRequest, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive: %w", domain.ErrValidation)
	}

	property, err := s.repo.Property().GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsRented || property.TenantID == nil || *property.TenantID != tenantID {
		return nil, ErrNotPropertyTenant
	}

	request := &domain.PaymentRequest{
		OwnerID:    property.OwnerID,
		PropertyID: propertyID,
		TenantID:   tenantID,
		Amount:     amount,
		Status:     domain.RequestPending,
		CreatedAt:  s.now(),
	}
	if err := s.repo.PaymentRequest().Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ListForOwner returns the owner's tenancy and payment requests as one feed, pending
// first and newest first within each group.
func (s *RequestService) ListForOwner(ctx context.Context, ownerID string) ([]domain.FeedItem, error) {
	requests, err := s.repo.Request().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	paymentRequests, err := s.repo.PaymentRequest().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return domain.MergeFeed(requests, paymentRequests), nil
}

func (s *RequestService) ListForTenant(ctx context.Context, tenantID string) ([]domain.FeedItem, error) {
	requests, err := s.repo.Request().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	paymentRequests, err := s.repo.PaymentRequest().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return domain.MergeFeed(requests, paymentRequests), nil
}

// AcceptRequest assigns the property to the tenant, marks their request accepted and
// deletes every competing request, all in one transaction. If another acceptance won
// the race the property's version has moved and this call fails with a conflict.
func (s *RequestService) AcceptRequest(ctx context.Context, ownerID, propertyID, tenantID, tenantName string) (*domain.Property, error) {
	now := s.now()

	var assigned *domain.Property
	var competitors int64
	err := s.repo.WithTx(ctx, func(tx repository.PostgresRepository) error {
		property, err := tx.Property().GetByID(ctx, propertyID)
		if err != nil {
			return err
		}
		if !property.OwnedBy(ownerID) {
			return ErrNotPropertyOwner
		}
		if property.IsRented {
			return ErrPropertyRented
		}

		request, err := tx.Request().FindPending(ctx, propertyID, tenantID)
		if errors.Is(err, domain.ErrNotFound) {
			return ErrNoPendingRequest
		}
		if err != nil {
			return err
		}

		expectedVersion := property.Version
		if err := property.Assign(tenantID, tenantName, now); err != nil {
			return err
		}
		if err := tx.Property().UpdateConditional(ctx, property, expectedVersion); err != nil {
			return err
		}

		if err := request.Accept(now); err != nil {
			return err
		}
		if err := tx.Request().UpdateStatus(ctx, request, domain.RequestPending); err != nil {
			return err
		}

		competitors, err = tx.Request().DeleteExcept(ctx, propertyID, request.ID)
		if err != nil {
			return err
		}

		assigned = property
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RequestsAccepted.WithLabelValues(string(domain.KindTenancy)).Inc()
	s.logger.Info("Tenancy request accepted",
		zap.String("property_id", propertyID),
		zap.String("tenant_id", tenantID),
		zap.Int64("competitors_removed", competitors),
	)
	return assigned, nil
}

// RejectRequest keeps the rejected row so the tenant can see the outcome until it expires.
func (s *RequestService) RejectRequest(ctx context.Context, ownerID, propertyID, tenantID string) (*domain.Request, error) {
	property, err := s.repo.Property().GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.OwnedBy(ownerID) {
		return nil, ErrNotPropertyOwner
	}

	request, err := s.repo.Request().FindPending(ctx, propertyID, tenantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrNoPendingRequest
	}
	if err != nil {
		return nil, err
	}

	if err := request.Reject(); err != nil {
		return nil, err
	}
	if err := s.repo.Request().UpdateStatus(ctx, request, domain.RequestPending); err != nil {
		return nil, err
	}

	return request, nil
}

// AcceptPaymentRequest confirms a tenant's reported payment: the balance drops by the
// requested amount, the request is marked accepted and a payment is appended to the
// ledger, atomically.
func (s *RequestService) AcceptPaymentRequest(ctx context.Context, ownerID, paymentRequestID string) (*domain.Payment, error) {
	now := s.now()

	var payment *domain.Payment
	err := retryOnConflict(ctx, func() error {
		return s.repo.WithTx(ctx, func(tx repository.PostgresRepository) error {
			request, err := tx.PaymentRequest().GetByID(ctx, paymentRequestID)
			if err != nil {
				return err
			}
			if request.OwnerID != ownerID {
				return ErrNotPropertyOwner
			}

			property, err := tx.Property().GetByID(ctx, request.PropertyID)
			if err != nil {
				return err
			}
			if !property.OwnedBy(ownerID) {
				return ErrNotPropertyOwner
			}
			if property.TenantID == nil || *property.TenantID != request.TenantID {
				return fmt.Errorf("payment request tenant no longer rents property %s: %w", property.ID, domain.ErrConflict)
			}

			if err := request.Accept(); err != nil {
				return err
			}

			expectedVersion := property.Version
			if err := property.Settle(request.Amount); err != nil {
				return err
			}
			if err := tx.Property().UpdateConditional(ctx, property, expectedVersion); err != nil {
				return err
			}
			if err := tx.PaymentRequest().UpdateStatus(ctx, request, domain.RequestPending); err != nil {
				return err
			}

			payment = &domain.Payment{
				PropertyID: property.ID,
				OwnerID:    ownerID,
				TenantID:   request.TenantID,
				Address:    property.Address,
				Amount:     request.Amount,
				Note:       fmt.Sprintf("payment request %s", request.ID),
				Mode:       domain.PaymentModePaymentRequest,
				Date:       now,
			}
			return tx.Payment().Append(ctx, payment)
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RequestsAccepted.WithLabelValues(string(domain.KindPayment)).Inc()
	s.metrics.Settlements.WithLabelValues(string(domain.PaymentModePaymentRequest)).Inc()
	return payment, nil
}
