package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/mocks"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
)

// failingLedger hands transactions a payment repository whose Append always fails.
type failingLedger struct {
	repository.PostgresRepository
	payments repository.PaymentRepository
}

func (f *failingLedger) WithTx(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return f.PostgresRepository.WithTx(ctx, func(tx repository.PostgresRepository) error {
		return fn(&failingLedger{PostgresRepository: tx, payments: f.payments})
	})
}

func (f *failingLedger) Payment() repository.PaymentRepository {
	return f.payments
}

type LedgerServiceTestSuite struct {
	storeSuite
	service  *LedgerService
	now      time.Time
	tenantID string
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.now = time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	s.tenantID = s.newTenant()
	s.service = NewLedgerService(s.repo, s.log, s.metrics)
	s.service.SetClock(func() time.Time { return s.now })
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestSettle_DecrementsAndRecords() {
	// Arrange
	property := s.newProperty(1000)
	s.rent(property, s.tenantID, date(2024, 5, 1), 1000)

	// Act
	payment, err := s.service.Settle(s.ctx, s.ownerID, property.ID, decimal.NewFromInt(200), "partial payment", "")

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.PaymentModeCash, payment.Mode)
	s.Equal(s.tenantID, payment.TenantID)
	s.Equal(property.Address, payment.Address)
	s.True(s.now.Equal(payment.Date))
	s.requireBalance(property.ID, 800)

	payments, err := s.service.ListPaymentsForTenant(s.ctx, s.tenantID)
	s.Require().NoError(err)
	s.Require().Len(payments, 1)
	s.Equal("partial payment", payments[0].Note)
	s.True(decimal.NewFromInt(200).Equal(payments[0].Amount))
}

func (s *LedgerServiceTestSuite) TestSettle_OverpaymentGoesNegative() {
	// Arrange
	property := s.newProperty(1000)
	s.rent(property, s.tenantID, date(2024, 5, 1), 1000)

	// Act
	_, err := s.service.Settle(s.ctx, s.ownerID, property.ID, decimal.NewFromInt(1500), "", domain.PaymentModeUPI)

	// Assert
	s.Require().NoError(err)
	s.requireBalance(property.ID, -500)
}

func (s *LedgerServiceTestSuite) TestSettle_DoesNotMoveAccrualWatermark() {
	// Arrange
	property := s.newProperty(1000)
	assignedAt := date(2024, 5, 1)
	s.rent(property, s.tenantID, assignedAt, 1000)

	// Act
	_, err := s.service.Settle(s.ctx, s.ownerID, property.ID, decimal.NewFromInt(100), "", "")

	// Assert
	s.Require().NoError(err)
	s.True(assignedAt.Equal(s.reload(property.ID).UpdatedAt))
}

func (s *LedgerServiceTestSuite) TestSettle_RollsBackWhenPaymentFails() {
	// Arrange
	property := s.newProperty(1000)
	s.rent(property, s.tenantID, date(2024, 5, 1), 1000)

	payments := mocks.NewPaymentRepository(s.T())
	payments.On("Append", mock.Anything, mock.Anything).Return(domain.ErrTransientStore)
	service := NewLedgerService(&failingLedger{PostgresRepository: s.repo, payments: payments}, s.log, s.metrics)

	// Act
	_, err := service.Settle(s.ctx, s.ownerID, property.ID, decimal.NewFromInt(200), "", "")

	// Assert
	s.ErrorIs(err, domain.ErrTransientStore)
	s.requireBalance(property.ID, 1000)
	recorded, err := s.service.ListPaymentsForOwner(s.ctx, s.ownerID)
	s.Require().NoError(err)
	s.Empty(recorded)
}

func (s *LedgerServiceTestSuite) TestSettle_Errors() {
	// Arrange
	vacant := s.newProperty(1000)
	rented := s.newProperty(900)
	s.rent(rented, s.tenantID, date(2024, 5, 1), 900)

	tests := []struct {
		name       string
		ownerID    string
		propertyID string
		amount     decimal.Decimal
		mode       domain.PaymentMode
		want       error
	}{
		{"vacant property", s.ownerID, vacant.ID, decimal.NewFromInt(100), "", domain.ErrConflict},
		{"foreign owner", s.newTenant(), rented.ID, decimal.NewFromInt(100), "", domain.ErrUnauthorized},
		{"zero amount", s.ownerID, rented.ID, decimal.Zero, "", domain.ErrValidation},
		{"unknown mode", s.ownerID, rented.ID, decimal.NewFromInt(100), "barter", domain.ErrValidation},
		{"missing property", s.ownerID, "00000000-0000-0000-0000-000000000000", decimal.NewFromInt(100), "", domain.ErrNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Act
			_, err := s.service.Settle(s.ctx, tt.ownerID, tt.propertyID, tt.amount, "", tt.mode)

			// Assert
			s.ErrorIs(err, tt.want)
		})
	}

	s.requireBalance(rented.ID, 900)
	payments, err := s.service.ListPaymentsForOwner(s.ctx, s.ownerID)
	s.Require().NoError(err)
	s.Empty(payments)
}

func TestRetryOnConflict(t *testing.T) {
	t.Run("retries stale versions", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), func() error {
			calls++
			if calls < 3 {
				return domain.ErrStaleVersion
			}
			return nil
		})

		if err != nil || calls != 3 {
			t.Fatalf("want success after 3 calls, got %v after %d", err, calls)
		}
	})

	t.Run("does not retry other conflicts", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), func() error {
			calls++
			return domain.ErrInvalidTransition
		})

		if !errors.Is(err, domain.ErrInvalidTransition) || calls != 1 {
			t.Fatalf("want one call returning the transition error, got %v after %d", err, calls)
		}
	})

	t.Run("gives up", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), func() error {
			calls++
			return domain.ErrStaleVersion
		})

		if !errors.Is(err, domain.ErrStaleVersion) || calls != maxConflictRetries {
			t.Fatalf("want %d calls ending in a stale version, got %v after %d", maxConflictRetries, err, calls)
		}
	})
}
