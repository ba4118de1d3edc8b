package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

const (
	minCitySearchLength = 3
	maxSearchResults    = 50
)

type PropertyService struct {
	repo    repository.Repository
	indexer PropertyIndexer
	logger  *logger.Logger
	now     Clock
}

// NewPropertyService takes a nil indexer when search indexing is disabled.
func NewPropertyService(repo repository.Repository, indexer PropertyIndexer, logger *logger.Logger) *PropertyService {
	return &PropertyService{
		repo:    repo,
		indexer: indexer,
		logger:  logger,
		now:     utcNow,
	}
}

func (s *PropertyService) SetClock(now Clock) {
	s.now = now
}

func (s *PropertyService) Create(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (*domain.Property, error) {
	if !req.RentAmount.IsPositive() {
		return nil, fmt.Errorf("rent amount must be positive: %w", domain.ErrValidation)
	}

	property := req.ToProperty(ownerID)
	property.CreatedAt = s.now()
	property.UpdatedAt = property.CreatedAt
	if err := s.repo.Property().Create(ctx, property); err != nil {
		return nil, err
	}

	if s.indexer != nil {
		if err := s.indexer.SendIndexMessage(ctx, property); err != nil {
			s.logger.Error("Failed to queue property for indexing", err, zap.String("property_id", property.ID))
		}
	}
	return property, nil
}

// Get returns a property visible to the caller: its owner or its current tenant.
func (s *PropertyService) Get(ctx context.Context, callerID, propertyID string) (*domain.Property, error) {
	property, err := s.repo.Property().GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.OwnedBy(callerID) && (property.TenantID == nil || *property.TenantID != callerID) {
		return nil, ErrNotPropertyOwner
	}

	pending, err := s.repo.Request().CountPending(ctx, property.ID)
	if err != nil {
		return nil, err
	}
	property.RentalStatus = property.StateWithRequests(pending > 0)
	return property, nil
}

func (s *PropertyService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	return s.repo.Property().List(ctx, domain.PropertyFilter{OwnerID: ownerID})
}

func (s *PropertyService) ListByTenant(ctx context.Context, tenantID string) ([]domain.Property, error) {
	return s.repo.Property().List(ctx, domain.PropertyFilter{TenantID: tenantID})
}

// Delete removes the property together with its requests and payment requests. Payments
// stay in the ledger.
func (s *PropertyService) Delete(ctx context.Context, ownerID, propertyID string) error {
	err := s.repo.WithTx(ctx, func(tx repository.PostgresRepository) error {
		property, err := tx.Property().GetByID(ctx, propertyID)
		if err != nil {
			return err
		}
		if !property.OwnedBy(ownerID) {
			return ErrNotPropertyOwner
		}
		if _, err := tx.Request().DeleteByProperty(ctx, propertyID); err != nil {
			return err
		}
		if _, err := tx.PaymentRequest().DeleteByProperty(ctx, propertyID); err != nil {
			return err
		}
		return tx.Property().Delete(ctx, propertyID)
	})
	if err != nil {
		return err
	}

	if s.indexer != nil {
		if err := s.indexer.SendDeleteMessage(ctx, propertyID); err != nil {
			s.logger.Error("Failed to queue property index removal", err, zap.String("property_id", propertyID))
		}
	}
	return nil
}

func (s *PropertyService) SearchByCity(ctx context.Context, city string) ([]domain.Property, error) {
	city = strings.TrimSpace(city)
	if len([]rune(city)) < minCitySearchLength {
		return nil, ErrSearchTooShort
	}
	return s.repo.Search().SearchByCity(ctx, city, maxSearchResults)
}

// Balances lists what each of the owner's rented properties currently owes.
func (s *PropertyService) Balances(ctx context.Context, ownerID string) ([]domain.PropertyBalance, error) {
	properties, err := s.repo.Property().List(ctx, domain.PropertyFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	balances := make([]domain.PropertyBalance, 0, len(properties))
	for _, p := range properties {
		if !p.IsRented {
			continue
		}
		balances = append(balances, domain.PropertyBalance{
			PropertyID: p.ID,
			Address:    p.Address,
			TenantID:   p.TenantID,
			TenantName: p.TenantName,
			RentAmount: p.RentAmount,
			Balance:    p.Balance,
			AssignedAt: p.AssignedAt,
		})
	}
	return balances, nil
}
