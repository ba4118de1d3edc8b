package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
	"github.com/angadsxngh/rent-management-backend/internal/repository/postgres"
	"github.com/angadsxngh/rent-management-backend/internal/testutil"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// storeSuite runs service tests against a fresh in-memory ledger store.
type storeSuite struct {
	suite.Suite
	ctx     context.Context
	conns   *config.DatabaseConnections
	repo    repository.PostgresRepository
	log     *logger.Logger
	metrics *metrics.Metrics
	ownerID string
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.conns = testutil.NewDatabase(s.T())
	s.repo = postgres.NewPostgresRepository(s.conns)
	s.log = logger.NewNop()
	s.metrics = metrics.NewUnregistered()
	s.ownerID = testutil.SeedOwner(s.T(), s.conns.Writer)
}

func (s *storeSuite) newTenant() string {
	return testutil.SeedTenant(s.T(), s.conns.Writer)
}

func (s *storeSuite) newProperty(rent int64) *domain.Property {
	return testutil.SeedProperty(s.T(), s.conns.Writer, s.ownerID, rent)
}

// rent puts a property into the rented state with explicit timestamps and balance.
func (s *storeSuite) rent(property *domain.Property, tenantID string, assignedAt time.Time, balance int64) {
	err := s.conns.Writer.Model(&domain.Property{}).
		Where("id = ?", property.ID).
		Updates(map[string]interface{}{
			"is_rented":   true,
			"tenant_id":   tenantID,
			"tenant_name": "Tenant",
			"assigned_at": assignedAt,
			"updated_at":  assignedAt,
			"balance":     decimal.NewFromInt(balance),
		}).Error
	s.Require().NoError(err)
}

func (s *storeSuite) reload(id string) *domain.Property {
	property, err := s.repo.Property().GetByID(s.ctx, id)
	s.Require().NoError(err)
	return property
}

func (s *storeSuite) requireBalance(id string, want int64) {
	got := s.reload(id).Balance
	s.Truef(decimal.NewFromInt(want).Equal(got), "balance: want %d, got %s", want, got)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
