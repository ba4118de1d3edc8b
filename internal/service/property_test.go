package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/mocks"
	"github.com/angadsxngh/rent-management-backend/internal/repository/composite"
)

type PropertyServiceTestSuite struct {
	storeSuite
	indexer *mocks.PropertyIndexer
	service *PropertyService
	now     time.Time
}

func (s *PropertyServiceTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.now = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	s.indexer = mocks.NewPropertyIndexer(s.T())
	s.service = NewPropertyService(composite.NewCompositeRepository(s.conns, nil, nil), s.indexer, s.log)
	s.service.SetClock(func() time.Time { return s.now })
}

func TestPropertyService(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}

func (s *PropertyServiceTestSuite) TestCreate_StartsVacantAndQueuesIndexing() {
	// Arrange
	req := dto.CreatePropertyRequest{
		Address:    "4 Lake Road",
		City:       "Mumbai",
		RentAmount: decimal.NewFromInt(15000),
	}
	s.indexer.On("SendIndexMessage", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil).Once()

	// Act
	property, err := s.service.Create(s.ctx, s.ownerID, req)

	// Assert
	s.Require().NoError(err)
	stored := s.reload(property.ID)
	s.False(stored.IsRented)
	s.Nil(stored.TenantID)
	s.True(stored.Balance.IsZero())
	s.Equal(s.ownerID, stored.OwnerID)
	s.True(s.now.Equal(stored.CreatedAt))
}

func (s *PropertyServiceTestSuite) TestCreate_IndexingFailureIsNotFatal() {
	// Arrange
	req := dto.CreatePropertyRequest{Address: "4 Lake Road", City: "Mumbai", RentAmount: decimal.NewFromInt(100)}
	s.indexer.On("SendIndexMessage", mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

	// Act
	_, err := s.service.Create(s.ctx, s.ownerID, req)

	// Assert
	s.NoError(err)
}

func (s *PropertyServiceTestSuite) TestCreate_RejectsNonPositiveRent() {
	// Act
	_, err := s.service.Create(s.ctx, s.ownerID, dto.CreatePropertyRequest{Address: "x", City: "Pune", RentAmount: decimal.Zero})

	// Assert
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *PropertyServiceTestSuite) TestGet_VisibleToOwnerAndTenantOnly() {
	// Arrange
	property := s.newProperty(1000)
	tenantID := s.newTenant()
	s.rent(property, tenantID, s.now, 1000)

	// Act
	_, ownerErr := s.service.Get(s.ctx, s.ownerID, property.ID)
	_, tenantErr := s.service.Get(s.ctx, tenantID, property.ID)
	_, strangerErr := s.service.Get(s.ctx, s.newTenant(), property.ID)

	// Assert
	s.NoError(ownerErr)
	s.NoError(tenantErr)
	s.ErrorIs(strangerErr, domain.ErrUnauthorized)
}

func (s *PropertyServiceTestSuite) TestGet_ReportsRentalState() {
	// Arrange
	vacant := s.newProperty(1000)
	requested := s.newProperty(1100)
	_, err := NewRequestService(s.repo, s.log, s.metrics).SubmitRequest(s.ctx, s.newTenant(), requested.ID)
	s.Require().NoError(err)
	rented := s.newProperty(1200)
	s.rent(rented, s.newTenant(), s.now, 1200)

	tests := []struct {
		name       string
		propertyID string
		want       domain.RentalState
	}{
		{"no requests", vacant.ID, domain.StateVacant},
		{"pending request", requested.ID, domain.StateRequested},
		{"assigned tenant", rented.ID, domain.StateRented},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Act
			property, err := s.service.Get(s.ctx, s.ownerID, tt.propertyID)

			// Assert
			s.Require().NoError(err)
			s.Equal(tt.want, property.RentalStatus)
		})
	}
}

func (s *PropertyServiceTestSuite) TestDelete_RemovesRequestsButKeepsPayments() {
	// Arrange
	property := s.newProperty(1000)
	tenantID := s.newTenant()
	s.rent(property, tenantID, s.now.Add(-24*time.Hour), 1000)

	requests := NewRequestService(s.repo, s.log, s.metrics)
	_, err := requests.SubmitPaymentRequest(s.ctx, tenantID, property.ID, decimal.NewFromInt(100))
	s.Require().NoError(err)
	_, err = NewLedgerService(s.repo, s.log, s.metrics).Settle(s.ctx, s.ownerID, property.ID, decimal.NewFromInt(50), "", "")
	s.Require().NoError(err)

	s.indexer.On("SendDeleteMessage", mock.Anything, property.ID).Return(nil).Once()

	// Act
	err = s.service.Delete(s.ctx, s.ownerID, property.ID)

	// Assert
	s.Require().NoError(err)
	_, err = s.repo.Property().GetByID(s.ctx, property.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	paymentRequests, err := s.repo.PaymentRequest().ListByOwner(s.ctx, s.ownerID)
	s.Require().NoError(err)
	s.Empty(paymentRequests)
	payments, err := s.repo.Payment().ListByOwner(s.ctx, s.ownerID)
	s.Require().NoError(err)
	s.Len(payments, 1)
}

func (s *PropertyServiceTestSuite) TestDelete_ForeignOwner() {
	// Arrange
	property := s.newProperty(1000)

	// Act
	err := s.service.Delete(s.ctx, s.newTenant(), property.ID)

	// Assert
	s.ErrorIs(err, domain.ErrUnauthorized)
	s.NotNil(s.reload(property.ID))
}

func (s *PropertyServiceTestSuite) TestSearchByCity() {
	// Arrange
	s.newProperty(1000)
	s.newProperty(2000)

	// Act
	found, err := s.service.SearchByCity(s.ctx, "  pun ")
	_, shortErr := s.service.SearchByCity(s.ctx, "Pu")

	// Assert
	s.Require().NoError(err)
	s.Len(found, 2)
	s.ErrorIs(shortErr, domain.ErrValidation)
}

func (s *PropertyServiceTestSuite) TestBalances_ListsRentedOnly() {
	// Arrange
	s.newProperty(1000)
	rented := s.newProperty(700)
	s.rent(rented, s.newTenant(), s.now, 700)

	// Act
	balances, err := s.service.Balances(s.ctx, s.ownerID)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(balances, 1)
	s.Equal(rented.ID, balances[0].PropertyID)
	s.True(decimal.NewFromInt(700).Equal(balances[0].Balance))
}
