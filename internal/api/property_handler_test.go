package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (*domain.Property, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, callerID, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, callerID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyService) ListByTenant(ctx context.Context, tenantID string) ([]domain.Property, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, ownerID, propertyID string) error {
	args := m.Called(ctx, ownerID, propertyID)
	return args.Error(0)
}

func (m *MockPropertyService) SearchByCity(ctx context.Context, city string) ([]domain.Property, error) {
	args := m.Called(ctx, city)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyService) Balances(ctx context.Context, ownerID string) ([]domain.PropertyBalance, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.PropertyBalance), args.Error(1)
}

type PropertyHandlerTestSuite struct {
	suite.Suite
	mockService *MockPropertyService
	handler     *PropertyHandler
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	s.mockService = new(MockPropertyService)
	s.handler = NewPropertyHandler(s.mockService)
}

func TestPropertyHandler(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_Success() {
	// Arrange
	req := dto.CreatePropertyRequest{
		Address:    "12 Park Street",
		City:       "Pune",
		RentAmount: decimal.NewFromInt(15000),
	}
	created := &domain.Property{ID: propertyID, OwnerID: ownerID, Address: req.Address, City: req.City, RentAmount: req.RentAmount}
	s.mockService.On("Create", mock.Anything, ownerID, mock.MatchedBy(func(r dto.CreatePropertyRequest) bool {
		return r.City == "Pune" && r.RentAmount.Equal(decimal.NewFromInt(15000))
	})).Return(created, nil)

	c, w := newTestContext(http.MethodPost, "/properties", req, ownerID, domain.RoleOwner)

	// Act
	s.handler.CreateProperty(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	got := decode[domain.Property](w)
	s.Equal(propertyID, got.ID)
	s.True(got.RentAmount.Equal(decimal.NewFromInt(15000)))
	s.mockService.AssertExpectations(s.T())
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_MissingCity() {
	c, w := newTestContext(http.MethodPost, "/properties", map[string]any{"address": "12 Park Street"}, ownerID, domain.RoleOwner)

	s.handler.CreateProperty(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(decode[dto.Error](w).Error, "City")
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_Unauthenticated() {
	c, w := newTestContext(http.MethodPost, "/properties", dto.CreatePropertyRequest{}, "", "")

	s.handler.CreateProperty(c)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PropertyHandlerTestSuite) TestListProperties_ByRole() {
	s.Run("owner", func() {
		s.SetupTest()
		s.mockService.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Property{{ID: propertyID}}, nil)
		c, w := newTestContext(http.MethodGet, "/properties", nil, ownerID, domain.RoleOwner)

		s.handler.ListProperties(c)

		s.Equal(http.StatusOK, w.Code)
		s.Len(decode[[]domain.Property](w), 1)
		s.mockService.AssertNotCalled(s.T(), "ListByTenant", mock.Anything, mock.Anything)
	})

	s.Run("tenant", func() {
		s.SetupTest()
		s.mockService.On("ListByTenant", mock.Anything, tenantID).Return([]domain.Property{}, nil)
		c, w := newTestContext(http.MethodGet, "/properties", nil, tenantID, domain.RoleTenant)

		s.handler.ListProperties(c)

		s.Equal(http.StatusOK, w.Code)
		s.mockService.AssertNotCalled(s.T(), "ListByOwner", mock.Anything, mock.Anything)
	})
}

func (s *PropertyHandlerTestSuite) TestGetProperty_Forbidden() {
	s.mockService.On("Get", mock.Anything, tenantID, propertyID).Return(nil, domain.ErrUnauthorized)
	c, w := newTestContext(http.MethodGet, "/properties/"+propertyID, nil, tenantID, domain.RoleTenant)
	c.AddParam("id", propertyID)

	s.handler.GetProperty(c)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *PropertyHandlerTestSuite) TestDeleteProperty_NotFound() {
	s.mockService.On("Delete", mock.Anything, ownerID, propertyID).Return(domain.ErrNotFound)
	c, w := newTestContext(http.MethodDelete, "/properties/"+propertyID, nil, ownerID, domain.RoleOwner)
	c.AddParam("id", propertyID)

	s.handler.DeleteProperty(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PropertyHandlerTestSuite) TestSearchProperties_PassesCity() {
	s.mockService.On("SearchByCity", mock.Anything, "Pune").Return([]domain.Property{{ID: propertyID, City: "Pune"}}, nil)
	c, w := newTestContext(http.MethodGet, "/properties/search?city=Pune", nil, tenantID, domain.RoleTenant)

	s.handler.SearchProperties(c)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Pune", decode[[]domain.Property](w)[0].City)
}

func (s *PropertyHandlerTestSuite) TestBalances_Success() {
	balances := []domain.PropertyBalance{{PropertyID: propertyID, Balance: decimal.NewFromInt(1000)}}
	s.mockService.On("Balances", mock.Anything, ownerID).Return(balances, nil)
	c, w := newTestContext(http.MethodGet, "/properties/balances", nil, ownerID, domain.RoleOwner)

	s.handler.Balances(c)

	s.Equal(http.StatusOK, w.Code)
	got := decode[[]domain.PropertyBalance](w)
	s.Require().Len(got, 1)
	s.True(got[0].Balance.Equal(decimal.NewFromInt(1000)))
}
