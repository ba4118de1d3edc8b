package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/middleware"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

type unlimited struct{}

func (unlimited) Incr(ctx context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(1, nil)
}

func (unlimited) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

type routerFixture struct {
	router     *gin.Engine
	auth       *middleware.AuthMiddleware
	metrics    *metrics.Metrics
	properties *MockPropertyService
	requests   *MockRequestService
	jobs       *MockJobService
}

func newRouterFixture() *routerFixture {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecretKey: "server-test-secret", JWTExpirationHours: 1, DefaultRateLimit: 100}
	log := logger.NewNop()

	f := &routerFixture{
		auth:       middleware.NewAuthMiddleware(cfg),
		metrics:    metrics.NewUnregistered(),
		properties: new(MockPropertyService),
		requests:   new(MockRequestService),
		jobs:       new(MockJobService),
	}
	server := NewServer(
		Services{
			Auth:     new(MockAuthService),
			Property: f.properties,
			Request:  f.requests,
			Ledger:   new(MockLedgerService),
			Jobs:     f.jobs,
		},
		f.auth,
		middleware.NewRateLimitMiddleware(unlimited{}, cfg, log),
		middleware.NewValidationMiddleware(log),
		1000,
		f.metrics,
		log,
	)

	f.router = gin.New()
	server.SetupRoutes(f.router.Group("/api/v1"))
	return f
}

func (f *routerFixture) do(t *testing.T, method, path, body string, role domain.Role, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		token, _, err := f.auth.GenerateToken(userID, "Test User", []string{string(role)})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestServer_RoleGates(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		role   domain.Role
		status int
	}{
		{"tenant cannot create property", http.MethodPost, "/api/v1/properties", `{"address":"a","city":"Pune"}`, domain.RoleTenant, http.StatusForbidden},
		{"owner cannot submit request", http.MethodPost, "/api/v1/requests", `{"property_id":"` + propertyID + `"}`, domain.RoleOwner, http.StatusForbidden},
		{"tenant cannot accept", http.MethodPost, "/api/v1/requests/accept", `{}`, domain.RoleTenant, http.StatusForbidden},
		{"tenant cannot settle", http.MethodPost, "/api/v1/settlements", `{}`, domain.RoleTenant, http.StatusForbidden},
		{"tenant cannot run jobs", http.MethodPost, "/api/v1/jobs/accrual", "", domain.RoleTenant, http.StatusForbidden},
		{"anonymous is rejected", http.MethodGet, "/api/v1/properties", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture()

			w := f.do(t, tt.method, tt.path, tt.body, tt.role, tenantID)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestServer_DispatchesToHandlers(t *testing.T) {
	f := newRouterFixture()
	f.properties.On("SearchByCity", mock.Anything, "Pune").Return([]domain.Property{}, nil)
	f.requests.On("SubmitRequest", mock.Anything, tenantID, propertyID).Return(&domain.Request{ID: "r1"}, nil)
	f.jobs.On("Enqueue", mock.Anything, "sweep", tenantID).Return(nil)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/v1/properties/search?city=Pune", "", domain.RoleTenant, tenantID).Code)
	assert.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/api/v1/requests", `{"property_id":"`+propertyID+`"}`, domain.RoleTenant, tenantID).Code)
	assert.Equal(t, http.StatusAccepted, f.do(t, http.MethodPost, "/api/v1/jobs/sweep", "", domain.RoleAdmin, tenantID).Code)

	f.properties.AssertExpectations(t)
	f.requests.AssertExpectations(t)
	f.jobs.AssertExpectations(t)
}

func TestServer_RecordsLatencyByRoute(t *testing.T) {
	f := newRouterFixture()
	f.properties.On("Balances", mock.Anything, ownerID).Return([]domain.PropertyBalance{}, nil)

	f.do(t, http.MethodGet, "/api/v1/properties/balances", "", domain.RoleOwner, ownerID)
	f.do(t, http.MethodGet, "/api/v1/properties/balances", "", domain.RoleOwner, ownerID)

	assert.Equal(t, 1, testutil.CollectAndCount(f.metrics.EndpointLatency))
}

func TestServer_RejectsNonJSONBodies(t *testing.T) {
	f := newRouterFixture()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString("identifier=a"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
