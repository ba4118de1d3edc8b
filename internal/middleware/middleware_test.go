package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/utils"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecretKey: "test-secret", JWTExpirationHours: 1, DefaultRateLimit: 2}
}

// newRouter exposes GET /whoami behind the given middleware.
func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"name":    utils.GetNameFromContext(c.Request.Context()),
			"roles":   utils.GetRolesFromContext(c.Request.Context()),
		})
	})
	r.GET("/whoami", handlers...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_TokenRoundTrip(t *testing.T) {
	// Arrange
	auth := NewAuthMiddleware(testConfig())
	token, expiresAt, err := auth.GenerateToken("owner-1", "Asha", []string{"owner"})
	require.NoError(t, err)

	// Act
	w := get(newRouter(auth.JWTAuth(), auth.RequireRole(domain.RoleOwner)), token)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"owner-1","name":"Asha","roles":["owner"]}`, w.Body.String())
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	auth := NewAuthMiddleware(testConfig())
	tenantToken, _, err := auth.GenerateToken("tenant-1", "Ravi", []string{"tenant"})
	require.NoError(t, err)

	expired := NewAuthMiddleware(testConfig())
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.GenerateToken("owner-1", "Asha", []string{"owner"})
	require.NoError(t, err)

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "owner-1"}).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)

	noAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "owner-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"expired", expiredToken, http.StatusUnauthorized},
		{"wrong key", otherKey, http.StatusUnauthorized},
		{"unsigned", noAlg, http.StatusUnauthorized},
		{"wrong role", tenantToken, http.StatusForbidden},
	}

	router := newRouter(auth.JWTAuth(), auth.RequireRole(domain.RoleOwner))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, get(router, tt.token).Code)
		})
	}
}

func TestAuthMiddleware_RequireAnyRole(t *testing.T) {
	auth := NewAuthMiddleware(testConfig())
	adminToken, _, err := auth.GenerateToken("admin-1", "Ops", []string{"admin"})
	require.NoError(t, err)

	router := newRouter(auth.JWTAuth(), auth.RequireAnyRole(domain.RoleOwner, domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, get(router, adminToken).Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	auth := NewAuthMiddleware(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()

	newRouter(auth.JWTAuth()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authorization header format")
}

type fakeCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestRateLimitMiddleware_AccountLimit(t *testing.T) {
	// Arrange
	auth := NewAuthMiddleware(testConfig())
	token, _, err := auth.GenerateToken("owner-1", "Asha", []string{"owner"})
	require.NoError(t, err)
	counter := newFakeCounter()
	limiter := NewRateLimitMiddleware(counter, testConfig(), logger.NewNop())
	router := newRouter(auth.JWTAuth(), limiter.AccountRateLimit())

	// Act
	first := get(router, token)
	second := get(router, token)
	third := get(router, token)

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, time.Minute, counter.expires["rate_limit:account:owner-1"])
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	counter := newFakeCounter()
	counter.err = errors.New("connection refused")
	limiter := NewRateLimitMiddleware(counter, testConfig(), logger.NewNop())
	router := newRouter(limiter.GlobalRateLimit(1))

	assert.Equal(t, http.StatusOK, get(router, "").Code)
	assert.Equal(t, http.StatusOK, get(router, "").Code)
}

func TestValidationMiddleware(t *testing.T) {
	v := NewValidationMiddleware(logger.NewNop())
	r := gin.New()
	r.Use(v.BlockSuspiciousPatterns(), v.ValidateContentType("application/json"), v.ValidateRequestSize(64))
	r.Any("/properties", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		want        int
	}{
		{"plain get", http.MethodGet, "/properties?city=Pune", "", "", http.StatusNoContent},
		{"injection in query", http.MethodGet, "/properties?city=x%27%20UNION%20SELECT%20*", "", "", http.StatusBadRequest},
		{"json body", http.MethodPost, "/properties", "application/json; charset=utf-8", `{"city":"Pune"}`, http.StatusNoContent},
		{"form body", http.MethodPost, "/properties", "text/plain", "city=Pune", http.StatusUnsupportedMediaType},
		{"oversized body", http.MethodPost, "/properties", "application/json", `{"address":"` + strings.Repeat("a", 80) + `"}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
