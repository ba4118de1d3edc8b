package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/utils"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

const rateLimitWindow = time.Minute

// Counter is the subset of *redis.Client used for fixed-window counting.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

type RateLimitMiddleware struct {
	redis  Counter
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis Counter, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// AccountRateLimit limits each authenticated owner or tenant. It must run after JWTAuth.
func (m *RateLimitMiddleware) AccountRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User ID required for rate limiting"})
			return
		}

		limit := m.config.DefaultRateLimit
		if limit <= 0 {
			limit = 300
		}
		m.enforce(c, fmt.Sprintf("rate_limit:account:%s", userID), limit, "Rate limit exceeded")
	}
}

// GlobalRateLimit limits each client IP.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int, message string) {
	ctx := c.Request.Context()

	count, err := m.redis.Incr(ctx, key).Result()
	if err != nil {
		// fail open
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}
	if count == 1 {
		if err := m.redis.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
			m.logger.Error("Failed to set rate limit window", err)
		}
	}

	reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)
	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
	c.Header("X-RateLimit-Reset", reset)

	if count > int64(limit) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
		})
		return
	}

	c.Next()
}
