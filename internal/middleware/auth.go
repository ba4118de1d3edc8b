package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/utils"
)

type AuthMiddleware struct {
	config *config.Config
	now    func() time.Time
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
		now:    time.Now,
	}
}

// JWTAuth verifies the bearer token and stores its claims on the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if _, ok := claims[string(utils.UserIDKey)].(string); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has no user"})
			return
		}

		c.Request = c.Request.WithContext(utils.WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// RequireRole lets the request through only when the token carries role.
func (m *AuthMiddleware) RequireRole(role domain.Role) gin.HandlerFunc {
	return m.RequireAnyRole(role)
}

func (m *AuthMiddleware) RequireAnyRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := utils.GetClaimsFromContext(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		if !domain.HasAnyRole(utils.GetRolesFromContext(c.Request.Context()), roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GenerateToken signs an HS256 token for an owner, tenant or admin.
func (m *AuthMiddleware) GenerateToken(userID, name string, roles []string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(time.Duration(m.config.JWTExpirationHours) * time.Hour)

	claims := jwt.MapClaims{
		string(utils.UserIDKey): userID,
		string(utils.NameKey):   name,
		string(utils.RolesKey):  roles,
		"exp":                   expiresAt.Unix(),
		"iat":                   issuedAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.JWTSecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt.UTC(), nil
}
