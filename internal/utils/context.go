package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	UserIDKey ContextKey = "user_id"
	RolesKey  ContextKey = "roles"
	NameKey   ContextKey = "name"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrNoUserIDInClaims  = errors.New("no user_id found in claims")
	ErrInvalidUserIDType = errors.New("user_id must be a string")
)

// WithClaims stores verified token claims on ctx.
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

func GetClaimsFromContext(c context.Context) (jwt.MapClaims, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return nil, ErrNoClaimsInContext
	}
	return claims, nil
}

func GetUserIDFromContext(c context.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}

	userID, exists := claims[string(UserIDKey)]
	if !exists {
		return "", ErrNoUserIDInClaims
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return "", ErrInvalidUserIDType
	}

	return userIDStr, nil
}

// GetNameFromContext returns the display name claim, or "" when absent.
func GetNameFromContext(c context.Context) string {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return ""
	}
	name, _ := claims[string(NameKey)].(string)
	return name
}

// GetRolesFromContext accepts both []string and the []any produced by JSON decoding.
func GetRolesFromContext(c context.Context) []string {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return nil
	}

	switch roles := claims[string(RolesKey)].(type) {
	case []string:
		return roles
	case []any:
		out := make([]string, 0, len(roles))
		for _, role := range roles {
			if s, ok := role.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
