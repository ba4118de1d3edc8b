package utils

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		want    string
		wantErr error
	}{
		{"no claims", context.Background(), "", ErrNoClaimsInContext},
		{"missing user", WithClaims(context.Background(), jwt.MapClaims{}), "", ErrNoUserIDInClaims},
		{"wrong type", WithClaims(context.Background(), jwt.MapClaims{"user_id": 7}), "", ErrInvalidUserIDType},
		{"ok", WithClaims(context.Background(), jwt.MapClaims{"user_id": "u1"}), "u1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetRolesFromContext(t *testing.T) {
	ctx := WithClaims(context.Background(), jwt.MapClaims{"roles": []any{"owner", 3, "admin"}})
	assert.Equal(t, []string{"owner", "admin"}, GetRolesFromContext(ctx))

	ctx = WithClaims(context.Background(), jwt.MapClaims{"roles": []string{"tenant"}, "name": "Asha"})
	assert.Equal(t, []string{"tenant"}, GetRolesFromContext(ctx))
	assert.Equal(t, "Asha", GetNameFromContext(ctx))
	assert.Nil(t, GetRolesFromContext(context.Background()))
}
