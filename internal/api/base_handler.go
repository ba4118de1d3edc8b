package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/utils"
)

type BaseHandler struct{}

// RequestCtx returns the request context carrying the verified token claims.
func (h *BaseHandler) RequestCtx(c *gin.Context) context.Context {
	return c.Request.Context()
}

// Caller returns the authenticated account id. It writes a 401 and returns false when the
// request carries no claims.
func (h *BaseHandler) Caller(c *gin.Context) (string, bool) {
	userID, err := utils.GetUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "authentication required"})
		return "", false
	}
	return userID, true
}

// CallerRole returns the owner or tenant role the token was issued for.
func (h *BaseHandler) CallerRole(c *gin.Context) domain.Role {
	roles := utils.GetRolesFromContext(c.Request.Context())
	switch {
	case domain.HasRole(roles, domain.RoleOwner):
		return domain.RoleOwner
	case domain.HasRole(roles, domain.RoleTenant):
		return domain.RoleTenant
	default:
		return domain.RoleAdmin
	}
}
