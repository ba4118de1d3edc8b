package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, role domain.Role, id string) (*dto.AccountResponse, error)
	Delete(ctx context.Context, role domain.Role, id string) error
}

type AuthHandler struct {
	BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary Register an owner or tenant
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   body body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in with email or phone
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current account
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.Caller(c)
	if !ok {
		return
	}

	account, err := h.service.Me(h.RequestCtx(c), h.CallerRole(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount godoc
// @Summary Delete the current account
// @Description Deleting an owner also deletes their properties and the requests on them.
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.Error
// @Router  /me [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), h.CallerRole(c), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "account deleted"})
}
