package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type PropertyService interface {
	Create(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (*domain.Property, error)
	Get(ctx context.Context, callerID, propertyID string) (*domain.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Property, error)
	Delete(ctx context.Context, ownerID, propertyID string) error
	SearchByCity(ctx context.Context, city string) ([]domain.Property, error)
	Balances(ctx context.Context, ownerID string) ([]domain.PropertyBalance, error)
}

type PropertyHandler struct {
	BaseHandler
	service PropertyService
}

func NewPropertyHandler(service PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// CreateProperty godoc
// @Summary List a new vacant property
// @Tags    properties
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   body body dto.CreatePropertyRequest true "Property"
// @Success 201 {object} domain.Property
// @Failure 400 {object} dto.Error
// @Router  /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	ownerID, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	property, err := h.service.Create(h.RequestCtx(c), ownerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// ListProperties godoc
// @Summary Properties owned by the caller, or rented by the caller when a tenant
// @Tags    properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Property
// @Router  /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	userID, ok := h.Caller(c)
	if !ok {
		return
	}

	var (
		properties []domain.Property
		err        error
	)
	if h.CallerRole(c) == domain.RoleTenant {
		properties, err = h.service.ListByTenant(h.RequestCtx(c), userID)
	} else {
		properties, err = h.service.ListByOwner(h.RequestCtx(c), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetProperty godoc
// @Summary Get a property visible to its owner or tenant
// @Tags    properties
// @Produce json
// @Security BearerAuth
// @Param   id path string true "Property ID"
// @Success 200 {object} domain.Property
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	userID, ok := h.Caller(c)
	if !ok {
		return
	}

	property, err := h.service.Get(h.RequestCtx(c), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty godoc
// @Summary Delete a property with its requests
// @Tags    properties
// @Produce json
// @Security BearerAuth
// @Param   id path string true "Property ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	ownerID, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), ownerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "property deleted"})
}

// SearchProperties godoc
// @Summary Search properties by city
// @Tags    properties
// @Produce json
// @Security BearerAuth
// @Param   city query string true "City, at least 3 characters"
// @Success 200 {array} domain.Property
// @Failure 400 {object} dto.Error
// @Router  /properties/search [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	properties, err := h.service.SearchByCity(h.RequestCtx(c), c.Query("city"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// Balances godoc
// @Summary Outstanding balance of each rented property
// @Tags    properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PropertyBalance
// @Router  /properties/balances [get]
func (h *PropertyHandler) Balances(c *gin.Context) {
	ownerID, ok := h.Caller(c)
	if !ok {
		return
	}

	balances, err := h.service.Balances(h.RequestCtx(c), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, balances)
}
