package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type RequestService interface {
	SubmitRequest(ctx context.Context, tenantID, propertyID string) (*domain.Request, error)
	SubmitPaymentRequest(ctx context.Context, tenantID, propertyID string, amount decimal.Decimal) (*domain.PaymentRequest, error)
	ListForOwner(ctx context.Context, ownerID string) ([]domain.FeedItem, error)
	ListForTenant(ctx context.Context, tenantID string) ([]domain.FeedItem, error)
	AcceptRequest(ctx context.Context, ownerID, propertyID, tenantID, tenantName string) (*domain.Property, error)
	RejectRequest(ctx context.Context, ownerID, propertyID, tenantID string) (*domain.Request, error)
	AcceptPaymentRequest(ctx context.Context, ownerID, paymentRequestID string) (*domain.Payment, error)
}

type RequestHandler struct {
	BaseHandler
	service RequestService
}

func NewRequestHandler(service RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// SubmitRequest godoc
// @Summary Apply to rent a vacant property
// @Tags    requests
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   body body dto.SubmitRequestRequest true "Property to rent"
// @Success 201 {object} domain.Request
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router  /requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	tenantID, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	request, err := h.service.SubmitRequest(h.RequestCtx(c), tenantID, req.PropertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListRequests godoc
// @Summary Tenancy and payment requests, pending first
// @Description Owners see requests on their properties; tenants see their own.
// @Tags    requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.FeedItem
// @Router  /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	userID, ok := h.Caller(c)
	if !ok {
		return
	}

	var (
		feed []domain.FeedItem
		err  error
	)
	if h.CallerRole(c) == domain.RoleOwner {
		feed, err = h.service.ListForOwner(h.RequestCtx(c), userID)
	} else {
		feed, err = h.service.ListForTenant(h.RequestCtx(c), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// AcceptRequest godoc
// @Summary Assign a property to the requesting tenant
// @Description Competing requests for the property are deleted in the same transaction.
// @Tags    requests
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   body body dto.AcceptRequestRequest true "Request to accept"
// @Success 200 {object} domain.Property
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router  /requests/accept [post]
func (h *RequestHandler) AcceptRequest(c *gin.Context) {
	ownerID, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.AcceptRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	property, err := h.service.AcceptRequest(h.RequestCtx(c), ownerID, req.PropertyID, req.TenantID, req.TenantName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// RejectRequest godoc
// @Summary Reject a pending tenancy request
// @Tags    requests
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   body body dto.RejectRequestRequest true "Request to reject"
// @Success 200 {object} domain.Request
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /requests/reject [post]
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	ownerID, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	request, err := h.service.RejectRequest(h.RequestCtx(c), ownerID, req.PropertyID, req.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// SubmitPaymentRequest godoc
// @Summary Report a payment for the owner to confirm
// @Tags    requests
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   body body dto.SubmitPaymentRequestRequest true "Payment details"
// @Success 201 {object} domain.PaymentRequest
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /payment-requests [post]
func (h *RequestHandler) SubmitPaymentRequest(c *gin.Context) {
	tenantID, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.SubmitPaymentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	request, err := h.service.SubmitPaymentRequest(h.RequestCtx(c), tenantID, req.PropertyID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// AcceptPaymentRequest godoc
// @Summary Confirm a reported payment
// @Description Reduces the property balance and records the payment.
// @Tags    requests
// @Produce json
// @Security BearerAuth
// @Param   id path string true "Payment request ID"
// @Success 200 {object} domain.Payment
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router  /payment-requests/{id}/accept [post]
func (h *RequestHandler) AcceptPaymentRequest(c *gin.Context) {
	ownerID, ok := h.Caller(c)
	if !ok {
		return
	}

	payment, err := h.service.AcceptPaymentRequest(h.RequestCtx(c), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

