package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type LedgerService interface {
	Settle(ctx context.Context, ownerID, propertyID string, amount decimal.Decimal, note string, mode domain.PaymentMode) (*domain.Payment, error)
	ListPaymentsForOwner(ctx context.Context, ownerID string) ([]domain.Payment, error)
	ListPaymentsForTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
}

type LedgerHandler struct {
	BaseHandler
	service LedgerService
}

func NewLedgerHandler(service LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// Settle godoc
// @Summary Record a payment received outside the platform
// @Description Reduces the property balance by the amount. Overpayment leaves a negative balance.
// @Tags    ledger
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   body body dto.SettleRequest true "Settlement"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router  /settlements [post]
func (h *LedgerHandler) Settle(c *gin.Context) {
	ownerID, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment, err := h.service.Settle(h.RequestCtx(c), ownerID, req.PropertyID, req.Amount, req.Note, domain.PaymentMode(req.Mode))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListPayments godoc
// @Summary Payment history, newest first
// @Tags    ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Payment
// @Router  /payments [get]
func (h *LedgerHandler) ListPayments(c *gin.Context) {
	userID, ok := h.Caller(c)
	if !ok {
		return
	}

	var (
		payments []domain.Payment
		err      error
	)
	if h.CallerRole(c) == domain.RoleOwner {
		payments, err = h.service.ListPaymentsForOwner(h.RequestCtx(c), userID)
	} else {
		payments, err = h.service.ListPaymentsForTenant(h.RequestCtx(c), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
