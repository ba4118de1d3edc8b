package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// Transition is the only way a request status changes. Accepted and rejected are terminal.
func (s RequestStatus) Transition(to RequestStatus) (RequestStatus, error) {
	if s != RequestPending || (to != RequestAccepted && to != RequestRejected) {
		return s, fmt.Errorf("%s -> %s: %w", s, to, ErrInvalidTransition)
	}
	return to, nil
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

// Request is a tenant's application to rent a vacant property.
type Request struct {
	ID         string        `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID    string        `gorm:"type:uuid;not null;index" json:"owner_id"`
	PropertyID string        `gorm:"type:uuid;not null;index" json:"property_id"`
	TenantID   string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Status     RequestStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time     `gorm:"not null;index" json:"created_at"`
	AcceptedAt *time.Time    `json:"accepted_at,omitempty"`
	Property   *Property     `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Request) TableName() string {
	return "requests"
}

func (r *Request) Accept(now time.Time) error {
	next, err := r.Status.Transition(RequestAccepted)
	if err != nil {
		return err
	}
	r.Status = next
	r.AcceptedAt = &now
	return nil
}

func (r *Request) Reject() error {
	next, err := r.Status.Transition(RequestRejected)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}

// PaymentRequest is a tenant's notice of an ad-hoc payment. Accepting it reduces the
// property balance by Amount.
type PaymentRequest struct {
	ID         string          `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID    string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	PropertyID string          `gorm:"type:uuid;not null;index" json:"property_id"`
	TenantID   string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status     RequestStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time       `gorm:"not null;index" json:"created_at"`
	Property   *Property       `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}

func (r *PaymentRequest) Accept() error {
	next, err := r.Status.Transition(RequestAccepted)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}
