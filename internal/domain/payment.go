package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	PaymentModeCash           PaymentMode = "cash"
	PaymentModeBankTransfer   PaymentMode = "bank_transfer"
	PaymentModeUPI            PaymentMode = "upi"
	PaymentModeCheque         PaymentMode = "cheque"
	PaymentModePaymentRequest PaymentMode = "payment_request"
)

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeBankTransfer, PaymentModeUPI, PaymentModeCheque, PaymentModePaymentRequest:
		return true
	}
	return false
}

// Payment is an append-only ledger entry written whenever a balance is settled.
type Payment struct {
	ID         string          `gorm:"primaryKey;type:uuid" json:"id"`
	PropertyID string          `gorm:"type:uuid;not null;index" json:"property_id"`
	OwnerID    string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	TenantID   string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Address    string          `gorm:"type:text;not null" json:"address"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Note       string          `gorm:"type:text" json:"note"`
	Mode       PaymentMode     `gorm:"type:text;not null" json:"mode"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
}

func (Payment) TableName() string {
	return "payments"
}
