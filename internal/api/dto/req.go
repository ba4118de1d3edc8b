package dto

import (
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha Rao"`
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Phone    string `json:"phone" binding:"required,min=7,max=20" example:"9876543210"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Role     string `json:"role" binding:"required,oneof=owner tenant" example:"owner"`
}

// LoginRequest identifies the account by email or phone.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"asha@example.com"`
	Password   string `json:"password" binding:"required" example:"s3cret-pass"`
	Role       string `json:"role" binding:"required,oneof=owner tenant" example:"owner"`
}

type CreatePropertyRequest struct {
	Address    string          `json:"address" binding:"required" example:"12 Park Street"`
	City       string          `json:"city" binding:"required" example:"Pune"`
	State      string          `json:"state" example:"Maharashtra"`
	Country    string          `json:"country" example:"India"`
	Type       string          `json:"type" example:"apartment"`
	Size       int             `json:"size" binding:"gte=0" example:"850"`
	RentAmount decimal.Decimal `json:"rent_amount" swaggertype:"string" example:"15000"`
	ImageURL   string          `json:"image_url" binding:"omitempty,url" example:"https://cdn.example.com/p/1.jpg"`
}

type SubmitRequestRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type SubmitPaymentRequestRequest struct {
	PropertyID string          `json:"property_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"5000"`
}

type AcceptRequestRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID   string `json:"tenant_id" binding:"required,uuid" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	TenantName string `json:"tenant_name" example:"Ravi Kumar"`
}

type RejectRequestRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID   string `json:"tenant_id" binding:"required,uuid" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
}

type SettleRequest struct {
	PropertyID string          `json:"property_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"200"`
	Note       string          `json:"note" binding:"max=500" example:"partial payment"`
	Mode       string          `json:"mode" binding:"omitempty,oneof=cash bank_transfer upi cheque" example:"cash"`
}
