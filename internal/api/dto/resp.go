package dto

import (
	"time"
)

// AccountResponse is an owner or tenant without credentials.
type AccountResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Asha Rao"`
	Email     string    `json:"email" example:"asha@example.com"`
	Phone     string    `json:"phone" example:"9876543210"`
	Role      string    `json:"role" example:"owner"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type TokenResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at" example:"2025-07-18T21:20:48Z"`
	Account   AccountResponse `json:"account"`
}

// JobRunResponse acknowledges an on-demand job that was queued.
type JobRunResponse struct {
	Job    string `json:"job" example:"accrual"`
	Status string `json:"status" example:"queued"`
}

type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}
