package service

import (
	"fmt"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

var (
	// Property errors
	ErrNotPropertyOwner  = fmt.Errorf("property belongs to another owner: %w", domain.ErrUnauthorized)
	ErrNotPropertyTenant = fmt.Errorf("property is rented to another tenant: %w", domain.ErrUnauthorized)
	ErrPropertyRented    = fmt.Errorf("property is already rented: %w", domain.ErrConflict)
	ErrSearchTooShort    = fmt.Errorf("city search needs at least 3 characters: %w", domain.ErrValidation)

	// Request errors
	ErrDuplicateRequest = fmt.Errorf("a pending request for this property already exists: %w", domain.ErrConflict)
	ErrNoPendingRequest = fmt.Errorf("no pending request from this tenant: %w", domain.ErrNotFound)

	// Account errors
	ErrAccountExists      = fmt.Errorf("email or phone already registered: %w", domain.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
)
