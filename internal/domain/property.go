package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RentalState is the lifecycle position of a property.
// Requested is derived from the presence of pending requests and is never persisted.
type RentalState string

const (
	StateVacant    RentalState = "vacant"
	StateRequested RentalState = "requested"
	StateRented    RentalState = "rented"
)

var rentalTransitions = map[RentalState][]RentalState{
	StateVacant:    {StateRequested, StateRented},
	StateRequested: {StateVacant, StateRented},
	StateRented:    {},
}

// CanTransition reports whether a property may move from one rental state to another.
func (s RentalState) CanTransition(to RentalState) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Property struct {
	ID         string          `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID    string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	Address    string          `gorm:"type:text;not null" json:"address"`
	City       string          `gorm:"type:text;not null;index" json:"city"`
	State      string          `gorm:"type:text" json:"state"`
	Country    string          `gorm:"type:text" json:"country"`
	Type       string          `gorm:"type:text" json:"type"`
	Size       int             `gorm:"not null;default:0" json:"size"`
	ImageURL   string          `gorm:"type:text" json:"image_url"`
	RentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"rent_amount"`
	Balance    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"balance"`
	IsRented   bool            `gorm:"not null;default:false;index" json:"is_rented"`
	TenantID   *string         `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	TenantName *string         `gorm:"type:text" json:"tenant_name,omitempty"`
	AssignedAt *time.Time      `json:"assigned_at,omitempty"`
	// UpdatedAt is the accrual watermark: it moves on assignment and on accrual only.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Version   int64     `gorm:"not null;default:0" json:"-"`

	// RentalStatus is filled in by reads that also count pending requests.
	RentalStatus RentalState `gorm:"-" json:"rental_state,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}

// RentalState returns the persisted state; callers that know about pending requests
// use StateWithRequests instead.
func (p *Property) RentalState() RentalState {
	if p.IsRented {
		return StateRented
	}
	return StateVacant
}

func (p *Property) StateWithRequests(hasPending bool) RentalState {
	if p.IsRented {
		return StateRented
	}
	if hasPending {
		return StateRequested
	}
	return StateVacant
}

// Assign moves a vacant or requested property to rented. The first period's rent
// becomes due immediately.
func (p *Property) Assign(tenantID, tenantName string, now time.Time) error {
	if !p.RentalState().CanTransition(StateRented) {
		return fmt.Errorf("property %s is already rented: %w", p.ID, ErrConflict)
	}
	if tenantID == "" {
		return fmt.Errorf("tenant id is required: %w", ErrValidation)
	}
	p.IsRented = true
	p.TenantID = &tenantID
	p.TenantName = &tenantName
	p.Balance = p.RentAmount
	p.AssignedAt = &now
	p.UpdatedAt = now
	return nil
}

// Accrue adds one period's rent when a full calendar month has passed both since
// assignment and since the last accrual. At most one period is added per call.
func (p *Property) Accrue(now time.Time, loc *time.Location) bool {
	if !p.IsRented || p.AssignedAt == nil {
		return false
	}
	if MonthsBetween(*p.AssignedAt, now, loc) < 1 || MonthsBetween(p.UpdatedAt, now, loc) < 1 {
		return false
	}
	p.Balance = p.Balance.Add(p.RentAmount)
	p.UpdatedAt = now
	return true
}

// Settle reduces the balance by a positive amount. The balance may go negative.
func (p *Property) Settle(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("settlement amount must be positive: %w", ErrValidation)
	}
	if !p.IsRented {
		return fmt.Errorf("property %s has no tenant to settle with: %w", p.ID, ErrConflict)
	}
	p.Balance = p.Balance.Sub(amount)
	return nil
}

func (p *Property) OwnedBy(ownerID string) bool {
	return p.OwnerID == ownerID
}

type PropertyFilter struct {
	OwnerID  string `json:"owner_id"`
	TenantID string `json:"tenant_id"`
	City     string `json:"city"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// PropertyBalance is the owner's view of what each tenant currently owes.
type PropertyBalance struct {
	PropertyID string          `json:"property_id"`
	Address    string          `json:"address"`
	TenantID   *string         `json:"tenant_id,omitempty"`
	TenantName *string         `json:"tenant_name,omitempty"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	Balance    decimal.Decimal `json:"balance"`
	AssignedAt *time.Time      `json:"assigned_at,omitempty"`
}
