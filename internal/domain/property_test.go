package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rentedProperty(assigned time.Time, balance int64) *Property {
	tenant := "tenant-1"
	return &Property{
		ID:         "prop-1",
		OwnerID:    "owner-1",
		RentAmount: decimal.NewFromInt(1000),
		Balance:    decimal.NewFromInt(balance),
		IsRented:   true,
		TenantID:   &tenant,
		AssignedAt: &assigned,
		UpdatedAt:  assigned,
	}
}

func TestProperty_Accrue_IsIdempotentWithinMonth(t *testing.T) {
	p := rentedProperty(date(2024, 1, 15), 0)

	assert.True(t, p.Accrue(date(2024, 2, 20), time.UTC))
	assert.Equal(t, "1000", p.Balance.String())
	assert.Equal(t, date(2024, 2, 20), p.UpdatedAt)

	assert.False(t, p.Accrue(date(2024, 2, 20), time.UTC))
	assert.Equal(t, "1000", p.Balance.String())
}

func TestProperty_Accrue_CatchesUpOnePeriodPerRun(t *testing.T) {
	p := rentedProperty(date(2024, 1, 15), 0)
	p.Accrue(date(2024, 2, 20), time.UTC)

	assert.True(t, p.Accrue(date(2024, 4, 10), time.UTC))
	assert.Equal(t, "2000", p.Balance.String())

	assert.False(t, p.Accrue(date(2024, 4, 25), time.UTC))
	assert.Equal(t, "2000", p.Balance.String())

	assert.True(t, p.Accrue(date(2024, 5, 1), time.UTC))
	assert.Equal(t, "3000", p.Balance.String())
}

func TestProperty_Accrue_SkipsAssignmentMonthAndVacant(t *testing.T) {
	p := rentedProperty(date(2024, 1, 2), 1000)
	assert.False(t, p.Accrue(date(2024, 1, 31), time.UTC))

	vacant := &Property{RentAmount: decimal.NewFromInt(1000), UpdatedAt: date(2023, 1, 1)}
	assert.False(t, vacant.Accrue(date(2024, 1, 31), time.UTC))
}

func TestProperty_Assign(t *testing.T) {
	p := &Property{ID: "prop-1", RentAmount: decimal.NewFromInt(750), Balance: decimal.NewFromInt(-20)}
	now := date(2024, 3, 5)

	require.NoError(t, p.Assign("tenant-b", "Bea", now))
	assert.True(t, p.IsRented)
	assert.Equal(t, "tenant-b", *p.TenantID)
	assert.Equal(t, "Bea", *p.TenantName)
	assert.Equal(t, "750", p.Balance.String())
	assert.Equal(t, now, *p.AssignedAt)
	assert.Equal(t, StateRented, p.RentalState())

	err := p.Assign("tenant-c", "Cy", now)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "tenant-b", *p.TenantID)
}

func TestProperty_Settle(t *testing.T) {
	p := rentedProperty(date(2024, 1, 1), 150)

	require.NoError(t, p.Settle(decimal.NewFromInt(200)))
	assert.Equal(t, "-50", p.Balance.String())

	assert.ErrorIs(t, p.Settle(decimal.Zero), ErrValidation)
	assert.ErrorIs(t, (&Property{}).Settle(decimal.NewFromInt(1)), ErrConflict)
}

func TestRentalState_Transitions(t *testing.T) {
	assert.True(t, StateVacant.CanTransition(StateRequested))
	assert.True(t, StateRequested.CanTransition(StateRented))
	assert.False(t, StateRented.CanTransition(StateVacant))
	assert.False(t, StateRented.CanTransition(StateRented))

	p := &Property{}
	assert.Equal(t, StateRequested, p.StateWithRequests(true))
	assert.Equal(t, StateVacant, p.StateWithRequests(false))
}
