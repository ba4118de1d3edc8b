// Package testutil provides an in-memory ledger store for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// NewDatabase opens a private in-memory sqlite database with the full schema applied.
// The pool is capped at one connection, so transactions run one after another.
func NewDatabase(t testing.TB) *config.DatabaseConnections {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return &config.DatabaseConnections{Writer: db, Reader: db}
}

// SeedOwner inserts an owner account and returns its ID.
func SeedOwner(t testing.TB, db *gorm.DB) string {
	t.Helper()
	return seedAccount(t, db, &domain.Owner{})
}

// SeedTenant inserts a tenant account and returns its ID.
func SeedTenant(t testing.TB, db *gorm.DB) string {
	t.Helper()
	return seedAccount(t, db, &domain.Tenant{})
}

func seedAccount(t testing.TB, db *gorm.DB, model interface{}) string {
	id := uuid.New().String()
	account := domain.Account{
		ID:           id,
		Name:         "user-" + id[:8],
		Email:        id + "@example.com",
		Phone:        id[:12],
		PasswordHash: "x",
	}

	switch m := model.(type) {
	case *domain.Owner:
		m.Account = account
	case *domain.Tenant:
		m.Account = account
	}
	require.NoError(t, db.Create(model).Error)
	return id
}

// SeedProperty inserts a vacant property with the given monthly rent.
func SeedProperty(t testing.TB, db *gorm.DB, ownerID string, rent int64) *domain.Property {
	t.Helper()

	now := time.Now().UTC()
	property := &domain.Property{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Address:    "12 Park Street",
		City:       "Pune",
		RentAmount: decimal.NewFromInt(rent),
		Balance:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}
