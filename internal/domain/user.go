package domain

import (
	"time"
)

// Account holds the fields shared by owners and tenants.
type Account struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Phone        string    `gorm:"type:text;not null;uniqueIndex" json:"phone"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

type Owner struct {
	Account
}

func (Owner) TableName() string {
	return "owners"
}

type Tenant struct {
	Account
}

func (Tenant) TableName() string {
	return "tenants"
}
