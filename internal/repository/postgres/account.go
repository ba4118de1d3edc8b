package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// AccountRepository stores owners and tenants in their own tables behind one API.
type AccountRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAccountRepository(writerDB, readerDB *gorm.DB) *AccountRepository {
	return &AccountRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func accountTable(role domain.Role) (string, error) {
	switch role {
	case domain.RoleOwner:
		return domain.Owner{}.TableName(), nil
	case domain.RoleTenant:
		return domain.Tenant{}.TableName(), nil
	default:
		return "", fmt.Errorf("no account table for role %q: %w", role, domain.ErrValidation)
	}
}

func (r *AccountRepository) scope(ctx context.Context, db *gorm.DB, role domain.Role) (*gorm.DB, error) {
	table, err := accountTable(role)
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx).Table(table), nil
}

func (r *AccountRepository) Create(ctx context.Context, role domain.Role, account *domain.Account) error {
	db, err := r.scope(ctx, r.writerDB, role)
	if err != nil {
		return err
	}
	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	return translateError(db.Create(account).Error, fmt.Sprintf("create %s", role))
}

func (r *AccountRepository) GetByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error) {
	db, err := r.scope(ctx, r.readerDB, role)
	if err != nil {
		return nil, err
	}

	var account domain.Account
	if err := db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("get %s %s", role, id))
	}
	return &account, nil
}

func (r *AccountRepository) FindByEmailOrPhone(ctx context.Context, role domain.Role, email, phone string) (*domain.Account, error) {
	db, err := r.scope(ctx, r.readerDB, role)
	if err != nil {
		return nil, err
	}

	var account domain.Account
	if err := db.Where("email = ? OR phone = ?", email, phone).First(&account).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("find %s", role))
	}
	return &account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, role domain.Role, id string) error {
	db, err := r.scope(ctx, r.writerDB, role)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&domain.Account{})
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("delete %s %s", role, id))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", role, id, domain.ErrNotFound)
	}
	return nil
}
