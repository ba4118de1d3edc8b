package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// PaymentRepository only ever inserts; settled payments are never edited.
type PaymentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPaymentRepository(writerDB, readerDB *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PaymentRepository) Append(ctx context.Context, payment *domain.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	err := r.writerDB.WithContext(ctx).Create(payment).Error
	return translateError(err, "append payment")
}

func (r *PaymentRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.readerDB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, translateError(err, "list owner payments")
	}
	return payments, nil
}

func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, translateError(err, "list tenant payments")
	}
	return payments, nil
}
