package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type PaymentRequestRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPaymentRequestRepository(writerDB, readerDB *gorm.DB) *PaymentRequestRepository {
	return &PaymentRequestRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PaymentRequestRepository) Create(ctx context.Context, request *domain.PaymentRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.Status == "" {
		request.Status = domain.RequestPending
	}

	err := r.writerDB.WithContext(ctx).Create(request).Error
	return translateError(err, "create payment request")
}

func (r *PaymentRequestRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	var request domain.PaymentRequest
	if err := r.writerDB.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("get payment request %s", id))
	}
	return &request, nil
}

func (r *PaymentRequestRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.PaymentRequest, error) {
	var requests []domain.PaymentRequest
	err := r.readerDB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, translateError(err, "list owner payment requests")
	}
	return requests, nil
}

func (r *PaymentRequestRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.PaymentRequest, error) {
	var requests []domain.PaymentRequest
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, translateError(err, "list tenant payment requests")
	}
	return requests, nil
}

func (r *PaymentRequestRepository) UpdateStatus(ctx context.Context, request *domain.PaymentRequest, expected domain.RequestStatus) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.PaymentRequest{}).
		Where("id = ? AND status = ?", request.ID, expected).
		Update("status", request.Status)
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("update payment request %s", request.ID))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment request %s is no longer %s: %w", request.ID, expected, domain.ErrStaleVersion)
	}
	return nil
}

func (r *PaymentRequestRepository) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	result := r.writerDB.WithContext(ctx).Where("property_id = ?", propertyID).Delete(&domain.PaymentRequest{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete property payment requests")
	}
	return result.RowsAffected, nil
}

func (r *PaymentRequestRepository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]domain.PaymentRequest, error) {
	var requests []domain.PaymentRequest
	err := r.writerDB.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		return nil, translateError(err, "list expired payment requests")
	}
	return requests, nil
}

func (r *PaymentRequestRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&domain.PaymentRequest{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete expired payment requests")
	}
	return result.RowsAffected, nil
}

func (r *PaymentRequestRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.writerDB.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.PaymentRequest{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete payment requests")
	}
	return result.RowsAffected, nil
}
