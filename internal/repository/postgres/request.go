package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type RequestRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRequestRepository(writerDB, readerDB *gorm.DB) *RequestRepository {
	return &RequestRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RequestRepository) Create(ctx context.Context, request *domain.Request) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.Status == "" {
		request.Status = domain.RequestPending
	}

	err := r.writerDB.WithContext(ctx).Create(request).Error
	return translateError(err, "create request")
}

func (r *RequestRepository) FindPending(ctx context.Context, propertyID, tenantID string) (*domain.Request, error) {
	var request domain.Request
	err := r.writerDB.WithContext(ctx).
		Where("property_id = ? AND tenant_id = ? AND status = ?", propertyID, tenantID, domain.RequestPending).
		First(&request).Error
	if err != nil {
		return nil, translateError(err, "find pending request")
	}
	return &request, nil
}

func (r *RequestRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Request, error) {
	var requests []domain.Request
	err := r.readerDB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, translateError(err, "list owner requests")
	}
	return requests, nil
}

func (r *RequestRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Request, error) {
	var requests []domain.Request
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, translateError(err, "list tenant requests")
	}
	return requests, nil
}

func (r *RequestRepository) CountPending(ctx context.Context, propertyID string) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Request{}).
		Where("property_id = ? AND status = ?", propertyID, domain.RequestPending).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "count pending requests")
	}
	return count, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, request *domain.Request, expected domain.RequestStatus) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Request{}).
		Where("id = ? AND status = ?", request.ID, expected).
		Updates(map[string]interface{}{
			"status":      request.Status,
			"accepted_at": request.AcceptedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("update request %s", request.ID))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("request %s is no longer %s: %w", request.ID, expected, domain.ErrStaleVersion)
	}
	return nil
}

func (r *RequestRepository) DeleteExcept(ctx context.Context, propertyID, keepRequestID string) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("property_id = ? AND id <> ?", propertyID, keepRequestID).
		Delete(&domain.Request{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete competing requests")
	}
	return result.RowsAffected, nil
}

func (r *RequestRepository) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	result := r.writerDB.WithContext(ctx).Where("property_id = ?", propertyID).Delete(&domain.Request{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete property requests")
	}
	return result.RowsAffected, nil
}

func (r *RequestRepository) expiredScope(ctx context.Context, cutoff time.Time, preserveAccepted bool) *gorm.DB {
	db := r.writerDB.WithContext(ctx).Where("created_at < ?", cutoff)
	if preserveAccepted {
		db = db.Where("status <> ?", domain.RequestAccepted)
	}
	return db
}

func (r *RequestRepository) ListOlderThan(ctx context.Context, cutoff time.Time, preserveAccepted bool) ([]domain.Request, error) {
	var requests []domain.Request
	if err := r.expiredScope(ctx, cutoff, preserveAccepted).Order("created_at").Find(&requests).Error; err != nil {
		return nil, translateError(err, "list expired requests")
	}
	return requests, nil
}

func (r *RequestRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time, preserveAccepted bool) (int64, error) {
	result := r.expiredScope(ctx, cutoff, preserveAccepted).Delete(&domain.Request{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete expired requests")
	}
	return result.RowsAffected, nil
}

func (r *RequestRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.writerDB.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.Request{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete requests")
	}
	return result.RowsAffected, nil
}
