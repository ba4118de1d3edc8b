package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type PropertyRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPropertyRepository(writerDB, readerDB *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	err := r.writerDB.WithContext(ctx).Create(property).Error
	return translateError(err, "create property")
}

// GetByID reads from the writer so that callers deciding on a mutation see the latest row.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var property domain.Property
	if err := r.writerDB.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("get property %s", id))
	}
	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	var properties []domain.Property

	db := r.readerDB.WithContext(ctx)
	if filter.OwnerID != "" {
		db = db.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.TenantID != "" {
		db = db.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.City != "" {
		db = db.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, translateError(err, "list properties")
	}
	return properties, nil
}

func (r *PropertyRepository) ListRented(ctx context.Context) ([]domain.Property, error) {
	var properties []domain.Property
	err := r.writerDB.WithContext(ctx).
		Where("is_rented = ?", true).
		Order("id").
		Find(&properties).Error
	if err != nil {
		return nil, translateError(err, "list rented properties")
	}
	return properties, nil
}

func (r *PropertyRepository) UpdateConditional(ctx context.Context, property *domain.Property, expectedVersion int64) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Property{}).
		Where("id = ? AND version = ?", property.ID, expectedVersion).
		Updates(map[string]interface{}{
			"balance":     property.Balance,
			"is_rented":   property.IsRented,
			"tenant_id":   property.TenantID,
			"tenant_name": property.TenantName,
			"assigned_at": property.AssignedAt,
			"updated_at":  property.UpdatedAt,
			"version":     expectedVersion + 1,
		})
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("update property %s", property.ID))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("property %s changed concurrently: %w", property.ID, domain.ErrStaleVersion)
	}

	property.Version = expectedVersion + 1
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	result := r.writerDB.WithContext(ctx).Delete(&domain.Property{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("delete property %s", id))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *PropertyRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	result := r.writerDB.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&domain.Property{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete owner properties")
	}
	return result.RowsAffected, nil
}
