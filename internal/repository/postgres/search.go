package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// PropertySearch answers city searches straight from the relational store when no
// search cluster is configured. Index and Delete have nothing to maintain.
type PropertySearch struct {
	properties *PropertyRepository
}

func NewPropertySearch(readerDB *gorm.DB) *PropertySearch {
	return &PropertySearch{properties: NewPropertyRepository(readerDB, readerDB)}
}

func (s *PropertySearch) Index(ctx context.Context, property *domain.Property) error {
	return nil
}

func (s *PropertySearch) Delete(ctx context.Context, propertyID string) error {
	return nil
}

func (s *PropertySearch) SearchByCity(ctx context.Context, city string, limit int) ([]domain.Property, error) {
	return s.properties.List(ctx, domain.PropertyFilter{City: city, Limit: limit})
}
