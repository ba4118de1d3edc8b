package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// translateError maps driver failures onto the domain error taxonomy.
func translateError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTransientStore, err)
	}
}
