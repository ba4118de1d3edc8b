package service

import (
	"context"
	"errors"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

const maxConflictRetries = 3

// retryOnConflict reruns fn while it loses a compare-and-swap race. Use it only for
// balance adjustments, where re-reading and re-applying is always correct.
func retryOnConflict(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = fn()
		if !errors.Is(err, domain.ErrStaleVersion) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
