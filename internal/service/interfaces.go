package service

import (
	"context"
	"time"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

//go:generate mockery --name PropertyIndexer --output ../mocks
type PropertyIndexer interface {
	SendIndexMessage(ctx context.Context, property *domain.Property) error
	SendDeleteMessage(ctx context.Context, propertyID string) error
}

//go:generate mockery --name JobQueue --output ../mocks
type JobQueue interface {
	SendJobMessage(ctx context.Context, job, requestedBy string) error
}

//go:generate mockery --name Archiver --output ../mocks
type Archiver interface {
	Archive(ctx context.Context, cutoff time.Time, requests []domain.Request, paymentRequests []domain.PaymentRequest) (string, error)
}

//go:generate mockery --name TokenIssuer --output ../mocks
type TokenIssuer interface {
	GenerateToken(userID, name string, roles []string) (string, time.Time, error)
}

// Clock returns the current time. Services default to UTC wall-clock time.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
