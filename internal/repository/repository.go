package repository

import (
	"context"
	"time"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

//go:generate mockery --name PropertyRepository --output ../mocks
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	ListRented(ctx context.Context) ([]domain.Property, error)
	// UpdateConditional persists balance and rental fields only if the stored version
	// still equals expectedVersion. A lost race returns domain.ErrConflict.
	UpdateConditional(ctx context.Context, property *domain.Property, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}

//go:generate mockery --name RequestRepository --output ../mocks
type RequestRepository interface {
	Create(ctx context.Context, request *domain.Request) error
	FindPending(ctx context.Context, propertyID, tenantID string) (*domain.Request, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Request, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Request, error)
	CountPending(ctx context.Context, propertyID string) (int64, error)
	// UpdateStatus writes the new status only if the stored status is still expected.
	UpdateStatus(ctx context.Context, request *domain.Request, expected domain.RequestStatus) error
	// DeleteExcept removes every request for the property except keepRequestID.
	DeleteExcept(ctx context.Context, propertyID, keepRequestID string) (int64, error)
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
	ListOlderThan(ctx context.Context, cutoff time.Time, preserveAccepted bool) ([]domain.Request, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, preserveAccepted bool) (int64, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

//go:generate mockery --name PaymentRequestRepository --output ../mocks
type PaymentRequestRepository interface {
	Create(ctx context.Context, request *domain.PaymentRequest) error
	GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.PaymentRequest, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.PaymentRequest, error)
	UpdateStatus(ctx context.Context, request *domain.PaymentRequest, expected domain.RequestStatus) error
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]domain.PaymentRequest, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// PaymentRepository is the append-only settlement ledger.
//
//go:generate mockery --name PaymentRepository --output ../mocks
type PaymentRepository interface {
	Append(ctx context.Context, payment *domain.Payment) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Payment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
}

//go:generate mockery --name AccountRepository --output ../mocks
type AccountRepository interface {
	Create(ctx context.Context, role domain.Role, account *domain.Account) error
	GetByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error)
	FindByEmailOrPhone(ctx context.Context, role domain.Role, email, phone string) (*domain.Account, error)
	Delete(ctx context.Context, role domain.Role, id string) error
}

//go:generate mockery --name PropertySearchRepository --output ../mocks
type PropertySearchRepository interface {
	Index(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, propertyID string) error
	SearchByCity(ctx context.Context, city string, limit int) ([]domain.Property, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Property() PropertyRepository
	Request() RequestRepository
	PaymentRequest() PaymentRequestRepository
	Payment() PaymentRepository
	Account() AccountRepository
	// WithTx runs fn against repositories bound to one transaction. Any error rolls
	// the whole transaction back.
	WithTx(ctx context.Context, fn func(tx PostgresRepository) error) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() PropertySearchRepository
}
