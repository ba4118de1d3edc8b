package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
)

type postgresRepository struct {
	writerDB           *gorm.DB
	readerDB           *gorm.DB
	propertyRepo       repository.PropertyRepository
	requestRepo        repository.RequestRepository
	paymentRequestRepo repository.PaymentRequestRepository
	paymentRepo        repository.PaymentRepository
	accountRepo        repository.AccountRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		writerDB:           writerDB,
		readerDB:           readerDB,
		propertyRepo:       NewPropertyRepository(writerDB, readerDB),
		requestRepo:        NewRequestRepository(writerDB, readerDB),
		paymentRequestRepo: NewPaymentRequestRepository(writerDB, readerDB),
		paymentRepo:        NewPaymentRepository(writerDB, readerDB),
		accountRepo:        NewAccountRepository(writerDB, readerDB),
	}
}

func (r *postgresRepository) Property() repository.PropertyRepository {
	return r.propertyRepo
}

func (r *postgresRepository) Request() repository.RequestRepository {
	return r.requestRepo
}

func (r *postgresRepository) PaymentRequest() repository.PaymentRequestRepository {
	return r.paymentRequestRepo
}

func (r *postgresRepository) Payment() repository.PaymentRepository {
	return r.paymentRepo
}

func (r *postgresRepository) Account() repository.AccountRepository {
	return r.accountRepo
}

// WithTx binds both the writer and the reader side to the transaction so reads inside
// fn observe its own writes.
func (r *postgresRepository) WithTx(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newPostgresRepository(tx, tx))
	})
}
