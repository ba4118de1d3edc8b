package composite

import (
	"context"

	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
	"github.com/angadsxngh/rent-management-backend/internal/repository/opensearch"
	"github.com/angadsxngh/rent-management-backend/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.PropertySearchRepository
}

// NewCompositeRepository falls back to relational city search when osClient is nil.
func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	var searchRepo repository.PropertySearchRepository = postgres.NewPropertySearch(dbConnections.Reader)
	if osClient != nil && osConfig != nil && osConfig.Enabled {
		searchRepo = opensearch.NewRepository(osClient, osConfig)
	}

	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		searchRepo:   searchRepo,
	}
}

func (r *compositeRepository) Property() repository.PropertyRepository {
	return r.postgresRepo.Property()
}

func (r *compositeRepository) Request() repository.RequestRepository {
	return r.postgresRepo.Request()
}

func (r *compositeRepository) PaymentRequest() repository.PaymentRequestRepository {
	return r.postgresRepo.PaymentRequest()
}

func (r *compositeRepository) Payment() repository.PaymentRepository {
	return r.postgresRepo.Payment()
}

func (r *compositeRepository) Account() repository.AccountRepository {
	return r.postgresRepo.Account()
}

func (r *compositeRepository) WithTx(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return r.postgresRepo.WithTx(ctx, fn)
}

func (r *compositeRepository) Search() repository.PropertySearchRepository {
	return r.searchRepo
}
