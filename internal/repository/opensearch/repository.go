package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

const defaultSearchLimit = 50

// Repository keeps a search copy of property listings. Postgres stays the source of
// truth; documents here may lag behind it.
type Repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) *Repository {
	return &Repository{
		client: client,
		config: config,
	}
}

func (r *Repository) Index(ctx context.Context, property *domain.Property) error {
	if err := r.CreateIndex(ctx); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(property)
	if err != nil {
		return fmt.Errorf("failed to marshal property: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.PropertyIndex,
		DocumentID: property.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index property: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing property: %s", res.String())
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, propertyID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.PropertyIndex,
		DocumentID: propertyID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete property document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("error deleting property document: %s", res.String())
	}

	return nil
}

func (r *Repository) SearchByCity(ctx context.Context, city string, limit int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	queryJSON, err := json.Marshal(buildCityQuery(city, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.PropertyIndex},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []domain.Property{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.Property `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	properties := make([]domain.Property, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		properties = append(properties, hit.Source)
	}
	return properties, nil
}

// buildCityQuery matches the city name case-insensitively and lists vacant homes first.
func buildCityQuery(city string, limit int) map[string]any {
	return map[string]any{
		"size": limit,
		"query": map[string]any{
			"match": map[string]any{
				"city": map[string]any{
					"query":     city,
					"fuzziness": "AUTO",
				},
			},
		},
		"sort": []map[string]any{
			{"is_rented": map[string]any{"order": "asc"}},
			{"created_at": map[string]any{"order": "desc"}},
		},
	}
}

func (r *Repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"owner_id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"address": { "type": "text" },
				"city": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
				"state": { "type": "keyword" },
				"country": { "type": "keyword" },
				"type": { "type": "keyword" },
				"size": { "type": "integer" },
				"rent_amount": { "type": "scaled_float", "scaling_factor": 100 },
				"is_rented": { "type": "boolean" },
				"created_at": { "type": "date" },
				"updated_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

// CreateIndex creates the property index with its mapping if it does not exist yet.
func (r *Repository) CreateIndex(ctx context.Context) error {
	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{r.config.PropertyIndex},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: r.config.PropertyIndex,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
