// Package archive uploads expired request records to S3 before the expiry sweep
// deletes them.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// Batch is the JSON document written for one sweep.
type Batch struct {
	Cutoff          time.Time               `json:"cutoff"`
	ArchivedAt      time.Time               `json:"archived_at"`
	Requests        []domain.Request        `json:"requests"`
	PaymentRequests []domain.PaymentRequest `json:"payment_requests"`
}

// ObjectPutter is the subset of the S3 client the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Archiver struct {
	client ObjectPutter
	config *config.S3Config
}

func NewS3Archiver(client ObjectPutter, config *config.S3Config) *S3Archiver {
	return &S3Archiver{
		client: client,
		config: config,
	}
}

// Key names the object for a sweep cutoff, e.g. expired-requests/2024/03/10/requests_before_2024-03-07_12-00-00.json.
func (a *S3Archiver) Key(cutoff time.Time) string {
	cutoff = cutoff.UTC()
	return path.Join(
		a.config.Prefix,
		cutoff.Format("2006/01/02"),
		fmt.Sprintf("requests_before_%s.json", cutoff.Format("2006-01-02_15-04-05")),
	)
}

// Archive writes the batch and returns its object key. Empty batches are not uploaded.
func (a *S3Archiver) Archive(ctx context.Context, cutoff time.Time, requests []domain.Request, paymentRequests []domain.PaymentRequest) (string, error) {
	if len(requests) == 0 && len(paymentRequests) == 0 {
		return "", nil
	}

	archivedAt := time.Now().UTC()
	jsonData, err := json.MarshalIndent(Batch{
		Cutoff:          cutoff,
		ArchivedAt:      archivedAt,
		Requests:        requests,
		PaymentRequests: paymentRequests,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal archive batch: %w", err)
	}

	key := a.Key(cutoff)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(jsonData),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"archived-at":           archivedAt.Format(time.RFC3339),
			"cutoff":                cutoff.UTC().Format(time.RFC3339),
			"request-count":         fmt.Sprintf("%d", len(requests)),
			"payment-request-count": fmt.Sprintf("%d", len(paymentRequests)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload archive to S3: %w", err)
	}

	return key, nil
}
