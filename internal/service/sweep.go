package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// SweepService deletes requests and payment requests older than the retention window.
// Deletion is a hard delete, not a status change.
type SweepService struct {
	repo     repository.PostgresRepository
	archiver Archiver
	policy   domain.RetentionPolicy
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

// NewSweepService accepts a nil archiver when the policy does not archive.
func NewSweepService(
	repo repository.PostgresRepository,
	archiver Archiver,
	policy domain.RetentionPolicy,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) (*SweepService, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if policy.Archive && archiver == nil {
		return nil, fmt.Errorf("retention policy archives but no archiver is configured: %w", domain.ErrValidation)
	}
	return &SweepService{
		repo:     repo,
		archiver: archiver,
		policy:   policy,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

func (s *SweepService) Policy() domain.RetentionPolicy {
	return s.policy
}

// ExpirySweep removes every row created before now minus the retention window. With
// PreserveAccepted, accepted tenancy requests survive. With Archive, rows are uploaded
// first and only the uploaded rows are deleted.
func (s *SweepService) ExpirySweep(ctx context.Context, now time.Time) (domain.SweepResult, error) {
	cutoff := s.policy.Cutoff(now)
	result := domain.SweepResult{Cutoff: cutoff}

	var err error
	if s.policy.Archive {
		result, err = s.archiveAndDelete(ctx, result)
	} else {
		result, err = s.delete(ctx, result)
	}
	if err != nil {
		return result, err
	}

	s.metrics.RequestsExpired.WithLabelValues(string(domain.KindTenancy)).Add(float64(result.RequestsDeleted))
	s.metrics.RequestsExpired.WithLabelValues(string(domain.KindPayment)).Add(float64(result.PaymentRequestsDeleted))
	if result.RequestsDeleted > 0 || result.PaymentRequestsDeleted > 0 {
		s.logger.Info("Expired requests removed",
			zap.Time("cutoff", cutoff),
			zap.Int64("requests", result.RequestsDeleted),
			zap.Int64("payment_requests", result.PaymentRequestsDeleted),
			zap.String("archive_key", result.ArchiveKey),
		)
	}
	return result, nil
}

func (s *SweepService) delete(ctx context.Context, result domain.SweepResult) (domain.SweepResult, error) {
	deleted, err := s.repo.Request().DeleteOlderThan(ctx, result.Cutoff, s.policy.PreserveAccepted)
	if err != nil {
		return result, fmt.Errorf("failed to delete expired requests: %w", err)
	}
	result.RequestsDeleted = deleted

	deleted, err = s.repo.PaymentRequest().DeleteOlderThan(ctx, result.Cutoff)
	if err != nil {
		return result, fmt.Errorf("failed to delete expired payment requests: %w", err)
	}
	result.PaymentRequestsDeleted = deleted
	return result, nil
}

func (s *SweepService) archiveAndDelete(ctx context.Context, result domain.SweepResult) (domain.SweepResult, error) {
	requests, err := s.repo.Request().ListOlderThan(ctx, result.Cutoff, s.policy.PreserveAccepted)
	if err != nil {
		return result, fmt.Errorf("failed to list expired requests: %w", err)
	}
	paymentRequests, err := s.repo.PaymentRequest().ListOlderThan(ctx, result.Cutoff)
	if err != nil {
		return result, fmt.Errorf("failed to list expired payment requests: %w", err)
	}
	if len(requests) == 0 && len(paymentRequests) == 0 {
		return result, nil
	}

	key, err := s.archiver.Archive(ctx, result.Cutoff, requests, paymentRequests)
	if err != nil {
		return result, fmt.Errorf("failed to archive expired requests: %w", err)
	}
	result.ArchiveKey = key

	requestIDs := make([]string, len(requests))
	for i, r := range requests {
		requestIDs[i] = r.ID
	}
	paymentRequestIDs := make([]string, len(paymentRequests))
	for i, r := range paymentRequests {
		paymentRequestIDs[i] = r.ID
	}

	if result.RequestsDeleted, err = s.repo.Request().DeleteByIDs(ctx, requestIDs); err != nil {
		return result, fmt.Errorf("failed to delete archived requests: %w", err)
	}
	if result.PaymentRequestsDeleted, err = s.repo.PaymentRequest().DeleteByIDs(ctx, paymentRequestIDs); err != nil {
		return result, fmt.Errorf("failed to delete archived payment requests: %w", err)
	}
	return result, nil
}
