package service

import (
	"context"
	"fmt"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

const (
	JobAccrual = "accrual"
	JobSweep   = "sweep"
)

func IsKnownJob(job string) bool {
	return job == JobAccrual || job == JobSweep
}

// JobService queues on-demand accrual and sweep runs for the scheduler process.
type JobService struct {
	queue JobQueue
}

func NewJobService(queue JobQueue) *JobService {
	return &JobService{queue: queue}
}

func (s *JobService) Enqueue(ctx context.Context, job, requestedBy string) error {
	if !IsKnownJob(job) {
		return fmt.Errorf("unknown job %q: %w", job, domain.ErrValidation)
	}
	if s.queue == nil {
		return fmt.Errorf("job queue is not configured: %w", domain.ErrTransientStore)
	}
	return s.queue.SendJobMessage(ctx, job, requestedBy)
}
