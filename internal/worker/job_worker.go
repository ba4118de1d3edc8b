package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/scheduler"
	"github.com/angadsxngh/rent-management-backend/internal/service/queue"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// JobRunner runs a named job without overlapping a run already in flight.
type JobRunner interface {
	RunNow(ctx context.Context, job string) error
}

// JobWorker executes on-demand job requests queued by the API.
type JobWorker struct {
	queue    MessageQueue
	queueURL string
	runner   JobRunner
	logger   *logger.Logger
	pool     *pool
}

func NewJobWorker(
	queue MessageQueue,
	queueURL string,
	runner JobRunner,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *JobWorker {
	w := &JobWorker{
		queue:    queue,
		queueURL: queueURL,
		runner:   runner,
		logger:   logger,
	}
	w.pool = newPool("job", logger, workerCount, pollInterval, w.processMessages)
	return w
}

func (w *JobWorker) Start() {
	w.pool.start()
}

func (w *JobWorker) Stop() {
	w.pool.stop()
}

func (w *JobWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, maxMessagesPerPoll, longPollSeconds)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processJobMessage(ctx, msg.Message); err != nil {
			w.logger.Error("Failed to process job message", err, zap.String("job", msg.Message.Job))
			continue
		}

		// Only delete the message if processing was successful
		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

// processJobMessage treats a run that is already in flight as done. Malformed and unknown
// jobs are dropped so they are not redelivered forever.
func (w *JobWorker) processJobMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeRunJob {
		w.logger.Warn("Dropping unexpected message on job queue", zap.String("type", string(msg.Type)))
		return nil
	}

	w.logger.Info("Running requested job", zap.String("job", msg.Job), zap.String("requested_by", msg.RequestedBy))

	err := w.runner.RunNow(ctx, msg.Job)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scheduler.ErrJobRunning):
		w.logger.Info("Requested job already running", zap.String("job", msg.Job))
		return nil
	case errors.Is(err, scheduler.ErrUnknownJob):
		w.logger.Warn("Dropping request for unknown job", zap.String("job", msg.Job))
		return nil
	default:
		return err
	}
}
