package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/service/queue"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// SearchIndex is where the index worker applies property changes.
type SearchIndex interface {
	Index(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, propertyID string) error
}

type IndexWorker struct {
	queue    MessageQueue
	queueURL string
	index    SearchIndex
	logger   *logger.Logger
	pool     *pool
}

func NewIndexWorker(
	queue MessageQueue,
	queueURL string,
	index SearchIndex,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	w := &IndexWorker{
		queue:    queue,
		queueURL: queueURL,
		index:    index,
		logger:   logger,
	}
	w.pool = newPool("index", logger, workerCount, pollInterval, w.processMessages)
	return w
}

func (w *IndexWorker) Start() {
	w.pool.start()
}

func (w *IndexWorker) Stop() {
	w.pool.stop()
}

func (w *IndexWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, maxMessagesPerPoll, longPollSeconds)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process message: %v", err)
			continue
		}

		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing message of type %s for property %s", msg.Type, msg.PropertyID)

	switch msg.Type {
	case queue.MessageTypeIndexProperty:
		if msg.Property == nil {
			return fmt.Errorf("INDEX_PROPERTY message for %s has no property", msg.PropertyID)
		}
		return w.index.Index(ctx, msg.Property)
	case queue.MessageTypeDeleteProperty:
		if msg.PropertyID == "" {
			return fmt.Errorf("DELETE_PROPERTY message has no property id")
		}
		return w.index.Delete(ctx, msg.PropertyID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
