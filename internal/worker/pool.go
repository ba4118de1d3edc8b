// Package worker consumes the SQS queues: on-demand job runs for the scheduler process and
// property index updates for the search index.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/angadsxngh/rent-management-backend/internal/service/queue"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

const (
	maxMessagesPerPoll = 10 // SQS upper bound per receive
	longPollSeconds    = 20
)

// MessageQueue is the part of queue.SQSService the workers use.
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// pool runs workerCount goroutines that each call poll on every tick until Stop.
type pool struct {
	name         string
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	poll         func(ctx context.Context) error

	ctx       context.Context
	cancel    context.CancelFunc
	waitGroup sync.WaitGroup
}

func newPool(name string, logger *logger.Logger, workerCount int, pollInterval time.Duration, poll func(ctx context.Context) error) *pool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &pool{
		name:         name,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		poll:         poll,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (p *pool) start() {
	p.logger.Infof("Starting %d %s workers...", p.workerCount, p.name)

	for i := 0; i < p.workerCount; i++ {
		p.waitGroup.Add(1)
		go p.runWorker(i)
	}
}

func (p *pool) stop() {
	p.logger.Infof("Stopping %s workers...", p.name)
	p.cancel()
	p.waitGroup.Wait()
	p.logger.Infof("All %s workers stopped", p.name)
}

func (p *pool) runWorker(workerID int) {
	defer p.waitGroup.Done()

	p.logger.Infof("%s worker %d started", p.name, workerID)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Infof("%s worker %d shutting down", p.name, workerID)
			return
		case <-ticker.C:
			if err := p.poll(p.ctx); err != nil && p.ctx.Err() == nil {
				p.logger.Errorf("%s worker %d failed to process messages: %v", p.name, workerID, err)
			}
		}
	}
}
