package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
)

// FulfillmentFacade exposes the subset of application functionality required by the queue.
type FulfillmentFacade interface {
	FulfillOrder(ctx context.Context, orderID string) error
	FailOrder(ctx context.Context, orderID string, attempts int) error
}

// FulfillmentQueue runs order fulfillment on a bounded worker pool.
// Enqueue never blocks the caller; a full queue drops the job and the
// order stays in processing until a later confirmation re-enqueues it.
type FulfillmentQueue struct {
	facade      FulfillmentFacade
	maxAttempts int
	backoff     time.Duration
	workers     int
	logger      *slog.Logger

	jobs   chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewFulfillmentQueue constructs the fulfillment worker pool.
func NewFulfillmentQueue(facade FulfillmentFacade, queueSize, workers, maxAttempts int, backoff time.Duration, logger *slog.Logger) *FulfillmentQueue {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &FulfillmentQueue{
		facade:      facade,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		workers:     workers,
		logger:      logger,
		jobs:        make(chan string, queueSize),
	}
}

// Start launches background workers.
func (q *FulfillmentQueue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (q *FulfillmentQueue) Stop() {
	q.mu.Lock()
	if q.cancel != nil {
		q.cancel()
		q.cancel = nil
	}
	q.mu.Unlock()

	q.wg.Wait()
}

// Enqueue schedules an order for fulfillment. It reports false when the
// queue is full.
func (q *FulfillmentQueue) Enqueue(orderID string) bool {
	select {
	case q.jobs <- orderID:
		return true
	default:
		q.logger.Warn("fulfillment queue full, dropping job", slog.String("order", orderID))
		return false
	}
}

func (q *FulfillmentQueue) worker(ctx context.Context) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case orderID := <-q.jobs:
			q.handleOrder(ctx, orderID)
		}
	}
}

func (q *FulfillmentQueue) handleOrder(ctx context.Context, orderID string) {
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err := q.facade.FulfillOrder(ctx, orderID)
		if err == nil {
			return
		}
		if errors.Is(err, domainErrors.ErrNotFound) || errors.Is(err, domainErrors.ErrInvalidTransition) {
			q.logger.Warn("fulfillment abandoned",
				slog.String("order", orderID),
				slog.String("error", err.Error()),
			)
			return
		}

		q.logger.Error("fulfillment attempt failed",
			slog.String("order", orderID),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		if attempt == q.maxAttempts {
			if failErr := q.facade.FailOrder(ctx, orderID, attempt); failErr != nil {
				q.logger.Error("mark order failed",
					slog.String("order", orderID),
					slog.String("error", failErr.Error()),
				)
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(q.backoff):
		}
	}
}
