package app

import (
	"context"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/usecase"
)

// FulfillmentEnqueuer schedules background fulfillment of an order.
type FulfillmentEnqueuer interface {
	Enqueue(orderID string) bool
}

// HealthChecker verifies that the storage backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AngohireFacade aggregates the application operations exposed to the
// HTTP layer and the background queue.
type AngohireFacade struct {
	orders      *usecase.OrderUseCase
	fulfillment *usecase.FulfillmentService
	queue       FulfillmentEnqueuer
	health      HealthChecker
}

// NewAngohireFacade constructs AngohireFacade.
func NewAngohireFacade(orders *usecase.OrderUseCase, fulfillment *usecase.FulfillmentService, queue FulfillmentEnqueuer, health HealthChecker) *AngohireFacade {
	return &AngohireFacade{orders: orders, fulfillment: fulfillment, queue: queue, health: health}
}

// CreateOrder persists a new order. Free orders start in processing and
// are handed to the background queue immediately.
func (f *AngohireFacade) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	order, err := f.orders.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	if order.Status == model.OrderStatusProcessing {
		f.queue.Enqueue(order.ID)
	}
	return order, nil
}

// Orders lists all orders, newest first.
func (f *AngohireFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

// Order fetches a single order by id.
func (f *AngohireFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

// ConfirmPayment moves the order into processing and runs fulfillment
// synchronously so the operator sees the artifact URL in the response.
// The paid transition is never rolled back when the pipeline fails; the
// order stays in processing and a later confirmation retries it.
func (f *AngohireFacade) ConfirmPayment(ctx context.Context, id string) (*model.Order, *usecase.FulfillmentResult, error) {
	if _, err := f.orders.ConfirmPayment(ctx, id); err != nil {
		return nil, nil, err
	}

	result, err := f.fulfillment.Fulfill(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	order, err := f.orders.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return order, result, nil
}

// CancelOrder withdraws a non-terminal order.
func (f *AngohireFacade) CancelOrder(ctx context.Context, id string) error {
	return f.orders.Cancel(ctx, id)
}

// AnalyzeResume scores the submitted resume and returns improvement
// hints. No order is created.
func (f *AngohireFacade) AnalyzeResume(data model.ResumeData) (int, []string) {
	sanitized := usecase.SanitizeResumeData(data)
	score := usecase.Score(sanitized)
	return score, usecase.Recommendations(data, score)
}

// Templates returns the resume layout catalog.
func (f *AngohireFacade) Templates() []model.Template {
	return usecase.Templates()
}

// HealthCheck pings the storage backend.
func (f *AngohireFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// fulfillmentRunner adapts the use cases to the worker queue contract.
type fulfillmentRunner struct {
	orders      *usecase.OrderUseCase
	fulfillment *usecase.FulfillmentService
}

func (r *fulfillmentRunner) FulfillOrder(ctx context.Context, orderID string) error {
	_, err := r.fulfillment.Fulfill(ctx, orderID)
	return err
}

func (r *fulfillmentRunner) FailOrder(ctx context.Context, orderID string, attempts int) error {
	return r.orders.MarkFailed(ctx, orderID, attempts)
}
