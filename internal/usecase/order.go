package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic. Orders are mutated
// only through the guarded transitions the repository exposes.
type OrderUseCase struct {
	orders          repository.OrderRepository
	defaultTemplate string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, defaultTemplate string) *OrderUseCase {
	return &OrderUseCase{orders: orders, defaultTemplate: defaultTemplate}
}

// CreateOrderInput is the validated submission for a new order.
type CreateOrderInput struct {
	Package  model.Package
	Template string
	Data     model.ResumeData
}

// Create validates the submission and persists a new order. Free
// packages skip the payment step: the order starts in processing with
// paidAt already set, ready for background fulfillment.
func (u *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	if err := ValidateCreateOrder(input.Package, input.Data); err != nil {
		return nil, err
	}

	price, ok := input.Package.Price()
	if !ok {
		return nil, domainErrors.ErrInvalidPackage
	}

	template := input.Template
	if template == "" {
		template = u.defaultTemplate
	}

	order := &model.Order{
		ID:         uuid.NewString(),
		Package:    input.Package,
		Template:   template,
		Price:      price,
		ClientData: input.Data,
		Status:     model.OrderStatusPending,
	}

	if input.Package.Free() {
		now := time.Now()
		order.Status = model.OrderStatusProcessing
		order.PaidAt = &now
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Get returns a single order by id.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// ConfirmPayment moves the order into processing so generation can run.
// Pending orders get paidAt recorded; failed orders are re-opened for a
// retry; orders already processing pass through unchanged so an earlier
// half-finished confirmation can be retried. The transition is never
// rolled back by later pipeline failures.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, id string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case model.OrderStatusPending:
		if err := u.orders.MarkPaid(ctx, id, time.Now()); err != nil {
			return nil, err
		}
	case model.OrderStatusFailed:
		if err := u.orders.Retry(ctx, id); err != nil {
			return nil, err
		}
	case model.OrderStatusProcessing, model.OrderStatusCompleted:
		// Retry or idempotent re-confirmation; nothing to transition.
	default:
		return nil, fmt.Errorf("%w: order %s is %s", domainErrors.ErrInvalidTransition, id, order.Status)
	}

	return u.orders.GetByID(ctx, id)
}

// MarkFailed records that fulfillment gave up on a processing order.
func (u *OrderUseCase) MarkFailed(ctx context.Context, id string, attempts int) error {
	return u.orders.MarkFailed(ctx, id, attempts)
}

// Cancel withdraws a non-terminal order.
func (u *OrderUseCase) Cancel(ctx context.Context, id string) error {
	return u.orders.Cancel(ctx, id)
}
