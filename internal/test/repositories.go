package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// OrderRepositoryStub keeps orders in-memory and lets tests override any
// operation with a function field.
type OrderRepositoryStub struct {
	CreateFn     func(context.Context, *model.Order) error
	GetByIDFn    func(context.Context, string) (*model.Order, error)
	ListFn       func(context.Context) ([]model.Order, error)
	MarkPaidFn   func(context.Context, string, time.Time) error
	CompleteFn   func(context.Context, string, string, time.Time) error
	MarkFailedFn func(context.Context, string, int) error
	RetryFn      func(context.Context, string) error
	CancelFn     func(context.Context, string) error

	mu     sync.Mutex
	Orders map[string]*model.Order
	Err    error
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Seed stores an order directly, bypassing transition guards.
func (s *OrderRepositoryStub) Seed(order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	s.Orders[order.ID] = order
}

// Create stores the order unless an override or explicit error applies.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.Orders[order.ID] = order
	return nil
}

// GetByID returns a copy of the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

// MarkPaid moves a pending order into processing.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, id, paidAt)
	}
	return s.transition(id, model.OrderStatusPending, func(order *model.Order) {
		order.Status = model.OrderStatusProcessing
		order.PaidAt = &paidAt
	})
}

// Complete moves a processing order into completed with an artifact URL.
func (s *OrderRepositoryStub) Complete(ctx context.Context, id string, artifactURL string, at time.Time) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, id, artifactURL, at)
	}
	return s.transition(id, model.OrderStatusProcessing, func(order *model.Order) {
		order.Status = model.OrderStatusCompleted
		order.ArtifactURL = &artifactURL
		order.PDFGeneratedAt = &at
		order.CompletedAt = &at
	})
}

// MarkFailed moves a processing order into failed.
func (s *OrderRepositoryStub) MarkFailed(ctx context.Context, id string, attempts int) error {
	if s.MarkFailedFn != nil {
		return s.MarkFailedFn(ctx, id, attempts)
	}
	return s.transition(id, model.OrderStatusProcessing, func(order *model.Order) {
		order.Status = model.OrderStatusFailed
		order.Attempts = attempts
	})
}

// Retry re-opens a failed order for processing.
func (s *OrderRepositoryStub) Retry(ctx context.Context, id string) error {
	if s.RetryFn != nil {
		return s.RetryFn(ctx, id)
	}
	return s.transition(id, model.OrderStatusFailed, func(order *model.Order) {
		order.Status = model.OrderStatusProcessing
	})
}

// Cancel withdraws a non-terminal order.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, id string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Status.Terminal() {
		return domainErrors.ErrInvalidTransition
	}
	order.Status = model.OrderStatusCancelled
	order.UpdatedAt = time.Now()
	return nil
}

func (s *OrderRepositoryStub) transition(id string, from model.OrderStatus, apply func(*model.Order)) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Status != from {
		return domainErrors.ErrInvalidTransition
	}
	apply(order)
	order.UpdatedAt = time.Now()
	return nil
}
