package repository

import (
	"context"
	"time"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Status
// mutations are expressed as guarded transitions: each method succeeds
// only from the states the lifecycle allows and reports
// ErrInvalidTransition otherwise.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	// MarkPaid moves a pending order to processing and records paidAt.
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
	// Complete moves a processing order to completed and records the
	// artifact URL with the generation and completion timestamps.
	Complete(ctx context.Context, id, artifactURL string, at time.Time) error
	// MarkFailed moves a processing order to failed, recording attempts.
	MarkFailed(ctx context.Context, id string, attempts int) error
	// Retry moves a failed order back to processing.
	Retry(ctx context.Context, id string) error
	// Cancel moves any non-terminal order to cancelled.
	Cancel(ctx context.Context, id string) error
}
