package handlers

import (
	"context"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	ConfirmPayment(ctx context.Context, id string) (*model.Order, *usecase.FulfillmentResult, error)
	CancelOrder(ctx context.Context, id string) error
}

// ResumeFacade provides resume analysis and the template catalog.
type ResumeFacade interface {
	AnalyzeResume(data model.ResumeData) (int, []string)
	Templates() []model.Template
}

// HealthFacade verifies storage availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// AngohireFacade aggregates the full set of operations used across handlers.
type AngohireFacade interface {
	OrderFacade
	ResumeFacade
	HealthFacade
}
