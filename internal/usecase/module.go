package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Erickrodrigues05/angohire/internal/config"
	"github.com/Erickrodrigues05/angohire/internal/domain/repository"
)

// Module exposes use case constructors to fx graph.
var Module = fx.Provide(
	newOrderUseCase,
	newFulfillmentService,
)

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	Config *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Config.DefaultTemplate)
}

type fulfillmentParams struct {
	fx.In

	Orders   repository.OrderRepository
	Renderer DocumentRenderer
	Store    ArtifactStore
	Notifier Notifier
	Logger   *slog.Logger
}

func newFulfillmentService(p fulfillmentParams) *FulfillmentService {
	return NewFulfillmentService(p.Orders, p.Renderer, p.Store, p.Notifier, p.Logger)
}
