package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Erickrodrigues05/angohire/internal/config"
	"github.com/Erickrodrigues05/angohire/internal/usecase"
	"github.com/Erickrodrigues05/angohire/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newFacade,
		newHTTPServer,
		newFulfillmentQueue,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type queueParams struct {
	fx.In

	Orders      *usecase.OrderUseCase
	Fulfillment *usecase.FulfillmentService
	Config      *config.Config
	Logger      *slog.Logger
}

func newFulfillmentQueue(p queueParams) *worker.FulfillmentQueue {
	runner := &fulfillmentRunner{orders: p.Orders, fulfillment: p.Fulfillment}
	return worker.NewFulfillmentQueue(
		runner,
		p.Config.QueueSize,
		p.Config.WorkerPoolSize,
		p.Config.FulfillMaxAttempts,
		p.Config.FulfillRetryBackoff,
		p.Logger,
	)
}

type facadeParams struct {
	fx.In

	Orders      *usecase.OrderUseCase
	Fulfillment *usecase.FulfillmentService
	Queue       *worker.FulfillmentQueue
	Health      HealthChecker
}

func newFacade(p facadeParams) *AngohireFacade {
	return NewAngohireFacade(p.Orders, p.Fulfillment, p.Queue, p.Health)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Queue      *worker.FulfillmentQueue
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting angohire", slog.String("addr", p.Server.Addr))
			// The start context is cancelled once startup completes, so
			// the queue gets its own root context and stops via Stop.
			p.Queue.Start(context.Background())
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Queue.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("angohire stopped")
			return nil
		},
	})
}
