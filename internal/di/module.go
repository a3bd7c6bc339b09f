package di

import (
	"go.uber.org/fx"

	"github.com/Erickrodrigues05/angohire/internal/adapter/artifact"
	"github.com/Erickrodrigues05/angohire/internal/adapter/mailer"
	"github.com/Erickrodrigues05/angohire/internal/adapter/renderer"
	"github.com/Erickrodrigues05/angohire/internal/app"
	"github.com/Erickrodrigues05/angohire/internal/config"
	"github.com/Erickrodrigues05/angohire/internal/logger"
	"github.com/Erickrodrigues05/angohire/internal/pkg/auth"
	"github.com/Erickrodrigues05/angohire/internal/server/http/handlers"
	"github.com/Erickrodrigues05/angohire/internal/server/http/router"
	"github.com/Erickrodrigues05/angohire/internal/storage/postgres"
	"github.com/Erickrodrigues05/angohire/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		renderer.Module,
		artifact.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(r renderer.Renderer) usecase.DocumentRenderer { return r }),
		fx.Provide(func(s artifact.Store) usecase.ArtifactStore { return s }),
		fx.Provide(func(n mailer.Notifier) usecase.Notifier { return n }),
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.AngohireFacade) handlers.AngohireFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
