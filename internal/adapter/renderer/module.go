package renderer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Erickrodrigues05/angohire/internal/config"
)

// Module exposes renderer client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Renderer, error) {
	return NewHTTPClient(p.Config.RendererAddress, p.Logger)
}
