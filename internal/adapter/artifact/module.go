package artifact

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Erickrodrigues05/angohire/internal/config"
)

// Module exposes artifact store implementation to fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	return NewHTTPStore(p.Config.ArtifactStoreAddress, p.Config.ArtifactPublicBaseURL, p.Logger)
}
