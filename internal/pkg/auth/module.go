package auth

import (
	"go.uber.org/fx"

	"github.com/Erickrodrigues05/angohire/internal/config"
)

// Module provides the administrative credential verifier via fx.
var Module = fx.Provide(newVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

// newVerifier prefers the hashed credential when both are configured.
func newVerifier(p verifierParams) Verifier {
	if p.Config.AdminTokenHash != "" {
		return NewBcryptVerifier(p.Config.AdminTokenHash)
	}
	return NewStaticVerifier(p.Config.AdminToken)
}
