package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Erickrodrigues05/angohire/internal/config"
)

// Module exposes mailer implementation to fx graph.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) Notifier {
	return NewSMTPMailer(p.Config.SMTPAddress, p.Config.SMTPUsername, p.Config.SMTPPassword, p.Config.EmailFrom, p.Logger)
}
