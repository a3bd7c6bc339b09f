package logger

import (
	"log/slog"
	"os"
)

// New creates the service-wide slog.Logger writing JSON to stdout.
// Every record carries a service attribute.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "angohire"))
}
