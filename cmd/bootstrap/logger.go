package bootstrap

import (
	"log/slog"

	"schnittwerk-api/internal/handler/middleware"
	"schnittwerk-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger derives the process-wide slog logger from the log config so fx
// consumers and the request middleware agree on level and format.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
