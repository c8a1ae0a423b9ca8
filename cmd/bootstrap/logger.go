package bootstrap

import (
	"log/slog"

	"locker-hub/internal/handler/middleware"
	"locker-hub/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
