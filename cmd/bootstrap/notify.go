package bootstrap

import (
	"context"
	"log/slog"

	"locker-hub/internal/infra/notify"
	"locker-hub/internal/infra/sms"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewEventPublisher,
		fx.Annotate(
			sms.NewLogSender,
			fx.As(new(commands.SMSSender)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	publisher, err := notify.New(cfg.Notify, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Locker event publisher configured", "driver", cfg.Notify.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
