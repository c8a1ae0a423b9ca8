package bootstrap

import (
	"context"
	"log/slog"

	"locker-hub/internal/pkg/config"
	"locker-hub/internal/usecase/commands"
	"locker-hub/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartOTPPurge, StartIdempotencyPurge),
)

func StartOTPPurge(lc fx.Lifecycle, cmds commands.VerificationCommands, cfg config.Config, logger *slog.Logger) {
	register(lc, worker.NewPurgeLoop("verification codes", cmds, cfg.OTP.PurgeInterval, logger))
}

// Idempotency keys live for hours; sweeping them on the OTP cadence is enough.
func StartIdempotencyPurge(lc fx.Lifecycle, cmds commands.ReservationCommands, cfg config.Config, logger *slog.Logger) {
	purge := worker.PurgeFunc(cmds.PurgeExpiredIdempotencyKeys)
	register(lc, worker.NewPurgeLoop("idempotency keys", purge, cfg.OTP.PurgeInterval, logger))
}

func register(lc fx.Lifecycle, p *worker.PurgeLoop) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return p.Stop(ctx)
		},
	})
}
