package bootstrap

import (
	"context"
	"log/slog"

	"locker-hub/internal/infra/throttle"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewOTPThrottle,
	),
)

// NewRedisClient returns nil when Redis is disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// throttle fails open, so an unreachable Redis is not fatal
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis is unreachable, OTP throttling will fail open", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewOTPThrottle(client *redis.Client, cfg config.Config, logger *slog.Logger) commands.OTPThrottle {
	if client == nil {
		logger.Info("Redis disabled, OTP throttling is off")
		return throttle.Noop{}
	}
	return throttle.NewRedisThrottle(client, cfg.Redis.Prefix, cfg.OTP.ResendCooldown, logger)
}
