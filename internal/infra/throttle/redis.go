// Package throttle enforces a resend cooldown for verification codes.
package throttle

import (
	"context"
	"log/slog"
	"time"

	"locker-hub/internal/domain/verification"

	"github.com/redis/go-redis/v9"
)

type redisClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisThrottle admits one request per phone+purpose per cooldown window.
// The first caller in a window creates the key; everyone else finds it present.
type RedisThrottle struct {
	client   redisClient
	prefix   string
	cooldown time.Duration
	logger   *slog.Logger
}

func NewRedisThrottle(client redisClient, prefix string, cooldown time.Duration, logger *slog.Logger) *RedisThrottle {
	return &RedisThrottle{
		client:   client,
		prefix:   prefix,
		cooldown: cooldown,
		logger:   logger,
	}
}

func (t *RedisThrottle) Allow(ctx context.Context, phone verification.Phone, purpose verification.Purpose) (bool, error) {
	if t.cooldown <= 0 {
		return true, nil
	}

	ok, err := t.client.SetNX(ctx, t.key(phone, purpose), 1, t.cooldown).Result()
	if err != nil {
		return false, err
	}
	if !ok {
		t.logger.Debug("otp request throttled", "purpose", purpose.String())
	}
	return ok, nil
}

func (t *RedisThrottle) Release(ctx context.Context, phone verification.Phone, purpose verification.Purpose) error {
	if t.cooldown <= 0 {
		return nil
	}
	return t.client.Del(ctx, t.key(phone, purpose)).Err()
}

func (t *RedisThrottle) key(phone verification.Phone, purpose verification.Purpose) string {
	return t.prefix + ":otp:" + phone.String() + ":" + purpose.String()
}

// Noop admits every request. Used when Redis is disabled.
type Noop struct{}

func (Noop) Allow(context.Context, verification.Phone, verification.Purpose) (bool, error) {
	return true, nil
}

func (Noop) Release(context.Context, verification.Phone, verification.Purpose) error {
	return nil
}
