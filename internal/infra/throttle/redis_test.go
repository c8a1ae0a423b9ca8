//go:build unit

package throttle

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"locker-hub/internal/domain/verification"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedis struct {
	mock.Mock
}

func (m *mockRedis) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewBoolResult(args.Bool(0), args.Error(1))
}

func (m *mockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return redis.NewIntResult(int64(args.Int(0)), args.Error(1))
}

func TestRedisThrottle_Allow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	phone, err := verification.NewPhone("+81 90-1234-5678")
	require.NoError(t, err)

	tests := []struct {
		name      string
		setResult bool
		setErr    error
		want      bool
		wantErr   bool
	}{
		{name: "first request in window", setResult: true, want: true},
		{name: "repeat inside cooldown", setResult: false, want: false},
		{name: "redis failure", setErr: redis.ErrClosed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockRedis)
			client.On("SetNX", mock.Anything, "lockerhub:otp:+819012345678:LOGIN", 1, time.Minute).
				Return(tt.setResult, tt.setErr)

			th := NewRedisThrottle(client, "lockerhub", time.Minute, logger)
			got, err := th.Allow(context.Background(), phone, verification.PurposeLogin)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			client.AssertExpectations(t)
		})
	}
}

func TestRedisThrottle_ZeroCooldownSkipsRedis(t *testing.T) {
	client := new(mockRedis)
	th := NewRedisThrottle(client, "lockerhub", 0, slog.Default())

	ok, err := th.Allow(context.Background(), verification.Phone{}, verification.PurposeSignup)

	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, th.Release(context.Background(), verification.Phone{}, verification.PurposeSignup))
	client.AssertNotCalled(t, "SetNX")
	client.AssertNotCalled(t, "Del")
}

func TestRedisThrottle_Release(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	phone, err := verification.NewPhone("+819012345678")
	require.NoError(t, err)
	key := "lockerhub:otp:+819012345678:SIGNUP"

	t.Run("slot is reusable after release", func(t *testing.T) {
		client := new(mockRedis)
		client.On("SetNX", mock.Anything, key, 1, time.Minute).Return(true, nil).Once()
		client.On("Del", mock.Anything, []string{key}).Return(1, nil).Once()
		client.On("SetNX", mock.Anything, key, 1, time.Minute).Return(true, nil).Once()
		th := NewRedisThrottle(client, "lockerhub", time.Minute, logger)

		first, err := th.Allow(context.Background(), phone, verification.PurposeSignup)
		require.NoError(t, err)
		require.NoError(t, th.Release(context.Background(), phone, verification.PurposeSignup))
		second, err := th.Allow(context.Background(), phone, verification.PurposeSignup)
		require.NoError(t, err)

		assert.True(t, first)
		assert.True(t, second)
		client.AssertExpectations(t)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		client := new(mockRedis)
		client.On("Del", mock.Anything, []string{key}).Return(0, redis.ErrClosed)
		th := NewRedisThrottle(client, "lockerhub", time.Minute, logger)

		err := th.Release(context.Background(), phone, verification.PurposeSignup)

		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}
