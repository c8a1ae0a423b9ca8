//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"locker-hub/internal/domain/user"
	"locker-hub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(userID, user.RoleCustomer)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(pair.RefreshToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("secret", -time.Minute, time.Hour)
		token, err := expired.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Minute, time.Hour)
		token, err := other.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
