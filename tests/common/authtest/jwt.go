//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"locker-hub/internal/domain/user"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the same secret the application validates with.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	return h.sign(t, userID, role, duration)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token := h.sign(t, userID, role, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	return token
}

// NewCustomer returns a fresh customer identity and its token.
func (h *JWTHelper) NewCustomer(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleCustomer)
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role user.Role, ttl time.Duration) string {
	t.Helper()
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, ttl, refreshDuration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
