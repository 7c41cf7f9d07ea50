//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token issued two lifetimes ago, so it expired one lifetime ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	lifetime := h.Service(t).TokenDuration()
	past := clock.NewMockClock(time.Now().Add(-2 * lifetime))
	token, err := jwt.NewService(h.cfg.Secret, lifetime, jwt.WithClock(past)).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
