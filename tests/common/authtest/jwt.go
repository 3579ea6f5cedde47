//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/jwt"

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
	return h.serviceWithDuration(duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, email, name string) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(email, name)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, email string) string {
	t.Helper()
	token, err := h.serviceWithDuration(-time.Minute).GenerateToken(email, "")
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) serviceWithDuration(d time.Duration) *jwt.Service {
	var opts []jwt.Option
	if h.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.cfg.Issuer))
	}
	if h.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(h.cfg.Audience))
	}
	return jwt.NewService(h.cfg.Secret, d, opts...)
}
