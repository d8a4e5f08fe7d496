//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"rental-core/internal/domain/user"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/jwt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Now().UTC().Truncate(time.Second))
	svc := jwt.NewService("secret", time.Hour, jwt.WithIssuer("rental-core"), jwt.WithClock(clk))
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleVendor)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, "rental-core", claims.Issuer)
	assert.Equal(t, clk.Now().Add(time.Hour), claims.ExpiresAt.Time)
}

func TestService_Rejects(t *testing.T) {
	clk := clock.NewMockClock(time.Now().UTC())
	svc := jwt.NewService("secret", time.Hour, jwt.WithIssuer("rental-core"), jwt.WithClock(clk))
	token, err := svc.GenerateToken(uuid.New(), user.RoleCustomer)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := clock.NewMockClock(clk.Now().Add(2 * time.Hour))
		_, err := jwt.NewService("secret", time.Hour, jwt.WithIssuer("rental-core"), jwt.WithClock(later)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := jwt.NewService("other", time.Hour, jwt.WithIssuer("rental-core"), jwt.WithClock(clk)).ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrInvalidToken), "got %v", err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour, jwt.WithIssuer("billing"), jwt.WithClock(clk)).ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrInvalidToken), "got %v", err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.True(t, errors.Is(err, jwt.ErrInvalidToken), "got %v", err)
	})
}
