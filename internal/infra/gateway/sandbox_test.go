//go:build unit

package gateway_test

import (
	"context"
	"strings"
	"testing"

	"rental-core/internal/domain/payment"
	"rental-core/internal/infra/gateway"
	"rental-core/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandbox(t *testing.T) {
	ctx := context.Background()
	sb := gateway.NewSandbox(config.GatewayConfig{KeyID: testKeyID, KeySecret: testKeySecret})

	o, err := sb.CreateOrder(ctx, decimal.RequireFromString("808.804"), "INR", "INV-0001")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(o.ID, "order_"))
	assert.True(t, decimal.RequireFromString("808.80").Equal(o.Amount), o.Amount.String())

	t.Run("known order captures the full amount", func(t *testing.T) {
		p, err := sb.FetchPayment(ctx, o.ID, "pay_sandbox")
		require.NoError(t, err)
		assert.Equal(t, "captured", p.Status)
		assert.Equal(t, o.ID, p.OrderID)
		assert.True(t, o.Amount.Equal(p.Amount))
		assert.Equal(t, payment.MethodCard.String(), p.Method)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := sb.FetchPayment(ctx, "order_missing", "pay_x")
		assert.ErrorIs(t, err, gateway.ErrUnknownSandboxOrder)
	})

	t.Run("signatures use the configured secret", func(t *testing.T) {
		assert.True(t, sb.VerifySignature(o.ID, "pay_sandbox", payment.Sign(testKeySecret, o.ID, "pay_sandbox")))
		assert.False(t, sb.VerifySignature(o.ID, "pay_sandbox", payment.Sign("other", o.ID, "pay_sandbox")))
	})

	t.Run("order ids are unique", func(t *testing.T) {
		o2, err := sb.CreateOrder(ctx, decimal.NewFromInt(1), "INR", "INV-0002")
		require.NoError(t, err)
		assert.NotEqual(t, o.ID, o2.ID)
	})
}
