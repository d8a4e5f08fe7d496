//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"rental-core/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCoupon_DiscountFor(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	one := 1

	percent, err := coupon.NewPercentageDiscount(dec("10"), decPtr("50"))
	require.NoError(t, err)
	fixed, err := coupon.NewFixedDiscount(dec("150"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		discount coupon.Discount
		terms    coupon.Terms
		used     int
		subtotal string
		want     string
		errIs    error
	}{
		{name: "percentage", discount: percent, subtotal: "300", want: "30"},
		{name: "percentage capped by max", discount: percent, subtotal: "900", want: "50"},
		{name: "fixed", discount: fixed, subtotal: "900", want: "150"},
		{name: "fixed never exceeds subtotal", discount: fixed, subtotal: "100", want: "100"},
		{name: "below minimum", discount: fixed, terms: coupon.Terms{MinOrderValue: decPtr("500")}, subtotal: "499", errIs: coupon.ErrBelowMinimumOrder},
		{name: "expired", discount: fixed, terms: coupon.Terms{ValidTo: &yesterday}, subtotal: "900", errIs: coupon.ErrCouponExpired},
		{name: "not yet valid", discount: fixed, terms: coupon.Terms{ValidFrom: &tomorrow}, subtotal: "900", errIs: coupon.ErrCouponNotYetValid},
		{name: "usage limit reached", discount: fixed, terms: coupon.Terms{UsageLimit: &one}, used: 1, subtotal: "900", errIs: coupon.ErrUsageLimitReached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := coupon.ReconstructCoupon(uuid.New(), "SUMMER10", tt.discount, tt.terms, tt.used, true, now, now)

			got, err := c.DiscountFor(dec(tt.subtotal), now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCoupon_New(t *testing.T) {
	fixed, err := coupon.NewFixedDiscount(dec("10"))
	require.NoError(t, err)

	c, err := coupon.NewCoupon(uuid.Nil, " summer10 ", fixed, coupon.Terms{})
	require.NoError(t, err)
	assert.Equal(t, coupon.Code("SUMMER10"), c.Code())
	assert.True(t, c.IsActive())

	_, err = coupon.NewCoupon(uuid.Nil, "x!", fixed, coupon.Terms{})
	require.ErrorIs(t, err, coupon.ErrInvalidCouponCode)

	zero := 0
	_, err = coupon.NewCoupon(uuid.Nil, "SUMMER10", fixed, coupon.Terms{UsageLimit: &zero})
	require.ErrorIs(t, err, coupon.ErrInvalidUsageLimit)

	_, err = coupon.NewPercentageDiscount(dec("101"), nil)
	require.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
}
