//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"rental-core/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDuration(t *testing.T) {
	cases := []struct {
		name   string
		end    time.Time
		period pricing.PeriodType
		want   int64
	}{
		{name: "hourly rounds partial hours up", end: base.Add(90 * time.Minute), period: pricing.PeriodHourly, want: 2},
		{name: "hourly same instant bills one unit", end: base, period: pricing.PeriodHourly, want: 1},
		{name: "daily whole days", end: base.AddDate(0, 0, 3), period: pricing.PeriodDaily, want: 3},
		{name: "daily partial day floors", end: base.Add(50 * time.Hour), period: pricing.PeriodDaily, want: 2},
		{name: "daily same day bills one unit", end: base.Add(5 * time.Hour), period: pricing.PeriodDaily, want: 1},
		{name: "weekly floors to whole weeks", end: base.AddDate(0, 0, 20), period: pricing.PeriodWeekly, want: 2},
		{name: "weekly short rental bills one week", end: base.AddDate(0, 0, 3), period: pricing.PeriodWeekly, want: 1},
		{name: "monthly uses thirty day months", end: base.AddDate(0, 0, 61), period: pricing.PeriodMonthly, want: 2},
		{name: "monthly short rental bills one month", end: base.AddDate(0, 0, 10), period: pricing.PeriodMonthly, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.Duration(base, tc.end, tc.period)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := pricing.Duration(base, base.Add(-time.Hour), pricing.PeriodDaily)
		require.ErrorIs(t, err, pricing.ErrInvalidWindow)
	})

	t.Run("unknown period is rejected", func(t *testing.T) {
		_, err := pricing.Duration(base, base.AddDate(0, 0, 1), pricing.PeriodType("yearly"))
		require.ErrorIs(t, err, pricing.ErrInvalidPeriodType)
	})
}

func TestCalculateLine(t *testing.T) {
	t.Run("intra-state tax splits into CGST and SGST", func(t *testing.T) {
		got, err := pricing.CalculateLine(pricing.LineInput{
			Quantity:  2,
			UnitPrice: dec("100"),
			Start:     base,
			End:       base.AddDate(0, 0, 3),
			Period:    pricing.PeriodDaily,
			TaxRate:   dec("18"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), got.Duration)
		assert.True(t, dec("600").Equal(got.Subtotal), got.Subtotal.String())
		assert.True(t, dec("108").Equal(got.Tax.Amount))
		assert.True(t, dec("54").Equal(got.Tax.CGST))
		assert.True(t, dec("54").Equal(got.Tax.SGST))
		assert.True(t, got.Tax.IGST.IsZero())
		assert.True(t, dec("708").Equal(got.Total))
	})

	t.Run("inter-state tax goes to IGST", func(t *testing.T) {
		got, err := pricing.CalculateLine(pricing.LineInput{
			Quantity:   1,
			UnitPrice:  dec("250"),
			Start:      base,
			End:        base.AddDate(0, 0, 1),
			Period:     pricing.PeriodDaily,
			TaxRate:    dec("18"),
			InterState: true,
		})
		require.NoError(t, err)

		assert.True(t, dec("45").Equal(got.Tax.IGST))
		assert.True(t, got.Tax.CGST.IsZero())
		assert.True(t, got.Tax.SGST.IsZero())
	})

	t.Run("odd tax halves still sum to the tax amount", func(t *testing.T) {
		got := pricing.SplitTax(dec("0.05"), dec("18"), false)
		assert.True(t, got.Amount.Equal(got.CGST.Add(got.SGST)))
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := []struct {
			name  string
			in    pricing.LineInput
			errIs error
		}{
			{
				name:  "zero quantity",
				in:    pricing.LineInput{Quantity: 0, UnitPrice: dec("1"), Start: base, End: base, Period: pricing.PeriodDaily},
				errIs: pricing.ErrInvalidQuantity,
			},
			{
				name:  "negative price",
				in:    pricing.LineInput{Quantity: 1, UnitPrice: dec("-1"), Start: base, End: base, Period: pricing.PeriodDaily},
				errIs: pricing.ErrNegativePrice,
			},
			{
				name:  "tax rate above 100",
				in:    pricing.LineInput{Quantity: 1, UnitPrice: dec("1"), Start: base, End: base, Period: pricing.PeriodDaily, TaxRate: dec("101")},
				errIs: pricing.ErrInvalidTaxRate,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := pricing.CalculateLine(tc.in)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run("two daily items over three days", func(t *testing.T) {
		var lines []pricing.LineAmounts
		for _, price := range []string{"100", "200"} {
			l, err := pricing.CalculateLine(pricing.LineInput{
				Quantity:  1,
				UnitPrice: dec(price),
				Start:     base,
				End:       base.AddDate(0, 0, 3),
				Period:    pricing.PeriodDaily,
				TaxRate:   dec("18"),
			})
			require.NoError(t, err)
			lines = append(lines, l)
		}

		got := pricing.Aggregate(lines, pricing.Adjustments{})

		assert.True(t, dec("900").Equal(got.Subtotal))
		assert.True(t, dec("162").Equal(got.Tax.Amount))
		assert.True(t, dec("1062").Equal(got.Total))
	})

	t.Run("adjustments enter the total", func(t *testing.T) {
		lines := []pricing.LineAmounts{{Subtotal: dec("1000"), Tax: pricing.SplitTax(dec("1000"), dec("18"), false)}}
		got := pricing.Aggregate(lines, pricing.Adjustments{
			DeliveryCharges: dec("50"),
			SecurityDeposit: dec("500"),
			LateFees:        dec("25.5"),
			Discount:        dec("100"),
		})

		// 1000 + 180 + 50 + 500 + 25.5 - 100
		assert.True(t, dec("1655.5").Equal(got.Total), got.Total.String())
	})

	t.Run("amount due", func(t *testing.T) {
		assert.True(t, dec("62").Equal(pricing.AmountDue(dec("1062"), dec("1000"))))
	})
}

func TestLateFee(t *testing.T) {
	end := base.AddDate(0, 0, 3)

	cases := []struct {
		name     string
		returned time.Time
		days     int
		fee      string
	}{
		{name: "on time", returned: end, days: 0, fee: "0"},
		{name: "hours late is not a full day", returned: end.Add(10 * time.Hour), days: 0, fee: "0"},
		{name: "two days late", returned: end.Add(50 * time.Hour), days: 2, fee: "106.2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days := pricing.DaysLate(end, tc.returned)
			assert.Equal(t, tc.days, days)
			fee := pricing.LateFee(days, dec("1062"), dec("5"))
			assert.True(t, dec(tc.fee).Equal(fee), fee.String())
		})
	}
}
