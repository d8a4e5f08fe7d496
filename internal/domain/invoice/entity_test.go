//go:build unit

package invoice_test

import (
	"testing"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s got %s", want, got.String())
}

func newConfirmedOrder(t *testing.T, mutate func(*builder.OrderBuilder)) *order.Order {
	t.Helper()
	o, err := builder.NewOrderBuilder().
		WithoutItems().
		WithDailyItem("100", 1, 3).
		WithDailyItem("200", 1, 3).
		With(mutate).
		BuildConfirmed()
	require.NoError(t, err)
	return o
}

func newInvoice(t *testing.T, o *order.Order) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewFromOrder(
		invoice.FormatNumber(builder.BaseTime, 1),
		o,
		invoice.Parties{
			Vendor:   invoice.Party{Name: "Asha Rentals", GSTIN: "29ABCDE1234F1Z5"},
			Customer: invoice.Party{Name: "Ravi Kumar", Email: "ravi@example.com"},
		},
		pricing.DefaultPolicy(),
		builder.BaseTime,
	)
	require.NoError(t, err)
	return inv
}

func TestInvoice_NewFromOrder(t *testing.T) {
	t.Run("mirrors order lines and totals", func(t *testing.T) {
		o := newConfirmedOrder(t, func(b *builder.OrderBuilder) {})
		inv := newInvoice(t, o)

		assert.Equal(t, invoice.StatusDraft, inv.Status())
		assert.Equal(t, "INV/2025/00001", inv.Number())
		assert.Equal(t, o.ID(), inv.OrderID())
		assert.Equal(t, builder.BaseTime.AddDate(0, 0, 7), inv.DueDate())
		require.Len(t, inv.Items(), 2)
		assertDec(t, "900", inv.Totals().Subtotal)
		assertDec(t, "162", inv.Totals().Tax.Amount)
		assertDec(t, "81", inv.Totals().Tax.CGST)
		assertDec(t, "81", inv.Totals().Tax.SGST)
		assertDec(t, "1062", inv.TotalAmount())
		assertDec(t, "1062", inv.AmountDue())
		assert.Contains(t, inv.Items()[0].Description(), "Rental: 2025-06-02 to 2025-06-05")
	})

	t.Run("deposit becomes an untaxed line", func(t *testing.T) {
		o := newConfirmedOrder(t, func(b *builder.OrderBuilder) {
			b.WithoutItems().WithItem(uuid.New(), "100", "500", 2, 1, pricing.PeriodDaily)
		})
		inv := newInvoice(t, o)

		require.Len(t, inv.Items(), 2)
		deposit := inv.Items()[1]
		assert.True(t, deposit.IsDeposit())
		assert.Equal(t, "Security Deposit", deposit.Description())
		assertDec(t, "0", deposit.Amounts().Tax.Amount)
		assertDec(t, "1000", deposit.Amounts().Total)
		assertDec(t, "200", inv.Totals().Subtotal)
		assertDec(t, "36", inv.Totals().Tax.Amount)
		assertDec(t, "1236", inv.TotalAmount())
	})

	t.Run("inter-state supply uses IGST", func(t *testing.T) {
		o := newConfirmedOrder(t, func(b *builder.OrderBuilder) { b.WithInterState() })
		inv := newInvoice(t, o)

		assertDec(t, "162", inv.Totals().Tax.IGST)
		assertDec(t, "0", inv.Totals().Tax.CGST)
	})

	t.Run("quotation is not invoiceable", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = invoice.NewFromOrder("INV/2025/00002", o, invoice.Parties{}, pricing.DefaultPolicy(), builder.BaseTime)
		require.ErrorIs(t, err, invoice.ErrOrderNotInvoiceable)
	})
}

func TestInvoice_Rebuild(t *testing.T) {
	o := newConfirmedOrder(t, func(b *builder.OrderBuilder) {})
	inv := newInvoice(t, o)

	require.NoError(t, inv.Rebuild(o, builder.BaseTime))
	first := inv.Totals()
	require.NoError(t, inv.Rebuild(o, builder.BaseTime))

	assert.Len(t, inv.Items(), 2)
	assert.True(t, first.Total.Equal(inv.Totals().Total))

	require.NoError(t, inv.Post(builder.BaseTime))
	require.ErrorIs(t, inv.Rebuild(o, builder.BaseTime), invoice.ErrNotDraft)
}

func TestInvoice_Post(t *testing.T) {
	inv := newInvoice(t, newConfirmedOrder(t, func(b *builder.OrderBuilder) {}))

	require.NoError(t, inv.Post(builder.BaseTime))
	assert.Equal(t, invoice.StatusPosted, inv.Status())
	require.NotNil(t, inv.PostedAt())
	require.ErrorIs(t, inv.Post(builder.BaseTime), invoice.ErrNotDraft)
}

func TestInvoice_ApplyPayment(t *testing.T) {
	tests := []struct {
		name     string
		payments []string
		status   invoice.Status
		due      string
		errIs    error
	}{
		{name: "full amount settles", payments: []string{"1062"}, status: invoice.StatusPaid, due: "0"},
		{name: "partial amount", payments: []string{"500"}, status: invoice.StatusPartiallyPaid, due: "562"},
		{name: "two partials settle", payments: []string{"500", "562"}, status: invoice.StatusPaid, due: "0"},
		{name: "capture above due settles", payments: []string{"300", "1062"}, status: invoice.StatusPaid, due: "-300"},
		{name: "zero rejected", payments: []string{"0"}, status: invoice.StatusDraft, due: "1062", errIs: invoice.ErrInvalidPaymentAmount},
		{name: "paid invoice rejects more", payments: []string{"1062", "1"}, status: invoice.StatusPaid, due: "0", errIs: invoice.ErrAlreadyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newInvoice(t, newConfirmedOrder(t, func(b *builder.OrderBuilder) {}))

			var err error
			for _, p := range tt.payments {
				if _, err = inv.ApplyPayment(dec(p), builder.BaseTime); err != nil {
					break
				}
			}

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.status, inv.Status())
			assertDec(t, tt.due, inv.AmountDue())
			assertDec(t, inv.TotalAmount().Sub(inv.AmountPaid()).String(), inv.AmountDue())
		})
	}
}

func TestInvoice_ApplyOfflinePayment(t *testing.T) {
	tests := []struct {
		name     string
		payments []string
		status   invoice.Status
		due      string
		errIs    error
	}{
		{name: "exact amount settles", payments: []string{"1062"}, status: invoice.StatusPaid, due: "0"},
		{name: "instalments settle", payments: []string{"62", "1000"}, status: invoice.StatusPaid, due: "0"},
		{name: "more than due rejected", payments: []string{"1062.01"}, status: invoice.StatusDraft, due: "1062", errIs: invoice.ErrOverpayment},
		{name: "second instalment above due rejected", payments: []string{"1000", "63"}, status: invoice.StatusPartiallyPaid, due: "62", errIs: invoice.ErrOverpayment},
		{name: "negative rejected", payments: []string{"-5"}, status: invoice.StatusDraft, due: "1062", errIs: invoice.ErrInvalidPaymentAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newInvoice(t, newConfirmedOrder(t, func(b *builder.OrderBuilder) {}))

			var err error
			for _, p := range tt.payments {
				if _, err = inv.ApplyOfflinePayment(dec(p), builder.BaseTime); err != nil {
					break
				}
			}

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.status, inv.Status())
			assertDec(t, tt.due, inv.AmountDue())
		})
	}
}
