//go:build unit

package order_test

import (
	"testing"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/pkg/errs"
	"rental-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s got %s", want, got.String()}, msgAndArgs...)...)
}

// total must always equal its parts after any mutation.
func assertTotalsConsistent(t *testing.T, o *order.Order) {
	t.Helper()
	want := o.Subtotal().
		Add(o.TaxAmount()).
		Add(o.DeliveryCharges()).
		Add(o.SecurityDeposit()).
		Add(o.LateFees()).
		Sub(o.DiscountAmount())
	assert.True(t, want.Equal(o.TotalAmount()), "total %s != parts %s", o.TotalAmount(), want)
}

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestOrder_Quotation(t *testing.T) {
	t.Run("two daily lines over three days at 18%", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().
			WithoutItems().
			WithDailyItem("100", 1, 3).
			WithDailyItem("200", 1, 3).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.StatusQuotation, o.Status())
		assertDec(t, "900", o.Subtotal())
		assertDec(t, "162", o.TaxAmount())
		assertDec(t, "1062", o.TotalAmount())
		assertTotalsConsistent(t, o)
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "default quotation OK",
				mutate: func(b *builder.OrderBuilder) {},
			},
			{
				name:   "zero quantity NG",
				mutate: func(b *builder.OrderBuilder) { b.WithoutItems().WithDailyItem("100", 0, 1) },
				errIs:  pricing.ErrInvalidQuantity,
			},
			{
				name:   "negative price NG",
				mutate: func(b *builder.OrderBuilder) { b.WithoutItems().WithDailyItem("-1", 1, 1) },
				errIs:  order.ErrNegativeAmount,
			},
			{
				name:   "tax rate above 100 NG",
				mutate: func(b *builder.OrderBuilder) { b.WithTaxRate("120") },
				errIs:  pricing.ErrInvalidTaxRate,
			},
		})
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("same product merges quantity and recomputes deposit", func(t *testing.T) {
		productID := uuid.New()
		o, err := builder.NewOrderBuilder().
			WithoutItems().
			WithItem(productID, "100", "500", 1, 2, pricing.PeriodDaily).
			WithItem(productID, "100", "500", 2, 5, pricing.PeriodDaily).
			BuildDomain()
		require.NoError(t, err)

		require.Len(t, o.Items(), 1)
		line := o.Items()[0]
		assert.Equal(t, 3, line.Quantity())
		assert.Equal(t, int64(2), line.Amounts().Duration, "merged line keeps its window")
		assertDec(t, "600", o.Subtotal())
		assertDec(t, "1500", o.SecurityDeposit())
		assertTotalsConsistent(t, o)
	})

	t.Run("other vendor is rejected", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		b := builder.NewOrderBuilder()
		in := b.Items[0]
		in.VendorID = uuid.New()
		_, err = o.AddItem(in, builder.BaseTime)
		require.ErrorIs(t, err, order.ErrVendorMismatch)
	})

	t.Run("emptied cart takes the next vendor", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.RemoveItem(o.Items()[0].ID(), builder.BaseTime))

		in := builder.NewOrderBuilder().Items[0]
		in.VendorID = uuid.New()
		_, err = o.AddItem(in, builder.BaseTime)
		require.NoError(t, err)
		assert.Equal(t, in.VendorID, o.VendorID())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("remove item recomputes", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithDailyItem("200", 1, 3).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.RemoveItem(o.Items()[1].ID(), builder.BaseTime))
		assertDec(t, "300", o.Subtotal())
		assertTotalsConsistent(t, o)

		require.ErrorIs(t, o.RemoveItem(uuid.New(), builder.BaseTime), order.ErrItemNotFound)
	})

	t.Run("discount is capped at subtotal", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.ApplyDiscount("save10", dec("5000"), builder.BaseTime))
		assert.Equal(t, "SAVE10", o.DiscountCode())
		assertDec(t, "300", o.DiscountAmount())
		assertDec(t, "54", o.TotalAmount())
		assertTotalsConsistent(t, o)
	})

	t.Run("capped discount recovers when lines come back", func(t *testing.T) {
		b := builder.NewOrderBuilder().WithDailyItem("200", 1, 3)
		o, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.ApplyDiscount("", dec("500"), builder.BaseTime))
		assertDec(t, "500", o.DiscountAmount())

		lens := o.Items()[1]
		require.NoError(t, o.RemoveItem(lens.ID(), builder.BaseTime))
		assertDec(t, "300", o.DiscountAmount())
		assertDec(t, "500", o.RequestedDiscount())
		assertTotalsConsistent(t, o)

		stored := order.ReconstructOrder(order.Snapshot{
			ID:                o.ID(),
			Number:            o.Number(),
			CustomerID:        o.CustomerID(),
			VendorID:          o.VendorID(),
			Status:            o.Status(),
			Items:             o.Items(),
			TaxRate:           o.TaxRate(),
			DiscountAmount:    o.DiscountAmount(),
			RequestedDiscount: o.RequestedDiscount(),
			CreatedAt:         o.CreatedAt(),
			UpdatedAt:         o.UpdatedAt(),
		})
		in := b.Items[1]
		in.VendorID = stored.VendorID()
		_, err = stored.AddItem(in, builder.BaseTime)
		require.NoError(t, err)
		assertDec(t, "900", stored.Subtotal())
		assertDec(t, "500", stored.DiscountAmount())
		assertTotalsConsistent(t, stored)
	})

	t.Run("confirmed order is not editable", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildConfirmed()
		require.NoError(t, err)

		in := builder.NewOrderBuilder().Items[0]
		in.VendorID = o.VendorID()
		_, err = o.AddItem(in, builder.BaseTime)
		require.ErrorIs(t, err, order.ErrNotEditable)

		err = o.RemoveItem(o.Items()[0].ID(), builder.BaseTime)
		require.ErrorIs(t, err, order.ErrNotEditable)
		assert.True(t, errs.HasMark(err, errs.ErrInvalidState))
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	now := builder.BaseTime

	t.Run("confirm keeps a requested downpayment", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		amount := dec("150")
		_, err = o.Confirm(order.ConfirmDetails{BillingAddress: "addr", DownpaymentAmount: &amount}, now)
		require.NoError(t, err)
		assertDec(t, "150", o.DownpaymentAmount())

		negative := decimal.NewFromInt(-1)
		o, err = builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		_, err = o.Confirm(order.ConfirmDetails{DownpaymentAmount: &negative}, now)
		require.ErrorIs(t, err, order.ErrNegativeAmount)
	})

	t.Run("confirm sets sale order and is idempotent", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		changed, err := o.Confirm(order.ConfirmDetails{BillingAddress: "addr"}, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StatusSaleOrder, o.Status())
		require.NotNil(t, o.ConfirmedAt())
		assert.Equal(t, "addr", o.DeliveryAddress(), "delivery address defaults to billing")
		assertDec(t, "0", o.DownpaymentAmount())

		changed, err = o.Confirm(order.ConfirmDetails{}, now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, now, *o.ConfirmedAt())
	})

	t.Run("confirm empty cart", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithoutItems().BuildDomain()
		require.NoError(t, err)
		_, err = o.Confirm(order.ConfirmDetails{}, now)
		require.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("sent quotation can still be confirmed", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.MarkQuotationSent(now))
		assert.Equal(t, order.StatusQuotationSent, o.Status())
		require.ErrorIs(t, o.MarkQuotationSent(now), order.ErrNotEditable)

		changed, err := o.Confirm(order.ConfirmDetails{BillingAddress: "12 MG Road, Bengaluru"}, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StatusSaleOrder, o.Status())
	})

	t.Run("confirm cancelled order", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Cancel("", now))

		_, err = o.Confirm(order.ConfirmDetails{}, now)
		require.ErrorIs(t, err, order.ErrCannotConfirm)
	})

	t.Run("pickup requires a sale order", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, o.MarkPickedUp(now, ""), order.ErrCannotPickUp)
	})

	t.Run("payment confirms once", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildConfirmed()
		require.NoError(t, err)

		assert.True(t, o.ConfirmPayment(now))
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.True(t, o.DownpaymentPaid())
		assert.False(t, o.ConfirmPayment(now))

		require.NoError(t, o.MarkPickedUp(now, "ID checked"))
		assert.Equal(t, order.StatusPickedUp, o.Status())
	})

	t.Run("late return charges 5% of total per whole day", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().
			WithoutItems().
			WithDailyItem("100", 1, 3).
			WithDailyItem("200", 1, 3).
			BuildConfirmed()
		require.NoError(t, err)
		require.NoError(t, o.MarkPickedUp(now, ""))

		returnedAt := o.RentalEnd().Add(2*24*time.Hour + 3*time.Hour)
		late, err := o.MarkReturned(returnedAt, "", dec("5"))
		require.NoError(t, err)

		assert.Equal(t, 2, late.DaysLate)
		// 2 * 1062 * 0.05
		assertDec(t, "106.2", late.Fee)
		assertDec(t, "106.2", o.LateFees())
		assertDec(t, "1168.2", o.TotalAmount())
		assert.Equal(t, order.StatusReturned, o.Status())
		assertTotalsConsistent(t, o)

		require.NoError(t, o.Complete(now))
		require.ErrorIs(t, o.Cancel("", now), order.ErrCannotCancel)
	})

	t.Run("on-time return has no fee", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildConfirmed()
		require.NoError(t, err)
		require.NoError(t, o.MarkPickedUp(now, ""))

		late, err := o.MarkReturned(*o.RentalEnd(), "", dec("5"))
		require.NoError(t, err)
		assert.False(t, late.IsLate())
		assert.True(t, o.LateFees().IsZero())
	})

	t.Run("return before pickup", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildConfirmed()
		require.NoError(t, err)
		_, err = o.MarkReturned(now, "", dec("5"))
		require.ErrorIs(t, err, order.ErrCannotReturn)
	})

	t.Run("overdue rental is flagged late and can still be returned", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildConfirmed()
		require.NoError(t, err)
		require.NoError(t, o.MarkPickedUp(now, ""))

		assert.False(t, o.MarkLate(*o.RentalEnd()))
		assert.True(t, o.MarkLate(o.RentalEnd().Add(time.Minute)))
		assert.Equal(t, order.StatusLate, o.Status())

		_, err = o.MarkReturned(o.RentalEnd().Add(24*time.Hour), "", dec("5"))
		require.NoError(t, err)
	})

	t.Run("cancel twice", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildConfirmed()
		require.NoError(t, err)
		require.NoError(t, o.Cancel("customer request", now))
		assert.Equal(t, "customer request", o.InternalNotes())

		err = o.Cancel("", now)
		require.ErrorIs(t, err, order.ErrCannotCancel)
		assert.True(t, errs.HasMark(err, errs.ErrInvalidState))
	})
}

func TestOrder_Documents(t *testing.T) {
	o, err := builder.NewOrderBuilder().BuildConfirmed()
	require.NoError(t, err)

	pickup := order.NewPickupDocument(o, builder.BaseTime)
	assert.Equal(t, "PU-"+o.Number(), pickup.Number())
	assert.Equal(t, "Please bring a valid ID for verification", pickup.Instructions())
	assert.Equal(t, o.DeliveryAddress(), pickup.Location())

	plan, err := o.ReservationPlan(builder.BaseTime)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, o.Items()[0].Quantity(), plan[0].Quantity())
	assert.Equal(t, o.ID(), plan[0].OrderID())

	assert.Equal(t, "S20250600042", order.FormatNumber(builder.BaseTime, 42))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
