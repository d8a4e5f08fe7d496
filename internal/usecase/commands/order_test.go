//go:build unit

package commands_test

import (
	"sync"
	"testing"
	"time"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/domain/user"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"
	"rental-core/tests/fake"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderCommandsTestSuite struct {
	rentalSuite
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestCreateQuotation() {
	otherVendor := shared.Actor{ID: uuid.New(), Role: user.RoleVendor}
	s.addParty(otherVendor, "Grip Co")
	tripod := s.store.AddProduct(fake.ProductSeed{
		VendorID: otherVendor.ID, Name: "Tripod", DailyPrice: dec("20"), OnHand: 5,
	})

	s.Run("success: one quotation per vendor", func() {
		ids, err := s.orders.CreateQuotation(s.ctx, s.customer, commands.CreateQuotationInput{
			Items: []commands.QuotationItemInput{
				{ProductID: s.camera, Quantity: 1, StartAt: s.start, EndAt: s.end},
				{ProductID: tripod, Quantity: 2, StartAt: s.start, EndAt: s.end},
				{ProductID: s.camera, Quantity: 1, StartAt: s.start, EndAt: s.end},
			},
		})
		s.Require().NoError(err)
		s.Require().Len(ids, 2)

		first, second := s.store.Order(ids[0]), s.store.Order(ids[1])
		s.Equal(s.vendor.ID, first.VendorID())
		s.Equal(otherVendor.ID, second.VendorID())
		s.Equal(order.StatusQuotationSent, first.Status())
		s.Require().Len(first.Items(), 1)
		s.Equal(2, first.Items()[0].Quantity())
		s.Equal(0, s.reserved())
	})

	s.Run("success: issued quotations leave room for a cart", func() {
		id := s.cartFor(s.customer, 1)
		s.Equal(order.StatusQuotation, s.store.Order(id).Status())
	})

	s.Run("error: nothing requested", func() {
		_, err := s.orders.CreateQuotation(s.ctx, s.customer, commands.CreateQuotationInput{})
		s.ErrorIs(err, commands.ErrNoItems)
	})

	s.Run("error: one short line aborts every quotation", func() {
		before := s.store.OrderCount()
		_, err := s.orders.CreateQuotation(s.ctx, s.customer, commands.CreateQuotationInput{
			Items: []commands.QuotationItemInput{
				{ProductID: tripod, Quantity: 1, StartAt: s.start, EndAt: s.end},
				{ProductID: s.camera, Quantity: 3, StartAt: s.start, EndAt: s.end},
			},
		})
		s.ErrorIs(err, commands.ErrInsufficientAvailability)
		s.Equal(before, s.store.OrderCount())
	})
}

func (s *OrderCommandsTestSuite) TestConfirm() {
	id := s.cartFor(s.customer, 2)

	s.Run("error: vendors cannot confirm", func() {
		_, err := s.confirm(s.vendor, id)
		s.ErrorIs(err, commands.ErrCustomerOnly)
	})

	s.Run("error: another customer's order", func() {
		_, err := s.confirm(s.newCustomer("Ravi"), id)
		s.ErrorIs(err, commands.ErrOrderForbidden)
		s.Equal(0, s.reserved())
	})

	s.Run("success: reserves stock and drafts the invoice", func() {
		res, err := s.confirm(s.customer, id)
		s.Require().NoError(err)
		s.Equal(order.StatusSaleOrder, res.Status)
		s.False(res.Replayed)

		o := s.store.Order(id)
		s.NotNil(o.ConfirmedAt())
		s.True(o.DownpaymentAmount().IsZero(), "no downpayment unless requested")

		s.Equal(2, s.reserved())
		s.Equal(2, s.onHand())
		holds := s.store.Reservations(id)
		s.Require().Len(holds, 1)
		s.Equal(reservation.StatusActive, holds[0].Status())
		s.Equal(2, holds[0].Quantity())

		s.True(s.store.HasPickupDocument(id))
		s.Equal([]string{commands.TopicOrderConfirmed}, s.topics())

		inv := s.store.InvoiceByOrder(id)
		s.Require().NotNil(inv)
		s.Equal(invoice.StatusDraft, inv.Status())
		s.True(decimal.RequireFromString("808").Equal(inv.TotalAmount()), inv.TotalAmount().String())
		s.Equal("Asha Rao", inv.Parties().Customer.Name)
	})

	s.Run("success: confirming again holds stock once", func() {
		res, err := s.confirm(s.customer, id)
		s.Require().NoError(err)
		s.Equal(order.StatusSaleOrder, res.Status)
		s.Equal(2, s.reserved())
		s.Len(s.store.Reservations(id), 1)
	})

	s.Run("error: unknown order", func() {
		_, err := s.confirm(s.customer, uuid.New())
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}

func (s *OrderCommandsTestSuite) TestConfirmInvoiceFailureDoesNotFailConfirm() {
	vendorWithoutProfile := uuid.New()
	lamp := s.store.AddProduct(fake.ProductSeed{
		VendorID: vendorWithoutProfile, Name: "LED Panel", DailyPrice: dec("40"), OnHand: 1,
	})
	res, err := s.cart.AddItem(s.ctx, s.customer, commands.AddCartItemInput{
		ProductID: lamp, Quantity: 1, StartAt: s.start, EndAt: s.end,
	})
	s.Require().NoError(err)

	out, err := s.confirm(s.customer, res.OrderID)
	s.Require().NoError(err)
	s.Equal(order.StatusSaleOrder, out.Status)
	s.Nil(s.store.InvoiceByOrder(res.OrderID))

	_, err = s.invoices.CreateFromOrder(s.ctx, s.customer, res.OrderID)
	s.ErrorIs(err, commands.ErrPartyNotFound)
}

// Two customers race for the same two units. The loser must see an
// availability error and keep an untouched quotation.
func (s *OrderCommandsTestSuite) TestConfirmRace() {
	buyers := []shared.Actor{s.newCustomer("Buyer A"), s.newCustomer("Buyer B")}
	carts := []uuid.UUID{s.cartFor(buyers[0], 2), s.cartFor(buyers[1], 2)}

	errs := make([]error, len(buyers))
	var wg sync.WaitGroup
	for i := range buyers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.confirm(buyers[i], carts[i])
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		if err == nil {
			winners++
			continue
		}
		s.ErrorIs(err, commands.ErrInsufficientAvailability)
		s.Equal(order.StatusQuotation, s.store.Order(carts[i]).Status())
		s.Empty(s.store.Reservations(carts[i]))
	}
	s.Equal(1, winners)
	s.Equal(2, s.reserved())
}

func (s *OrderCommandsTestSuite) TestConfirmIdempotency() {
	id := s.cartFor(s.customer, 1)
	key := uuid.New()
	in := commands.ConfirmOrderInput{BillingAddress: "12 MG Road, Bengaluru", IdempotencyKey: &key}

	first, err := s.orders.Confirm(s.ctx, s.customer, id, in)
	s.Require().NoError(err)
	s.False(first.Replayed)

	rec, ok := s.store.IdempotencyRecord(key, s.customer.ID)
	s.Require().True(ok)
	s.Equal(shared.IdempotencyCompleted, rec.Status)
	s.Require().NotNil(rec.ResultID)
	s.Equal(id, *rec.ResultID)

	s.Run("success: same request replays the first result", func() {
		again, err := s.orders.Confirm(s.ctx, s.customer, id, in)
		s.Require().NoError(err)
		s.True(again.Replayed)
		s.Equal(id, again.OrderID)
		s.Equal(1, s.reserved())
		s.Len(s.store.Jobs(), 1)
	})

	s.Run("error: key reused for a different body", func() {
		changed := in
		changed.CustomerNotes = "leave at the gate"
		_, err := s.orders.Confirm(s.ctx, s.customer, id, changed)
		s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
	})

	s.Run("success: keys are scoped per user", func() {
		other := s.newCustomer("Nisha")
		otherCart := s.cartFor(other, 1)
		res, err := s.orders.Confirm(s.ctx, other, otherCart, commands.ConfirmOrderInput{IdempotencyKey: &key})
		s.Require().NoError(err)
		s.False(res.Replayed)
		s.Equal(otherCart, res.OrderID)
	})
}

func (s *OrderCommandsTestSuite) TestCancel() {
	id := s.confirmedOrder()

	s.Run("error: stranger", func() {
		_, err := s.orders.Cancel(s.ctx, s.newCustomer("Stranger"), id, "")
		s.ErrorIs(err, commands.ErrOrderForbidden)
	})

	s.Run("success: releases held stock", func() {
		res, err := s.orders.Cancel(s.ctx, s.customer, id, "plans changed")
		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, res.Status)

		s.Equal(0, s.reserved())
		s.Equal(2, s.onHand())
		holds := s.store.Reservations(id)
		s.Require().Len(holds, 1)
		s.Equal(reservation.StatusReleased, holds[0].Status())
		s.NotNil(holds[0].ReleasedAt())
	})

	s.Run("error: already cancelled", func() {
		_, err := s.orders.Cancel(s.ctx, s.vendor, id, "")
		s.ErrorIs(err, order.ErrCannotCancel)
	})

	s.Run("success: freed units can be rented again", func() {
		next := s.cartFor(s.newCustomer("Next"), 2)
		s.NotEqual(uuid.Nil, next)
	})
}

func (s *OrderCommandsTestSuite) TestFulfilment() {
	id := s.confirmedOrder()

	s.Run("error: customers cannot hand over", func() {
		_, err := s.orders.MarkPickedUp(s.ctx, s.customer, id, "")
		s.ErrorIs(err, commands.ErrVendorOnly)
	})

	s.Run("error: another vendor", func() {
		_, err := s.orders.MarkPickedUp(s.ctx, shared.Actor{ID: uuid.New(), Role: user.RoleVendor}, id, "")
		s.ErrorIs(err, commands.ErrOrderForbidden)
	})

	s.Run("error: complete before return", func() {
		_, err := s.orders.Complete(s.ctx, s.vendor, id)
		s.ErrorIs(err, order.ErrCannotComplete)
	})

	s.Run("success: picked up", func() {
		res, err := s.orders.MarkPickedUp(s.ctx, s.vendor, id, "ID checked")
		s.Require().NoError(err)
		s.Equal(order.StatusPickedUp, res.Status)
		holds := s.store.Reservations(id)
		s.Require().Len(holds, 1)
		s.Equal(reservation.StockWithCustomer, holds[0].StockStatus())
		s.NotNil(s.store.Order(id).PickupDate())
	})

	s.Run("success: late return charges a percentage per day", func() {
		s.clock.Set(s.end.Add(49 * time.Hour))

		res, err := s.orders.MarkReturned(s.ctx, s.vendor, id, commands.ReturnOrderInput{ConditionNotes: "scuffed grip"})
		s.Require().NoError(err)
		s.Equal(order.StatusReturned, res.Status)

		o := s.store.Order(id)
		s.True(decimal.RequireFromString("80.80").Equal(o.LateFees()), o.LateFees().String())
		s.True(decimal.RequireFromString("888.80").Equal(o.TotalAmount()), o.TotalAmount().String())

		doc, ok := s.store.ReturnDocument(id)
		s.Require().True(ok)
		s.True(doc.IsLate)
		s.EqualValues(2, doc.LateDays)
		fee, err := pgconv.DecimalFromNumeric(doc.LateFee)
		s.Require().NoError(err)
		s.True(decimal.RequireFromString("80.80").Equal(fee))

		s.Equal(0, s.reserved())
		s.Equal(2, s.onHand())
		s.Equal(reservation.StatusFulfilled, s.store.Reservations(id)[0].Status())

		inv := s.store.InvoiceByOrder(id)
		s.Require().NotNil(inv)
		s.True(decimal.RequireFromString("888.80").Equal(inv.TotalAmount()), inv.TotalAmount().String())
	})

	s.Run("success: completed", func() {
		res, err := s.orders.Complete(s.ctx, s.admin, id)
		s.Require().NoError(err)
		s.Equal(order.StatusCompleted, res.Status)
	})
}

func (s *OrderCommandsTestSuite) TestMarkReturnedOnTime() {
	id := s.confirmedOrder()
	_, err := s.orders.MarkPickedUp(s.ctx, s.vendor, id, "")
	s.Require().NoError(err)

	s.clock.Set(s.end.Add(23 * time.Hour))
	_, err = s.orders.MarkReturned(s.ctx, s.vendor, id, commands.ReturnOrderInput{})
	s.Require().NoError(err)

	s.True(s.store.Order(id).LateFees().IsZero())
	doc, ok := s.store.ReturnDocument(id)
	s.Require().True(ok)
	s.False(doc.IsLate)
}
