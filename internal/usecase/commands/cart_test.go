//go:build unit

package commands_test

import (
	"testing"
	"time"

	"rental-core/internal/domain/coupon"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/product"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"
	"rental-core/tests/fake"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CartCommandsTestSuite struct {
	rentalSuite
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) TestAddItem() {
	s.Run("success: first item opens a priced quotation", func() {
		res, err := s.cart.AddItem(s.ctx, s.customer, commands.AddCartItemInput{
			ProductID: s.camera,
			Quantity:  2,
			StartAt:   s.start,
			EndAt:     s.end,
		})
		s.Require().NoError(err)
		s.Require().NotNil(res.ItemID)

		cart := s.store.Order(res.OrderID)
		s.Require().NotNil(cart)
		s.Equal(order.StatusQuotation, cart.Status())
		s.Equal(s.vendor.ID, cart.VendorID())
		s.Require().Len(cart.Items(), 1)
		s.True(decimal.RequireFromString("600").Equal(cart.Subtotal()), cart.Subtotal().String())
		s.True(decimal.RequireFromString("108").Equal(cart.TaxAmount()), cart.TaxAmount().String())
		s.True(decimal.RequireFromString("808").Equal(cart.TotalAmount()), cart.TotalAmount().String())
		s.Equal(0, s.reserved(), "a cart never holds stock")
	})

	s.Run("success: same product merges into the open cart", func() {
		buyer := s.newCustomer("Dev Mehta")
		first := s.cartFor(buyer, 1)
		second := s.cartFor(buyer, 1)

		s.Equal(first, second)
		cart := s.store.Order(first)
		s.Require().Len(cart.Items(), 1)
		s.Equal(2, cart.Items()[0].Quantity())
	})

	s.Run("error: merged quantity beyond stock", func() {
		buyer := s.newCustomer("Kiran Das")
		id := s.cartFor(buyer, 2)

		_, err := s.cart.AddItem(s.ctx, buyer, commands.AddCartItemInput{
			ProductID: s.camera, Quantity: 1, StartAt: s.start, EndAt: s.end,
		})
		s.ErrorIs(err, commands.ErrInsufficientAvailability)
		s.Equal(2, s.store.Order(id).Items()[0].Quantity())
	})
}

func (s *CartCommandsTestSuite) TestAddItemRejections() {
	otherVendor := uuid.New()
	tripod := s.store.AddProduct(fake.ProductSeed{
		VendorID: otherVendor, Name: "Tripod", DailyPrice: dec("20"), OnHand: 5,
	})
	retired := s.store.AddProduct(fake.ProductSeed{
		VendorID: s.vendor.ID, Name: "Old Flash", DailyPrice: dec("10"), OnHand: 1, NotRentable: true,
	})
	hourlyOnly := s.store.AddProduct(fake.ProductSeed{
		VendorID: s.vendor.ID, Name: "Studio", HourlyPrice: dec("500"), OnHand: 1,
	})
	s.cartFor(s.customer, 1)

	cases := []struct {
		name  string
		actor shared.Actor
		in    commands.AddCartItemInput
		err   error
	}{
		{
			name:  "vendor cannot shop",
			actor: s.vendor,
			in:    commands.AddCartItemInput{ProductID: s.camera, Quantity: 1, StartAt: s.start, EndAt: s.end},
			err:   commands.ErrCustomerOnly,
		},
		{
			name:  "second vendor in one cart",
			actor: s.customer,
			in:    commands.AddCartItemInput{ProductID: tripod, Quantity: 1, StartAt: s.start, EndAt: s.end},
			err:   order.ErrVendorMismatch,
		},
		{
			name:  "product withdrawn from rental",
			actor: s.customer,
			in:    commands.AddCartItemInput{ProductID: retired, Quantity: 1, StartAt: s.start, EndAt: s.end},
			err:   product.ErrNotRentable,
		},
		{
			name:  "no price for the period",
			actor: s.customer,
			in:    commands.AddCartItemInput{ProductID: hourlyOnly, Quantity: 1, StartAt: s.start, EndAt: s.end},
			err:   product.ErrNoPriceForPeriod,
		},
		{
			name:  "unknown product",
			actor: s.customer,
			in:    commands.AddCartItemInput{ProductID: uuid.New(), Quantity: 1, StartAt: s.start, EndAt: s.end},
			err:   product.ErrProductNotFound,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.cart.AddItem(s.ctx, tc.actor, tc.in)
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *CartCommandsTestSuite) TestAddItemOtherVendor() {
	tripod := s.store.AddProduct(fake.ProductSeed{
		VendorID: uuid.New(), Name: "Tripod", DailyPrice: dec("20"), OnHand: 5,
	})
	id := s.cartFor(s.customer, 1)
	in := commands.AddCartItemInput{ProductID: tripod, Quantity: 1, StartAt: s.start, EndAt: s.end}

	s.Run("error: conflicts while the cart holds lines", func() {
		_, err := s.cart.AddItem(s.ctx, s.customer, in)
		s.ErrorIs(err, order.ErrVendorMismatch)
		s.True(errs.HasMark(err, errs.ErrConflict))
		s.Len(s.store.Order(id).Items(), 1)
	})

	s.Run("success: emptied cart moves to the new vendor", func() {
		_, err := s.cart.RemoveItem(s.ctx, s.customer, s.store.Order(id).Items()[0].ID())
		s.Require().NoError(err)

		res, err := s.cart.AddItem(s.ctx, s.customer, in)
		s.Require().NoError(err)
		s.Equal(id, res.OrderID)

		cart := s.store.Order(id)
		s.NotEqual(s.vendor.ID, cart.VendorID())
		s.Require().Len(cart.Items(), 1)
		s.Equal(tripod, cart.Items()[0].ProductID())
	})
}

func (s *CartCommandsTestSuite) TestAddItemAvailability() {
	holder := s.newCustomer("Meera Iyer")
	held := s.cartFor(holder, 2)
	_, err := s.confirm(holder, held)
	s.Require().NoError(err)

	s.Run("error: overlapping window is sold out", func() {
		_, err := s.cart.AddItem(s.ctx, s.customer, commands.AddCartItemInput{
			ProductID: s.camera, Quantity: 1, StartAt: s.start.Add(48 * time.Hour), EndAt: s.end.Add(48 * time.Hour),
		})
		s.ErrorIs(err, commands.ErrInsufficientAvailability)
	})

	s.Run("success: window after the rental ends", func() {
		_, err := s.cart.AddItem(s.ctx, s.customer, commands.AddCartItemInput{
			ProductID: s.camera, Quantity: 2, StartAt: s.end, EndAt: s.end.Add(24 * time.Hour),
		})
		s.NoError(err)
	})
}

func (s *CartCommandsTestSuite) TestAddItemCartRace() {
	s.store.FailOn("Orders.Create", infra.WrapRepoErr("orders_one_open_cart", nil, infra.KindDuplicateKey))

	_, err := s.cart.AddItem(s.ctx, s.customer, commands.AddCartItemInput{
		ProductID: s.camera, Quantity: 1, StartAt: s.start, EndAt: s.end,
	})
	s.ErrorIs(err, commands.ErrCartBusy)
	s.Equal(0, s.store.OrderCount())
}

func (s *CartCommandsTestSuite) TestApplyCoupon() {
	limit := 1
	s.store.AddCoupon(shared.CouponSnapshot{
		ID:            uuid.New(),
		Code:          "RENT10",
		DiscountType:  coupon.DiscountPercentage.String(),
		DiscountValue: decimal.NewFromInt(10),
		UsageLimit:    &limit,
		IsActive:      true,
	})
	s.store.AddCoupon(shared.CouponSnapshot{
		ID:            uuid.New(),
		Code:          "BIGSPEND",
		DiscountType:  coupon.DiscountFixed.String(),
		DiscountValue: decimal.NewFromInt(100),
		MinOrderValue: dec("5000"),
		IsActive:      true,
	})

	s.Run("error: no open cart", func() {
		_, err := s.cart.ApplyCoupon(s.ctx, s.customer, "RENT10")
		s.ErrorIs(err, commands.ErrCartNotFound)
	})

	id := s.cartFor(s.customer, 2)

	s.Run("success: percentage discount off the subtotal", func() {
		_, err := s.cart.ApplyCoupon(s.ctx, s.customer, "rent10")
		s.Require().NoError(err)

		cart := s.store.Order(id)
		s.Equal("RENT10", cart.DiscountCode())
		s.True(decimal.RequireFromString("60").Equal(cart.DiscountAmount()))
		s.True(decimal.RequireFromString("748").Equal(cart.TotalAmount()), cart.TotalAmount().String())
	})

	s.Run("error: below the minimum order value", func() {
		_, err := s.cart.ApplyCoupon(s.ctx, s.customer, "BIGSPEND")
		s.ErrorIs(err, coupon.ErrBelowMinimumOrder)
		s.Equal("RENT10", s.store.Order(id).DiscountCode())
	})

	s.Run("error: unknown code", func() {
		_, err := s.cart.ApplyCoupon(s.ctx, s.customer, "NOPE2026")
		s.ErrorIs(err, coupon.ErrCouponNotFound)
	})

	s.Run("success: confirm consumes one use", func() {
		_, err := s.confirm(s.customer, id)
		s.Require().NoError(err)
		s.Equal(1, s.store.CouponUsage("RENT10"))
	})
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	id := s.cartFor(s.customer, 1)
	itemID := s.store.Order(id).Items()[0].ID()

	s.Run("error: unknown line", func() {
		_, err := s.cart.RemoveItem(s.ctx, s.customer, uuid.New())
		s.ErrorIs(err, order.ErrItemNotFound)
	})

	s.Run("success: line removed and totals reset", func() {
		res, err := s.cart.RemoveItem(s.ctx, s.customer, itemID)
		s.Require().NoError(err)
		s.Equal(id, res.OrderID)

		cart := s.store.Order(id)
		s.Empty(cart.Items())
		s.True(cart.TotalAmount().IsZero())
	})
}
