package commands

import (
	"context"
	"time"

	"rental-core/internal/domain/coupon"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerOnly = errs.Forbidden("only customers can use a cart")
	ErrCartNotFound = errs.NotFound("cart not found")
	ErrCartBusy     = errs.Conflict("cart was changed concurrently, please retry")
)

type AddCartItemInput struct {
	ProductID  uuid.UUID
	VariantID  *uuid.UUID
	Quantity   int
	StartAt    time.Time
	EndAt      time.Time
	PeriodType string
}

type CartResult struct {
	OrderID uuid.UUID
	ItemID  *uuid.UUID
}

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock
type CartCommands interface {
	AddItem(ctx context.Context, actor shared.Actor, in AddCartItemInput) (*CartResult, error)
	RemoveItem(ctx context.Context, actor shared.Actor, itemID uuid.UUID) (*CartResult, error)
	ApplyCoupon(ctx context.Context, actor shared.Actor, code string) (*CartResult, error)
}

type cartUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy pricing.Policy
	clock  clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, policy pricing.Policy, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{
		uow:    uow,
		policy: policy,
		clock:  clk,
	}
}

// AddItem puts a product line into the customer's open quotation, creating
// the quotation on first use. Availability is checked optimistically here
// and again under lock at confirm.
func (uc *cartUseCaseImpl) AddItem(ctx context.Context, actor shared.Actor, in AddCartItemInput) (*CartResult, error) {
	if !actor.IsCustomer() {
		return nil, ErrCustomerOnly
	}
	if in.Quantity <= 0 {
		return nil, pricing.ErrInvalidQuantity
	}
	periodType := pricing.PeriodDaily
	if in.PeriodType != "" {
		pt, err := pricing.NewPeriodType(in.PeriodType)
		if err != nil {
			return nil, err
		}
		periodType = pt
	}
	period, err := reservation.NewPeriod(in.StartAt, in.EndAt)
	if err != nil {
		return nil, err
	}

	var result CartResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		p, err := loadProduct(ctx, tx, in.ProductID)
		if err != nil {
			return err
		}
		if err := p.EnsureRentable(); err != nil {
			return err
		}
		unitPrice, err := p.UnitPrice(periodType, in.VariantID)
		if err != nil {
			return err
		}

		cart, created, err := uc.openCart(ctx, tx, actor.ID, p.VendorID(), now)
		if err != nil {
			return err
		}

		req := reservation.AvailabilityRequest{
			ProductID: p.ID(),
			VariantID: in.VariantID,
			Period:    period,
			Quantity:  in.Quantity,
		}
		if existing := cart.FindItem(p.ID(), in.VariantID); existing != nil {
			req.Period = existing.Period()
			req.Quantity += existing.Quantity()
		}
		avail, err := checkAvailability(ctx, tx, p, req)
		if err != nil {
			return err
		}
		if !avail.IsAvailable {
			return errs.Wrapf(ErrInsufficientAvailability, "only %d available", avail.AvailableQuantity)
		}

		item, err := cart.AddItem(order.ItemInput{
			ProductID:      p.ID(),
			VariantID:      in.VariantID,
			VendorID:       p.VendorID(),
			ProductName:    p.Name(),
			ProductSKU:     p.SKU(),
			Quantity:       in.Quantity,
			UnitPrice:      unitPrice,
			DepositPerUnit: p.SecurityDeposit(),
			Period:         period,
			PeriodType:     periodType,
		}, now)
		if err != nil {
			return err
		}
		if err := uc.refreshDiscount(ctx, tx, cart, now); err != nil {
			return err
		}

		if created {
			err = tx.Orders().Create(ctx, tx.DB(), cart)
		} else {
			err = tx.Orders().Save(ctx, tx.DB(), cart)
		}
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrCartBusy
			}
			return err
		}

		itemID := item.ID()
		result = CartResult{OrderID: cart.ID(), ItemID: &itemID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, actor shared.Actor, itemID uuid.UUID) (*CartResult, error) {
	if !actor.IsCustomer() {
		return nil, ErrCustomerOnly
	}

	var result CartResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		cart, err := uc.findCart(ctx, tx, actor.ID)
		if err != nil {
			return err
		}
		if err := cart.RemoveItem(itemID, now); err != nil {
			return err
		}
		if err := uc.refreshDiscount(ctx, tx, cart, now); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), cart); err != nil {
			return err
		}
		result = CartResult{OrderID: cart.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyCoupon validates code against the cart subtotal and stores the
// resulting discount on the quotation.
func (uc *cartUseCaseImpl) ApplyCoupon(ctx context.Context, actor shared.Actor, code string) (*CartResult, error) {
	if !actor.IsCustomer() {
		return nil, ErrCustomerOnly
	}
	couponCode, err := coupon.NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	var result CartResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		cart, err := uc.findCart(ctx, tx, actor.ID)
		if err != nil {
			return err
		}
		c, err := loadCoupon(ctx, tx, couponCode.String())
		if err != nil {
			return err
		}
		amount, err := c.DiscountFor(cart.Subtotal(), now)
		if err != nil {
			return err
		}
		if err := cart.ApplyDiscount(c.Code().String(), amount, now); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), cart); err != nil {
			return err
		}
		result = CartResult{OrderID: cart.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// openCart returns the customer's quotation, or a new unsaved one for
// vendorID. created reports which.
func (uc *cartUseCaseImpl) openCart(ctx context.Context, tx shared.Tx, customerID, vendorID uuid.UUID, now time.Time) (*order.Order, bool, error) {
	cart, err := tx.Orders().FindOpenCart(ctx, tx.DB(), customerID)
	if err == nil {
		return cart, false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, false, err
	}

	seq, err := tx.Orders().NextNumber(ctx, tx.DB())
	if err != nil {
		return nil, false, err
	}
	cart, err = order.NewQuotation(order.FormatNumber(now, seq), customerID, vendorID, uc.policy, now)
	if err != nil {
		return nil, false, err
	}
	return cart, true, nil
}

func (uc *cartUseCaseImpl) findCart(ctx context.Context, tx shared.Tx, customerID uuid.UUID) (*order.Order, error) {
	cart, err := tx.Orders().FindOpenCart(ctx, tx.DB(), customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

// refreshDiscount recomputes a coupon discount after the lines changed. A
// coupon the cart no longer qualifies for is dropped.
func (uc *cartUseCaseImpl) refreshDiscount(ctx context.Context, tx shared.Tx, cart *order.Order, now time.Time) error {
	if cart.DiscountCode() == "" {
		return nil
	}
	c, err := loadCoupon(ctx, tx, cart.DiscountCode())
	if err != nil {
		if errs.HasMark(err, errs.ErrNotFound) {
			return cart.ApplyDiscount("", decimal.Zero, now)
		}
		return err
	}
	amount, err := c.DiscountFor(cart.Subtotal(), now)
	if err != nil {
		return cart.ApplyDiscount("", decimal.Zero, now)
	}
	return cart.ApplyDiscount(c.Code().String(), amount, now)
}

func loadCoupon(ctx context.Context, tx shared.Tx, code string) (*coupon.Coupon, error) {
	snap, err := tx.Reads().CouponByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, err
	}
	return couponFromSnapshot(snap)
}

func couponFromSnapshot(s *shared.CouponSnapshot) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(s.Code)
	if err != nil {
		return nil, err
	}
	kind, err := coupon.NewDiscountType(s.DiscountType)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(kind, s.DiscountValue, s.MaxDiscount)
	if err != nil {
		return nil, err
	}
	terms := coupon.Terms{
		MinOrderValue: s.MinOrderValue,
		ValidFrom:     s.ValidFrom,
		ValidTo:       s.ValidTo,
		UsageLimit:    s.UsageLimit,
	}
	return coupon.ReconstructCoupon(s.ID, code, discount, terms, s.UsedCount, s.IsActive, s.CreatedAt, s.UpdatedAt), nil
}
