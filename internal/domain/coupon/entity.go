package coupon

import (
	"time"

	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound     = errs.NotFound("coupon not found")
	ErrCouponExpired      = errs.Validation("coupon has expired")
	ErrCouponNotYetValid  = errs.Validation("coupon is not yet valid")
	ErrCouponInactive     = errs.Validation("coupon is not active")
	ErrUsageLimitReached  = errs.Validation("coupon usage limit reached")
	ErrBelowMinimumOrder  = errs.Validation("order value is below the coupon minimum")
	ErrInvalidUsageLimit  = errs.Validation("usage limit must be positive")
	ErrInvalidValidWindow = errs.Validation("coupon validity window is inverted")
)

type Coupon struct {
	id            uuid.UUID
	code          Code
	discount      Discount
	minOrderValue *decimal.Decimal
	validFrom     *time.Time
	validTo       *time.Time
	usageLimit    *int
	usedCount     int
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

type Terms struct {
	MinOrderValue *decimal.Decimal
	ValidFrom     *time.Time
	ValidTo       *time.Time
	UsageLimit    *int
}

func NewCoupon(id uuid.UUID, code string, discount Discount, terms Terms) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}
	if terms.UsageLimit != nil && *terms.UsageLimit <= 0 {
		return nil, ErrInvalidUsageLimit
	}
	if terms.ValidFrom != nil && terms.ValidTo != nil && terms.ValidTo.Before(*terms.ValidFrom) {
		return nil, ErrInvalidValidWindow
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Coupon{
		id:            id,
		code:          couponCode,
		discount:      discount,
		minOrderValue: terms.MinOrderValue,
		validFrom:     terms.ValidFrom,
		validTo:       terms.ValidTo,
		usageLimit:    terms.UsageLimit,
		isActive:      true,
	}, nil
}

func ReconstructCoupon(id uuid.UUID, code Code, discount Discount, terms Terms, usedCount int, isActive bool, createdAt, updatedAt time.Time) *Coupon {
	return &Coupon{
		id:            id,
		code:          code,
		discount:      discount,
		minOrderValue: terms.MinOrderValue,
		validFrom:     terms.ValidFrom,
		validTo:       terms.ValidTo,
		usageLimit:    terms.UsageLimit,
		usedCount:     usedCount,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if !c.IsValidAt(t) {
		if c.validFrom != nil && t.Before(*c.validFrom) {
			return ErrCouponNotYetValid
		}
		return ErrCouponExpired
	}
	if c.usageLimit != nil && c.usedCount >= *c.usageLimit {
		return ErrUsageLimitReached
	}
	return nil
}

// DiscountFor checks the coupon against an order subtotal at t and returns
// the amount to take off.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal, t time.Time) (decimal.Decimal, error) {
	if err := c.ValidateUsage(t); err != nil {
		return decimal.Zero, err
	}
	if c.minOrderValue != nil && subtotal.LessThan(*c.minOrderValue) {
		return decimal.Zero, ErrBelowMinimumOrder
	}
	return c.discount.Apply(subtotal), nil
}

func (c *Coupon) ID() uuid.UUID                   { return c.id }
func (c *Coupon) Code() Code                      { return c.code }
func (c *Coupon) Discount() Discount              { return c.discount }
func (c *Coupon) MinOrderValue() *decimal.Decimal { return c.minOrderValue }
func (c *Coupon) ValidFrom() *time.Time           { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time             { return c.validTo }
func (c *Coupon) UsageLimit() *int                { return c.usageLimit }
func (c *Coupon) UsedCount() int                  { return c.usedCount }
func (c *Coupon) IsActive() bool                  { return c.isActive }
func (c *Coupon) CreatedAt() time.Time            { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time            { return c.updatedAt }
