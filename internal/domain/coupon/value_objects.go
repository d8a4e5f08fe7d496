package coupon

import (
	"regexp"
	"strings"

	"rental-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errs.Validation("invalid coupon code format")
	ErrInvalidDiscountType    = errs.Validation("invalid discount type")
	ErrInvalidDiscountAmount  = errs.Validation("discount amount must be positive")
	ErrInvalidDiscountPercent = errs.Validation("percentage discount must be between 0 and 100")
)

var (
	couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)
	hundred         = decimal.NewFromInt(100)
)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) String() string {
	return string(t)
}

func NewDiscountType(s string) (DiscountType, error) {
	t := DiscountType(s)
	if t != DiscountPercentage && t != DiscountFixed {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}

// Discount is either a percentage of the subtotal, optionally capped, or a
// fixed amount.
type Discount struct {
	kind  DiscountType
	value decimal.Decimal
	max   *decimal.Decimal
}

func NewFixedDiscount(amount decimal.Decimal) (Discount, error) {
	if !amount.IsPositive() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, value: amount}, nil
}

func NewPercentageDiscount(percent decimal.Decimal, max *decimal.Decimal) (Discount, error) {
	if !percent.IsPositive() || percent.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if max != nil && !max.IsPositive() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountPercentage, value: percent, max: max}, nil
}

func NewDiscount(kind DiscountType, value decimal.Decimal, max *decimal.Decimal) (Discount, error) {
	switch kind {
	case DiscountFixed:
		return NewFixedDiscount(value)
	case DiscountPercentage:
		return NewPercentageDiscount(value, max)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) Max() *decimal.Decimal  { return d.max }
func (d Discount) IsPercentage() bool     { return d.kind == DiscountPercentage }
func (d Discount) IsFixed() bool          { return d.kind == DiscountFixed }

// Apply returns the amount taken off subtotal, never more than subtotal.
func (d Discount) Apply(subtotal decimal.Decimal) decimal.Decimal {
	var off decimal.Decimal
	if d.IsPercentage() {
		off = subtotal.Mul(d.value).Div(hundred).Round(2)
		if d.max != nil && off.GreaterThan(*d.max) {
			off = *d.max
		}
	} else {
		off = d.value
	}
	if off.GreaterThan(subtotal) {
		off = subtotal
	}
	return off
}
