package product

import "rental-core/internal/pkg/errs"

var (
	ErrInsufficientStock = errs.Availability("insufficient stock")
	ErrReleaseExceeds    = errs.InvalidState("release exceeds reserved quantity")
	ErrInvalidStockCount = errs.Validation("stock counts must satisfy 0 <= reserved <= on hand")
)

// Stock holds the on-hand and reserved counters of a product or variant.
// Invariant: 0 <= Reserved <= OnHand.
type Stock struct {
	onHand   int
	reserved int
}

func NewStock(onHand, reserved int) (Stock, error) {
	if reserved < 0 || onHand < 0 || reserved > onHand {
		return Stock{}, ErrInvalidStockCount
	}
	return Stock{onHand: onHand, reserved: reserved}, nil
}

func (s Stock) OnHand() int    { return s.onHand }
func (s Stock) Reserved() int  { return s.reserved }
func (s Stock) Available() int { return s.onHand - s.reserved }

// Reserve holds qty units.
func (s Stock) Reserve(qty int) (Stock, error) {
	if qty <= 0 || s.reserved+qty > s.onHand {
		return s, ErrInsufficientStock
	}
	return Stock{onHand: s.onHand, reserved: s.reserved + qty}, nil
}

// Release drops a hold taken by Reserve.
func (s Stock) Release(qty int) (Stock, error) {
	if qty < 0 || qty > s.reserved {
		return s, ErrReleaseExceeds
	}
	return Stock{onHand: s.onHand, reserved: s.reserved - qty}, nil
}

// Consume converts a held quantity into units physically out with the
// customer: both counters drop so availability is unchanged.
func (s Stock) Consume(qty int) (Stock, error) {
	if qty < 0 || qty > s.reserved {
		return s, ErrReleaseExceeds
	}
	return Stock{onHand: s.onHand - qty, reserved: s.reserved - qty}, nil
}

// Restock puts consumed units back on hand.
func (s Stock) Restock(qty int) Stock {
	if qty <= 0 {
		return s
	}
	return Stock{onHand: s.onHand + qty, reserved: s.reserved}
}
