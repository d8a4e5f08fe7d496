package reservation

import (
	"fmt"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Period    Period
	Quantity  int
}

type Availability struct {
	ProductID         uuid.UUID
	VariantID         *uuid.UUID
	Period            Period
	RequestedQuantity int
	StockOnHand       int
	ReservedQuantity  int
	AvailableQuantity int
	IsAvailable       bool
	Conflicts         []string
}

// ReservedIn sums the quantities of holds on the requested product/variant
// that overlap period.
func ReservedIn(holds []*Reservation, productID uuid.UUID, variantID *uuid.UUID, period Period) int {
	total := 0
	for _, h := range holds {
		if !h.HoldsStock() || h.productID != productID || !sameVariant(h.variantID, variantID) {
			continue
		}
		if h.period.Overlaps(period) {
			total += h.quantity
		}
	}
	return total
}

// Check computes free quantity for req against stockOnHand and the existing
// holds. It never mutates anything; callers that act on the result must hold
// a lock on the product row.
func Check(stockOnHand int, holds []*Reservation, req AvailabilityRequest) Availability {
	reserved := ReservedIn(holds, req.ProductID, req.VariantID, req.Period)
	available := stockOnHand - reserved
	if available < 0 {
		available = 0
	}

	a := Availability{
		ProductID:         req.ProductID,
		VariantID:         req.VariantID,
		Period:            req.Period,
		RequestedQuantity: req.Quantity,
		StockOnHand:       stockOnHand,
		ReservedQuantity:  reserved,
		AvailableQuantity: available,
		IsAvailable:       available >= req.Quantity,
	}
	if !a.IsAvailable {
		a.Conflicts = []string{fmt.Sprintf("Only %d available", available)}
	}
	return a
}

func sameVariant(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
