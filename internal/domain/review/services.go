package review

import (
	"rental-core/internal/domain/order"

	"github.com/google/uuid"
)

// CheckEligibility allows a review once the customer's rental of the product
// has come back.
func CheckEligibility(o *order.Order, customerID, productID uuid.UUID) error {
	if o.CustomerID() != customerID {
		return ErrNotOrderOwner
	}
	if o.Status() != order.StatusReturned && o.Status() != order.StatusCompleted {
		return ErrOrderNotEligible
	}
	for _, it := range o.Items() {
		if it.ProductID() == productID {
			return nil
		}
	}
	return ErrProductNotInOrder
}
