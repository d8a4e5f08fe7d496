package order

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusQuotation     Status = "quotation"
	StatusQuotationSent Status = "quotation_sent"
	StatusSaleOrder     Status = "sale_order"
	StatusConfirmed     Status = "confirmed"
	StatusPickedUp      Status = "picked_up"
	StatusActive        Status = "active"
	StatusReturned      Status = "returned"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
	StatusLate          Status = "late"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusQuotation, StatusQuotationSent, StatusSaleOrder, StatusConfirmed,
		StatusPickedUp, StatusActive, StatusReturned, StatusCompleted,
		StatusCancelled, StatusLate:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsDraft reports whether the order is still an editable quotation.
func (s Status) IsDraft() bool {
	return s == StatusQuotation || s == StatusQuotationSent
}

// HoldsInventory reports whether reservations exist for an order in this status.
func (s Status) HoldsInventory() bool {
	switch s {
	case StatusSaleOrder, StatusConfirmed, StatusPickedUp, StatusActive, StatusLate:
		return true
	default:
		return false
	}
}

// IsOut reports whether the rented units are with the customer.
func (s Status) IsOut() bool {
	return s == StatusPickedUp || s == StatusActive || s == StatusLate
}

type DeliveryMethod string

const (
	DeliveryStandard DeliveryMethod = "standard"
	DeliveryPickup   DeliveryMethod = "pickup"
)

func (d DeliveryMethod) String() string {
	return string(d)
}

func (d DeliveryMethod) IsValid() bool {
	return d == DeliveryStandard || d == DeliveryPickup
}

func NewDeliveryMethod(s string) (DeliveryMethod, error) {
	if s == "" {
		return DeliveryStandard, nil
	}
	d := DeliveryMethod(s)
	if !d.IsValid() {
		return "", ErrInvalidDeliveryMethod
	}
	return d, nil
}

// FormatNumber renders an order number such as S20250300042.
func FormatNumber(at time.Time, seq int64) string {
	return fmt.Sprintf("S%s%05d", at.Format("200601"), seq)
}
