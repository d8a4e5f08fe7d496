package reservation

import "rental-core/internal/pkg/errs"

type Status string

const (
	StatusActive    Status = "active"
	StatusReleased  Status = "released"
	StatusFulfilled Status = "fulfilled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusReleased, StatusFulfilled, StatusExpired:
		return true
	default:
		return false
	}
}

// StockStatus tracks where the held units physically are.
type StockStatus string

const (
	StockReserved     StockStatus = "reserved"
	StockWithCustomer StockStatus = "with_customer"
	StockReturned     StockStatus = "returned"
)

func (s StockStatus) String() string {
	return string(s)
}

func (s StockStatus) IsValid() bool {
	switch s {
	case StockReserved, StockWithCustomer, StockReturned:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidStatus      = errs.Validation("invalid reservation status")
	ErrInvalidStockStatus = errs.Validation("invalid reservation stock status")
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func NewStockStatus(s string) (StockStatus, error) {
	st := StockStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidStockStatus
	}
	return st, nil
}
