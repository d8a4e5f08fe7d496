package invoice

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusSent          Status = "sent"
	StatusPosted        Status = "posted"
	StatusPaid          Status = "paid"
	StatusPartiallyPaid Status = "partially_paid"
	StatusCancelled     Status = "cancelled"
	StatusRefunded      Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPosted, StatusPaid, StatusPartiallyPaid, StatusCancelled, StatusRefunded:
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

// Party is a point-in-time copy of vendor or customer details. Later profile
// edits never change an issued invoice.
type Party struct {
	Name        string
	CompanyName string
	Email       string
	GSTIN       string
	Address     string
}

type Parties struct {
	Vendor   Party
	Customer Party
}

// FormatNumber renders an invoice number such as INV/2025/00042.
func FormatNumber(at time.Time, seq int64) string {
	return fmt.Sprintf("INV/%d/%05d", at.Year(), seq)
}
