package payment

import (
	"fmt"
	"time"
)

type Method string

const (
	MethodRazorpay     Method = "razorpay"
	MethodCard         Method = "card"
	MethodUPI          Method = "upi"
	MethodNetBanking   Method = "netbanking"
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodRazorpay, MethodCard, MethodUPI, MethodNetBanking, MethodCash, MethodBankTransfer:
		return true
	default:
		return false
	}
}

// IsOffline reports whether the method is recorded by staff rather than
// captured through the gateway.
func (m Method) IsOffline() bool {
	return m == MethodCash || m == MethodBankTransfer
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded:
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

// FormatNumber renders a payment number such as PAY20250600042.
func FormatNumber(at time.Time, seq int64) string {
	return fmt.Sprintf("PAY%s%05d", at.Format("200601"), seq)
}

// Receipt is the merchant reference sent to the gateway for an invoice.
func Receipt(invoiceNumber string) string {
	return "inv_" + invoiceNumber
}
