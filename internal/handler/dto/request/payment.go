package request

import (
	"strings"

	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateGatewayOrderRequest struct {
	InvoiceID uuid.UUID `json:"invoice_id" binding:"required"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id" binding:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature        string `json:"razorpay_signature" binding:"required"`
}

func (r VerifyPaymentRequest) ToInput() commands.VerifyPaymentInput {
	return commands.VerifyPaymentInput{
		GatewayOrderID:   r.GatewayOrderID,
		GatewayPaymentID: r.GatewayPaymentID,
		Signature:        r.Signature,
	}
}

type RecordCashRequest struct {
	InvoiceID     uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"payment_method" binding:"omitempty,oneof=cash bank_transfer"`
	TransactionID string          `json:"transaction_id" binding:"max=100"`
	Notes         string          `json:"notes" binding:"max=1000"`
}

func (r RecordCashRequest) ToInput(idempotencyKey *uuid.UUID) commands.RecordCashInput {
	return commands.RecordCashInput{
		InvoiceID:      r.InvoiceID,
		Amount:         r.Amount,
		Method:         r.Method,
		TransactionID:  strings.TrimSpace(r.TransactionID),
		Notes:          strings.TrimSpace(r.Notes),
		IdempotencyKey: idempotencyKey,
	}
}

type ListPaymentsQuery struct {
	PageQuery
	Status     *string `form:"status" binding:"omitempty,oneof=pending processing completed failed refunded"`
	InvoiceID  *string `form:"invoice_id" binding:"omitempty,uuid"`
	CustomerID *string `form:"customer_id" binding:"omitempty,uuid"`
	VendorID   *string `form:"vendor_id" binding:"omitempty,uuid"`
}

func (q ListPaymentsQuery) ToFilters() queries.PaymentFilters {
	return queries.PaymentFilters{
		Status:     q.Status,
		InvoiceID:  optionalUUID(q.InvoiceID),
		CustomerID: optionalUUID(q.CustomerID),
		VendorID:   optionalUUID(q.VendorID),
	}
}
