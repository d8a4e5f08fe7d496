package response

import (
	"time"

	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID               uuid.UUID  `json:"id"`
	PaymentNumber    string     `json:"payment_number"`
	InvoiceID        uuid.UUID  `json:"invoice_id"`
	OrderID          uuid.UUID  `json:"order_id"`
	CustomerID       uuid.UUID  `json:"customer_id"`
	Amount           string     `json:"amount"`
	Currency         string     `json:"currency"`
	Method           string     `json:"method"`
	Status           string     `json:"status"`
	GatewayOrderID   *string    `json:"gateway_order_id,omitempty"`
	GatewayPaymentID *string    `json:"gateway_payment_id,omitempty"`
	TransactionID    *string    `json:"transaction_id,omitempty"`
	CardLastFour     *string    `json:"card_last_four,omitempty"`
	CardBrand        *string    `json:"card_brand,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	FailureReason    *string    `json:"failure_reason,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// GatewayCheckoutResponse is what the storefront needs to open the gateway
// checkout widget.
type GatewayCheckoutResponse struct {
	PaymentID      uuid.UUID `json:"payment_id"`
	InvoiceID      uuid.UUID `json:"invoice_id"`
	GatewayOrderID string    `json:"razorpay_order_id"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	KeyID          string    `json:"key_id"`
}

type PaymentResultResponse struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	InvoiceID     uuid.UUID `json:"invoice_id"`
	Status        string    `json:"status"`
	InvoiceStatus string    `json:"invoice_status"`
	Replayed      bool      `json:"replayed"`
}

func FromGatewayCheckout(c *commands.GatewayCheckout) *GatewayCheckoutResponse {
	return &GatewayCheckoutResponse{
		PaymentID:      c.PaymentID,
		InvoiceID:      c.InvoiceID,
		GatewayOrderID: c.GatewayOrderID,
		Amount:         c.Amount.StringFixed(2),
		Currency:       c.Currency,
		KeyID:          c.KeyID,
	}
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResultResponse {
	return &PaymentResultResponse{
		PaymentID:     r.PaymentID,
		InvoiceID:     r.InvoiceID,
		Status:        r.Status.String(),
		InvoiceStatus: r.InvoiceStatus.String(),
		Replayed:      r.Replayed,
	}
}

func FromPaymentPage(views []*queries.PaymentView, next *queries.Cursor) (*Page[PaymentResponse], error) {
	items, err := mapAll[queries.PaymentView, PaymentResponse](views)
	if err != nil {
		return nil, err
	}
	return &Page[PaymentResponse]{Items: items, NextCursor: cursorString(next)}, nil
}
