package commands

import (
	"context"
	"encoding/json"
	"time"

	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKindEmail = "email"

// Outbox topics published to the broker.
const (
	TopicOrderConfirmed  = "order_confirmed"
	TopicReturnReminder  = "return_reminder"
	TopicPaymentReceived = "payment_received"
)

type orderEvent struct {
	OrderID     uuid.UUID  `json:"order_id"`
	OrderNumber string     `json:"order_number"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	VendorID    uuid.UUID  `json:"vendor_id"`
	Status      string     `json:"status"`
	RentalEnd   *time.Time `json:"rental_end,omitempty"`
}

type paymentEvent struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	PaymentNumber string    `json:"payment_number"`
	InvoiceID     uuid.UUID `json:"invoice_id"`
	OrderID       uuid.UUID `json:"order_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	InvoiceStatus string    `json:"invoice_status"`
}

// enqueue writes an outbox row in the caller's transaction.
func enqueue(ctx context.Context, tx shared.Tx, topic string, payload any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topic, body, runAt)
}
