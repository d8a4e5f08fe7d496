package commands

import (
	"context"

	"rental-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// GatewayOrder is a remote order the customer pays against at checkout.
type GatewayOrder struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
	Receipt  string
}

// GatewayPayment is the gateway's view of a captured payment.
type GatewayPayment struct {
	ID          string
	OrderID     string
	Status      string
	Method      string
	Amount      decimal.Decimal
	CardLast4   string
	CardNetwork string
}

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*GatewayOrder, error)
	// FetchPayment returns the captured payment paymentID made against gatewayOrderID.
	FetchPayment(ctx context.Context, gatewayOrderID, paymentID string) (*GatewayPayment, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
	KeyID() string
}

// NotificationPublisher delivers one outbox job to the message broker.
type NotificationPublisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
}
