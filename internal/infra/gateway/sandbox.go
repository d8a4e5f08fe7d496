package gateway

import (
	"context"
	"strings"
	"sync"

	"rental-core/internal/domain/payment"
	"rental-core/internal/pkg/config"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownSandboxOrder = errs.New("sandbox order not found")

// Sandbox fabricates gateway orders in memory. Any payment id against a known
// order is reported as captured for the full order amount, and signatures are
// checked with the configured secret exactly like the live gateway.
type Sandbox struct {
	keyID     string
	keySecret string

	mu     sync.Mutex
	orders map[string]commands.GatewayOrder
}

func NewSandbox(cfg config.GatewayConfig) *Sandbox {
	return &Sandbox{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		orders:    make(map[string]commands.GatewayOrder),
	}
}

func (s *Sandbox) CreateOrder(_ context.Context, amount decimal.Decimal, currency, receipt string) (*commands.GatewayOrder, error) {
	o := commands.GatewayOrder{
		ID:       "order_" + sandboxID(),
		Amount:   payment.FromMinorUnits(payment.ToMinorUnits(amount)),
		Currency: currency,
		Receipt:  receipt,
	}
	s.mu.Lock()
	s.orders[o.ID] = o
	s.mu.Unlock()
	return &o, nil
}

func (s *Sandbox) FetchPayment(_ context.Context, gatewayOrderID, paymentID string) (*commands.GatewayPayment, error) {
	s.mu.Lock()
	o, ok := s.orders[gatewayOrderID]
	s.mu.Unlock()
	if !ok {
		return nil, errs.Wrapf(ErrUnknownSandboxOrder, "order %s", gatewayOrderID)
	}
	return &commands.GatewayPayment{
		ID:          paymentID,
		OrderID:     o.ID,
		Status:      "captured",
		Method:      payment.MethodCard.String(),
		Amount:      o.Amount,
		CardLast4:   "1111",
		CardNetwork: "Visa",
	}, nil
}

func (s *Sandbox) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return payment.VerifySignature(s.keySecret, gatewayOrderID, gatewayPaymentID, signature)
}

func (s *Sandbox) KeyID() string {
	return s.keyID
}

func sandboxID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

var _ commands.PaymentGateway = (*Sandbox)(nil)
