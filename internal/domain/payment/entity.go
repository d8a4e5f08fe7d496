package payment

import (
	"time"

	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const signatureFailure = "Signature verification failed"

var (
	ErrInvalidMethod     = errs.Validation("invalid payment method")
	ErrInvalidStatus     = errs.Validation("invalid payment status")
	ErrInvalidAmount     = errs.Validation("payment amount must be positive")
	ErrGatewayMethod     = errs.Validation("gateway payments cannot be recorded manually")
	ErrMissingGatewayRef = errs.Validation("gateway order id is required")
	ErrNotPending        = errs.InvalidState("payment is no longer pending")
	ErrBadSignature      = errs.Signature("invalid payment signature")
	ErrPaymentNotFound   = errs.NotFound("payment not found")
)

type Payment struct {
	id               uuid.UUID
	number           string
	invoiceID        uuid.UUID
	orderID          uuid.UUID
	customerID       uuid.UUID
	amount           decimal.Decimal
	currency         string
	method           Method
	status           Status
	gatewayOrderID   *string
	gatewayPaymentID *string
	gatewaySignature *string
	transactionID    string
	cardLastFour     string
	cardBrand        string
	notes            string
	failureReason    string
	paidAt           *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

type Snapshot struct {
	ID               uuid.UUID
	Number           string
	InvoiceID        uuid.UUID
	OrderID          uuid.UUID
	CustomerID       uuid.UUID
	Amount           decimal.Decimal
	Currency         string
	Method           Method
	Status           Status
	GatewayOrderID   *string
	GatewayPaymentID *string
	GatewaySignature *string
	TransactionID    string
	CardLastFour     string
	CardBrand        string
	Notes            string
	FailureReason    string
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Payer identifies what a payment settles.
type Payer struct {
	InvoiceID  uuid.UUID
	OrderID    uuid.UUID
	CustomerID uuid.UUID
}

// NewGatewayPayment records a pending payment for a remote gateway order.
func NewGatewayPayment(number string, p Payer, amount decimal.Decimal, currency, gatewayOrderID string, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if gatewayOrderID == "" {
		return nil, ErrMissingGatewayRef
	}
	ref := gatewayOrderID
	return &Payment{
		id:             uuid.New(),
		number:         number,
		invoiceID:      p.InvoiceID,
		orderID:        p.OrderID,
		customerID:     p.CustomerID,
		amount:         amount,
		currency:       currency,
		method:         MethodRazorpay,
		status:         StatusPending,
		gatewayOrderID: &ref,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type OfflineDetails struct {
	Method        Method
	TransactionID string
	Notes         string
}

// NewOfflinePayment records money already received, so it starts completed.
func NewOfflinePayment(number string, p Payer, amount decimal.Decimal, currency string, d OfflineDetails, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	method := d.Method
	if method == "" {
		method = MethodCash
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if method == MethodRazorpay {
		return nil, ErrGatewayMethod
	}
	return &Payment{
		id:            uuid.New(),
		number:        number,
		invoiceID:     p.InvoiceID,
		orderID:       p.OrderID,
		customerID:    p.CustomerID,
		amount:        amount,
		currency:      currency,
		method:        method,
		status:        StatusCompleted,
		transactionID: d.TransactionID,
		notes:         d.Notes,
		paidAt:        &now,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPayment(s Snapshot) *Payment {
	return &Payment{
		id:               s.ID,
		number:           s.Number,
		invoiceID:        s.InvoiceID,
		orderID:          s.OrderID,
		customerID:       s.CustomerID,
		amount:           s.Amount,
		currency:         s.Currency,
		method:           s.Method,
		status:           s.Status,
		gatewayOrderID:   s.GatewayOrderID,
		gatewayPaymentID: s.GatewayPaymentID,
		gatewaySignature: s.GatewaySignature,
		transactionID:    s.TransactionID,
		cardLastFour:     s.CardLastFour,
		cardBrand:        s.CardBrand,
		notes:            s.Notes,
		failureReason:    s.FailureReason,
		paidAt:           s.PaidAt,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

func (p *Payment) ID() uuid.UUID              { return p.id }
func (p *Payment) Number() string             { return p.number }
func (p *Payment) InvoiceID() uuid.UUID       { return p.invoiceID }
func (p *Payment) OrderID() uuid.UUID         { return p.orderID }
func (p *Payment) CustomerID() uuid.UUID      { return p.customerID }
func (p *Payment) Amount() decimal.Decimal    { return p.amount }
func (p *Payment) Currency() string           { return p.currency }
func (p *Payment) Method() Method             { return p.method }
func (p *Payment) Status() Status             { return p.status }
func (p *Payment) GatewayOrderID() *string    { return p.gatewayOrderID }
func (p *Payment) GatewayPaymentID() *string  { return p.gatewayPaymentID }
func (p *Payment) GatewaySignature() *string  { return p.gatewaySignature }
func (p *Payment) TransactionID() string      { return p.transactionID }
func (p *Payment) CardLastFour() string       { return p.cardLastFour }
func (p *Payment) CardBrand() string          { return p.cardBrand }
func (p *Payment) Notes() string              { return p.notes }
func (p *Payment) FailureReason() string      { return p.failureReason }
func (p *Payment) PaidAt() *time.Time         { return p.paidAt }
func (p *Payment) CreatedAt() time.Time       { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time       { return p.updatedAt }
func (p *Payment) IsCompleted() bool          { return p.status == StatusCompleted }
func (p *Payment) IsFailed() bool             { return p.status == StatusFailed }
func (p *Payment) BelongsTo(c uuid.UUID) bool { return p.customerID == c }
func (p *Payment) IsPending() bool            { return p.status == StatusPending || p.status == StatusProcessing }

// Capture is what the gateway reports for a captured payment.
type Capture struct {
	PaymentID    string
	Signature    string
	Amount       decimal.Decimal
	Method       string
	CardLastFour string
	CardBrand    string
}

// Complete marks a pending gateway payment as captured with the amount the
// gateway reported.
func (p *Payment) Complete(c Capture, now time.Time) error {
	if !p.IsPending() {
		return ErrNotPending
	}
	if !c.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	paymentID, signature := c.PaymentID, c.Signature
	p.gatewayPaymentID = &paymentID
	p.gatewaySignature = &signature
	p.amount = c.Amount
	p.cardLastFour = c.CardLastFour
	p.cardBrand = c.CardBrand
	p.transactionID = c.PaymentID
	if m := Method(c.Method); m.IsValid() {
		p.method = m
	}
	p.status = StatusCompleted
	p.failureReason = ""
	p.paidAt = &now
	p.updatedAt = now
	return nil
}

// FailSignature records a rejected callback. The invoice is not touched.
func (p *Payment) FailSignature(gatewayPaymentID, signature string, now time.Time) error {
	if !p.IsPending() {
		return ErrNotPending
	}
	p.gatewayPaymentID = &gatewayPaymentID
	p.gatewaySignature = &signature
	p.status = StatusFailed
	p.failureReason = signatureFailure
	p.updatedAt = now
	return nil
}
