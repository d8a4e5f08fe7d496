package commands

import (
	"context"
	"time"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const endpointRecordCash = "POST /api/payments/cash"

var (
	ErrNothingDue         = errs.InvalidState("invoice has no amount due")
	ErrGatewayUnavailable = errs.New("payment gateway request failed")
	ErrGatewayMismatch    = errs.Signature("gateway payment does not belong to this order")
	ErrNotGatewayPayment  = errs.Validation("use the gateway checkout for online payment methods")
)

type GatewayCheckout struct {
	PaymentID      uuid.UUID
	InvoiceID      uuid.UUID
	GatewayOrderID string
	Amount         decimal.Decimal
	Currency       string
	KeyID          string
}

type VerifyPaymentInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type RecordCashInput struct {
	InvoiceID      uuid.UUID
	Amount         decimal.Decimal
	Method         string
	TransactionID  string
	Notes          string
	IdempotencyKey *uuid.UUID
}

type PaymentResult struct {
	PaymentID     uuid.UUID
	InvoiceID     uuid.UUID
	Status        payment.Status
	InvoiceStatus invoice.Status
	Replayed      bool
}

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock
type PaymentCommands interface {
	CreateGatewayOrder(ctx context.Context, actor shared.Actor, invoiceID uuid.UUID) (*GatewayCheckout, error)
	Verify(ctx context.Context, actor shared.Actor, in VerifyPaymentInput) (*PaymentResult, error)
	RecordCash(ctx context.Context, actor shared.Actor, in RecordCashInput) (*PaymentResult, error)
}

type paymentUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	policy  pricing.Policy
	clock   clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, policy pricing.Policy, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		policy:  policy,
		clock:   clk,
	}
}

// CreateGatewayOrder opens a remote order for the invoice's amount due and
// records a pending payment against it. The gateway call runs outside any
// transaction.
func (uc *paymentUseCaseImpl) CreateGatewayOrder(ctx context.Context, actor shared.Actor, invoiceID uuid.UUID) (*GatewayCheckout, error) {
	var (
		due    decimal.Decimal
		number string
		payer  payment.Payer
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := findInvoice(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if err := payableBy(actor, inv); err != nil {
			return err
		}
		due, number = inv.AmountDue(), inv.Number()
		payer = payment.Payer{InvoiceID: inv.ID(), OrderID: inv.OrderID(), CustomerID: inv.CustomerID()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	gwOrder, err := uc.gateway.CreateOrder(ctx, due, uc.policy.Currency, payment.Receipt(number))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create gateway order"), ErrGatewayUnavailable)
	}

	var p *payment.Payment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		seq, err := tx.Payments().NextNumber(ctx, tx.DB())
		if err != nil {
			return err
		}
		p, err = payment.NewGatewayPayment(payment.FormatNumber(now, seq), payer, gwOrder.Amount, gwOrder.Currency, gwOrder.ID, now)
		if err != nil {
			return err
		}
		return tx.Payments().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}

	return &GatewayCheckout{
		PaymentID:      p.ID(),
		InvoiceID:      payer.InvoiceID,
		GatewayOrderID: gwOrder.ID,
		Amount:         gwOrder.Amount,
		Currency:       gwOrder.Currency,
		KeyID:          uc.gateway.KeyID(),
	}, nil
}

// Verify checks the checkout callback signature and settles the invoice with
// the amount the gateway captured. A payment already completed for the
// gateway order is returned as a replay. A bad signature is recorded as a
// failed payment before the error is returned.
func (uc *paymentUseCaseImpl) Verify(ctx context.Context, actor shared.Actor, in VerifyPaymentInput) (*PaymentResult, error) {
	if !uc.gateway.VerifySignature(in.GatewayOrderID, in.GatewayPaymentID, in.Signature) {
		if err := uc.recordBadSignature(ctx, actor, in); err != nil {
			return nil, err
		}
		return nil, payment.ErrBadSignature
	}

	captured, err := uc.gateway.FetchPayment(ctx, in.GatewayOrderID, in.GatewayPaymentID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fetch gateway payment"), ErrGatewayUnavailable)
	}
	if captured.OrderID != "" && captured.OrderID != in.GatewayOrderID {
		return nil, ErrGatewayMismatch
	}

	var result PaymentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		p, err := findGatewayPayment(ctx, tx, in.GatewayOrderID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && !p.BelongsTo(actor.ID) {
			return ErrInvoiceForbidden
		}
		if p.IsCompleted() {
			inv, err := findInvoice(ctx, tx, p.InvoiceID())
			if err != nil {
				return err
			}
			result = newPaymentResult(p, inv)
			result.Replayed = true
			return nil
		}

		if err := p.Complete(payment.Capture{
			PaymentID:    in.GatewayPaymentID,
			Signature:    in.Signature,
			Amount:       captured.Amount,
			Method:       captured.Method,
			CardLastFour: captured.CardLast4,
			CardBrand:    captured.CardNetwork,
		}, now); err != nil {
			return err
		}
		if err := tx.Payments().Save(ctx, tx.DB(), p); err != nil {
			return err
		}
		inv, err := settleInvoice(ctx, tx, p, now)
		if err != nil {
			return err
		}
		result = newPaymentResult(p, inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *paymentUseCaseImpl) recordBadSignature(ctx context.Context, actor shared.Actor, in VerifyPaymentInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findGatewayPayment(ctx, tx, in.GatewayOrderID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && !p.BelongsTo(actor.ID) {
			return ErrInvoiceForbidden
		}
		if !p.IsPending() {
			return nil
		}
		if err := p.FailSignature(in.GatewayPaymentID, in.Signature, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Payments().Save(ctx, tx.DB(), p)
	})
}

// RecordCash books an offline payment taken by the vendor. A repeated
// Idempotency-Key returns the first payment instead of booking a second one.
func (uc *paymentUseCaseImpl) RecordCash(ctx context.Context, actor shared.Actor, in RecordCashInput) (*PaymentResult, error) {
	if actor.IsCustomer() {
		return nil, ErrVendorOnly
	}
	method := payment.MethodCash
	if in.Method != "" {
		m, err := payment.NewMethod(in.Method)
		if err != nil {
			return nil, err
		}
		if !m.IsOffline() {
			return nil, ErrNotGatewayPayment
		}
		method = m
	}
	if !in.Amount.IsPositive() {
		return nil, payment.ErrInvalidAmount
	}
	req := newIdempotentRequest(in.IdempotencyKey, actor.ID, endpointRecordCash, struct {
		InvoiceID     uuid.UUID
		Amount        string
		Method        string
		TransactionID string
	}{in.InvoiceID, in.Amount.StringFixed(2), method.String(), in.TransactionID})

	var result PaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		replayed, err := req.claim(ctx, tx, now)
		if err != nil {
			return err
		}
		if replayed != nil {
			p, err := tx.Payments().FindByID(ctx, tx.DB(), *replayed)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return payment.ErrPaymentNotFound
				}
				return err
			}
			inv, err := findInvoice(ctx, tx, p.InvoiceID())
			if err != nil {
				return err
			}
			result = newPaymentResult(p, inv)
			result.Replayed = true
			return nil
		}

		inv, err := findInvoice(ctx, tx, in.InvoiceID)
		if err != nil {
			return err
		}
		if !actor.Owns(inv.CustomerID(), inv.VendorID()) {
			return ErrInvoiceForbidden
		}
		seq, err := tx.Payments().NextNumber(ctx, tx.DB())
		if err != nil {
			return err
		}
		p, err := payment.NewOfflinePayment(payment.FormatNumber(now, seq), payment.Payer{
			InvoiceID:  inv.ID(),
			OrderID:    inv.OrderID(),
			CustomerID: inv.CustomerID(),
		}, in.Amount, uc.policy.Currency, payment.OfflineDetails{
			Method:        method,
			TransactionID: in.TransactionID,
			Notes:         in.Notes,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			return err
		}
		inv, err = applyToInvoice(ctx, tx, inv, p, now)
		if err != nil {
			return err
		}
		if err := req.complete(ctx, tx, p.ID()); err != nil {
			return err
		}
		result = newPaymentResult(p, inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// settleInvoice applies a completed payment to its invoice.
func settleInvoice(ctx context.Context, tx shared.Tx, p *payment.Payment, now time.Time) (*invoice.Invoice, error) {
	inv, err := findInvoice(ctx, tx, p.InvoiceID())
	if err != nil {
		return nil, err
	}
	return applyToInvoice(ctx, tx, inv, p, now)
}

// applyToInvoice adds p to the invoice's paid amount. The payment that
// settles the invoice confirms a sale order and takes its units out of stock;
// ConfirmPayment reports false on any later call so that happens once.
// Only offline amounts are held to the amount due; a gateway capture has
// already been taken from the customer.
func applyToInvoice(ctx context.Context, tx shared.Tx, inv *invoice.Invoice, p *payment.Payment, now time.Time) (*invoice.Invoice, error) {
	apply := inv.ApplyPayment
	if p.GatewayOrderID() == nil {
		apply = inv.ApplyOfflinePayment
	}
	settled, err := apply(p.Amount(), now)
	if err != nil {
		return nil, err
	}
	if err := tx.Invoices().Save(ctx, tx.DB(), inv); err != nil {
		return nil, err
	}

	if settled {
		o, err := findOrder(ctx, tx, inv.OrderID(), true)
		if err != nil {
			return nil, err
		}
		if o.ConfirmPayment(now) {
			if err := consumeOrder(ctx, tx, o, now); err != nil {
				return nil, err
			}
			if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
				return nil, err
			}
		}
	}

	event := paymentEvent{
		PaymentID:     p.ID(),
		PaymentNumber: p.Number(),
		InvoiceID:     inv.ID(),
		OrderID:       inv.OrderID(),
		CustomerID:    inv.CustomerID(),
		Amount:        p.Amount().StringFixed(2),
		Currency:      p.Currency(),
		InvoiceStatus: inv.Status().String(),
	}
	if err := enqueue(ctx, tx, TopicPaymentReceived, event, now); err != nil {
		return nil, err
	}
	return inv, nil
}

func payableBy(actor shared.Actor, inv *invoice.Invoice) error {
	if !actor.IsAdmin() && actor.ID != inv.CustomerID() {
		return ErrInvoiceForbidden
	}
	switch inv.Status() {
	case invoice.StatusPaid:
		return invoice.ErrAlreadyPaid
	case invoice.StatusCancelled, invoice.StatusRefunded:
		return invoice.ErrNotPayable
	}
	if !inv.AmountDue().IsPositive() {
		return ErrNothingDue
	}
	return nil
}

func findGatewayPayment(ctx context.Context, tx shared.Tx, gatewayOrderID string) (*payment.Payment, error) {
	p, err := tx.Payments().FindByGatewayOrderIDForUpdate(ctx, tx.DB(), gatewayOrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func newPaymentResult(p *payment.Payment, inv *invoice.Invoice) PaymentResult {
	return PaymentResult{
		PaymentID:     p.ID(),
		InvoiceID:     inv.ID(),
		Status:        p.Status(),
		InvoiceStatus: inv.Status(),
	}
}
