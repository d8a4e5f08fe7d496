package commands

import (
	"context"
	"time"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound  = errs.NotFound("invoice not found")
	ErrInvoiceForbidden = errs.Forbidden("invoice belongs to another account")
	ErrInvoiceBusy      = errs.Conflict("invoice for this order is being created, please retry")
	ErrPartyNotFound    = errs.NotFound("billing party not found")
)

type InvoiceResult struct {
	InvoiceID uuid.UUID
	Status    invoice.Status
	// Created is false when an existing invoice was returned or rebuilt.
	Created bool
}

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/commands/invoice.go -package=commandsmock
type InvoiceCommands interface {
	CreateFromOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*InvoiceResult, error)
	Post(ctx context.Context, actor shared.Actor, invoiceID uuid.UUID) (*InvoiceResult, error)
}

type invoiceUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy pricing.Policy
	clock  clock.Clock
}

func NewInvoiceCommands(uow shared.UnitOfWork, policy pricing.Policy, clk clock.Clock) InvoiceCommands {
	return &invoiceUseCaseImpl{
		uow:    uow,
		policy: policy,
		clock:  clk,
	}
}

// CreateFromOrder returns the order's invoice. A posted or paid invoice comes
// back unchanged, a draft is rebuilt from the current order lines, and a new
// draft is created when none exists.
func (uc *invoiceUseCaseImpl) CreateFromOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*InvoiceResult, error) {
	var result *InvoiceResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := findOrder(ctx, tx, orderID, false)
		if err != nil {
			return err
		}
		if !actor.Owns(o.CustomerID(), o.VendorID()) {
			return ErrOrderForbidden
		}
		result, err = uc.invoiceOrder(ctx, tx, o, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *invoiceUseCaseImpl) invoiceOrder(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) (*InvoiceResult, error) {
	inv, err := tx.Invoices().FindByOrderIDForUpdate(ctx, tx.DB(), o.ID())
	switch {
	case err == nil:
		if !inv.IsDraft() {
			return &InvoiceResult{InvoiceID: inv.ID(), Status: inv.Status()}, nil
		}
		if err := inv.Rebuild(o, now); err != nil {
			return nil, err
		}
		if err := tx.Invoices().Save(ctx, tx.DB(), inv); err != nil {
			return nil, err
		}
		return &InvoiceResult{InvoiceID: inv.ID(), Status: inv.Status()}, nil
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	parties, err := loadParties(ctx, tx, o)
	if err != nil {
		return nil, err
	}
	seq, err := tx.Invoices().NextNumber(ctx, tx.DB())
	if err != nil {
		return nil, err
	}
	inv, err = invoice.NewFromOrder(invoice.FormatNumber(now, seq), o, parties, uc.policy, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Invoices().Create(ctx, tx.DB(), inv); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrInvoiceBusy
		}
		return nil, err
	}
	return &InvoiceResult{InvoiceID: inv.ID(), Status: inv.Status(), Created: true}, nil
}

func (uc *invoiceUseCaseImpl) Post(ctx context.Context, actor shared.Actor, invoiceID uuid.UUID) (*InvoiceResult, error) {
	if actor.IsCustomer() {
		return nil, ErrVendorOnly
	}

	var result *InvoiceResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := findInvoice(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if !actor.Owns(inv.CustomerID(), inv.VendorID()) {
			return ErrInvoiceForbidden
		}
		if err := inv.Post(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Invoices().Save(ctx, tx.DB(), inv); err != nil {
			return err
		}
		result = &InvoiceResult{InvoiceID: inv.ID(), Status: inv.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// rebuildDraftInvoice refreshes a draft invoice after the order totals moved.
// Orders without an invoice, or with an issued one, are left alone.
func rebuildDraftInvoice(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	inv, err := tx.Invoices().FindByOrderIDForUpdate(ctx, tx.DB(), o.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if !inv.IsDraft() {
		return nil
	}
	if err := inv.Rebuild(o, now); err != nil {
		return err
	}
	return tx.Invoices().Save(ctx, tx.DB(), inv)
}

func findInvoice(ctx context.Context, tx shared.Tx, id uuid.UUID) (*invoice.Invoice, error) {
	inv, err := tx.Invoices().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func loadParties(ctx context.Context, tx shared.Tx, o *order.Order) (invoice.Parties, error) {
	vendor, err := loadParty(ctx, tx, o.VendorID())
	if err != nil {
		return invoice.Parties{}, err
	}
	customer, err := loadParty(ctx, tx, o.CustomerID())
	if err != nil {
		return invoice.Parties{}, err
	}
	return invoice.Parties{Vendor: vendor, Customer: customer}, nil
}

func loadParty(ctx context.Context, tx shared.Tx, id uuid.UUID) (invoice.Party, error) {
	snap, err := tx.Reads().PartyByUserID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return invoice.Party{}, ErrPartyNotFound
		}
		return invoice.Party{}, err
	}
	return invoice.Party{
		Name:        snap.Name,
		CompanyName: snap.CompanyName,
		Email:       snap.Email,
		GSTIN:       snap.GSTIN,
		Address:     snap.Address,
	}, nil
}
