package repository

import (
	"context"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/repository/invoice.go -package=repositorymock
type InvoiceWriteQueries interface {
	NextInvoiceNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.Invoices) error
	UpdateInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.Invoices) (int64, error)
	GetInvoiceByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Invoices, error)
	GetInvoiceByOrderIDForUpdate(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Invoices, error)
	ListInvoiceItems(ctx context.Context, db sqlc.DBTX, invoiceID uuid.UUID) ([]sqlc.InvoiceItems, error)
	DeleteInvoiceItems(ctx context.Context, db sqlc.DBTX, invoiceID uuid.UUID) error
	CreateInvoiceItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InvoiceItems) error
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceRepository) NextNumber(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	seq, err := r.queries.NextInvoiceNumber(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate invoice number", err)
	}
	return seq, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error {
	if err := r.queries.CreateInvoice(ctx, tx, converter.InvoiceToInfra(inv)); err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return r.insertItems(ctx, tx, inv)
}

func (r *InvoiceRepository) Save(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error {
	affected, err := r.queries.UpdateInvoice(ctx, tx, converter.InvoiceToInfra(inv))
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	if err := r.queries.DeleteInvoiceItems(ctx, tx, inv.ID()); err != nil {
		return infra.WrapRepoErr("failed to delete invoice items", err)
	}
	return r.insertItems(ctx, tx, inv)
}

func (r *InvoiceRepository) insertItems(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error {
	for _, item := range converter.InvoiceItemsToInfra(inv) {
		if err := r.queries.CreateInvoiceItem(ctx, tx, item); err != nil {
			return infra.WrapRepoErr("failed to create invoice item", err)
		}
	}
	return nil
}

func (r *InvoiceRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*invoice.Invoice, error) {
	row, err := r.queries.GetInvoiceByIDForUpdate(ctx, tx, id)
	return r.load(ctx, tx, row, err)
}

func (r *InvoiceRepository) FindByOrderIDForUpdate(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*invoice.Invoice, error) {
	row, err := r.queries.GetInvoiceByOrderIDForUpdate(ctx, tx, orderID)
	return r.load(ctx, tx, row, err)
}

func (r *InvoiceRepository) load(ctx context.Context, tx sqlc.DBTX, row sqlc.Invoices, err error) (*invoice.Invoice, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	items, err := r.queries.ListInvoiceItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoice items", err)
	}
	inv, err := converter.InvoiceToDomain(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert invoice row", err)
	}
	return inv, nil
}
