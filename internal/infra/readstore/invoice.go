package readstore

import (
	"context"

	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/readstore/invoice.go -package=readstoremock
type InvoiceReadQueries interface {
	GetInvoiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Invoices, error)
	ListInvoices(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInvoicesParams) ([]sqlc.Invoices, error)
	ListInvoiceItems(ctx context.Context, db sqlc.DBTX, invoiceID uuid.UUID) ([]sqlc.InvoiceItems, error)
}

type InvoiceReadStore struct {
	queries InvoiceReadQueries
	db      sqlc.DBTX
}

func NewInvoiceReadStore(queries InvoiceReadQueries, db sqlc.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row, err := r.queries.GetInvoiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get invoice view by id", err)
	}
	iv, err := toInvoiceView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode invoice view", err)
	}

	itemRows, err := r.queries.ListInvoiceItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoice items", err)
	}
	iv.Items = make([]*queries.InvoiceItemView, len(itemRows))
	for i, it := range itemRows {
		var n converter.Numerics
		iv.Items[i] = &queries.InvoiceItemView{
			ID:          it.ID,
			ProductID:   pgconv.UUIDPtrFromPgtype(it.ProductID),
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   n.Dec(it.UnitPrice),
			TaxRate:     n.Dec(it.TaxRate),
			Duration:    it.Duration,
			Subtotal:    n.Dec(it.Subtotal),
			TaxAmount:   n.Dec(it.TaxAmount),
			CGST:        n.Dec(it.Cgst),
			SGST:        n.Dec(it.Sgst),
			IGST:        n.Dec(it.Igst),
			LineTotal:   n.Dec(it.LineTotal),
			IsDeposit:   it.IsDeposit,
		}
		if n.Err != nil {
			return nil, infra.WrapRepoErr("failed to decode invoice item view", n.Err)
		}
	}
	return iv, nil
}

// List returns invoice headers without lines.
func (r *InvoiceReadStore) List(ctx context.Context, filters queries.InvoiceFilters, after *queries.Keyset, limit int32) ([]*queries.InvoiceView, error) {
	params := sqlc.ListInvoicesParams{
		CustomerID: pgconv.UUIDPtrToPgtype(filters.CustomerID),
		VendorID:   pgconv.UUIDPtrToPgtype(filters.VendorID),
		Status:     pgconv.StringPtrToPgtype(filters.Status),
		Limit:      limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListInvoices(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	result := make([]*queries.InvoiceView, len(rows))
	for i, row := range rows {
		result[i], err = toInvoiceView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode invoice view", err)
		}
	}
	return result, nil
}

func toInvoiceView(row sqlc.Invoices) (*queries.InvoiceView, error) {
	var n converter.Numerics
	iv := &queries.InvoiceView{
		ID:                row.ID,
		InvoiceNumber:     row.InvoiceNumber,
		OrderID:           row.OrderID,
		CustomerID:        row.CustomerID,
		VendorID:          row.VendorID,
		Status:            row.Status,
		InvoiceDate:       pgconv.TimeFromPgtype(row.InvoiceDate),
		DueDate:           pgconv.TimePtrFromPgtype(row.DueDate),
		RentalStart:       pgconv.TimePtrFromPgtype(row.RentalStart),
		RentalEnd:         pgconv.TimePtrFromPgtype(row.RentalEnd),
		VendorName:        row.VendorName,
		VendorCompanyName: pgconv.StringPtrFromPgtype(row.VendorCompanyName),
		VendorGSTIN:       pgconv.StringPtrFromPgtype(row.VendorGstin),
		VendorAddress:     pgconv.StringPtrFromPgtype(row.VendorAddress),
		CustomerName:      row.CustomerName,
		CustomerEmail:     pgconv.StringPtrFromPgtype(row.CustomerEmail),
		CustomerGSTIN:     pgconv.StringPtrFromPgtype(row.CustomerGstin),
		BillingAddress:    pgconv.StringPtrFromPgtype(row.BillingAddress),
		DeliveryAddress:   pgconv.StringPtrFromPgtype(row.DeliveryAddress),
		TaxRate:           n.Dec(row.TaxRate),
		InterState:        row.InterState,
		Subtotal:          n.Dec(row.Subtotal),
		TaxAmount:         n.Dec(row.TaxAmount),
		CGST:              n.Dec(row.Cgst),
		SGST:              n.Dec(row.Sgst),
		IGST:              n.Dec(row.Igst),
		DiscountAmount:    n.Dec(row.DiscountAmount),
		SecurityDeposit:   n.Dec(row.SecurityDeposit),
		DeliveryCharges:   n.Dec(row.DeliveryCharges),
		LateFees:          n.Dec(row.LateFees),
		TotalAmount:       n.Dec(row.TotalAmount),
		AmountPaid:        n.Dec(row.AmountPaid),
		AmountDue:         n.Dec(row.AmountDue),
		PostedAt:          pgconv.TimePtrFromPgtype(row.PostedAt),
		PaidAt:            pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if n.Err != nil {
		return nil, n.Err
	}
	return iv, nil
}
