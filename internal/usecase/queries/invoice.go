package queries

import (
	"context"
	"time"

	"rental-core/internal/infra"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound = errs.NotFound("invoice not found")
	ErrInvoiceAccess   = errs.Forbidden("invoice access denied")
)

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/queries/invoice_mock.go -package=queriesmock

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, filters InvoiceFilters, after *Keyset, limit int32) ([]*InvoiceView, error)
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, actor shared.Actor, filters InvoiceFilters, cursor *Cursor, limit int) ([]*InvoiceView, *Cursor, error)
}

type invoiceQueriesImpl struct {
	repo InvoiceReadStore
}

func NewInvoiceQueries(repo InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{repo: repo}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvoiceView, error) {
	iv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	if !actor.Owns(iv.CustomerID, iv.VendorID) {
		return nil, ErrInvoiceAccess
	}
	return iv, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context, actor shared.Actor, filters InvoiceFilters, cursor *Cursor, limit int) ([]*InvoiceView, *Cursor, error) {
	switch {
	case actor.IsCustomer():
		filters.CustomerID = &actor.ID
	case actor.IsVendor():
		filters.VendorID = &actor.ID
	}

	limit = ValidateLimit(limit)
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.repo.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := nextPage(rows, limit, func(iv *InvoiceView) (time.Time, uuid.UUID) { return iv.CreatedAt, iv.ID })
	return rows, next, nil
}
