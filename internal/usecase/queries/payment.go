package queries

import (
	"context"
	"time"

	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/queries/payment_mock.go -package=queriesmock

type PaymentReadStore interface {
	List(ctx context.Context, filters PaymentFilters, after *Keyset, limit int32) ([]*PaymentView, error)
}

type PaymentQueries interface {
	List(ctx context.Context, actor shared.Actor, filters PaymentFilters, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error)
}

type paymentQueriesImpl struct {
	repo PaymentReadStore
}

func NewPaymentQueries(repo PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

// List scopes customers to their own payments and vendors to payments
// against their invoices.
func (q *paymentQueriesImpl) List(ctx context.Context, actor shared.Actor, filters PaymentFilters, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error) {
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
	rows, next := nextPage(rows, limit, func(pv *PaymentView) (time.Time, uuid.UUID) { return pv.CreatedAt, pv.ID })
	return rows, next, nil
}
