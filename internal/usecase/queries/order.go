package queries

import (
	"context"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound    = errs.NotFound("order not found")
	ErrOrderAccess      = errs.Forbidden("order access denied")
	ErrVendorViewAccess = errs.Forbidden("only vendors and admins can view rental operations")
	ErrInvalidDays      = errs.Validation("days must be between 1 and 30")
)

const (
	DefaultUpcomingReturnDays = 1
	MaxUpcomingReturnDays     = 30
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order_mock.go -package=queriesmock

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindOpenCart(ctx context.Context, customerID uuid.UUID) (*OrderView, error)
	List(ctx context.Context, filters OrderFilters, after *Keyset, limit int32) ([]*OrderView, error)
	ListByStatus(ctx context.Context, vendorID *uuid.UUID, statuses []order.Status, endBefore, endAfter *time.Time) ([]*OrderView, error)
}

type OrderQueries interface {
	GetCart(ctx context.Context, actor shared.Actor) (*CartView, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, actor shared.Actor, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	PendingPickups(ctx context.Context, actor shared.Actor) ([]*OrderView, error)
	UpcomingReturns(ctx context.Context, actor shared.Actor, days int) ([]*OrderView, error)
	Overdue(ctx context.Context, actor shared.Actor) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	repo  OrderReadStore
	clock clock.Clock
}

func NewOrderQueries(repo OrderReadStore, clk clock.Clock) OrderQueries {
	return &orderQueriesImpl{repo: repo, clock: clk}
}

func (q *orderQueriesImpl) GetCart(ctx context.Context, actor shared.Actor) (*CartView, error) {
	ov, err := q.repo.FindOpenCart(ctx, actor.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CartView{Subtotal: decimal.Zero, TaxAmount: decimal.Zero, TotalAmount: decimal.Zero}, nil
		}
		return nil, err
	}
	q.present(actor, ov)
	return &CartView{
		Order:       ov,
		ItemCount:   len(ov.Items),
		Subtotal:    ov.Subtotal,
		TaxAmount:   ov.TaxAmount,
		TotalAmount: ov.TotalAmount,
	}, nil
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error) {
	ov, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !actor.Owns(ov.CustomerID, ov.VendorID) {
		return nil, ErrOrderAccess
	}
	q.present(actor, ov)
	return ov, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, actor shared.Actor, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
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
	rows, next := nextPage(rows, limit, func(ov *OrderView) (time.Time, uuid.UUID) { return ov.CreatedAt, ov.ID })
	for _, ov := range rows {
		q.present(actor, ov)
	}
	return rows, next, nil
}

func (q *orderQueriesImpl) PendingPickups(ctx context.Context, actor shared.Actor) ([]*OrderView, error) {
	vendorID, err := vendorScope(actor)
	if err != nil {
		return nil, err
	}
	statuses := []order.Status{order.StatusSaleOrder, order.StatusConfirmed}
	return q.listByStatus(ctx, actor, vendorID, statuses, nil, nil)
}

func (q *orderQueriesImpl) UpcomingReturns(ctx context.Context, actor shared.Actor, days int) ([]*OrderView, error) {
	vendorID, err := vendorScope(actor)
	if err != nil {
		return nil, err
	}
	if days == 0 {
		days = DefaultUpcomingReturnDays
	}
	if days < 1 || days > MaxUpcomingReturnDays {
		return nil, ErrInvalidDays
	}
	now := q.clock.Now()
	until := now.AddDate(0, 0, days)
	statuses := []order.Status{order.StatusPickedUp, order.StatusActive}
	return q.listByStatus(ctx, actor, vendorID, statuses, &until, &now)
}

func (q *orderQueriesImpl) Overdue(ctx context.Context, actor shared.Actor) ([]*OrderView, error) {
	vendorID, err := vendorScope(actor)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	statuses := []order.Status{order.StatusPickedUp, order.StatusActive, order.StatusLate}
	return q.listByStatus(ctx, actor, vendorID, statuses, &now, nil)
}

func (q *orderQueriesImpl) listByStatus(ctx context.Context, actor shared.Actor, vendorID *uuid.UUID, statuses []order.Status, endBefore, endAfter *time.Time) ([]*OrderView, error) {
	rows, err := q.repo.ListByStatus(ctx, vendorID, statuses, endBefore, endAfter)
	if err != nil {
		return nil, err
	}
	for _, ov := range rows {
		q.present(actor, ov)
	}
	return rows, nil
}

// present derives the late flag and hides vendor-only fields from customers.
func (q *orderQueriesImpl) present(actor shared.Actor, ov *OrderView) {
	status := order.Status(ov.Status)
	ov.IsLate = status == order.StatusLate ||
		(status.IsOut() && ov.RentalEnd != nil && q.clock.Now().After(*ov.RentalEnd))
	if actor.IsCustomer() {
		ov.InternalNotes = nil
	}
}

// vendorScope returns the vendor filter for rental operation views: the
// vendor's own id, or nil for admins who see every vendor.
func vendorScope(actor shared.Actor) (*uuid.UUID, error) {
	switch {
	case actor.IsAdmin():
		return nil, nil
	case actor.IsVendor():
		id := actor.ID
		return &id, nil
	default:
		return nil, ErrVendorViewAccess
	}
}
