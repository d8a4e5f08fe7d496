package repository

import (
	"context"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order.go -package=repositorymock
type OrderWriteQueries interface {
	NextOrderNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.OrderRowParams) error
	UpdateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.OrderRowParams) (int64, error)
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOpenCartByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (sqlc.Orders, error)
	ListOverdueOrders(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]sqlc.Orders, error)
	ListOrdersDueForReturn(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersDueForReturnParams) ([]sqlc.Orders, error)
	ListOrderItemsByOrderID(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	UpsertOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.OrderItems) error
	DeleteOrderItemsNotIn(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteOrderItemsNotInParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) NextNumber(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	seq, err := r.queries.NextOrderNumber(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate order number", err)
	}
	return seq, nil
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToInfra(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return r.writeItems(ctx, tx, o)
}

// Save rewrites the header and brings the stored lines in line with o:
// present lines are upserted, dropped lines deleted.
func (r *OrderRepository) Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	affected, err := r.queries.UpdateOrder(ctx, tx, converter.OrderToInfra(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}

	keep := make([]uuid.UUID, 0, len(o.Items()))
	for _, it := range o.Items() {
		keep = append(keep, it.ID())
	}
	if err := r.queries.DeleteOrderItemsNotIn(ctx, tx, sqlc.DeleteOrderItemsNotInParams{OrderID: o.ID(), Keep: keep}); err != nil {
		return infra.WrapRepoErr("failed to delete removed order items", err)
	}
	return r.writeItems(ctx, tx, o)
}

func (r *OrderRepository) writeItems(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	for _, it := range o.Items() {
		if err := r.queries.UpsertOrderItem(ctx, tx, converter.OrderItemToInfra(it)); err != nil {
			return infra.WrapRepoErr("failed to write order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, tx, id)
	return r.load(ctx, tx, row, err)
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, tx, id)
	return r.load(ctx, tx, row, err)
}

// FindOpenCart returns the customer's locked quotation, or a KindNotFound
// error when there is none.
func (r *OrderRepository) FindOpenCart(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOpenCartByCustomer(ctx, tx, customerID)
	return r.load(ctx, tx, row, err)
}

func (r *OrderRepository) ListOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) ([]*order.Order, error) {
	rows, err := r.queries.ListOverdueOrders(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue orders", err)
	}
	return r.loadAll(ctx, tx, rows)
}

func (r *OrderRepository) ListDueForReturn(ctx context.Context, tx sqlc.DBTX, from, to time.Time) ([]*order.Order, error) {
	rows, err := r.queries.ListOrdersDueForReturn(ctx, tx, sqlc.ListOrdersDueForReturnParams{
		From: pgconv.TimeToPgtype(from),
		To:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders due for return", err)
	}
	return r.loadAll(ctx, tx, rows)
}

func (r *OrderRepository) load(ctx context.Context, tx sqlc.DBTX, row sqlc.Orders, err error) (*order.Order, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	items, err := r.queries.ListOrderItemsByOrderID(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	o, err := converter.OrderToDomain(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order row", err)
	}
	return o, nil
}

func (r *OrderRepository) loadAll(ctx context.Context, tx sqlc.DBTX, rows []sqlc.Orders) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := r.load(ctx, tx, row, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
