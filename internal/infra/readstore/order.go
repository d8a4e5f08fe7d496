package readstore

import (
	"context"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order.go -package=readstoremock
type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOpenCartViewByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (sqlc.Orders, error)
	ListOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersParams) ([]sqlc.Orders, error)
	ListVendorOrdersByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVendorOrdersByStatusParams) ([]sqlc.Orders, error)
	ListOrderItemsByOrderID(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}
	return r.withItems(ctx, row)
}

func (r *OrderReadStore) FindOpenCart(ctx context.Context, customerID uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOpenCartViewByCustomer(ctx, r.db, customerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get open cart", err)
	}
	return r.withItems(ctx, row)
}

// List returns order headers without lines.
func (r *OrderReadStore) List(ctx context.Context, filters queries.OrderFilters, after *queries.Keyset, limit int32) ([]*queries.OrderView, error) {
	params := sqlc.ListOrdersParams{
		CustomerID:  pgconv.UUIDPtrToPgtype(filters.CustomerID),
		VendorID:    pgconv.UUIDPtrToPgtype(filters.VendorID),
		Status:      pgconv.StringPtrToPgtype(filters.Status),
		CreatedFrom: pgconv.TimePtrToPgtype(filters.CreatedFrom),
		CreatedTo:   pgconv.TimePtrToPgtype(filters.CreatedTo),
		Limit:       limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListOrders(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return toOrderViews(rows)
}

func (r *OrderReadStore) ListByStatus(ctx context.Context, vendorID *uuid.UUID, statuses []order.Status, endBefore, endAfter *time.Time) ([]*queries.OrderView, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	params := sqlc.ListVendorOrdersByStatusParams{
		VendorID:        pgconv.UUIDPtrToPgtype(vendorID),
		Statuses:        names,
		RentalEndBefore: pgconv.TimePtrToPgtype(endBefore),
		RentalEndAfter:  pgconv.TimePtrToPgtype(endAfter),
	}

	rows, err := r.queries.ListVendorOrdersByStatus(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor orders", err)
	}
	return toOrderViews(rows)
}

func (r *OrderReadStore) withItems(ctx context.Context, row sqlc.Orders) (*queries.OrderView, error) {
	ov, err := toOrderView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order view", err)
	}
	itemRows, err := r.queries.ListOrderItemsByOrderID(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	ov.Items = make([]*queries.OrderItemView, len(itemRows))
	for i, it := range itemRows {
		ov.Items[i], err = toOrderItemView(it)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode order item view", err)
		}
	}
	return ov, nil
}

func toOrderViews(rows []sqlc.Orders) ([]*queries.OrderView, error) {
	result := make([]*queries.OrderView, len(rows))
	for i, row := range rows {
		ov, err := toOrderView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode order view", err)
		}
		result[i] = ov
	}
	return result, nil
}

func toOrderView(row sqlc.Orders) (*queries.OrderView, error) {
	var n converter.Numerics
	ov := &queries.OrderView{
		ID:                row.ID,
		OrderNumber:       row.OrderNumber,
		CustomerID:        row.CustomerID,
		VendorID:          row.VendorID,
		Status:            row.Status,
		RentalStart:       pgconv.TimePtrFromPgtype(row.RentalStart),
		RentalEnd:         pgconv.TimePtrFromPgtype(row.RentalEnd),
		DeliveryMethod:    row.DeliveryMethod,
		BillingAddress:    pgconv.StringPtrFromPgtype(row.BillingAddress),
		DeliveryAddress:   pgconv.StringPtrFromPgtype(row.DeliveryAddress),
		Subtotal:          n.Dec(row.Subtotal),
		TaxRate:           n.Dec(row.TaxRate),
		InterState:        row.InterState,
		TaxAmount:         n.Dec(row.TaxAmount),
		DiscountCode:      pgconv.StringPtrFromPgtype(row.DiscountCode),
		DiscountAmount:    n.Dec(row.DiscountAmount),
		SecurityDeposit:   n.Dec(row.SecurityDeposit),
		DeliveryCharges:   n.Dec(row.DeliveryCharges),
		LateFeesApplied:   n.Dec(row.LateFeesApplied),
		TotalAmount:       n.Dec(row.TotalAmount),
		DownpaymentAmount: n.Dec(row.DownpaymentAmount),
		DownpaymentPaid:   row.DownpaymentPaid,
		CustomerNotes:     pgconv.StringPtrFromPgtype(row.CustomerNotes),
		InternalNotes:     pgconv.StringPtrFromPgtype(row.InternalNotes),
		PickupDate:        pgconv.TimePtrFromPgtype(row.PickupDate),
		ReturnDate:        pgconv.TimePtrFromPgtype(row.ReturnDate),
		ActualReturnDate:  pgconv.TimePtrFromPgtype(row.ActualReturnDate),
		ConfirmedAt:       pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if n.Err != nil {
		return nil, n.Err
	}
	return ov, nil
}

func toOrderItemView(row sqlc.OrderItems) (*queries.OrderItemView, error) {
	var n converter.Numerics
	iv := &queries.OrderItemView{
		ID:               row.ID,
		ProductID:        row.ProductID,
		VariantID:        pgconv.UUIDPtrFromPgtype(row.VariantID),
		ProductName:      row.ProductName,
		ProductSKU:       row.ProductSku,
		Quantity:         row.Quantity,
		UnitPrice:        n.Dec(row.UnitPrice),
		DepositPerUnit:   n.Dec(row.DepositPerUnit),
		RentalStart:      pgconv.TimeFromPgtype(row.RentalStart),
		RentalEnd:        pgconv.TimeFromPgtype(row.RentalEnd),
		RentalPeriodType: row.RentalPeriodType,
		DurationUnits:    row.DurationUnits,
		LineSubtotal:     n.Dec(row.LineSubtotal),
		TaxAmount:        n.Dec(row.TaxAmount),
		CGST:             n.Dec(row.Cgst),
		SGST:             n.Dec(row.Sgst),
		IGST:             n.Dec(row.Igst),
		LineTotal:        n.Dec(row.LineTotal),
	}
	if n.Err != nil {
		return nil, n.Err
	}
	return iv, nil
}
