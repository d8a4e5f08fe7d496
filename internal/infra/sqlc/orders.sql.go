package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_number, customer_id, vendor_id, status, rental_start, rental_end, delivery_method,
    billing_address, delivery_address, subtotal, tax_rate, inter_state, tax_amount, discount_code, discount_amount,
    security_deposit, delivery_charges, late_fees_applied, total_amount, downpayment_amount, downpayment_paid,
    customer_notes, internal_notes, pickup_date, pickup_notes, return_date, actual_return_date, return_notes,
    confirmed_at, created_at, updated_at, discount_requested`

const orderItemColumns = `id, order_id, product_id, variant_id, product_name, product_sku, quantity, unit_price,
    deposit_per_unit, rental_start, rental_end, rental_period_type, duration_units, line_subtotal, tax_amount,
    cgst, sgst, igst, line_total, created_at`

func scanOrder(row scanner) (Orders, error) {
	var i Orders
	err := row.Scan(
		&i.ID,
		&i.OrderNumber,
		&i.CustomerID,
		&i.VendorID,
		&i.Status,
		&i.RentalStart,
		&i.RentalEnd,
		&i.DeliveryMethod,
		&i.BillingAddress,
		&i.DeliveryAddress,
		&i.Subtotal,
		&i.TaxRate,
		&i.InterState,
		&i.TaxAmount,
		&i.DiscountCode,
		&i.DiscountAmount,
		&i.SecurityDeposit,
		&i.DeliveryCharges,
		&i.LateFeesApplied,
		&i.TotalAmount,
		&i.DownpaymentAmount,
		&i.DownpaymentPaid,
		&i.CustomerNotes,
		&i.InternalNotes,
		&i.PickupDate,
		&i.PickupNotes,
		&i.ReturnDate,
		&i.ActualReturnDate,
		&i.ReturnNotes,
		&i.ConfirmedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DiscountRequested,
	)
	return i, err
}

func scanOrderItem(row scanner) (OrderItems, error) {
	var i OrderItems
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.ProductID,
		&i.VariantID,
		&i.ProductName,
		&i.ProductSku,
		&i.Quantity,
		&i.UnitPrice,
		&i.DepositPerUnit,
		&i.RentalStart,
		&i.RentalEnd,
		&i.RentalPeriodType,
		&i.DurationUnits,
		&i.LineSubtotal,
		&i.TaxAmount,
		&i.Cgst,
		&i.Sgst,
		&i.Igst,
		&i.LineTotal,
		&i.CreatedAt,
	)
	return i, err
}

const nextOrderNumber = `-- name: NextOrderNumber :one
SELECT nextval('order_number_seq')::bigint
`

func (q *Queries) NextOrderNumber(ctx context.Context, db DBTX) (int64, error) {
	var seq int64
	err := db.QueryRow(ctx, nextOrderNumber).Scan(&seq)
	return seq, err
}

// OrderRowParams carries every mutable order column; insert and update share it.
type OrderRowParams struct {
	ID                uuid.UUID          `json:"id"`
	OrderNumber       string             `json:"order_number"`
	CustomerID        uuid.UUID          `json:"customer_id"`
	VendorID          uuid.UUID          `json:"vendor_id"`
	Status            string             `json:"status"`
	RentalStart       pgtype.Timestamptz `json:"rental_start"`
	RentalEnd         pgtype.Timestamptz `json:"rental_end"`
	DeliveryMethod    string             `json:"delivery_method"`
	BillingAddress    pgtype.Text        `json:"billing_address"`
	DeliveryAddress   pgtype.Text        `json:"delivery_address"`
	Subtotal          pgtype.Numeric     `json:"subtotal"`
	TaxRate           pgtype.Numeric     `json:"tax_rate"`
	InterState        bool               `json:"inter_state"`
	TaxAmount         pgtype.Numeric     `json:"tax_amount"`
	DiscountCode      pgtype.Text        `json:"discount_code"`
	DiscountAmount    pgtype.Numeric     `json:"discount_amount"`
	SecurityDeposit   pgtype.Numeric     `json:"security_deposit"`
	DeliveryCharges   pgtype.Numeric     `json:"delivery_charges"`
	LateFeesApplied   pgtype.Numeric     `json:"late_fees_applied"`
	TotalAmount       pgtype.Numeric     `json:"total_amount"`
	DownpaymentAmount pgtype.Numeric     `json:"downpayment_amount"`
	DownpaymentPaid   bool               `json:"downpayment_paid"`
	CustomerNotes     pgtype.Text        `json:"customer_notes"`
	InternalNotes     pgtype.Text        `json:"internal_notes"`
	PickupDate        pgtype.Timestamptz `json:"pickup_date"`
	PickupNotes       pgtype.Text        `json:"pickup_notes"`
	ReturnDate        pgtype.Timestamptz `json:"return_date"`
	ActualReturnDate  pgtype.Timestamptz `json:"actual_return_date"`
	ReturnNotes       pgtype.Text        `json:"return_notes"`
	ConfirmedAt       pgtype.Timestamptz `json:"confirmed_at"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
	DiscountRequested pgtype.Numeric     `json:"discount_requested"`
}

func (arg OrderRowParams) args() []any {
	return []any{
		arg.ID,
		arg.OrderNumber,
		arg.CustomerID,
		arg.VendorID,
		arg.Status,
		arg.RentalStart,
		arg.RentalEnd,
		arg.DeliveryMethod,
		arg.BillingAddress,
		arg.DeliveryAddress,
		arg.Subtotal,
		arg.TaxRate,
		arg.InterState,
		arg.TaxAmount,
		arg.DiscountCode,
		arg.DiscountAmount,
		arg.SecurityDeposit,
		arg.DeliveryCharges,
		arg.LateFeesApplied,
		arg.TotalAmount,
		arg.DownpaymentAmount,
		arg.DownpaymentPaid,
		arg.CustomerNotes,
		arg.InternalNotes,
		arg.PickupDate,
		arg.PickupNotes,
		arg.ReturnDate,
		arg.ActualReturnDate,
		arg.ReturnNotes,
		arg.ConfirmedAt,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.DiscountRequested,
	}
}

const createOrder = `-- name: CreateOrder :exec
INSERT INTO orders (` + orderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
    $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)
`

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg OrderRowParams) error {
	_, err := db.Exec(ctx, createOrder, arg.args()...)
	return err
}

const updateOrder = `-- name: UpdateOrder :execrows
UPDATE orders SET
    order_number = $2, customer_id = $3, vendor_id = $4, status = $5, rental_start = $6, rental_end = $7,
    delivery_method = $8, billing_address = $9, delivery_address = $10, subtotal = $11, tax_rate = $12,
    inter_state = $13, tax_amount = $14, discount_code = $15, discount_amount = $16, security_deposit = $17,
    delivery_charges = $18, late_fees_applied = $19, total_amount = $20, downpayment_amount = $21,
    downpayment_paid = $22, customer_notes = $23, internal_notes = $24, pickup_date = $25, pickup_notes = $26,
    return_date = $27, actual_return_date = $28, return_notes = $29, confirmed_at = $30, created_at = $31,
    updated_at = $32, discount_requested = $33
WHERE id = $1
`

func (q *Queries) UpdateOrder(ctx context.Context, db DBTX, arg OrderRowParams) (int64, error) {
	result, err := db.Exec(ctx, updateOrder, arg.args()...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getOrderByID = `-- name: GetOrderByID :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByID, id))
}

const getOrderByIDForUpdate = `-- name: GetOrderByIDForUpdate :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetOrderByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByIDForUpdate, id))
}

const getOpenCartByCustomer = `-- name: GetOpenCartByCustomer :one
SELECT ` + orderColumns + ` FROM orders
WHERE customer_id = $1 AND status = 'quotation'
FOR UPDATE
`

func (q *Queries) GetOpenCartByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOpenCartByCustomer, customerID))
}

const getOpenCartViewByCustomer = `-- name: GetOpenCartViewByCustomer :one
SELECT ` + orderColumns + ` FROM orders
WHERE customer_id = $1 AND status = 'quotation'
`

func (q *Queries) GetOpenCartViewByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOpenCartViewByCustomer, customerID))
}

const listOverdueOrders = `-- name: ListOverdueOrders :many
SELECT ` + orderColumns + ` FROM orders
WHERE status IN ('picked_up', 'active') AND rental_end < $1
ORDER BY rental_end, id
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ListOverdueOrders(ctx context.Context, db DBTX, now pgtype.Timestamptz) ([]Orders, error) {
	rows, err := db.Query(ctx, listOverdueOrders, now)
	return collectRows(rows, err, scanOrder)
}

const listOrdersDueForReturn = `-- name: ListOrdersDueForReturn :many
SELECT ` + orderColumns + ` FROM orders
WHERE status IN ('picked_up', 'active') AND rental_end >= $1 AND rental_end < $2
ORDER BY rental_end, id
`

type ListOrdersDueForReturnParams struct {
	From pgtype.Timestamptz `json:"from"`
	To   pgtype.Timestamptz `json:"to"`
}

func (q *Queries) ListOrdersDueForReturn(ctx context.Context, db DBTX, arg ListOrdersDueForReturnParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listOrdersDueForReturn, arg.From, arg.To)
	return collectRows(rows, err, scanOrder)
}

const listOrders = `-- name: ListOrders :many
SELECT ` + orderColumns + ` FROM orders
WHERE ($1::uuid IS NULL OR customer_id = $1)
  AND ($2::uuid IS NULL OR vendor_id = $2)
  AND ($3::text IS NULL OR status = $3)
  AND ($4::timestamptz IS NULL OR created_at >= $4)
  AND ($5::timestamptz IS NULL OR created_at < $5)
  AND ($6::timestamptz IS NULL OR (created_at, id) < ($6, $7::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $8
`

type ListOrdersParams struct {
	CustomerID     pgtype.UUID        `json:"customer_id"`
	VendorID       pgtype.UUID        `json:"vendor_id"`
	Status         pgtype.Text        `json:"status"`
	CreatedFrom    pgtype.Timestamptz `json:"created_from"`
	CreatedTo      pgtype.Timestamptz `json:"created_to"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListOrders(ctx context.Context, db DBTX, arg ListOrdersParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listOrders,
		arg.CustomerID,
		arg.VendorID,
		arg.Status,
		arg.CreatedFrom,
		arg.CreatedTo,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	return collectRows(rows, err, scanOrder)
}

const listVendorOrdersByStatus = `-- name: ListVendorOrdersByStatus :many
SELECT ` + orderColumns + ` FROM orders
WHERE ($1::uuid IS NULL OR vendor_id = $1)
  AND status = ANY($2::text[])
  AND ($3::timestamptz IS NULL OR rental_end < $3)
  AND ($4::timestamptz IS NULL OR rental_end >= $4)
ORDER BY rental_start NULLS LAST, id
`

type ListVendorOrdersByStatusParams struct {
	VendorID        pgtype.UUID        `json:"vendor_id"`
	Statuses        []string           `json:"statuses"`
	RentalEndBefore pgtype.Timestamptz `json:"rental_end_before"`
	RentalEndAfter  pgtype.Timestamptz `json:"rental_end_after"`
}

func (q *Queries) ListVendorOrdersByStatus(ctx context.Context, db DBTX, arg ListVendorOrdersByStatusParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listVendorOrdersByStatus, arg.VendorID, arg.Statuses, arg.RentalEndBefore, arg.RentalEndAfter)
	return collectRows(rows, err, scanOrder)
}

const listOrderItemsByOrderID = `-- name: ListOrderItemsByOrderID :many
SELECT ` + orderItemColumns + ` FROM order_items
WHERE order_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListOrderItemsByOrderID(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderItems, error) {
	rows, err := db.Query(ctx, listOrderItemsByOrderID, orderID)
	return collectRows(rows, err, scanOrderItem)
}

const upsertOrderItem = `-- name: UpsertOrderItem :exec
INSERT INTO order_items (` + orderItemColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
ON CONFLICT (id) DO UPDATE SET
    quantity = EXCLUDED.quantity,
    unit_price = EXCLUDED.unit_price,
    deposit_per_unit = EXCLUDED.deposit_per_unit,
    rental_start = EXCLUDED.rental_start,
    rental_end = EXCLUDED.rental_end,
    rental_period_type = EXCLUDED.rental_period_type,
    duration_units = EXCLUDED.duration_units,
    line_subtotal = EXCLUDED.line_subtotal,
    tax_amount = EXCLUDED.tax_amount,
    cgst = EXCLUDED.cgst,
    sgst = EXCLUDED.sgst,
    igst = EXCLUDED.igst,
    line_total = EXCLUDED.line_total
`

func (q *Queries) UpsertOrderItem(ctx context.Context, db DBTX, arg OrderItems) error {
	_, err := db.Exec(ctx, upsertOrderItem,
		arg.ID,
		arg.OrderID,
		arg.ProductID,
		arg.VariantID,
		arg.ProductName,
		arg.ProductSku,
		arg.Quantity,
		arg.UnitPrice,
		arg.DepositPerUnit,
		arg.RentalStart,
		arg.RentalEnd,
		arg.RentalPeriodType,
		arg.DurationUnits,
		arg.LineSubtotal,
		arg.TaxAmount,
		arg.Cgst,
		arg.Sgst,
		arg.Igst,
		arg.LineTotal,
		arg.CreatedAt,
	)
	return err
}

const deleteOrderItemsNotIn = `-- name: DeleteOrderItemsNotIn :exec
DELETE FROM order_items
WHERE order_id = $1 AND NOT (id = ANY($2::uuid[]))
`

type DeleteOrderItemsNotInParams struct {
	OrderID uuid.UUID   `json:"order_id"`
	Keep    []uuid.UUID `json:"keep"`
}

func (q *Queries) DeleteOrderItemsNotIn(ctx context.Context, db DBTX, arg DeleteOrderItemsNotInParams) error {
	_, err := db.Exec(ctx, deleteOrderItemsNotIn, arg.OrderID, arg.Keep)
	return err
}
