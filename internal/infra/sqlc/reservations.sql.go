package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, order_id, order_item_id, product_id, variant_id, quantity, start_at, end_at, status,
    stock_status, consumed, released_at, created_at, updated_at`

func scanReservation(row scanner) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.OrderItemID,
		&i.ProductID,
		&i.VariantID,
		&i.Quantity,
		&i.StartAt,
		&i.EndAt,
		&i.Status,
		&i.StockStatus,
		&i.Consumed,
		&i.ReleasedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg Reservations) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.OrderID,
		arg.OrderItemID,
		arg.ProductID,
		arg.VariantID,
		arg.Quantity,
		arg.StartAt,
		arg.EndAt,
		arg.Status,
		arg.StockStatus,
		arg.Consumed,
		arg.ReleasedAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations
SET status = $2, stock_status = $3, consumed = $4, released_at = $5, updated_at = $6
WHERE id = $1
`

type UpdateReservationParams struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"`
	StockStatus string             `json:"stock_status"`
	Consumed    bool               `json:"consumed"`
	ReleasedAt  pgtype.Timestamptz `json:"released_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.Status,
		arg.StockStatus,
		arg.Consumed,
		arg.ReleasedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listReservationsByOrder = `-- name: ListReservationsByOrder :many
SELECT ` + reservationColumns + ` FROM reservations
WHERE order_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListReservationsByOrder(ctx context.Context, db DBTX, orderID uuid.UUID) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByOrder, orderID)
	return collectRows(rows, err, scanReservation)
}

const listActiveReservationsOverlapping = `-- name: ListActiveReservationsOverlapping :many
SELECT ` + reservationColumns + ` FROM reservations
WHERE product_id = $1
  AND variant_id IS NOT DISTINCT FROM $2
  AND status = 'active'
  AND start_at < $4
  AND end_at > $3
ORDER BY start_at, id
`

type ListActiveReservationsOverlappingParams struct {
	ProductID uuid.UUID          `json:"product_id"`
	VariantID pgtype.UUID        `json:"variant_id"`
	StartAt   pgtype.Timestamptz `json:"start_at"`
	EndAt     pgtype.Timestamptz `json:"end_at"`
}

// Half-open windows: a reservation ending exactly at StartAt does not overlap.
func (q *Queries) ListActiveReservationsOverlapping(ctx context.Context, db DBTX, arg ListActiveReservationsOverlappingParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listActiveReservationsOverlapping,
		arg.ProductID,
		arg.VariantID,
		arg.StartAt,
		arg.EndAt,
	)
	return collectRows(rows, err, scanReservation)
}

const listProductCalendar = `-- name: ListProductCalendar :many
SELECT r.id, r.order_id, o.order_number, r.variant_id, r.quantity, r.start_at, r.end_at, r.stock_status, r.consumed
FROM reservations r
JOIN orders o ON o.id = r.order_id
WHERE r.product_id = $1
  AND r.status = 'active'
  AND r.start_at < $3
  AND r.end_at > $2
ORDER BY r.start_at, r.id
`

type ListProductCalendarParams struct {
	ProductID uuid.UUID          `json:"product_id"`
	From      pgtype.Timestamptz `json:"from"`
	To        pgtype.Timestamptz `json:"to"`
}

type ListProductCalendarRow struct {
	ID          uuid.UUID          `json:"id"`
	OrderID     uuid.UUID          `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	VariantID   pgtype.UUID        `json:"variant_id"`
	Quantity    int32              `json:"quantity"`
	StartAt     pgtype.Timestamptz `json:"start_at"`
	EndAt       pgtype.Timestamptz `json:"end_at"`
	StockStatus string             `json:"stock_status"`
	Consumed    bool               `json:"consumed"`
}

func (q *Queries) ListProductCalendar(ctx context.Context, db DBTX, arg ListProductCalendarParams) ([]ListProductCalendarRow, error) {
	rows, err := db.Query(ctx, listProductCalendar, arg.ProductID, arg.From, arg.To)
	return collectRows(rows, err, func(row scanner) (ListProductCalendarRow, error) {
		var i ListProductCalendarRow
		err := row.Scan(
			&i.ID,
			&i.OrderID,
			&i.OrderNumber,
			&i.VariantID,
			&i.Quantity,
			&i.StartAt,
			&i.EndAt,
			&i.StockStatus,
			&i.Consumed,
		)
		return i, err
	})
}
