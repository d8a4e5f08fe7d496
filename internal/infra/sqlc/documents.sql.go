package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const pickupColumns = `id, order_id, pickup_number, instructions, location, scheduled_at, is_picked_up, picked_up_at,
    picked_up_by, created_at`

const returnColumns = `id, order_id, return_number, received_by, condition_notes, damage_reported, damage_description,
    expected_return, actual_return, is_late, late_days, late_fee, created_at`

func scanPickupDocument(row scanner) (PickupDocuments, error) {
	var i PickupDocuments
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.PickupNumber,
		&i.Instructions,
		&i.Location,
		&i.ScheduledAt,
		&i.IsPickedUp,
		&i.PickedUpAt,
		&i.PickedUpBy,
		&i.CreatedAt,
	)
	return i, err
}

func scanReturnDocument(row scanner) (ReturnDocuments, error) {
	var i ReturnDocuments
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.ReturnNumber,
		&i.ReceivedBy,
		&i.ConditionNotes,
		&i.DamageReported,
		&i.DamageDescription,
		&i.ExpectedReturn,
		&i.ActualReturn,
		&i.IsLate,
		&i.LateDays,
		&i.LateFee,
		&i.CreatedAt,
	)
	return i, err
}

const createPickupDocument = `-- name: CreatePickupDocument :exec
INSERT INTO pickup_documents (` + pickupColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (q *Queries) CreatePickupDocument(ctx context.Context, db DBTX, arg PickupDocuments) error {
	_, err := db.Exec(ctx, createPickupDocument,
		arg.ID,
		arg.OrderID,
		arg.PickupNumber,
		arg.Instructions,
		arg.Location,
		arg.ScheduledAt,
		arg.IsPickedUp,
		arg.PickedUpAt,
		arg.PickedUpBy,
		arg.CreatedAt,
	)
	return err
}

const getPickupDocumentByOrder = `-- name: GetPickupDocumentByOrder :one
SELECT ` + pickupColumns + ` FROM pickup_documents WHERE order_id = $1
`

func (q *Queries) GetPickupDocumentByOrder(ctx context.Context, db DBTX, orderID uuid.UUID) (PickupDocuments, error) {
	return scanPickupDocument(db.QueryRow(ctx, getPickupDocumentByOrder, orderID))
}

const updatePickupDocument = `-- name: UpdatePickupDocument :execrows
UPDATE pickup_documents
SET is_picked_up = $2, picked_up_at = $3, picked_up_by = $4
WHERE id = $1
`

type UpdatePickupDocumentParams struct {
	ID         uuid.UUID          `json:"id"`
	IsPickedUp bool               `json:"is_picked_up"`
	PickedUpAt pgtype.Timestamptz `json:"picked_up_at"`
	PickedUpBy pgtype.UUID        `json:"picked_up_by"`
}

func (q *Queries) UpdatePickupDocument(ctx context.Context, db DBTX, arg UpdatePickupDocumentParams) (int64, error) {
	result, err := db.Exec(ctx, updatePickupDocument, arg.ID, arg.IsPickedUp, arg.PickedUpAt, arg.PickedUpBy)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createReturnDocument = `-- name: CreateReturnDocument :exec
INSERT INTO return_documents (` + returnColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

func (q *Queries) CreateReturnDocument(ctx context.Context, db DBTX, arg ReturnDocuments) error {
	_, err := db.Exec(ctx, createReturnDocument,
		arg.ID,
		arg.OrderID,
		arg.ReturnNumber,
		arg.ReceivedBy,
		arg.ConditionNotes,
		arg.DamageReported,
		arg.DamageDescription,
		arg.ExpectedReturn,
		arg.ActualReturn,
		arg.IsLate,
		arg.LateDays,
		arg.LateFee,
		arg.CreatedAt,
	)
	return err
}

const getReturnDocumentByOrder = `-- name: GetReturnDocumentByOrder :one
SELECT ` + returnColumns + ` FROM return_documents WHERE order_id = $1
`

func (q *Queries) GetReturnDocumentByOrder(ctx context.Context, db DBTX, orderID uuid.UUID) (ReturnDocuments, error) {
	return scanReturnDocument(db.QueryRow(ctx, getReturnDocumentByOrder, orderID))
}
