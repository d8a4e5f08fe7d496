package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, payment_number, invoice_id, order_id, customer_id, amount, currency, method, status,
    gateway_order_id, gateway_payment_id, gateway_signature, transaction_id, card_last_four, card_brand, notes,
    failure_reason, paid_at, created_at, updated_at`

func scanPayment(row scanner) (Payments, error) {
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.PaymentNumber,
		&i.InvoiceID,
		&i.OrderID,
		&i.CustomerID,
		&i.Amount,
		&i.Currency,
		&i.Method,
		&i.Status,
		&i.GatewayOrderID,
		&i.GatewayPaymentID,
		&i.GatewaySignature,
		&i.TransactionID,
		&i.CardLastFour,
		&i.CardBrand,
		&i.Notes,
		&i.FailureReason,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const nextPaymentNumber = `-- name: NextPaymentNumber :one
SELECT nextval('payment_number_seq')::bigint
`

func (q *Queries) NextPaymentNumber(ctx context.Context, db DBTX) (int64, error) {
	var seq int64
	err := db.QueryRow(ctx, nextPaymentNumber).Scan(&seq)
	return seq, err
}

const createPayment = `-- name: CreatePayment :exec
INSERT INTO payments (` + paymentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
`

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg Payments) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID,
		arg.PaymentNumber,
		arg.InvoiceID,
		arg.OrderID,
		arg.CustomerID,
		arg.Amount,
		arg.Currency,
		arg.Method,
		arg.Status,
		arg.GatewayOrderID,
		arg.GatewayPaymentID,
		arg.GatewaySignature,
		arg.TransactionID,
		arg.CardLastFour,
		arg.CardBrand,
		arg.Notes,
		arg.FailureReason,
		arg.PaidAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updatePayment = `-- name: UpdatePayment :execrows
UPDATE payments SET
    method = $2, status = $3, gateway_payment_id = $4, gateway_signature = $5, transaction_id = $6,
    card_last_four = $7, card_brand = $8, notes = $9, failure_reason = $10, paid_at = $11, updated_at = $12
WHERE id = $1
`

func (q *Queries) UpdatePayment(ctx context.Context, db DBTX, arg Payments) (int64, error) {
	result, err := db.Exec(ctx, updatePayment,
		arg.ID,
		arg.Method,
		arg.Status,
		arg.GatewayPaymentID,
		arg.GatewaySignature,
		arg.TransactionID,
		arg.CardLastFour,
		arg.CardBrand,
		arg.Notes,
		arg.FailureReason,
		arg.PaidAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getPaymentByID = `-- name: GetPaymentByID :one
SELECT ` + paymentColumns + ` FROM payments WHERE id = $1
`

func (q *Queries) GetPaymentByID(ctx context.Context, db DBTX, id uuid.UUID) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByID, id))
}

const getPaymentByGatewayOrderIDForUpdate = `-- name: GetPaymentByGatewayOrderIDForUpdate :one
SELECT ` + paymentColumns + ` FROM payments WHERE gateway_order_id = $1 FOR UPDATE
`

func (q *Queries) GetPaymentByGatewayOrderIDForUpdate(ctx context.Context, db DBTX, gatewayOrderID string) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByGatewayOrderIDForUpdate, gatewayOrderID))
}

const listPayments = `-- name: ListPayments :many
SELECT ` + paymentColumns + ` FROM payments
WHERE ($1::uuid IS NULL OR customer_id = $1)
  AND ($2::uuid IS NULL OR invoice_id IN (SELECT inv.id FROM invoices inv WHERE inv.vendor_id = $2))
  AND ($3::uuid IS NULL OR invoice_id = $3)
  AND ($4::text IS NULL OR status = $4)
  AND ($5::timestamptz IS NULL OR (created_at, id) < ($5, $6::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $7
`

type ListPaymentsParams struct {
	CustomerID     pgtype.UUID        `json:"customer_id"`
	VendorID       pgtype.UUID        `json:"vendor_id"`
	InvoiceID      pgtype.UUID        `json:"invoice_id"`
	Status         pgtype.Text        `json:"status"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListPayments(ctx context.Context, db DBTX, arg ListPaymentsParams) ([]Payments, error) {
	rows, err := db.Query(ctx, listPayments,
		arg.CustomerID,
		arg.VendorID,
		arg.InvoiceID,
		arg.Status,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	return collectRows(rows, err, scanPayment)
}
