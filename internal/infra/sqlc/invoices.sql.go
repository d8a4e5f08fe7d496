package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, invoice_number, order_id, customer_id, vendor_id, status, invoice_date, due_date,
    rental_start, rental_end, vendor_name, vendor_company_name, vendor_gstin, vendor_address, customer_name,
    customer_email, customer_gstin, billing_address, delivery_address, tax_rate, inter_state, subtotal, tax_amount,
    cgst, sgst, igst, discount_amount, security_deposit, delivery_charges, late_fees, total_amount, amount_paid,
    amount_due, posted_at, paid_at, created_at, updated_at`

const invoiceItemColumns = `id, invoice_id, product_id, description, quantity, unit, unit_price, tax_rate, duration,
    subtotal, tax_amount, cgst, sgst, igst, line_total, is_deposit, position`

func scanInvoice(row scanner) (Invoices, error) {
	var i Invoices
	err := row.Scan(
		&i.ID,
		&i.InvoiceNumber,
		&i.OrderID,
		&i.CustomerID,
		&i.VendorID,
		&i.Status,
		&i.InvoiceDate,
		&i.DueDate,
		&i.RentalStart,
		&i.RentalEnd,
		&i.VendorName,
		&i.VendorCompanyName,
		&i.VendorGstin,
		&i.VendorAddress,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CustomerGstin,
		&i.BillingAddress,
		&i.DeliveryAddress,
		&i.TaxRate,
		&i.InterState,
		&i.Subtotal,
		&i.TaxAmount,
		&i.Cgst,
		&i.Sgst,
		&i.Igst,
		&i.DiscountAmount,
		&i.SecurityDeposit,
		&i.DeliveryCharges,
		&i.LateFees,
		&i.TotalAmount,
		&i.AmountPaid,
		&i.AmountDue,
		&i.PostedAt,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanInvoiceItem(row scanner) (InvoiceItems, error) {
	var i InvoiceItems
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.ProductID,
		&i.Description,
		&i.Quantity,
		&i.Unit,
		&i.UnitPrice,
		&i.TaxRate,
		&i.Duration,
		&i.Subtotal,
		&i.TaxAmount,
		&i.Cgst,
		&i.Sgst,
		&i.Igst,
		&i.LineTotal,
		&i.IsDeposit,
		&i.Position,
	)
	return i, err
}

func (arg Invoices) args() []any {
	return []any{
		arg.ID,
		arg.InvoiceNumber,
		arg.OrderID,
		arg.CustomerID,
		arg.VendorID,
		arg.Status,
		arg.InvoiceDate,
		arg.DueDate,
		arg.RentalStart,
		arg.RentalEnd,
		arg.VendorName,
		arg.VendorCompanyName,
		arg.VendorGstin,
		arg.VendorAddress,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerGstin,
		arg.BillingAddress,
		arg.DeliveryAddress,
		arg.TaxRate,
		arg.InterState,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Cgst,
		arg.Sgst,
		arg.Igst,
		arg.DiscountAmount,
		arg.SecurityDeposit,
		arg.DeliveryCharges,
		arg.LateFees,
		arg.TotalAmount,
		arg.AmountPaid,
		arg.AmountDue,
		arg.PostedAt,
		arg.PaidAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	}
}

const nextInvoiceNumber = `-- name: NextInvoiceNumber :one
SELECT nextval('invoice_number_seq')::bigint
`

func (q *Queries) NextInvoiceNumber(ctx context.Context, db DBTX) (int64, error) {
	var seq int64
	err := db.QueryRow(ctx, nextInvoiceNumber).Scan(&seq)
	return seq, err
}

const createInvoice = `-- name: CreateInvoice :exec
INSERT INTO invoices (` + invoiceColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
    $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37)
`

func (q *Queries) CreateInvoice(ctx context.Context, db DBTX, arg Invoices) error {
	_, err := db.Exec(ctx, createInvoice, arg.args()...)
	return err
}

const updateInvoice = `-- name: UpdateInvoice :execrows
UPDATE invoices SET
    invoice_number = $2, order_id = $3, customer_id = $4, vendor_id = $5, status = $6, invoice_date = $7,
    due_date = $8, rental_start = $9, rental_end = $10, vendor_name = $11, vendor_company_name = $12,
    vendor_gstin = $13, vendor_address = $14, customer_name = $15, customer_email = $16, customer_gstin = $17,
    billing_address = $18, delivery_address = $19, tax_rate = $20, inter_state = $21, subtotal = $22,
    tax_amount = $23, cgst = $24, sgst = $25, igst = $26, discount_amount = $27, security_deposit = $28,
    delivery_charges = $29, late_fees = $30, total_amount = $31, amount_paid = $32, amount_due = $33,
    posted_at = $34, paid_at = $35, created_at = $36, updated_at = $37
WHERE id = $1
`

func (q *Queries) UpdateInvoice(ctx context.Context, db DBTX, arg Invoices) (int64, error) {
	result, err := db.Exec(ctx, updateInvoice, arg.args()...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getInvoiceByID = `-- name: GetInvoiceByID :one
SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1
`

func (q *Queries) GetInvoiceByID(ctx context.Context, db DBTX, id uuid.UUID) (Invoices, error) {
	return scanInvoice(db.QueryRow(ctx, getInvoiceByID, id))
}

const getInvoiceByIDForUpdate = `-- name: GetInvoiceByIDForUpdate :one
SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetInvoiceByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Invoices, error) {
	return scanInvoice(db.QueryRow(ctx, getInvoiceByIDForUpdate, id))
}

const getInvoiceByOrderIDForUpdate = `-- name: GetInvoiceByOrderIDForUpdate :one
SELECT ` + invoiceColumns + ` FROM invoices WHERE order_id = $1 FOR UPDATE
`

func (q *Queries) GetInvoiceByOrderIDForUpdate(ctx context.Context, db DBTX, orderID uuid.UUID) (Invoices, error) {
	return scanInvoice(db.QueryRow(ctx, getInvoiceByOrderIDForUpdate, orderID))
}

const listInvoices = `-- name: ListInvoices :many
SELECT ` + invoiceColumns + ` FROM invoices
WHERE ($1::uuid IS NULL OR customer_id = $1)
  AND ($2::uuid IS NULL OR vendor_id = $2)
  AND ($3::text IS NULL OR status = $3)
  AND ($4::timestamptz IS NULL OR (created_at, id) < ($4, $5::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $6
`

type ListInvoicesParams struct {
	CustomerID     pgtype.UUID        `json:"customer_id"`
	VendorID       pgtype.UUID        `json:"vendor_id"`
	Status         pgtype.Text        `json:"status"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListInvoices(ctx context.Context, db DBTX, arg ListInvoicesParams) ([]Invoices, error) {
	rows, err := db.Query(ctx, listInvoices,
		arg.CustomerID,
		arg.VendorID,
		arg.Status,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	return collectRows(rows, err, scanInvoice)
}

const listInvoiceItems = `-- name: ListInvoiceItems :many
SELECT ` + invoiceItemColumns + ` FROM invoice_items
WHERE invoice_id = $1
ORDER BY position
`

func (q *Queries) ListInvoiceItems(ctx context.Context, db DBTX, invoiceID uuid.UUID) ([]InvoiceItems, error) {
	rows, err := db.Query(ctx, listInvoiceItems, invoiceID)
	return collectRows(rows, err, scanInvoiceItem)
}

const deleteInvoiceItems = `-- name: DeleteInvoiceItems :exec
DELETE FROM invoice_items WHERE invoice_id = $1
`

func (q *Queries) DeleteInvoiceItems(ctx context.Context, db DBTX, invoiceID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteInvoiceItems, invoiceID)
	return err
}

const createInvoiceItem = `-- name: CreateInvoiceItem :exec
INSERT INTO invoice_items (` + invoiceItemColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

func (q *Queries) CreateInvoiceItem(ctx context.Context, db DBTX, arg InvoiceItems) error {
	_, err := db.Exec(ctx, createInvoiceItem,
		arg.ID,
		arg.InvoiceID,
		arg.ProductID,
		arg.Description,
		arg.Quantity,
		arg.Unit,
		arg.UnitPrice,
		arg.TaxRate,
		arg.Duration,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Cgst,
		arg.Sgst,
		arg.Igst,
		arg.LineTotal,
		arg.IsDeposit,
		arg.Position,
	)
	return err
}
