package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `id, vendor_id, name, sku, description, price_hourly, price_daily, price_weekly, price_monthly,
    security_deposit, quantity_on_hand, quantity_reserved, is_rentable, is_published, created_at, updated_at`

const variantColumns = `id, product_id, name, sku, price_override, quantity_on_hand, quantity_reserved, created_at, updated_at`

func scanProduct(row scanner) (Products, error) {
	var i Products
	err := row.Scan(
		&i.ID,
		&i.VendorID,
		&i.Name,
		&i.Sku,
		&i.Description,
		&i.PriceHourly,
		&i.PriceDaily,
		&i.PriceWeekly,
		&i.PriceMonthly,
		&i.SecurityDeposit,
		&i.QuantityOnHand,
		&i.QuantityReserved,
		&i.IsRentable,
		&i.IsPublished,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanVariant(row scanner) (ProductVariants, error) {
	var i ProductVariants
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.Name,
		&i.Sku,
		&i.PriceOverride,
		&i.QuantityOnHand,
		&i.QuantityReserved,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getProductByID = `-- name: GetProductByID :one
SELECT ` + productColumns + ` FROM products WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, db DBTX, id uuid.UUID) (Products, error) {
	return scanProduct(db.QueryRow(ctx, getProductByID, id))
}

const lockProductsByIDs = `-- name: LockProductsByIDs :many
SELECT ` + productColumns + ` FROM products
WHERE id = ANY($1::uuid[])
ORDER BY id
FOR UPDATE
`

// Rows are locked in id order so concurrent confirmations cannot deadlock.
func (q *Queries) LockProductsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Products, error) {
	rows, err := db.Query(ctx, lockProductsByIDs, ids)
	return collectRows(rows, err, scanProduct)
}

const listVariantsByProductIDs = `-- name: ListVariantsByProductIDs :many
SELECT ` + variantColumns + ` FROM product_variants
WHERE product_id = ANY($1::uuid[])
ORDER BY product_id, id
`

func (q *Queries) ListVariantsByProductIDs(ctx context.Context, db DBTX, productIDs []uuid.UUID) ([]ProductVariants, error) {
	rows, err := db.Query(ctx, listVariantsByProductIDs, productIDs)
	return collectRows(rows, err, scanVariant)
}

const updateProductStock = `-- name: UpdateProductStock :execrows
UPDATE products
SET quantity_on_hand = $2, quantity_reserved = $3, updated_at = $4
WHERE id = $1
`

type UpdateProductStockParams struct {
	ID               uuid.UUID          `json:"id"`
	QuantityOnHand   int32              `json:"quantity_on_hand"`
	QuantityReserved int32              `json:"quantity_reserved"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateProductStock(ctx context.Context, db DBTX, arg UpdateProductStockParams) (int64, error) {
	result, err := db.Exec(ctx, updateProductStock,
		arg.ID,
		arg.QuantityOnHand,
		arg.QuantityReserved,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateVariantStock = `-- name: UpdateVariantStock :execrows
UPDATE product_variants
SET quantity_on_hand = $2, quantity_reserved = $3, updated_at = $4
WHERE id = $1
`

type UpdateVariantStockParams struct {
	ID               uuid.UUID          `json:"id"`
	QuantityOnHand   int32              `json:"quantity_on_hand"`
	QuantityReserved int32              `json:"quantity_reserved"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateVariantStock(ctx context.Context, db DBTX, arg UpdateVariantStockParams) (int64, error) {
	result, err := db.Exec(ctx, updateVariantStock,
		arg.ID,
		arg.QuantityOnHand,
		arg.QuantityReserved,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createProduct = `-- name: CreateProduct :one
INSERT INTO products (vendor_id, name, sku, description, price_hourly, price_daily, price_weekly, price_monthly,
    security_deposit, quantity_on_hand, is_rentable, is_published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + productColumns

type CreateProductParams struct {
	VendorID        uuid.UUID      `json:"vendor_id"`
	Name            string         `json:"name"`
	Sku             string         `json:"sku"`
	Description     pgtype.Text    `json:"description"`
	PriceHourly     pgtype.Numeric `json:"price_hourly"`
	PriceDaily      pgtype.Numeric `json:"price_daily"`
	PriceWeekly     pgtype.Numeric `json:"price_weekly"`
	PriceMonthly    pgtype.Numeric `json:"price_monthly"`
	SecurityDeposit pgtype.Numeric `json:"security_deposit"`
	QuantityOnHand  int32          `json:"quantity_on_hand"`
	IsRentable      bool           `json:"is_rentable"`
	IsPublished     bool           `json:"is_published"`
}

func (q *Queries) CreateProduct(ctx context.Context, db DBTX, arg CreateProductParams) (Products, error) {
	return scanProduct(db.QueryRow(ctx, createProduct,
		arg.VendorID,
		arg.Name,
		arg.Sku,
		arg.Description,
		arg.PriceHourly,
		arg.PriceDaily,
		arg.PriceWeekly,
		arg.PriceMonthly,
		arg.SecurityDeposit,
		arg.QuantityOnHand,
		arg.IsRentable,
		arg.IsPublished,
	))
}
