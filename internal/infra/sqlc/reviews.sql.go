package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (id, customer_id, product_id, order_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, customer_id, product_id, order_id, rating, comment, created_at, updated_at
`

type CreateReviewParams struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	ProductID  uuid.UUID          `json:"product_id"`
	OrderID    uuid.UUID          `json:"order_id"`
	Rating     int32              `json:"rating"`
	Comment    string             `json:"comment"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) (Reviews, error) {
	row := db.QueryRow(ctx, createReview,
		arg.ID,
		arg.CustomerID,
		arg.ProductID,
		arg.OrderID,
		arg.Rating,
		arg.Comment,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Reviews
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.ProductID,
		&i.OrderID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listReviewsByProduct = `-- name: ListReviewsByProduct :many
SELECT r.id, r.customer_id, u.name AS customer_name, r.product_id, r.order_id, r.rating, r.comment, r.created_at
FROM reviews r
JOIN users u ON u.id = r.customer_id
WHERE r.product_id = $1
  AND ($2::timestamptz IS NULL OR (r.created_at, r.id) < ($2, $3::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4
`

type ListReviewsByProductParams struct {
	ProductID      uuid.UUID          `json:"product_id"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

type ListReviewsByProductRow struct {
	ID           uuid.UUID          `json:"id"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	ProductID    uuid.UUID          `json:"product_id"`
	OrderID      uuid.UUID          `json:"order_id"`
	Rating       int32              `json:"rating"`
	Comment      string             `json:"comment"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) ListReviewsByProduct(ctx context.Context, db DBTX, arg ListReviewsByProductParams) ([]ListReviewsByProductRow, error) {
	rows, err := db.Query(ctx, listReviewsByProduct, arg.ProductID, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collectRows(rows, err, func(row scanner) (ListReviewsByProductRow, error) {
		var i ListReviewsByProductRow
		err := row.Scan(
			&i.ID,
			&i.CustomerID,
			&i.CustomerName,
			&i.ProductID,
			&i.OrderID,
			&i.Rating,
			&i.Comment,
			&i.CreatedAt,
		)
		return i, err
	})
}

const getProductRatingStats = `-- name: GetProductRatingStats :one
SELECT count(*)::bigint AS total_reviews, COALESCE(avg(rating), 0)::numeric(3,2) AS average_rating
FROM reviews
WHERE product_id = $1
`

type GetProductRatingStatsRow struct {
	TotalReviews  int64          `json:"total_reviews"`
	AverageRating pgtype.Numeric `json:"average_rating"`
}

func (q *Queries) GetProductRatingStats(ctx context.Context, db DBTX, productID uuid.UUID) (GetProductRatingStatsRow, error) {
	var i GetProductRatingStatsRow
	err := db.QueryRow(ctx, getProductRatingStats, productID).Scan(&i.TotalReviews, &i.AverageRating)
	return i, err
}
