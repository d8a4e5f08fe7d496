package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewListItem struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ProductID    uuid.UUID `json:"product_id"`
	OrderID      uuid.UUID `json:"order_id"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductRatingStats struct {
	ProductID     uuid.UUID       `json:"product_id"`
	TotalReviews  int64           `json:"total_reviews"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock

type ReviewReadStore interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, after *Keyset, limit int32) ([]*ReviewListItem, error)
	GetProductRatingStats(ctx context.Context, productID uuid.UUID) (*ProductRatingStats, error)
}

type ReviewQueries interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetProductRatingStats(ctx context.Context, productID uuid.UUID) (*ProductRatingStats, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.repo.ListByProduct(ctx, productID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := nextPage(rows, limit, func(r *ReviewListItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetProductRatingStats(ctx context.Context, productID uuid.UUID) (*ProductRatingStats, error) {
	return q.repo.GetProductRatingStats(ctx, productID)
}
