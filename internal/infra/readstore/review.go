package readstore

import (
	"context"

	"rental-core/internal/infra"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/readstore/review.go -package=readstoremock
type ReviewReadQueries interface {
	ListReviewsByProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByProductParams) ([]sqlc.ListReviewsByProductRow, error)
	GetProductRatingStats(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.GetProductRatingStatsRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ListByProduct(ctx context.Context, productID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.ListReviewsByProductParams{
		ProductID: productID,
		Limit:     limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListReviewsByProduct(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by product", err)
	}

	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewListItem{
			ID:           row.ID,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			ProductID:    row.ProductID,
			OrderID:      row.OrderID,
			Rating:       row.Rating,
			Comment:      row.Comment,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) GetProductRatingStats(ctx context.Context, productID uuid.UUID) (*queries.ProductRatingStats, error) {
	row, err := r.queries.GetProductRatingStats(ctx, r.db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product rating stats", err)
	}
	avg, err := pgconv.DecimalFromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode average rating", err)
	}
	return &queries.ProductRatingStats{
		ProductID:     productID,
		TotalReviews:  row.TotalReviews,
		AverageRating: avg,
	}, nil
}
