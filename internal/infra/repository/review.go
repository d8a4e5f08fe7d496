package repository

import (
	"context"

	"rental-core/internal/domain/review"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"

	"github.com/google/uuid"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/repository/review.go -package=repositorymock
type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts rev. A second review of the same product on one order surfaces as
// KindDuplicateKey through the unique index.
func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	params := converter.ReviewToCreateParams(rev)
	row, err := r.queries.CreateReview(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return row.ID, nil
}
