package converter

import (
	"rental-core/internal/domain/review"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		ProductID:  r.ProductID(),
		OrderID:    r.OrderID(),
		Rating:     pgconv.IntToInt32(r.Rating().Value()),
		Comment:    r.Comment().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
