//go:build unit || e2e

package builder

import (
	"time"

	domreview "rental-core/internal/domain/review"
	reqdto "rental-core/internal/handler/dto/request"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ReviewBuilder struct {
	CustomerID   uuid.UUID
	CustomerName string
	ProductID    uuid.UUID
	OrderID      uuid.UUID
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		CustomerID:   uuid.New(),
		CustomerName: "Ravi Kumar",
		ProductID:    uuid.New(),
		OrderID:      uuid.New(),
		Rating:       5,
		Comment:      "Camera was spotless!",
		CreatedAt:    BaseTime,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.CustomerID, r.ProductID, r.OrderID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:         uuid.New(),
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		OrderID:    r.OrderID,
		Rating:     int32(r.Rating),
		Comment:    r.Comment,
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ProductID: r.ProductID,
		OrderID:   r.OrderID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:           uuid.New(),
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		ProductID:    r.ProductID,
		OrderID:      r.OrderID,
		Rating:       int32(r.Rating),
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildRatingStats(total int64, average string) *queries.ProductRatingStats {
	return &queries.ProductRatingStats{
		ProductID:     r.ProductID,
		TotalReviews:  total,
		AverageRating: decimal.RequireFromString(average),
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithCustomerID(id uuid.UUID) *ReviewBuilder {
	r.CustomerID = id
	return r
}

func (r *ReviewBuilder) WithProductID(id uuid.UUID) *ReviewBuilder {
	r.ProductID = id
	return r
}

func (r *ReviewBuilder) WithOrderID(id uuid.UUID) *ReviewBuilder {
	r.OrderID = id
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}
