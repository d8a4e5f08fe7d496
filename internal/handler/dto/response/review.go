package response

import (
	"time"

	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ReviewListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	OrderID      uuid.UUID `json:"order_id"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    int64     `json:"created_at"`
}

type ProductRatingStatsResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	TotalReviews  int64     `json:"total_reviews"`
	AverageRating string    `json:"average_rating"`
}

type ProductReviewsResponse struct {
	Stats      *ProductRatingStatsResponse `json:"stats"`
	Items      []*ReviewListItemResponse   `json:"items"`
	NextCursor *string                     `json:"next_cursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:           it.ID,
			CustomerName: it.CustomerName,
			OrderID:      it.OrderID,
			Rating:       it.Rating,
			Comment:      it.Comment,
			CreatedAt:    unixOrZero(it.CreatedAt),
		}
	}
	return res
}

func FromProductRatingStats(s *queries.ProductRatingStats) *ProductRatingStatsResponse {
	return &ProductRatingStatsResponse{
		ProductID:     s.ProductID,
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating.StringFixed(2),
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
