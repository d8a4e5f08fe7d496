package request

import (
	"strings"

	"rental-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	OrderID   uuid.UUID `json:"order_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=1000"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   strings.TrimSpace(r.Comment),
	}
}
