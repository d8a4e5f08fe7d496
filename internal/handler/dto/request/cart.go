package request

import (
	"strings"
	"time"

	"rental-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID  uuid.UUID  `json:"product_id" binding:"required"`
	VariantID  *uuid.UUID `json:"variant_id,omitempty"`
	Quantity   int        `json:"quantity" binding:"required,min=1"`
	StartDate  time.Time  `json:"start_date" binding:"required"`
	EndDate    time.Time  `json:"end_date" binding:"required,gtefield=StartDate"`
	PeriodType string     `json:"period_type" binding:"required,period"`
}

func (r AddCartItemRequest) ToInput() commands.AddCartItemInput {
	return commands.AddCartItemInput{
		ProductID:  r.ProductID,
		VariantID:  r.VariantID,
		Quantity:   r.Quantity,
		StartAt:    r.StartDate,
		EndAt:      r.EndDate,
		PeriodType: r.PeriodType,
	}
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required,max=50"`
}

func (r ApplyCouponRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}
