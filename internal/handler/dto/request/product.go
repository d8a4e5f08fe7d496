package request

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	VariantID *string   `form:"variant_id" binding:"omitempty,uuid"`
	StartDate time.Time `form:"start_date" binding:"required"`
	EndDate   time.Time `form:"end_date" binding:"required,gtefield=StartDate"`
	Quantity  int       `form:"quantity" binding:"omitempty,min=1"`
}

func (q AvailabilityQuery) Variant() *uuid.UUID {
	return optionalUUID(q.VariantID)
}

func (q AvailabilityQuery) RequestedQuantity() int {
	if q.Quantity == 0 {
		return 1
	}
	return q.Quantity
}

type CalendarQuery struct {
	From *time.Time `form:"from"`
	To   *time.Time `form:"to"`
}
