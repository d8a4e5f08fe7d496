package request

import (
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateInvoiceRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

type ListInvoicesQuery struct {
	PageQuery
	Status     *string `form:"status" binding:"omitempty,oneof=draft sent posted paid partially_paid cancelled refunded"`
	CustomerID *string `form:"customer_id" binding:"omitempty,uuid"`
	VendorID   *string `form:"vendor_id" binding:"omitempty,uuid"`
}

func (q ListInvoicesQuery) ToFilters() queries.InvoiceFilters {
	return queries.InvoiceFilters{
		Status:     q.Status,
		CustomerID: optionalUUID(q.CustomerID),
		VendorID:   optionalUUID(q.VendorID),
	}
}
