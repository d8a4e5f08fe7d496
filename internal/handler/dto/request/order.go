package request

import (
	"strings"
	"time"

	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuotationItemRequest struct {
	ProductID  uuid.UUID  `json:"product_id" binding:"required"`
	VariantID  *uuid.UUID `json:"variant_id,omitempty"`
	Quantity   int        `json:"quantity" binding:"required,min=1"`
	StartDate  time.Time  `json:"start_date" binding:"required"`
	EndDate    time.Time  `json:"end_date" binding:"required,gtefield=StartDate"`
	PeriodType string     `json:"period_type" binding:"required,period"`
}

type CreateOrderRequest struct {
	Items []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToInput() commands.CreateQuotationInput {
	items := make([]commands.QuotationItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.QuotationItemInput{
			ProductID:  it.ProductID,
			VariantID:  it.VariantID,
			Quantity:   it.Quantity,
			StartAt:    it.StartDate,
			EndAt:      it.EndDate,
			PeriodType: it.PeriodType,
		}
	}
	return commands.CreateQuotationInput{Items: items}
}

type ConfirmOrderRequest struct {
	DeliveryMethod    string           `json:"delivery_method" binding:"omitempty,oneof=standard pickup"`
	BillingAddress    string           `json:"billing_address" binding:"max=500"`
	DeliveryAddress   string           `json:"delivery_address" binding:"max=500"`
	DownpaymentAmount *decimal.Decimal `json:"downpayment_amount,omitempty"`
	CustomerNotes     string           `json:"customer_notes" binding:"max=1000"`
}

func (r ConfirmOrderRequest) ToInput(idempotencyKey *uuid.UUID) commands.ConfirmOrderInput {
	return commands.ConfirmOrderInput{
		DeliveryMethod:    r.DeliveryMethod,
		BillingAddress:    strings.TrimSpace(r.BillingAddress),
		DeliveryAddress:   strings.TrimSpace(r.DeliveryAddress),
		DownpaymentAmount: r.DownpaymentAmount,
		CustomerNotes:     strings.TrimSpace(r.CustomerNotes),
		IdempotencyKey:    idempotencyKey,
	}
}

type PickupOrderRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

type ReturnOrderRequest struct {
	ConditionNotes    string `json:"condition_notes" binding:"max=1000"`
	DamageReported    bool   `json:"damage_reported"`
	DamageDescription string `json:"damage_description" binding:"required_if=DamageReported true,max=1000"`
	Notes             string `json:"notes" binding:"max=1000"`
}

func (r ReturnOrderRequest) ToInput() commands.ReturnOrderInput {
	return commands.ReturnOrderInput{
		ConditionNotes:    r.ConditionNotes,
		DamageReported:    r.DamageReported,
		DamageDescription: r.DamageDescription,
		Notes:             r.Notes,
	}
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ListOrdersQuery is bound from the query string of GET /api/orders.
type ListOrdersQuery struct {
	PageQuery
	Status      *string    `form:"status" binding:"omitempty,oneof=quotation quotation_sent sale_order confirmed picked_up active returned completed cancelled late"`
	CustomerID  *string    `form:"customer_id" binding:"omitempty,uuid"`
	VendorID    *string    `form:"vendor_id" binding:"omitempty,uuid"`
	CreatedFrom *time.Time `form:"created_from"`
	CreatedTo   *time.Time `form:"created_to"`
}

func (q ListOrdersQuery) ToFilters() queries.OrderFilters {
	return queries.OrderFilters{
		Status:      q.Status,
		CustomerID:  optionalUUID(q.CustomerID),
		VendorID:    optionalUUID(q.VendorID),
		CreatedFrom: q.CreatedFrom,
		CreatedTo:   q.CreatedTo,
	}
}

type UpcomingReturnsQuery struct {
	Days int `form:"days" binding:"omitempty,min=1"`
}
