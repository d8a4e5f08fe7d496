package response

import (
	"time"

	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID                uuid.UUID            `json:"id"`
	OrderNumber       string               `json:"order_number"`
	CustomerID        uuid.UUID            `json:"customer_id"`
	VendorID          uuid.UUID            `json:"vendor_id"`
	Status            string               `json:"status"`
	IsLate            bool                 `json:"is_late"`
	RentalStart       *time.Time           `json:"rental_start,omitempty"`
	RentalEnd         *time.Time           `json:"rental_end,omitempty"`
	DeliveryMethod    string               `json:"delivery_method"`
	BillingAddress    *string              `json:"billing_address,omitempty"`
	DeliveryAddress   *string              `json:"delivery_address,omitempty"`
	Subtotal          string               `json:"subtotal"`
	TaxRate           string               `json:"tax_rate"`
	InterState        bool                 `json:"inter_state"`
	TaxAmount         string               `json:"tax_amount"`
	DiscountCode      *string              `json:"discount_code,omitempty"`
	DiscountAmount    string               `json:"discount_amount"`
	SecurityDeposit   string               `json:"security_deposit"`
	DeliveryCharges   string               `json:"delivery_charges"`
	LateFeesApplied   string               `json:"late_fees_applied"`
	TotalAmount       string               `json:"total_amount"`
	DownpaymentAmount string               `json:"downpayment_amount"`
	DownpaymentPaid   bool                 `json:"downpayment_paid"`
	CustomerNotes     *string              `json:"customer_notes,omitempty"`
	PickupDate        *time.Time           `json:"pickup_date,omitempty"`
	ReturnDate        *time.Time           `json:"return_date,omitempty"`
	ActualReturnDate  *time.Time           `json:"actual_return_date,omitempty"`
	ConfirmedAt       *time.Time           `json:"confirmed_at,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	Items             []*OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID               uuid.UUID  `json:"id"`
	ProductID        uuid.UUID  `json:"product_id"`
	VariantID        *uuid.UUID `json:"variant_id,omitempty"`
	ProductName      string     `json:"product_name"`
	ProductSKU       string     `json:"product_sku"`
	Quantity         int32      `json:"quantity"`
	UnitPrice        string     `json:"unit_price"`
	DepositPerUnit   string     `json:"deposit_per_unit"`
	RentalStart      time.Time  `json:"rental_start"`
	RentalEnd        time.Time  `json:"rental_end"`
	RentalPeriodType string     `json:"rental_period_type"`
	DurationUnits    int64      `json:"duration_units"`
	LineSubtotal     string     `json:"line_subtotal"`
	TaxAmount        string     `json:"tax_amount"`
	CGST             string     `json:"cgst"`
	SGST             string     `json:"sgst"`
	IGST             string     `json:"igst"`
	LineTotal        string     `json:"line_total"`
}

type CartResponse struct {
	Order       *OrderResponse `json:"order"`
	ItemCount   int            `json:"item_count"`
	Subtotal    string         `json:"subtotal"`
	TaxAmount   string         `json:"tax_amount"`
	TotalAmount string         `json:"total_amount"`
}

type QuotationsResponse struct {
	OrderIDs []uuid.UUID `json:"order_ids"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res := &OrderResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*OrderItemResponse{}
	}
	return res, nil
}

func FromOrderViews(views []*queries.OrderView) ([]*OrderResponse, error) {
	return mapAll[queries.OrderView, OrderResponse](views)
}

// FromCartView keeps "order": null for a customer without a cart.
func FromCartView(v *queries.CartView) (*CartResponse, error) {
	res := &CartResponse{
		ItemCount:   v.ItemCount,
		Subtotal:    v.Subtotal.StringFixed(2),
		TaxAmount:   v.TaxAmount.StringFixed(2),
		TotalAmount: v.TotalAmount.StringFixed(2),
	}
	if v.Order != nil {
		o, err := FromOrderView(v.Order)
		if err != nil {
			return nil, err
		}
		res.Order = o
	}
	return res, nil
}

func FromOrderPage(views []*queries.OrderView, next *queries.Cursor) (*Page[OrderResponse], error) {
	items, err := FromOrderViews(views)
	if err != nil {
		return nil, err
	}
	return &Page[OrderResponse]{Items: items, NextCursor: cursorString(next)}, nil
}

func cursorString(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	s := c.After
	return &s
}
