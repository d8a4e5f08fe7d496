package response

import (
	"time"

	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID                uuid.UUID              `json:"id"`
	InvoiceNumber     string                 `json:"invoice_number"`
	OrderID           uuid.UUID              `json:"order_id"`
	CustomerID        uuid.UUID              `json:"customer_id"`
	VendorID          uuid.UUID              `json:"vendor_id"`
	Status            string                 `json:"status"`
	InvoiceDate       time.Time              `json:"invoice_date"`
	DueDate           *time.Time             `json:"due_date,omitempty"`
	RentalStart       *time.Time             `json:"rental_start,omitempty"`
	RentalEnd         *time.Time             `json:"rental_end,omitempty"`
	VendorName        string                 `json:"vendor_name"`
	VendorCompanyName *string                `json:"vendor_company_name,omitempty"`
	VendorGSTIN       *string                `json:"vendor_gstin,omitempty"`
	VendorAddress     *string                `json:"vendor_address,omitempty"`
	CustomerName      string                 `json:"customer_name"`
	CustomerEmail     *string                `json:"customer_email,omitempty"`
	CustomerGSTIN     *string                `json:"customer_gstin,omitempty"`
	BillingAddress    *string                `json:"billing_address,omitempty"`
	DeliveryAddress   *string                `json:"delivery_address,omitempty"`
	TaxRate           string                 `json:"tax_rate"`
	InterState        bool                   `json:"inter_state"`
	Subtotal          string                 `json:"subtotal"`
	TaxAmount         string                 `json:"tax_amount"`
	CGST              string                 `json:"cgst"`
	SGST              string                 `json:"sgst"`
	IGST              string                 `json:"igst"`
	DiscountAmount    string                 `json:"discount_amount"`
	SecurityDeposit   string                 `json:"security_deposit"`
	DeliveryCharges   string                 `json:"delivery_charges"`
	LateFees          string                 `json:"late_fees"`
	TotalAmount       string                 `json:"total_amount"`
	AmountPaid        string                 `json:"amount_paid"`
	AmountDue         string                 `json:"amount_due"`
	PostedAt          *time.Time             `json:"posted_at,omitempty"`
	PaidAt            *time.Time             `json:"paid_at,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	Items             []*InvoiceItemResponse `json:"items"`
}

type InvoiceItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	Description string     `json:"description"`
	Quantity    int32      `json:"quantity"`
	Unit        string     `json:"unit"`
	UnitPrice   string     `json:"unit_price"`
	TaxRate     string     `json:"tax_rate"`
	Duration    int64      `json:"duration"`
	Subtotal    string     `json:"subtotal"`
	TaxAmount   string     `json:"tax_amount"`
	CGST        string     `json:"cgst"`
	SGST        string     `json:"sgst"`
	IGST        string     `json:"igst"`
	LineTotal   string     `json:"line_total"`
	IsDeposit   bool       `json:"is_deposit"`
}

func FromInvoiceView(v *queries.InvoiceView) (*InvoiceResponse, error) {
	res := &InvoiceResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*InvoiceItemResponse{}
	}
	return res, nil
}

func FromInvoicePage(views []*queries.InvoiceView, next *queries.Cursor) (*Page[InvoiceResponse], error) {
	items, err := mapAll[queries.InvoiceView, InvoiceResponse](views)
	if err != nil {
		return nil, err
	}
	return &Page[InvoiceResponse]{Items: items, NextCursor: cursorString(next)}, nil
}
