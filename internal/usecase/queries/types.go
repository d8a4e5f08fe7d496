package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView represents read-optimized order data with its lines
type OrderView struct {
	ID                uuid.UUID        `json:"id"`
	OrderNumber       string           `json:"order_number"`
	CustomerID        uuid.UUID        `json:"customer_id"`
	VendorID          uuid.UUID        `json:"vendor_id"`
	Status            string           `json:"status"`
	IsLate            bool             `json:"is_late"`
	RentalStart       *time.Time       `json:"rental_start,omitempty"`
	RentalEnd         *time.Time       `json:"rental_end,omitempty"`
	DeliveryMethod    string           `json:"delivery_method"`
	BillingAddress    *string          `json:"billing_address,omitempty"`
	DeliveryAddress   *string          `json:"delivery_address,omitempty"`
	Subtotal          decimal.Decimal  `json:"subtotal"`
	TaxRate           decimal.Decimal  `json:"tax_rate"`
	InterState        bool             `json:"inter_state"`
	TaxAmount         decimal.Decimal  `json:"tax_amount"`
	DiscountCode      *string          `json:"discount_code,omitempty"`
	DiscountAmount    decimal.Decimal  `json:"discount_amount"`
	SecurityDeposit   decimal.Decimal  `json:"security_deposit"`
	DeliveryCharges   decimal.Decimal  `json:"delivery_charges"`
	LateFeesApplied   decimal.Decimal  `json:"late_fees_applied"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	DownpaymentAmount decimal.Decimal  `json:"downpayment_amount"`
	DownpaymentPaid   bool             `json:"downpayment_paid"`
	CustomerNotes     *string          `json:"customer_notes,omitempty"`
	InternalNotes     *string          `json:"internal_notes,omitempty"`
	PickupDate        *time.Time       `json:"pickup_date,omitempty"`
	ReturnDate        *time.Time       `json:"return_date,omitempty"`
	ActualReturnDate  *time.Time       `json:"actual_return_date,omitempty"`
	ConfirmedAt       *time.Time       `json:"confirmed_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Items             []*OrderItemView `json:"items,omitempty"`
}

type OrderItemView struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	VariantID        *uuid.UUID      `json:"variant_id,omitempty"`
	ProductName      string          `json:"product_name"`
	ProductSKU       string          `json:"product_sku"`
	Quantity         int32           `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DepositPerUnit   decimal.Decimal `json:"deposit_per_unit"`
	RentalStart      time.Time       `json:"rental_start"`
	RentalEnd        time.Time       `json:"rental_end"`
	RentalPeriodType string          `json:"rental_period_type"`
	DurationUnits    int64           `json:"duration_units"`
	LineSubtotal     decimal.Decimal `json:"line_subtotal"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	CGST             decimal.Decimal `json:"cgst"`
	SGST             decimal.Decimal `json:"sgst"`
	IGST             decimal.Decimal `json:"igst"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// CartView wraps the open quotation. Order is nil when the customer has no cart.
type CartView struct {
	Order       *OrderView      `json:"order"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderFilters struct {
	Status      *string
	CustomerID  *uuid.UUID
	VendorID    *uuid.UUID
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// InvoiceView represents read-optimized invoice data with its lines
type InvoiceView struct {
	ID                uuid.UUID          `json:"id"`
	InvoiceNumber     string             `json:"invoice_number"`
	OrderID           uuid.UUID          `json:"order_id"`
	CustomerID        uuid.UUID          `json:"customer_id"`
	VendorID          uuid.UUID          `json:"vendor_id"`
	Status            string             `json:"status"`
	InvoiceDate       time.Time          `json:"invoice_date"`
	DueDate           *time.Time         `json:"due_date,omitempty"`
	RentalStart       *time.Time         `json:"rental_start,omitempty"`
	RentalEnd         *time.Time         `json:"rental_end,omitempty"`
	VendorName        string             `json:"vendor_name"`
	VendorCompanyName *string            `json:"vendor_company_name,omitempty"`
	VendorGSTIN       *string            `json:"vendor_gstin,omitempty"`
	VendorAddress     *string            `json:"vendor_address,omitempty"`
	CustomerName      string             `json:"customer_name"`
	CustomerEmail     *string            `json:"customer_email,omitempty"`
	CustomerGSTIN     *string            `json:"customer_gstin,omitempty"`
	BillingAddress    *string            `json:"billing_address,omitempty"`
	DeliveryAddress   *string            `json:"delivery_address,omitempty"`
	TaxRate           decimal.Decimal    `json:"tax_rate"`
	InterState        bool               `json:"inter_state"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	TaxAmount         decimal.Decimal    `json:"tax_amount"`
	CGST              decimal.Decimal    `json:"cgst"`
	SGST              decimal.Decimal    `json:"sgst"`
	IGST              decimal.Decimal    `json:"igst"`
	DiscountAmount    decimal.Decimal    `json:"discount_amount"`
	SecurityDeposit   decimal.Decimal    `json:"security_deposit"`
	DeliveryCharges   decimal.Decimal    `json:"delivery_charges"`
	LateFees          decimal.Decimal    `json:"late_fees"`
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	AmountPaid        decimal.Decimal    `json:"amount_paid"`
	AmountDue         decimal.Decimal    `json:"amount_due"`
	PostedAt          *time.Time         `json:"posted_at,omitempty"`
	PaidAt            *time.Time         `json:"paid_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	Items             []*InvoiceItemView `json:"items,omitempty"`
}

type InvoiceItemView struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int32           `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Duration    int64           `json:"duration"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IGST        decimal.Decimal `json:"igst"`
	LineTotal   decimal.Decimal `json:"line_total"`
	IsDeposit   bool            `json:"is_deposit"`
}

type InvoiceFilters struct {
	Status     *string
	CustomerID *uuid.UUID
	VendorID   *uuid.UUID
}

type PaymentView struct {
	ID               uuid.UUID       `json:"id"`
	PaymentNumber    string          `json:"payment_number"`
	InvoiceID        uuid.UUID       `json:"invoice_id"`
	OrderID          uuid.UUID       `json:"order_id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Method           string          `json:"method"`
	Status           string          `json:"status"`
	GatewayOrderID   *string         `json:"gateway_order_id,omitempty"`
	GatewayPaymentID *string         `json:"gateway_payment_id,omitempty"`
	TransactionID    *string         `json:"transaction_id,omitempty"`
	CardLastFour     *string         `json:"card_last_four,omitempty"`
	CardBrand        *string         `json:"card_brand,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	FailureReason    *string         `json:"failure_reason,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type PaymentFilters struct {
	Status     *string
	InvoiceID  *uuid.UUID
	CustomerID *uuid.UUID
	VendorID   *uuid.UUID
}

// AvailabilityView is the outcome of an availability check for one
// product/variant and window.
type AvailabilityView struct {
	ProductID         uuid.UUID  `json:"product_id"`
	VariantID         *uuid.UUID `json:"variant_id,omitempty"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	RequestedQuantity int        `json:"requested_quantity"`
	StockOnHand       int        `json:"stock_on_hand"`
	ReservedQuantity  int        `json:"reserved_quantity"`
	AvailableQuantity int        `json:"available_quantity"`
	IsAvailable       bool       `json:"is_available"`
	Conflicts         []string   `json:"conflicts,omitempty"`
}

// CalendarEntry is one active reservation shown on a product calendar.
type CalendarEntry struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	OrderID       uuid.UUID  `json:"order_id"`
	OrderNumber   string     `json:"order_number"`
	VariantID     *uuid.UUID `json:"variant_id,omitempty"`
	Quantity      int32      `json:"quantity"`
	StartAt       time.Time  `json:"start_at"`
	EndAt         time.Time  `json:"end_at"`
	StockStatus   string     `json:"stock_status"`
	Consumed      bool       `json:"consumed"`
}
