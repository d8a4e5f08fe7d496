package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID          uuid.UUID          `json:"id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	CompanyName pgtype.Text        `json:"company_name"`
	Gstin       pgtype.Text        `json:"gstin"`
	Address     pgtype.Text        `json:"address"`
	Role        string             `json:"role"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Products struct {
	ID               uuid.UUID          `json:"id"`
	VendorID         uuid.UUID          `json:"vendor_id"`
	Name             string             `json:"name"`
	Sku              string             `json:"sku"`
	Description      pgtype.Text        `json:"description"`
	PriceHourly      pgtype.Numeric     `json:"price_hourly"`
	PriceDaily       pgtype.Numeric     `json:"price_daily"`
	PriceWeekly      pgtype.Numeric     `json:"price_weekly"`
	PriceMonthly     pgtype.Numeric     `json:"price_monthly"`
	SecurityDeposit  pgtype.Numeric     `json:"security_deposit"`
	QuantityOnHand   int32              `json:"quantity_on_hand"`
	QuantityReserved int32              `json:"quantity_reserved"`
	IsRentable       bool               `json:"is_rentable"`
	IsPublished      bool               `json:"is_published"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type ProductVariants struct {
	ID               uuid.UUID          `json:"id"`
	ProductID        uuid.UUID          `json:"product_id"`
	Name             string             `json:"name"`
	Sku              string             `json:"sku"`
	PriceOverride    pgtype.Numeric     `json:"price_override"`
	QuantityOnHand   int32              `json:"quantity_on_hand"`
	QuantityReserved int32              `json:"quantity_reserved"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type Orders struct {
	ID                uuid.UUID          `json:"id"`
	OrderNumber       string             `json:"order_number"`
	CustomerID        uuid.UUID          `json:"customer_id"`
	VendorID          uuid.UUID          `json:"vendor_id"`
	Status            string             `json:"status"`
	RentalStart       pgtype.Timestamptz `json:"rental_start"`
	RentalEnd         pgtype.Timestamptz `json:"rental_end"`
	DeliveryMethod    string             `json:"delivery_method"`
	BillingAddress    pgtype.Text        `json:"billing_address"`
	DeliveryAddress   pgtype.Text        `json:"delivery_address"`
	Subtotal          pgtype.Numeric     `json:"subtotal"`
	TaxRate           pgtype.Numeric     `json:"tax_rate"`
	InterState        bool               `json:"inter_state"`
	TaxAmount         pgtype.Numeric     `json:"tax_amount"`
	DiscountCode      pgtype.Text        `json:"discount_code"`
	DiscountAmount    pgtype.Numeric     `json:"discount_amount"`
	SecurityDeposit   pgtype.Numeric     `json:"security_deposit"`
	DeliveryCharges   pgtype.Numeric     `json:"delivery_charges"`
	LateFeesApplied   pgtype.Numeric     `json:"late_fees_applied"`
	TotalAmount       pgtype.Numeric     `json:"total_amount"`
	DownpaymentAmount pgtype.Numeric     `json:"downpayment_amount"`
	DownpaymentPaid   bool               `json:"downpayment_paid"`
	CustomerNotes     pgtype.Text        `json:"customer_notes"`
	InternalNotes     pgtype.Text        `json:"internal_notes"`
	PickupDate        pgtype.Timestamptz `json:"pickup_date"`
	PickupNotes       pgtype.Text        `json:"pickup_notes"`
	ReturnDate        pgtype.Timestamptz `json:"return_date"`
	ActualReturnDate  pgtype.Timestamptz `json:"actual_return_date"`
	ReturnNotes       pgtype.Text        `json:"return_notes"`
	ConfirmedAt       pgtype.Timestamptz `json:"confirmed_at"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
	DiscountRequested pgtype.Numeric     `json:"discount_requested"`
}

type OrderItems struct {
	ID               uuid.UUID          `json:"id"`
	OrderID          uuid.UUID          `json:"order_id"`
	ProductID        uuid.UUID          `json:"product_id"`
	VariantID        pgtype.UUID        `json:"variant_id"`
	ProductName      string             `json:"product_name"`
	ProductSku       string             `json:"product_sku"`
	Quantity         int32              `json:"quantity"`
	UnitPrice        pgtype.Numeric     `json:"unit_price"`
	DepositPerUnit   pgtype.Numeric     `json:"deposit_per_unit"`
	RentalStart      pgtype.Timestamptz `json:"rental_start"`
	RentalEnd        pgtype.Timestamptz `json:"rental_end"`
	RentalPeriodType string             `json:"rental_period_type"`
	DurationUnits    int64              `json:"duration_units"`
	LineSubtotal     pgtype.Numeric     `json:"line_subtotal"`
	TaxAmount        pgtype.Numeric     `json:"tax_amount"`
	Cgst             pgtype.Numeric     `json:"cgst"`
	Sgst             pgtype.Numeric     `json:"sgst"`
	Igst             pgtype.Numeric     `json:"igst"`
	LineTotal        pgtype.Numeric     `json:"line_total"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}

type Reservations struct {
	ID          uuid.UUID          `json:"id"`
	OrderID     uuid.UUID          `json:"order_id"`
	OrderItemID uuid.UUID          `json:"order_item_id"`
	ProductID   uuid.UUID          `json:"product_id"`
	VariantID   pgtype.UUID        `json:"variant_id"`
	Quantity    int32              `json:"quantity"`
	StartAt     pgtype.Timestamptz `json:"start_at"`
	EndAt       pgtype.Timestamptz `json:"end_at"`
	Status      string             `json:"status"`
	StockStatus string             `json:"stock_status"`
	Consumed    bool               `json:"consumed"`
	ReleasedAt  pgtype.Timestamptz `json:"released_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type PickupDocuments struct {
	ID           uuid.UUID          `json:"id"`
	OrderID      uuid.UUID          `json:"order_id"`
	PickupNumber string             `json:"pickup_number"`
	Instructions string             `json:"instructions"`
	Location     pgtype.Text        `json:"location"`
	ScheduledAt  pgtype.Timestamptz `json:"scheduled_at"`
	IsPickedUp   bool               `json:"is_picked_up"`
	PickedUpAt   pgtype.Timestamptz `json:"picked_up_at"`
	PickedUpBy   pgtype.UUID        `json:"picked_up_by"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type ReturnDocuments struct {
	ID                uuid.UUID          `json:"id"`
	OrderID           uuid.UUID          `json:"order_id"`
	ReturnNumber      string             `json:"return_number"`
	ReceivedBy        uuid.UUID          `json:"received_by"`
	ConditionNotes    pgtype.Text        `json:"condition_notes"`
	DamageReported    bool               `json:"damage_reported"`
	DamageDescription pgtype.Text        `json:"damage_description"`
	ExpectedReturn    pgtype.Timestamptz `json:"expected_return"`
	ActualReturn      pgtype.Timestamptz `json:"actual_return"`
	IsLate            bool               `json:"is_late"`
	LateDays          int32              `json:"late_days"`
	LateFee           pgtype.Numeric     `json:"late_fee"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
}

type Invoices struct {
	ID                uuid.UUID          `json:"id"`
	InvoiceNumber     string             `json:"invoice_number"`
	OrderID           uuid.UUID          `json:"order_id"`
	CustomerID        uuid.UUID          `json:"customer_id"`
	VendorID          uuid.UUID          `json:"vendor_id"`
	Status            string             `json:"status"`
	InvoiceDate       pgtype.Timestamptz `json:"invoice_date"`
	DueDate           pgtype.Timestamptz `json:"due_date"`
	RentalStart       pgtype.Timestamptz `json:"rental_start"`
	RentalEnd         pgtype.Timestamptz `json:"rental_end"`
	VendorName        string             `json:"vendor_name"`
	VendorCompanyName pgtype.Text        `json:"vendor_company_name"`
	VendorGstin       pgtype.Text        `json:"vendor_gstin"`
	VendorAddress     pgtype.Text        `json:"vendor_address"`
	CustomerName      string             `json:"customer_name"`
	CustomerEmail     pgtype.Text        `json:"customer_email"`
	CustomerGstin     pgtype.Text        `json:"customer_gstin"`
	BillingAddress    pgtype.Text        `json:"billing_address"`
	DeliveryAddress   pgtype.Text        `json:"delivery_address"`
	TaxRate           pgtype.Numeric     `json:"tax_rate"`
	InterState        bool               `json:"inter_state"`
	Subtotal          pgtype.Numeric     `json:"subtotal"`
	TaxAmount         pgtype.Numeric     `json:"tax_amount"`
	Cgst              pgtype.Numeric     `json:"cgst"`
	Sgst              pgtype.Numeric     `json:"sgst"`
	Igst              pgtype.Numeric     `json:"igst"`
	DiscountAmount    pgtype.Numeric     `json:"discount_amount"`
	SecurityDeposit   pgtype.Numeric     `json:"security_deposit"`
	DeliveryCharges   pgtype.Numeric     `json:"delivery_charges"`
	LateFees          pgtype.Numeric     `json:"late_fees"`
	TotalAmount       pgtype.Numeric     `json:"total_amount"`
	AmountPaid        pgtype.Numeric     `json:"amount_paid"`
	AmountDue         pgtype.Numeric     `json:"amount_due"`
	PostedAt          pgtype.Timestamptz `json:"posted_at"`
	PaidAt            pgtype.Timestamptz `json:"paid_at"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

type InvoiceItems struct {
	ID          uuid.UUID      `json:"id"`
	InvoiceID   uuid.UUID      `json:"invoice_id"`
	ProductID   pgtype.UUID    `json:"product_id"`
	Description string         `json:"description"`
	Quantity    int32          `json:"quantity"`
	Unit        string         `json:"unit"`
	UnitPrice   pgtype.Numeric `json:"unit_price"`
	TaxRate     pgtype.Numeric `json:"tax_rate"`
	Duration    int64          `json:"duration"`
	Subtotal    pgtype.Numeric `json:"subtotal"`
	TaxAmount   pgtype.Numeric `json:"tax_amount"`
	Cgst        pgtype.Numeric `json:"cgst"`
	Sgst        pgtype.Numeric `json:"sgst"`
	Igst        pgtype.Numeric `json:"igst"`
	LineTotal   pgtype.Numeric `json:"line_total"`
	IsDeposit   bool           `json:"is_deposit"`
	Position    int32          `json:"position"`
}

type Payments struct {
	ID               uuid.UUID          `json:"id"`
	PaymentNumber    string             `json:"payment_number"`
	InvoiceID        uuid.UUID          `json:"invoice_id"`
	OrderID          uuid.UUID          `json:"order_id"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	Amount           pgtype.Numeric     `json:"amount"`
	Currency         string             `json:"currency"`
	Method           string             `json:"method"`
	Status           string             `json:"status"`
	GatewayOrderID   pgtype.Text        `json:"gateway_order_id"`
	GatewayPaymentID pgtype.Text        `json:"gateway_payment_id"`
	GatewaySignature pgtype.Text        `json:"gateway_signature"`
	TransactionID    pgtype.Text        `json:"transaction_id"`
	CardLastFour     pgtype.Text        `json:"card_last_four"`
	CardBrand        pgtype.Text        `json:"card_brand"`
	Notes            pgtype.Text        `json:"notes"`
	FailureReason    pgtype.Text        `json:"failure_reason"`
	PaidAt           pgtype.Timestamptz `json:"paid_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type Coupons struct {
	ID            uuid.UUID          `json:"id"`
	Code          string             `json:"code"`
	DiscountType  string             `json:"discount_type"`
	DiscountValue pgtype.Numeric     `json:"discount_value"`
	MaxDiscount   pgtype.Numeric     `json:"max_discount"`
	MinOrderValue pgtype.Numeric     `json:"min_order_value"`
	ValidFrom     pgtype.Timestamptz `json:"valid_from"`
	ValidTo       pgtype.Timestamptz `json:"valid_to"`
	UsageLimit    pgtype.Int4        `json:"usage_limit"`
	UsedCount     int32              `json:"used_count"`
	IsActive      bool               `json:"is_active"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type Reviews struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	ProductID  uuid.UUID          `json:"product_id"`
	OrderID    uuid.UUID          `json:"order_id"`
	Rating     int32              `json:"rating"`
	Comment    string             `json:"comment"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type IdempotencyKeys struct {
	Key              uuid.UUID          `json:"key"`
	UserID           uuid.UUID          `json:"user_id"`
	Endpoint         string             `json:"endpoint"`
	RequestHash      string             `json:"request_hash"`
	ResponseBodyHash pgtype.Text        `json:"response_body_hash"`
	Status           string             `json:"status"`
	ResultID         pgtype.UUID        `json:"result_id"`
	ExpiresAt        pgtype.Timestamptz `json:"expires_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}
