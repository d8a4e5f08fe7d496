package invoice

import (
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus        = errs.Validation("invalid invoice status")
	ErrOrderNotInvoiceable  = errs.InvalidState("order cannot be invoiced in its current status")
	ErrOrderMismatch        = errs.Validation("invoice belongs to another order")
	ErrNotDraft             = errs.InvalidState("only draft invoices can be changed")
	ErrNotPayable           = errs.InvalidState("invoice does not accept payments")
	ErrAlreadyPaid          = errs.InvalidState("invoice is already paid")
	ErrInvalidPaymentAmount = errs.Validation("payment amount must be positive")
	ErrOverpayment          = errs.Validation("payment exceeds amount due")
)

// Invoice bills exactly one order. amountDue = total - amountPaid at all times.
type Invoice struct {
	id              uuid.UUID
	number          string
	orderID         uuid.UUID
	customerID      uuid.UUID
	vendorID        uuid.UUID
	status          Status
	invoiceDate     time.Time
	dueDate         time.Time
	rentalStart     *time.Time
	rentalEnd       *time.Time
	parties         Parties
	billingAddress  string
	deliveryAddress string
	taxRate         decimal.Decimal
	interState      bool
	items           []*Item
	totals          pricing.Totals
	amountPaid      decimal.Decimal
	amountDue       decimal.Decimal
	postedAt        *time.Time
	paidAt          *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

type Snapshot struct {
	ID              uuid.UUID
	Number          string
	OrderID         uuid.UUID
	CustomerID      uuid.UUID
	VendorID        uuid.UUID
	Status          Status
	InvoiceDate     time.Time
	DueDate         time.Time
	RentalStart     *time.Time
	RentalEnd       *time.Time
	Parties         Parties
	BillingAddress  string
	DeliveryAddress string
	TaxRate         decimal.Decimal
	InterState      bool
	Items           []*Item
	DeliveryCharges decimal.Decimal
	SecurityDeposit decimal.Decimal
	LateFees        decimal.Decimal
	Discount        decimal.Decimal
	AmountPaid      decimal.Decimal
	PostedAt        *time.Time
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewFromOrder creates a draft invoice mirroring o. Party details are copied
// so the invoice stays stable when profiles change.
func NewFromOrder(number string, o *order.Order, parties Parties, policy pricing.Policy, now time.Time) (*Invoice, error) {
	if !invoiceable(o.Status()) {
		return nil, ErrOrderNotInvoiceable
	}
	inv := &Invoice{
		id:              uuid.New(),
		number:          number,
		orderID:         o.ID(),
		customerID:      o.CustomerID(),
		vendorID:        o.VendorID(),
		status:          StatusDraft,
		invoiceDate:     now,
		dueDate:         now.AddDate(0, 0, policy.InvoiceDueDays),
		parties:         parties,
		billingAddress:  o.BillingAddress(),
		deliveryAddress: o.DeliveryAddress(),
		amountPaid:      decimal.Zero,
		createdAt:       now,
		updatedAt:       now,
	}
	if err := inv.mirror(o); err != nil {
		return nil, err
	}
	return inv, nil
}

func ReconstructInvoice(s Snapshot) *Invoice {
	inv := &Invoice{
		id:              s.ID,
		number:          s.Number,
		orderID:         s.OrderID,
		customerID:      s.CustomerID,
		vendorID:        s.VendorID,
		status:          s.Status,
		invoiceDate:     s.InvoiceDate,
		dueDate:         s.DueDate,
		rentalStart:     s.RentalStart,
		rentalEnd:       s.RentalEnd,
		parties:         s.Parties,
		billingAddress:  s.BillingAddress,
		deliveryAddress: s.DeliveryAddress,
		taxRate:         s.TaxRate,
		interState:      s.InterState,
		items:           s.Items,
		amountPaid:      s.AmountPaid,
		postedAt:        s.PostedAt,
		paidAt:          s.PaidAt,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
	inv.refreshTotals(pricing.Adjustments{
		DeliveryCharges: s.DeliveryCharges,
		SecurityDeposit: s.SecurityDeposit,
		LateFees:        s.LateFees,
		Discount:        s.Discount,
	})
	return inv
}

func (i *Invoice) ID() uuid.UUID                    { return i.id }
func (i *Invoice) Number() string                   { return i.number }
func (i *Invoice) OrderID() uuid.UUID               { return i.orderID }
func (i *Invoice) CustomerID() uuid.UUID            { return i.customerID }
func (i *Invoice) VendorID() uuid.UUID              { return i.vendorID }
func (i *Invoice) Status() Status                   { return i.status }
func (i *Invoice) InvoiceDate() time.Time           { return i.invoiceDate }
func (i *Invoice) DueDate() time.Time               { return i.dueDate }
func (i *Invoice) RentalStart() *time.Time          { return i.rentalStart }
func (i *Invoice) RentalEnd() *time.Time            { return i.rentalEnd }
func (i *Invoice) Parties() Parties                 { return i.parties }
func (i *Invoice) BillingAddress() string           { return i.billingAddress }
func (i *Invoice) DeliveryAddress() string          { return i.deliveryAddress }
func (i *Invoice) TaxRate() decimal.Decimal         { return i.taxRate }
func (i *Invoice) InterState() bool                 { return i.interState }
func (i *Invoice) Items() []*Item                   { return i.items }
func (i *Invoice) Totals() pricing.Totals           { return i.totals }
func (i *Invoice) TotalAmount() decimal.Decimal     { return i.totals.Total }
func (i *Invoice) AmountPaid() decimal.Decimal      { return i.amountPaid }
func (i *Invoice) AmountDue() decimal.Decimal       { return i.amountDue }
func (i *Invoice) PostedAt() *time.Time             { return i.postedAt }
func (i *Invoice) PaidAt() *time.Time               { return i.paidAt }
func (i *Invoice) CreatedAt() time.Time             { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time             { return i.updatedAt }
func (i *Invoice) IsDraft() bool                    { return i.status == StatusDraft }
func (i *Invoice) IsFullyPaid() bool                { return i.status == StatusPaid }
func (i *Invoice) SecurityDeposit() decimal.Decimal { return i.totals.SecurityDeposit }

// Rebuild replaces the lines of a draft invoice with the order's current
// lines. Running it twice yields the same lines and totals.
func (i *Invoice) Rebuild(o *order.Order, now time.Time) error {
	if i.status != StatusDraft {
		return ErrNotDraft
	}
	if o.ID() != i.orderID {
		return ErrOrderMismatch
	}
	if err := i.mirror(o); err != nil {
		return err
	}
	i.billingAddress = o.BillingAddress()
	i.deliveryAddress = o.DeliveryAddress()
	i.updatedAt = now
	return nil
}

func (i *Invoice) Post(now time.Time) error {
	if i.status != StatusDraft {
		return ErrNotDraft
	}
	i.status = StatusPosted
	i.postedAt = &now
	i.updatedAt = now
	return nil
}

// ApplyPayment records amount against the invoice and reports whether this
// payment is the one that settled it. The amount is taken as given: a gateway
// capture that lands after a partial offline payment leaves amount due below
// zero and the invoice paid.
func (i *Invoice) ApplyPayment(amount decimal.Decimal, now time.Time) (settled bool, err error) {
	if err := i.checkPayable(amount); err != nil {
		return false, err
	}
	return i.apply(amount, now), nil
}

// ApplyOfflinePayment records an amount the vendor entered by hand. Unlike a
// gateway capture it may not exceed the amount due.
func (i *Invoice) ApplyOfflinePayment(amount decimal.Decimal, now time.Time) (settled bool, err error) {
	if err := i.checkPayable(amount); err != nil {
		return false, err
	}
	if amount.GreaterThan(i.amountDue) {
		return false, ErrOverpayment
	}
	return i.apply(amount, now), nil
}

func (i *Invoice) checkPayable(amount decimal.Decimal) error {
	switch i.status {
	case StatusCancelled, StatusRefunded:
		return ErrNotPayable
	case StatusPaid:
		return ErrAlreadyPaid
	}
	if !amount.IsPositive() {
		return ErrInvalidPaymentAmount
	}
	return nil
}

func (i *Invoice) apply(amount decimal.Decimal, now time.Time) (settled bool) {
	i.amountPaid = pricing.Round(i.amountPaid.Add(amount))
	i.amountDue = pricing.AmountDue(i.totals.Total, i.amountPaid)
	i.updatedAt = now
	if i.amountDue.Sign() <= 0 {
		i.status = StatusPaid
		i.paidAt = &now
		return true
	}
	i.status = StatusPartiallyPaid
	return false
}

func (i *Invoice) mirror(o *order.Order) error {
	items := make([]*Item, 0, len(o.Items())+1)
	for _, it := range o.Items() {
		mirrored, err := mirrorOrderItem(i.id, it, o.TaxRate(), o.InterState())
		if err != nil {
			return err
		}
		items = append(items, mirrored)
	}
	if o.SecurityDeposit().IsPositive() {
		items = append(items, depositItem(i.id, o.SecurityDeposit()))
	}

	i.items = items
	i.taxRate = o.TaxRate()
	i.interState = o.InterState()
	i.rentalStart = o.RentalStart()
	i.rentalEnd = o.RentalEnd()
	i.refreshTotals(pricing.Adjustments{
		DeliveryCharges: o.DeliveryCharges(),
		SecurityDeposit: o.SecurityDeposit(),
		LateFees:        o.LateFees(),
		Discount:        o.DiscountAmount(),
	})
	return nil
}

func (i *Invoice) refreshTotals(adj pricing.Adjustments) {
	lines := make([]pricing.LineAmounts, 0, len(i.items))
	for _, it := range i.items {
		if it.isDeposit {
			continue
		}
		lines = append(lines, it.amounts)
	}
	i.totals = pricing.Aggregate(lines, adj)
	i.amountDue = pricing.AmountDue(i.totals.Total, i.amountPaid)
}

func invoiceable(s order.Status) bool {
	return !s.IsDraft() && s != order.StatusCancelled
}
