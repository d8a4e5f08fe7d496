package order

import (
	"strings"
	"time"

	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus         = errs.Validation("invalid order status")
	ErrInvalidDeliveryMethod = errs.Validation("invalid delivery method")
	ErrEmptyOrder            = errs.Validation("order has no items")
	ErrVendorMismatch        = errs.Conflict("cart already holds items from another vendor")
	ErrItemNotFound          = errs.NotFound("order item not found")
	ErrNegativeAmount        = errs.Validation("amount cannot be negative")
	ErrNotEditable           = errs.InvalidState("only quotations can be edited")
	ErrCannotConfirm         = errs.InvalidState("only quotations can be confirmed")
	ErrCannotPickUp          = errs.InvalidState("order is not ready for pickup")
	ErrCannotReturn          = errs.InvalidState("order is not out with the customer")
	ErrCannotCancel          = errs.InvalidState("order is already completed or cancelled")
	ErrCannotComplete        = errs.InvalidState("only returned orders can be completed")
)

// Order is one customer's rental request against a single vendor. Every money
// field is derived from the items plus adjustments by refreshTotals.
type Order struct {
	id                uuid.UUID
	number            string
	customerID        uuid.UUID
	vendorID          uuid.UUID
	status            Status
	items             []*Item
	rentalStart       *time.Time
	rentalEnd         *time.Time
	deliveryMethod    DeliveryMethod
	billingAddress    string
	deliveryAddress   string
	taxRate           decimal.Decimal
	interState        bool
	totals            pricing.Totals
	discountCode      string
	requestedDiscount decimal.Decimal
	downpaymentAmount decimal.Decimal
	downpaymentPaid   bool
	customerNotes     string
	internalNotes     string
	pickupDate        *time.Time
	pickupNotes       string
	actualReturnDate  *time.Time
	returnNotes       string
	confirmedAt       *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// Snapshot carries persisted order state for ReconstructOrder.
type Snapshot struct {
	ID                uuid.UUID
	Number            string
	CustomerID        uuid.UUID
	VendorID          uuid.UUID
	Status            Status
	Items             []*Item
	RentalStart       *time.Time
	RentalEnd         *time.Time
	DeliveryMethod    DeliveryMethod
	BillingAddress    string
	DeliveryAddress   string
	TaxRate           decimal.Decimal
	InterState        bool
	DiscountCode      string
	DiscountAmount    decimal.Decimal
	RequestedDiscount decimal.Decimal
	DeliveryCharges   decimal.Decimal
	LateFees          decimal.Decimal
	DownpaymentAmount decimal.Decimal
	DownpaymentPaid   bool
	CustomerNotes     string
	InternalNotes     string
	PickupDate        *time.Time
	PickupNotes       string
	ActualReturnDate  *time.Time
	ReturnNotes       string
	ConfirmedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewQuotation(number string, customerID, vendorID uuid.UUID, policy pricing.Policy, now time.Time) (*Order, error) {
	if err := pricing.ValidateTaxRate(policy.TaxRate); err != nil {
		return nil, err
	}
	o := &Order{
		id:                uuid.New(),
		number:            number,
		customerID:        customerID,
		vendorID:          vendorID,
		status:            StatusQuotation,
		deliveryMethod:    DeliveryStandard,
		taxRate:           policy.TaxRate,
		interState:        policy.InterStateSupply,
		downpaymentAmount: decimal.Zero,
		createdAt:         now,
		updatedAt:         now,
	}
	o.refreshTotals()
	return o, nil
}

// ReconstructOrder rebuilds an order from storage. Totals are derived again
// from the stored item amounts and adjustments.
func ReconstructOrder(s Snapshot) *Order {
	o := &Order{
		id:                s.ID,
		number:            s.Number,
		customerID:        s.CustomerID,
		vendorID:          s.VendorID,
		status:            s.Status,
		items:             s.Items,
		rentalStart:       s.RentalStart,
		rentalEnd:         s.RentalEnd,
		deliveryMethod:    s.DeliveryMethod,
		billingAddress:    s.BillingAddress,
		deliveryAddress:   s.DeliveryAddress,
		taxRate:           s.TaxRate,
		interState:        s.InterState,
		discountCode:      s.DiscountCode,
		requestedDiscount: decimal.Max(s.RequestedDiscount, s.DiscountAmount),
		downpaymentAmount: s.DownpaymentAmount,
		downpaymentPaid:   s.DownpaymentPaid,
		customerNotes:     s.CustomerNotes,
		internalNotes:     s.InternalNotes,
		pickupDate:        s.PickupDate,
		pickupNotes:       s.PickupNotes,
		actualReturnDate:  s.ActualReturnDate,
		returnNotes:       s.ReturnNotes,
		confirmedAt:       s.ConfirmedAt,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}
	o.totals.DeliveryCharges = s.DeliveryCharges
	o.totals.LateFees = s.LateFees
	o.refreshTotals()
	return o
}

func (o *Order) ID() uuid.UUID                      { return o.id }
func (o *Order) Number() string                     { return o.number }
func (o *Order) CustomerID() uuid.UUID              { return o.customerID }
func (o *Order) VendorID() uuid.UUID                { return o.vendorID }
func (o *Order) Status() Status                     { return o.status }
func (o *Order) Items() []*Item                     { return o.items }
func (o *Order) RentalStart() *time.Time            { return o.rentalStart }
func (o *Order) RentalEnd() *time.Time              { return o.rentalEnd }
func (o *Order) DeliveryMethod() DeliveryMethod     { return o.deliveryMethod }
func (o *Order) BillingAddress() string             { return o.billingAddress }
func (o *Order) DeliveryAddress() string            { return o.deliveryAddress }
func (o *Order) TaxRate() decimal.Decimal           { return o.taxRate }
func (o *Order) InterState() bool                   { return o.interState }
func (o *Order) Totals() pricing.Totals             { return o.totals }
func (o *Order) Subtotal() decimal.Decimal          { return o.totals.Subtotal }
func (o *Order) TaxAmount() decimal.Decimal         { return o.totals.Tax.Amount }
func (o *Order) DiscountCode() string               { return o.discountCode }
func (o *Order) DiscountAmount() decimal.Decimal    { return o.totals.Discount }
func (o *Order) RequestedDiscount() decimal.Decimal { return o.requestedDiscount }
func (o *Order) SecurityDeposit() decimal.Decimal   { return o.totals.SecurityDeposit }
func (o *Order) DeliveryCharges() decimal.Decimal   { return o.totals.DeliveryCharges }
func (o *Order) LateFees() decimal.Decimal          { return o.totals.LateFees }
func (o *Order) TotalAmount() decimal.Decimal       { return o.totals.Total }
func (o *Order) DownpaymentAmount() decimal.Decimal { return o.downpaymentAmount }
func (o *Order) DownpaymentPaid() bool              { return o.downpaymentPaid }
func (o *Order) CustomerNotes() string              { return o.customerNotes }
func (o *Order) InternalNotes() string              { return o.internalNotes }
func (o *Order) PickupDate() *time.Time             { return o.pickupDate }
func (o *Order) PickupNotes() string                { return o.pickupNotes }
func (o *Order) ActualReturnDate() *time.Time       { return o.actualReturnDate }
func (o *Order) ReturnNotes() string                { return o.returnNotes }
func (o *Order) ConfirmedAt() *time.Time            { return o.confirmedAt }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
func (o *Order) UpdatedAt() time.Time               { return o.updatedAt }

// FindItem returns the line for product/variant, or nil.
func (o *Order) FindItem(productID uuid.UUID, variantID *uuid.UUID) *Item {
	for _, it := range o.items {
		if it.matches(productID, variantID) {
			return it
		}
	}
	return nil
}

func (o *Order) Item(id uuid.UUID) (*Item, error) {
	for _, it := range o.items {
		if it.id == id {
			return it, nil
		}
	}
	return nil, ErrItemNotFound
}

// AddItem merges in into the line with the same product and variant, or
// appends a new line. A merged line keeps its original rental window. An
// order is placed with one vendor; an emptied cart takes the vendor of its
// next line.
func (o *Order) AddItem(in ItemInput, now time.Time) (*Item, error) {
	if !o.status.IsDraft() {
		return nil, ErrNotEditable
	}
	if in.VendorID != o.vendorID {
		if len(o.items) > 0 {
			return nil, ErrVendorMismatch
		}
		o.vendorID = in.VendorID
	}
	if in.Quantity <= 0 {
		return nil, pricing.ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() || in.DepositPerUnit.IsNegative() {
		return nil, ErrNegativeAmount
	}

	if existing := o.FindItem(in.ProductID, in.VariantID); existing != nil {
		existing.quantity += in.Quantity
		existing.depositPerUnit = in.DepositPerUnit
		if err := existing.price(o.taxRate, o.interState); err != nil {
			existing.quantity -= in.Quantity
			return nil, err
		}
		o.touch(now)
		return existing, nil
	}

	it := &Item{
		id:             uuid.New(),
		orderID:        o.id,
		productID:      in.ProductID,
		variantID:      in.VariantID,
		productName:    in.ProductName,
		productSKU:     in.ProductSKU,
		quantity:       in.Quantity,
		unitPrice:      in.UnitPrice,
		depositPerUnit: in.DepositPerUnit,
		period:         in.Period,
		periodType:     in.PeriodType,
		createdAt:      now,
	}
	if err := it.price(o.taxRate, o.interState); err != nil {
		return nil, err
	}
	o.items = append(o.items, it)
	o.touch(now)
	return it, nil
}

func (o *Order) RemoveItem(itemID uuid.UUID, now time.Time) error {
	if !o.status.IsDraft() {
		return ErrNotEditable
	}
	for i, it := range o.items {
		if it.id == itemID {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.touch(now)
			return nil
		}
	}
	return ErrItemNotFound
}

// ApplyDiscount sets the requested discount. The applied discount is capped
// at the subtotal and follows it as lines change.
func (o *Order) ApplyDiscount(code string, amount decimal.Decimal, now time.Time) error {
	if !o.status.IsDraft() {
		return ErrNotEditable
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	o.discountCode = strings.ToUpper(strings.TrimSpace(code))
	o.requestedDiscount = amount
	o.touch(now)
	return nil
}

func (o *Order) SetDeliveryCharges(amount decimal.Decimal, now time.Time) error {
	if !o.status.IsDraft() {
		return ErrNotEditable
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	o.totals.DeliveryCharges = amount
	o.touch(now)
	return nil
}

// MarkQuotationSent labels a quotation as issued to the customer. Issued
// quotations stay editable and confirmable but are no longer the open cart.
func (o *Order) MarkQuotationSent(now time.Time) error {
	if o.status != StatusQuotation {
		return ErrNotEditable
	}
	if len(o.items) == 0 {
		return ErrEmptyOrder
	}
	o.status = StatusQuotationSent
	o.touch(now)
	return nil
}

type ConfirmDetails struct {
	DeliveryMethod    DeliveryMethod
	BillingAddress    string
	DeliveryAddress   string
	DownpaymentAmount *decimal.Decimal
	CustomerNotes     string
}

// Confirm turns a quotation into a sale order. No downpayment is asked for
// unless d names one. Confirming a sale order again is a no-op and reports
// changed=false.
func (o *Order) Confirm(d ConfirmDetails, now time.Time) (changed bool, err error) {
	if o.status == StatusSaleOrder {
		return false, nil
	}
	if !o.status.IsDraft() {
		return false, ErrCannotConfirm
	}
	if len(o.items) == 0 {
		return false, ErrEmptyOrder
	}
	method := d.DeliveryMethod
	if method == "" {
		method = DeliveryStandard
	}
	if !method.IsValid() {
		return false, ErrInvalidDeliveryMethod
	}

	downpayment := decimal.Zero
	if d.DownpaymentAmount != nil {
		if d.DownpaymentAmount.IsNegative() {
			return false, ErrNegativeAmount
		}
		downpayment = *d.DownpaymentAmount
	}

	o.deliveryMethod = method
	if d.BillingAddress != "" {
		o.billingAddress = d.BillingAddress
	}
	o.deliveryAddress = d.DeliveryAddress
	if o.deliveryAddress == "" {
		o.deliveryAddress = o.billingAddress
	}
	if d.CustomerNotes != "" {
		o.customerNotes = d.CustomerNotes
	}
	o.downpaymentAmount = pricing.Round(downpayment)
	o.status = StatusSaleOrder
	o.confirmedAt = &now
	o.touch(now)
	return true, nil
}

// ConfirmPayment advances a sale order once it is fully paid. It reports
// whether the order moved, so stock is consumed only once.
func (o *Order) ConfirmPayment(now time.Time) bool {
	if o.status != StatusSaleOrder {
		return false
	}
	o.status = StatusConfirmed
	o.downpaymentPaid = true
	o.touch(now)
	return true
}

func (o *Order) MarkPickedUp(at time.Time, notes string) error {
	if o.status != StatusSaleOrder && o.status != StatusConfirmed {
		return ErrCannotPickUp
	}
	o.status = StatusPickedUp
	o.pickupDate = &at
	o.pickupNotes = notes
	o.touch(at)
	return nil
}

type LateAssessment struct {
	DaysLate int
	Fee      decimal.Decimal
}

func (a LateAssessment) IsLate() bool {
	return a.DaysLate > 0
}

// MarkReturned closes the rental. The late fee is a percentage of the order
// total (before any earlier late fee) per whole day past the rental end.
func (o *Order) MarkReturned(at time.Time, notes string, lateFeePercentage decimal.Decimal) (LateAssessment, error) {
	if !o.status.IsOut() {
		return LateAssessment{}, ErrCannotReturn
	}

	var assessment LateAssessment
	assessment.Fee = decimal.Zero
	if o.rentalEnd != nil {
		base := o.totals.Total.Sub(o.totals.LateFees)
		assessment.DaysLate = pricing.DaysLate(*o.rentalEnd, at)
		assessment.Fee = pricing.LateFee(assessment.DaysLate, base, lateFeePercentage)
	}

	o.totals.LateFees = assessment.Fee
	o.status = StatusReturned
	o.actualReturnDate = &at
	o.returnNotes = notes
	o.touch(at)
	return assessment, nil
}

func (o *Order) Complete(now time.Time) error {
	if o.status != StatusReturned {
		return ErrCannotComplete
	}
	o.status = StatusCompleted
	o.touch(now)
	return nil
}

func (o *Order) Cancel(notes string, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrCannotCancel
	}
	o.status = StatusCancelled
	if notes != "" {
		o.internalNotes = notes
	}
	o.touch(now)
	return nil
}

// MarkLate flags a rental still out past its end. It reports whether the
// status changed.
func (o *Order) MarkLate(now time.Time) bool {
	if o.status != StatusPickedUp && o.status != StatusActive {
		return false
	}
	if o.rentalEnd == nil || !now.After(*o.rentalEnd) {
		return false
	}
	o.status = StatusLate
	o.touch(now)
	return true
}

// ReservationPlan lists one reservation per line for a confirmed order.
func (o *Order) ReservationPlan(now time.Time) ([]*reservation.Reservation, error) {
	plan := make([]*reservation.Reservation, 0, len(o.items))
	for _, it := range o.items {
		r, err := reservation.NewReservation(o.id, it.id, it.productID, it.variantID, it.quantity, it.period, now)
		if err != nil {
			return nil, err
		}
		plan = append(plan, r)
	}
	return plan, nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
	o.refreshTotals()
}

// refreshTotals recomputes every aggregate from the lines. The requested
// discount is capped at the subtotal.
func (o *Order) refreshTotals() {
	lines := make([]pricing.LineAmounts, 0, len(o.items))
	deposit := decimal.Zero
	var start, end *time.Time
	for _, it := range o.items {
		lines = append(lines, it.amounts)
		deposit = deposit.Add(it.Deposit())
		s, e := it.period.Start(), it.period.End()
		if start == nil || s.Before(*start) {
			start = &s
		}
		if end == nil || e.After(*end) {
			end = &e
		}
	}
	if len(o.items) > 0 {
		o.rentalStart = start
		o.rentalEnd = end
	}

	discount := o.requestedDiscount
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal)
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	o.totals = pricing.Aggregate(lines, pricing.Adjustments{
		DeliveryCharges: o.totals.DeliveryCharges,
		SecurityDeposit: pricing.Round(deposit),
		LateFees:        o.totals.LateFees,
		Discount:        discount,
	})
}
