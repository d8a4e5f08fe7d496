//go:build unit || e2e

package builder

import (
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var BaseTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type OrderBuilder struct {
	Number     string
	CustomerID uuid.UUID
	VendorID   uuid.UUID
	Policy     pricing.Policy
	Items      []order.ItemInput
	Now        time.Time
}

func NewOrderBuilder() *OrderBuilder {
	b := &OrderBuilder{
		Number:     order.FormatNumber(BaseTime, 1),
		CustomerID: uuid.New(),
		VendorID:   uuid.New(),
		Policy:     pricing.DefaultPolicy(),
		Now:        BaseTime,
	}
	return b.WithDailyItem("100", 1, 3)
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	o, err := order.NewQuotation(b.Number, b.CustomerID, b.VendorID, b.Policy, b.Now)
	if err != nil {
		return nil, err
	}
	for _, in := range b.Items {
		in.VendorID = b.VendorID
		if _, err := o.AddItem(in, b.Now); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (b *OrderBuilder) BuildConfirmed() (*order.Order, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if _, err := o.Confirm(order.ConfirmDetails{
		DeliveryMethod: order.DeliveryStandard,
		BillingAddress: "12 MG Road, Bengaluru",
	}, b.Now); err != nil {
		return nil, err
	}
	return o, nil
}

// Fluent builder methods
func (b *OrderBuilder) WithoutItems() *OrderBuilder {
	b.Items = nil
	return b
}

// WithDailyItem adds a line for a fresh product starting one day after Now.
func (b *OrderBuilder) WithDailyItem(unitPrice string, quantity, days int) *OrderBuilder {
	return b.WithItem(uuid.New(), unitPrice, "0", quantity, days, pricing.PeriodDaily)
}

func (b *OrderBuilder) WithItem(productID uuid.UUID, unitPrice, deposit string, quantity, days int, period pricing.PeriodType) *OrderBuilder {
	start := b.Now.AddDate(0, 0, 1)
	p, err := reservation.NewPeriod(start, start.AddDate(0, 0, days))
	if err != nil {
		panic(err)
	}
	b.Items = append(b.Items, order.ItemInput{
		ProductID:      productID,
		ProductName:    "Test Product",
		ProductSKU:     "SKU-" + productID.String()[:8],
		Quantity:       quantity,
		UnitPrice:      decimal.RequireFromString(unitPrice),
		DepositPerUnit: decimal.RequireFromString(deposit),
		Period:         p,
		PeriodType:     period,
	})
	return b
}

func (b *OrderBuilder) WithTaxRate(rate string) *OrderBuilder {
	b.Policy.TaxRate = decimal.RequireFromString(rate)
	return b
}

func (b *OrderBuilder) WithInterState() *OrderBuilder {
	b.Policy.InterStateSupply = true
	return b
}

func (b *OrderBuilder) WithCustomerID(id uuid.UUID) *OrderBuilder {
	b.CustomerID = id
	return b
}

func (b *OrderBuilder) WithVendorID(id uuid.UUID) *OrderBuilder {
	b.VendorID = id
	return b
}

// BuildView renders the builder's lines as a quotation read model.
func (b *OrderBuilder) BuildView() *queries.OrderView {
	v := &queries.OrderView{
		ID:             uuid.New(),
		OrderNumber:    b.Number,
		CustomerID:     b.CustomerID,
		VendorID:       b.VendorID,
		Status:         order.StatusQuotation.String(),
		DeliveryMethod: order.DeliveryStandard.String(),
		TaxRate:        b.Policy.TaxRate,
		InterState:     b.Policy.InterStateSupply,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
	for _, in := range b.Items {
		line := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		v.Subtotal = v.Subtotal.Add(line)
		v.Items = append(v.Items, &queries.OrderItemView{
			ID:               uuid.New(),
			ProductID:        in.ProductID,
			VariantID:        in.VariantID,
			ProductName:      in.ProductName,
			ProductSKU:       in.ProductSKU,
			Quantity:         int32(in.Quantity),
			UnitPrice:        in.UnitPrice,
			DepositPerUnit:   in.DepositPerUnit,
			RentalStart:      in.Period.Start(),
			RentalEnd:        in.Period.End(),
			RentalPeriodType: in.PeriodType.String(),
			DurationUnits:    1,
			LineSubtotal:     line,
			LineTotal:        line,
		})
	}
	v.TotalAmount = v.Subtotal
	return v
}

func (b *OrderBuilder) BuildCartView() *queries.CartView {
	v := b.BuildView()
	return &queries.CartView{
		Order:       v,
		ItemCount:   len(v.Items),
		Subtotal:    v.Subtotal,
		TaxAmount:   v.TaxAmount,
		TotalAmount: v.TotalAmount,
	}
}
