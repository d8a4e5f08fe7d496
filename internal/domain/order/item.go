package order

import (
	"time"

	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemInput struct {
	ProductID      uuid.UUID
	VariantID      *uuid.UUID
	VendorID       uuid.UUID
	ProductName    string
	ProductSKU     string
	Quantity       int
	UnitPrice      decimal.Decimal
	DepositPerUnit decimal.Decimal
	Period         reservation.Period
	PeriodType     pricing.PeriodType
}

type Item struct {
	id             uuid.UUID
	orderID        uuid.UUID
	productID      uuid.UUID
	variantID      *uuid.UUID
	productName    string
	productSKU     string
	quantity       int
	unitPrice      decimal.Decimal
	depositPerUnit decimal.Decimal
	period         reservation.Period
	periodType     pricing.PeriodType
	amounts        pricing.LineAmounts
	createdAt      time.Time
}

func ReconstructItem(
	id, orderID, productID uuid.UUID,
	variantID *uuid.UUID,
	productName, productSKU string,
	quantity int,
	unitPrice, depositPerUnit decimal.Decimal,
	period reservation.Period,
	periodType pricing.PeriodType,
	amounts pricing.LineAmounts,
	createdAt time.Time,
) *Item {
	return &Item{
		id:             id,
		orderID:        orderID,
		productID:      productID,
		variantID:      variantID,
		productName:    productName,
		productSKU:     productSKU,
		quantity:       quantity,
		unitPrice:      unitPrice,
		depositPerUnit: depositPerUnit,
		period:         period,
		periodType:     periodType,
		amounts:        amounts,
		createdAt:      createdAt,
	}
}

func (i *Item) ID() uuid.UUID                   { return i.id }
func (i *Item) OrderID() uuid.UUID              { return i.orderID }
func (i *Item) ProductID() uuid.UUID            { return i.productID }
func (i *Item) VariantID() *uuid.UUID           { return i.variantID }
func (i *Item) ProductName() string             { return i.productName }
func (i *Item) ProductSKU() string              { return i.productSKU }
func (i *Item) Quantity() int                   { return i.quantity }
func (i *Item) UnitPrice() decimal.Decimal      { return i.unitPrice }
func (i *Item) DepositPerUnit() decimal.Decimal { return i.depositPerUnit }
func (i *Item) Period() reservation.Period      { return i.period }
func (i *Item) PeriodType() pricing.PeriodType  { return i.periodType }
func (i *Item) Amounts() pricing.LineAmounts    { return i.amounts }
func (i *Item) CreatedAt() time.Time            { return i.createdAt }

// Deposit is the security deposit owed for this line.
func (i *Item) Deposit() decimal.Decimal {
	return i.depositPerUnit.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) matches(productID uuid.UUID, variantID *uuid.UUID) bool {
	if i.productID != productID {
		return false
	}
	if i.variantID == nil || variantID == nil {
		return i.variantID == nil && variantID == nil
	}
	return *i.variantID == *variantID
}

func (i *Item) price(taxRate decimal.Decimal, interState bool) error {
	amounts, err := pricing.CalculateLine(pricing.LineInput{
		Quantity:   i.quantity,
		UnitPrice:  i.unitPrice,
		Start:      i.period.Start(),
		End:        i.period.End(),
		Period:     i.periodType,
		TaxRate:    taxRate,
		InterState: interState,
	})
	if err != nil {
		return err
	}
	i.amounts = amounts
	return nil
}
