package invoice

import (
	"fmt"

	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	itemUnit           = "Units"
	depositDescription = "Security Deposit"
	dateLayout         = "2006-01-02"
)

type Item struct {
	id          uuid.UUID
	invoiceID   uuid.UUID
	productID   *uuid.UUID
	description string
	quantity    int
	unit        string
	unitPrice   decimal.Decimal
	taxRate     decimal.Decimal
	amounts     pricing.LineAmounts
	isDeposit   bool
}

func ReconstructItem(
	id, invoiceID uuid.UUID,
	productID *uuid.UUID,
	description string,
	quantity int,
	unit string,
	unitPrice, taxRate decimal.Decimal,
	amounts pricing.LineAmounts,
	isDeposit bool,
) *Item {
	return &Item{
		id:          id,
		invoiceID:   invoiceID,
		productID:   productID,
		description: description,
		quantity:    quantity,
		unit:        unit,
		unitPrice:   unitPrice,
		taxRate:     taxRate,
		amounts:     amounts,
		isDeposit:   isDeposit,
	}
}

func (i *Item) ID() uuid.UUID                { return i.id }
func (i *Item) InvoiceID() uuid.UUID         { return i.invoiceID }
func (i *Item) ProductID() *uuid.UUID        { return i.productID }
func (i *Item) Description() string          { return i.description }
func (i *Item) Quantity() int                { return i.quantity }
func (i *Item) Unit() string                 { return i.unit }
func (i *Item) UnitPrice() decimal.Decimal   { return i.unitPrice }
func (i *Item) TaxRate() decimal.Decimal     { return i.taxRate }
func (i *Item) Amounts() pricing.LineAmounts { return i.amounts }
func (i *Item) IsDeposit() bool              { return i.isDeposit }

func mirrorOrderItem(invoiceID uuid.UUID, it *order.Item, taxRate decimal.Decimal, interState bool) (*Item, error) {
	amounts, err := pricing.CalculateLine(pricing.LineInput{
		Quantity:   it.Quantity(),
		UnitPrice:  it.UnitPrice(),
		Start:      it.Period().Start(),
		End:        it.Period().End(),
		Period:     it.PeriodType(),
		TaxRate:    taxRate,
		InterState: interState,
	})
	if err != nil {
		return nil, err
	}
	productID := it.ProductID()
	return &Item{
		id:        uuid.New(),
		invoiceID: invoiceID,
		productID: &productID,
		description: fmt.Sprintf("%s - Rental: %s to %s",
			it.ProductName(),
			it.Period().Start().Format(dateLayout),
			it.Period().End().Format(dateLayout)),
		quantity:  it.Quantity(),
		unit:      itemUnit,
		unitPrice: it.UnitPrice(),
		taxRate:   taxRate,
		amounts:   amounts,
	}, nil
}

// depositItem is the refundable deposit line. It carries no tax and is not
// part of the subtotal.
func depositItem(invoiceID uuid.UUID, deposit decimal.Decimal) *Item {
	zero := decimal.Zero
	return &Item{
		id:          uuid.New(),
		invoiceID:   invoiceID,
		description: depositDescription,
		quantity:    1,
		unit:        itemUnit,
		unitPrice:   deposit,
		taxRate:     zero,
		amounts: pricing.LineAmounts{
			Duration: 1,
			Subtotal: deposit,
			Tax:      pricing.TaxBreakdown{Amount: zero, CGST: zero, SGST: zero, IGST: zero},
			Total:    deposit,
		},
		isDeposit: true,
	}
}

