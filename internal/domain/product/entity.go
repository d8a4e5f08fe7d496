package product

import (
	"strings"
	"time"

	"rental-core/internal/domain/pricing"
	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errs.Validation("product name cannot be empty")
	ErrNotRentable      = errs.Validation("product is not available for rent")
	ErrNoPriceForPeriod = errs.Validation("product has no rental price")
	ErrNegativeDeposit  = errs.Validation("security deposit cannot be negative")
	ErrVariantNotFound  = errs.NotFound("product variant not found")
	ErrProductNotFound  = errs.NotFound("product not found")
)

type Prices struct {
	Hourly  *decimal.Decimal
	Daily   *decimal.Decimal
	Weekly  *decimal.Decimal
	Monthly *decimal.Decimal
}

func (p Prices) For(period pricing.PeriodType) *decimal.Decimal {
	switch period {
	case pricing.PeriodHourly:
		return p.Hourly
	case pricing.PeriodDaily:
		return p.Daily
	case pricing.PeriodWeekly:
		return p.Weekly
	case pricing.PeriodMonthly:
		return p.Monthly
	default:
		return nil
	}
}

type Product struct {
	id              uuid.UUID
	vendorID        uuid.UUID
	name            string
	sku             string
	prices          Prices
	securityDeposit decimal.Decimal
	stock           Stock
	isRentable      bool
	variants        []*Variant
	createdAt       time.Time
	updatedAt       time.Time
}

type Variant struct {
	id            uuid.UUID
	productID     uuid.UUID
	name          string
	sku           string
	priceOverride *decimal.Decimal
	stock         Stock
}

func NewProduct(vendorID uuid.UUID, name, sku string, prices Prices, deposit decimal.Decimal, onHand int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if deposit.IsNegative() {
		return nil, ErrNegativeDeposit
	}
	stock, err := NewStock(onHand, 0)
	if err != nil {
		return nil, err
	}
	return &Product{
		id:              uuid.New(),
		vendorID:        vendorID,
		name:            name,
		sku:             sku,
		prices:          prices,
		securityDeposit: deposit,
		stock:           stock,
		isRentable:      true,
	}, nil
}

func ReconstructProduct(
	id, vendorID uuid.UUID,
	name, sku string,
	prices Prices,
	deposit decimal.Decimal,
	stock Stock,
	isRentable bool,
	variants []*Variant,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:              id,
		vendorID:        vendorID,
		name:            name,
		sku:             sku,
		prices:          prices,
		securityDeposit: deposit,
		stock:           stock,
		isRentable:      isRentable,
		variants:        variants,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func ReconstructVariant(id, productID uuid.UUID, name, sku string, priceOverride *decimal.Decimal, stock Stock) *Variant {
	return &Variant{
		id:            id,
		productID:     productID,
		name:          name,
		sku:           sku,
		priceOverride: priceOverride,
		stock:         stock,
	}
}

func (p *Product) ID() uuid.UUID                    { return p.id }
func (p *Product) VendorID() uuid.UUID              { return p.vendorID }
func (p *Product) Name() string                     { return p.name }
func (p *Product) SKU() string                      { return p.sku }
func (p *Product) Prices() Prices                   { return p.prices }
func (p *Product) SecurityDeposit() decimal.Decimal { return p.securityDeposit }
func (p *Product) Stock() Stock                     { return p.stock }
func (p *Product) IsRentable() bool                 { return p.isRentable }
func (p *Product) Variants() []*Variant             { return p.variants }
func (p *Product) CreatedAt() time.Time             { return p.createdAt }
func (p *Product) UpdatedAt() time.Time             { return p.updatedAt }

func (v *Variant) ID() uuid.UUID                   { return v.id }
func (v *Variant) ProductID() uuid.UUID            { return v.productID }
func (v *Variant) Name() string                    { return v.name }
func (v *Variant) SKU() string                     { return v.sku }
func (v *Variant) PriceOverride() *decimal.Decimal { return v.priceOverride }
func (v *Variant) Stock() Stock                    { return v.stock }

func (p *Product) Variant(id uuid.UUID) (*Variant, error) {
	for _, v := range p.variants {
		if v.id == id {
			return v, nil
		}
	}
	return nil, ErrVariantNotFound
}

// UnitPrice resolves the per-unit price for period. A variant price override
// wins; otherwise the period price is used, falling back to the daily price.
func (p *Product) UnitPrice(period pricing.PeriodType, variantID *uuid.UUID) (decimal.Decimal, error) {
	if !period.IsValid() {
		return decimal.Zero, pricing.ErrInvalidPeriodType
	}
	if variantID != nil {
		v, err := p.Variant(*variantID)
		if err != nil {
			return decimal.Zero, err
		}
		if v.priceOverride != nil {
			return *v.priceOverride, nil
		}
	}
	if price := p.prices.For(period); price != nil {
		return *price, nil
	}
	if p.prices.Daily != nil {
		return *p.prices.Daily, nil
	}
	return decimal.Zero, ErrNoPriceForPeriod
}

// StockFor returns the counters availability is computed against: the
// variant's when one is given, otherwise the product's.
func (p *Product) StockFor(variantID *uuid.UUID) (Stock, error) {
	if variantID == nil {
		return p.stock, nil
	}
	v, err := p.Variant(*variantID)
	if err != nil {
		return Stock{}, err
	}
	return v.stock, nil
}

func (p *Product) Reserve(variantID *uuid.UUID, qty int) error {
	return p.mutateStock(variantID, func(s Stock) (Stock, error) { return s.Reserve(qty) })
}

func (p *Product) Release(variantID *uuid.UUID, qty int) error {
	return p.mutateStock(variantID, func(s Stock) (Stock, error) { return s.Release(qty) })
}

func (p *Product) Consume(variantID *uuid.UUID, qty int) error {
	return p.mutateStock(variantID, func(s Stock) (Stock, error) { return s.Consume(qty) })
}

func (p *Product) Restock(variantID *uuid.UUID, qty int) error {
	return p.mutateStock(variantID, func(s Stock) (Stock, error) { return s.Restock(qty), nil })
}

func (p *Product) mutateStock(variantID *uuid.UUID, fn func(Stock) (Stock, error)) error {
	if variantID == nil {
		next, err := fn(p.stock)
		if err != nil {
			return err
		}
		p.stock = next
		return nil
	}
	v, err := p.Variant(*variantID)
	if err != nil {
		return err
	}
	next, err := fn(v.stock)
	if err != nil {
		return err
	}
	v.stock = next
	return nil
}

func (p *Product) EnsureRentable() error {
	if !p.isRentable {
		return ErrNotRentable
	}
	return nil
}
