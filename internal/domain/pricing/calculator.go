package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Round rounds a monetary amount to two decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

type TaxBreakdown struct {
	Amount decimal.Decimal
	CGST   decimal.Decimal
	SGST   decimal.Decimal
	IGST   decimal.Decimal
}

// SplitTax applies rate (a percentage) to base. Intra-state supply splits the
// tax into equal CGST and SGST halves; inter-state supply books it all as IGST.
// The halves always sum back to Amount.
func SplitTax(base, rate decimal.Decimal, interState bool) TaxBreakdown {
	amount := Round(base.Mul(rate).Div(hundred))
	if interState {
		return TaxBreakdown{Amount: amount, CGST: decimal.Zero, SGST: decimal.Zero, IGST: amount}
	}
	cgst := Round(amount.Div(two))
	return TaxBreakdown{Amount: amount, CGST: cgst, SGST: amount.Sub(cgst), IGST: decimal.Zero}
}

func (t TaxBreakdown) Add(o TaxBreakdown) TaxBreakdown {
	return TaxBreakdown{
		Amount: t.Amount.Add(o.Amount),
		CGST:   t.CGST.Add(o.CGST),
		SGST:   t.SGST.Add(o.SGST),
		IGST:   t.IGST.Add(o.IGST),
	}
}

type LineInput struct {
	Quantity   int
	UnitPrice  decimal.Decimal
	Start      time.Time
	End        time.Time
	Period     PeriodType
	TaxRate    decimal.Decimal
	InterState bool
}

type LineAmounts struct {
	Duration int64
	Subtotal decimal.Decimal
	Tax      TaxBreakdown
	Total    decimal.Decimal
}

// CalculateLine prices one rental line. It is pure and used identically for
// order lines and the invoice lines mirrored from them.
func CalculateLine(in LineInput) (LineAmounts, error) {
	if in.Quantity <= 0 {
		return LineAmounts{}, ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return LineAmounts{}, ErrNegativePrice
	}
	if err := ValidateTaxRate(in.TaxRate); err != nil {
		return LineAmounts{}, err
	}
	duration, err := Duration(in.Start, in.End, in.Period)
	if err != nil {
		return LineAmounts{}, err
	}

	subtotal := Round(in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Mul(decimal.NewFromInt(duration)))
	tax := SplitTax(subtotal, in.TaxRate, in.InterState)

	return LineAmounts{
		Duration: duration,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax.Amount),
	}, nil
}

func ValidateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return ErrInvalidTaxRate
	}
	return nil
}
