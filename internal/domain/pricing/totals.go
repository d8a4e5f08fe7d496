package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

type Adjustments struct {
	DeliveryCharges decimal.Decimal
	SecurityDeposit decimal.Decimal
	LateFees        decimal.Decimal
	Discount        decimal.Decimal
}

type Totals struct {
	Subtotal        decimal.Decimal
	Tax             TaxBreakdown
	DeliveryCharges decimal.Decimal
	SecurityDeposit decimal.Decimal
	LateFees        decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
}

// Aggregate recomputes document totals from scratch. Deposit lines are not
// part of lines; the deposit enters only through adj.
func Aggregate(lines []LineAmounts, adj Adjustments) Totals {
	t := Totals{
		Subtotal:        decimal.Zero,
		DeliveryCharges: adj.DeliveryCharges,
		SecurityDeposit: adj.SecurityDeposit,
		LateFees:        adj.LateFees,
		Discount:        adj.Discount,
	}
	t.Tax = TaxBreakdown{Amount: decimal.Zero, CGST: decimal.Zero, SGST: decimal.Zero, IGST: decimal.Zero}
	for _, l := range lines {
		t.Subtotal = t.Subtotal.Add(l.Subtotal)
		t.Tax = t.Tax.Add(l.Tax)
	}
	t.Total = Round(t.Subtotal.
		Add(t.Tax.Amount).
		Add(adj.DeliveryCharges).
		Add(adj.SecurityDeposit).
		Add(adj.LateFees).
		Sub(adj.Discount))
	return t
}

func AmountDue(total, paid decimal.Decimal) decimal.Decimal {
	return Round(total.Sub(paid))
}

// DaysLate counts whole days between the agreed end and the actual return.
// A return less than a full day late is not late.
func DaysLate(agreedEnd, returnedAt time.Time) int {
	if !returnedAt.After(agreedEnd) {
		return 0
	}
	return int(returnedAt.Sub(agreedEnd).Hours()) / hoursPerDay
}

// LateFee charges percentage of base for every day late.
func LateFee(daysLate int, base, percentage decimal.Decimal) decimal.Decimal {
	if daysLate <= 0 {
		return decimal.Zero
	}
	perDay := base.Mul(percentage).Div(hundred)
	return Round(perDay.Mul(decimal.NewFromInt(int64(daysLate))))
}
