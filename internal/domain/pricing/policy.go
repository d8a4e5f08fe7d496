package pricing

import "github.com/shopspring/decimal"

// Policy carries the tax and late-fee settings applied to orders and invoices.
type Policy struct {
	TaxRate           decimal.Decimal
	LateFeePercentage decimal.Decimal
	// LateFeePerDay is configured but not applied; late fees are percentage based.
	LateFeePerDay    decimal.Decimal
	InvoiceDueDays   int
	InterStateSupply bool
	Currency         string
}

func DefaultPolicy() Policy {
	return Policy{
		TaxRate:           decimal.NewFromInt(18),
		LateFeePercentage: decimal.NewFromInt(5),
		LateFeePerDay:     decimal.NewFromInt(100),
		InvoiceDueDays:    7,
		Currency:          "INR",
	}
}
