package converter

import (
	"rental-core/internal/domain/pricing"
	"rental-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Numerics decodes a run of NUMERIC columns and keeps the first failure, so a
// row mapping checks for an error once at the end.
type Numerics struct {
	Err error
}

func (n *Numerics) Dec(pn pgtype.Numeric) decimal.Decimal {
	d, err := pgconv.DecimalFromNumeric(pn)
	if err != nil && n.Err == nil {
		n.Err = err
	}
	return d
}

func (n *Numerics) Ptr(pn pgtype.Numeric) *decimal.Decimal {
	d, err := pgconv.DecimalPtrFromNumeric(pn)
	if err != nil && n.Err == nil {
		n.Err = err
	}
	return d
}

func taxFromColumns(n *Numerics, amount, cgst, sgst, igst pgtype.Numeric) pricing.TaxBreakdown {
	return pricing.TaxBreakdown{
		Amount: n.Dec(amount),
		CGST:   n.Dec(cgst),
		SGST:   n.Dec(sgst),
		IGST:   n.Dec(igst),
	}
}
