package converter

import (
	"rental-core/internal/domain/product"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
)

func ProductToDomain(row sqlc.Products, variantRows []sqlc.ProductVariants) (*product.Product, error) {
	var n Numerics
	prices := product.Prices{
		Hourly:  n.Ptr(row.PriceHourly),
		Daily:   n.Ptr(row.PriceDaily),
		Weekly:  n.Ptr(row.PriceWeekly),
		Monthly: n.Ptr(row.PriceMonthly),
	}
	deposit := n.Dec(row.SecurityDeposit)
	if n.Err != nil {
		return nil, n.Err
	}

	stock, err := product.NewStock(int(row.QuantityOnHand), int(row.QuantityReserved))
	if err != nil {
		return nil, err
	}

	variants := make([]*product.Variant, 0, len(variantRows))
	for _, v := range variantRows {
		vs, err := product.NewStock(int(v.QuantityOnHand), int(v.QuantityReserved))
		if err != nil {
			return nil, err
		}
		override, err := pgconv.DecimalPtrFromNumeric(v.PriceOverride)
		if err != nil {
			return nil, err
		}
		variants = append(variants, product.ReconstructVariant(v.ID, v.ProductID, v.Name, v.Sku, override, vs))
	}

	return product.ReconstructProduct(
		row.ID,
		row.VendorID,
		row.Name,
		row.Sku,
		prices,
		deposit,
		stock,
		row.IsRentable,
		variants,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
