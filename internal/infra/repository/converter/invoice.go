package converter

import (
	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
)

func InvoiceToInfra(inv *invoice.Invoice) sqlc.Invoices {
	t := inv.Totals()
	p := inv.Parties()
	return sqlc.Invoices{
		ID:                inv.ID(),
		InvoiceNumber:     inv.Number(),
		OrderID:           inv.OrderID(),
		CustomerID:        inv.CustomerID(),
		VendorID:          inv.VendorID(),
		Status:            inv.Status().String(),
		InvoiceDate:       pgconv.TimeToPgtype(inv.InvoiceDate()),
		DueDate:           pgconv.TimeToPgtype(inv.DueDate()),
		RentalStart:       pgconv.TimePtrToPgtype(inv.RentalStart()),
		RentalEnd:         pgconv.TimePtrToPgtype(inv.RentalEnd()),
		VendorName:        p.Vendor.Name,
		VendorCompanyName: pgconv.OptionalText(p.Vendor.CompanyName),
		VendorGstin:       pgconv.OptionalText(p.Vendor.GSTIN),
		VendorAddress:     pgconv.OptionalText(p.Vendor.Address),
		CustomerName:      p.Customer.Name,
		CustomerEmail:     pgconv.OptionalText(p.Customer.Email),
		CustomerGstin:     pgconv.OptionalText(p.Customer.GSTIN),
		BillingAddress:    pgconv.OptionalText(inv.BillingAddress()),
		DeliveryAddress:   pgconv.OptionalText(inv.DeliveryAddress()),
		TaxRate:           pgconv.DecimalToNumeric(inv.TaxRate()),
		InterState:        inv.InterState(),
		Subtotal:          pgconv.DecimalToNumeric(t.Subtotal),
		TaxAmount:         pgconv.DecimalToNumeric(t.Tax.Amount),
		Cgst:              pgconv.DecimalToNumeric(t.Tax.CGST),
		Sgst:              pgconv.DecimalToNumeric(t.Tax.SGST),
		Igst:              pgconv.DecimalToNumeric(t.Tax.IGST),
		DiscountAmount:    pgconv.DecimalToNumeric(t.Discount),
		SecurityDeposit:   pgconv.DecimalToNumeric(t.SecurityDeposit),
		DeliveryCharges:   pgconv.DecimalToNumeric(t.DeliveryCharges),
		LateFees:          pgconv.DecimalToNumeric(t.LateFees),
		TotalAmount:       pgconv.DecimalToNumeric(t.Total),
		AmountPaid:        pgconv.DecimalToNumeric(inv.AmountPaid()),
		AmountDue:         pgconv.DecimalToNumeric(inv.AmountDue()),
		PostedAt:          pgconv.TimePtrToPgtype(inv.PostedAt()),
		PaidAt:            pgconv.TimePtrToPgtype(inv.PaidAt()),
		CreatedAt:         pgconv.TimeToPgtype(inv.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(inv.UpdatedAt()),
	}
}

func InvoiceItemsToInfra(inv *invoice.Invoice) []sqlc.InvoiceItems {
	rows := make([]sqlc.InvoiceItems, 0, len(inv.Items()))
	for pos, it := range inv.Items() {
		a := it.Amounts()
		rows = append(rows, sqlc.InvoiceItems{
			ID:          it.ID(),
			InvoiceID:   inv.ID(),
			ProductID:   pgconv.UUIDPtrToPgtype(it.ProductID()),
			Description: it.Description(),
			Quantity:    pgconv.IntToInt32(it.Quantity()),
			Unit:        it.Unit(),
			UnitPrice:   pgconv.DecimalToNumeric(it.UnitPrice()),
			TaxRate:     pgconv.DecimalToNumeric(it.TaxRate()),
			Duration:    a.Duration,
			Subtotal:    pgconv.DecimalToNumeric(a.Subtotal),
			TaxAmount:   pgconv.DecimalToNumeric(a.Tax.Amount),
			Cgst:        pgconv.DecimalToNumeric(a.Tax.CGST),
			Sgst:        pgconv.DecimalToNumeric(a.Tax.SGST),
			Igst:        pgconv.DecimalToNumeric(a.Tax.IGST),
			LineTotal:   pgconv.DecimalToNumeric(a.Total),
			IsDeposit:   it.IsDeposit(),
			Position:    pgconv.IntToInt32(pos),
		})
	}
	return rows
}

func InvoiceToDomain(row sqlc.Invoices, itemRows []sqlc.InvoiceItems) (*invoice.Invoice, error) {
	status, err := invoice.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	var n Numerics
	items := make([]*invoice.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		items = append(items, invoice.ReconstructItem(
			ir.ID,
			ir.InvoiceID,
			pgconv.UUIDPtrFromPgtype(ir.ProductID),
			ir.Description,
			int(ir.Quantity),
			ir.Unit,
			n.Dec(ir.UnitPrice),
			n.Dec(ir.TaxRate),
			pricing.LineAmounts{
				Duration: ir.Duration,
				Subtotal: n.Dec(ir.Subtotal),
				Tax:      taxFromColumns(&n, ir.TaxAmount, ir.Cgst, ir.Sgst, ir.Igst),
				Total:    n.Dec(ir.LineTotal),
			},
			ir.IsDeposit,
		))
	}

	snap := invoice.Snapshot{
		ID:          row.ID,
		Number:      row.InvoiceNumber,
		OrderID:     row.OrderID,
		CustomerID:  row.CustomerID,
		VendorID:    row.VendorID,
		Status:      status,
		InvoiceDate: pgconv.TimeFromPgtype(row.InvoiceDate),
		DueDate:     pgconv.TimeFromPgtype(row.DueDate),
		RentalStart: pgconv.TimePtrFromPgtype(row.RentalStart),
		RentalEnd:   pgconv.TimePtrFromPgtype(row.RentalEnd),
		Parties: invoice.Parties{
			Vendor: invoice.Party{
				Name:        row.VendorName,
				CompanyName: pgconv.StringFromPgtype(row.VendorCompanyName),
				GSTIN:       pgconv.StringFromPgtype(row.VendorGstin),
				Address:     pgconv.StringFromPgtype(row.VendorAddress),
			},
			Customer: invoice.Party{
				Name:    row.CustomerName,
				Email:   pgconv.StringFromPgtype(row.CustomerEmail),
				GSTIN:   pgconv.StringFromPgtype(row.CustomerGstin),
				Address: pgconv.StringFromPgtype(row.BillingAddress),
			},
		},
		BillingAddress:  pgconv.StringFromPgtype(row.BillingAddress),
		DeliveryAddress: pgconv.StringFromPgtype(row.DeliveryAddress),
		TaxRate:         n.Dec(row.TaxRate),
		InterState:      row.InterState,
		Items:           items,
		DeliveryCharges: n.Dec(row.DeliveryCharges),
		SecurityDeposit: n.Dec(row.SecurityDeposit),
		LateFees:        n.Dec(row.LateFees),
		Discount:        n.Dec(row.DiscountAmount),
		AmountPaid:      n.Dec(row.AmountPaid),
		PostedAt:        pgconv.TimePtrFromPgtype(row.PostedAt),
		PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if n.Err != nil {
		return nil, n.Err
	}
	return invoice.ReconstructInvoice(snap), nil
}
