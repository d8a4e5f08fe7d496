package converter

import (
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
)

func OrderToInfra(o *order.Order) sqlc.OrderRowParams {
	t := o.Totals()
	return sqlc.OrderRowParams{
		ID:                o.ID(),
		OrderNumber:       o.Number(),
		CustomerID:        o.CustomerID(),
		VendorID:          o.VendorID(),
		Status:            o.Status().String(),
		RentalStart:       pgconv.TimePtrToPgtype(o.RentalStart()),
		RentalEnd:         pgconv.TimePtrToPgtype(o.RentalEnd()),
		DeliveryMethod:    o.DeliveryMethod().String(),
		BillingAddress:    pgconv.OptionalText(o.BillingAddress()),
		DeliveryAddress:   pgconv.OptionalText(o.DeliveryAddress()),
		Subtotal:          pgconv.DecimalToNumeric(t.Subtotal),
		TaxRate:           pgconv.DecimalToNumeric(o.TaxRate()),
		InterState:        o.InterState(),
		TaxAmount:         pgconv.DecimalToNumeric(t.Tax.Amount),
		DiscountCode:      pgconv.OptionalText(o.DiscountCode()),
		DiscountAmount:    pgconv.DecimalToNumeric(t.Discount),
		SecurityDeposit:   pgconv.DecimalToNumeric(t.SecurityDeposit),
		DeliveryCharges:   pgconv.DecimalToNumeric(t.DeliveryCharges),
		LateFeesApplied:   pgconv.DecimalToNumeric(t.LateFees),
		TotalAmount:       pgconv.DecimalToNumeric(t.Total),
		DownpaymentAmount: pgconv.DecimalToNumeric(o.DownpaymentAmount()),
		DownpaymentPaid:   o.DownpaymentPaid(),
		CustomerNotes:     pgconv.OptionalText(o.CustomerNotes()),
		InternalNotes:     pgconv.OptionalText(o.InternalNotes()),
		PickupDate:        pgconv.TimePtrToPgtype(o.PickupDate()),
		PickupNotes:       pgconv.OptionalText(o.PickupNotes()),
		ReturnDate:        pgconv.TimePtrToPgtype(o.RentalEnd()),
		ActualReturnDate:  pgconv.TimePtrToPgtype(o.ActualReturnDate()),
		ReturnNotes:       pgconv.OptionalText(o.ReturnNotes()),
		ConfirmedAt:       pgconv.TimePtrToPgtype(o.ConfirmedAt()),
		CreatedAt:         pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(o.UpdatedAt()),
		DiscountRequested: pgconv.DecimalToNumeric(o.RequestedDiscount()),
	}
}

func OrderItemToInfra(it *order.Item) sqlc.OrderItems {
	a := it.Amounts()
	return sqlc.OrderItems{
		ID:               it.ID(),
		OrderID:          it.OrderID(),
		ProductID:        it.ProductID(),
		VariantID:        pgconv.UUIDPtrToPgtype(it.VariantID()),
		ProductName:      it.ProductName(),
		ProductSku:       it.ProductSKU(),
		Quantity:         pgconv.IntToInt32(it.Quantity()),
		UnitPrice:        pgconv.DecimalToNumeric(it.UnitPrice()),
		DepositPerUnit:   pgconv.DecimalToNumeric(it.DepositPerUnit()),
		RentalStart:      pgconv.TimeToPgtype(it.Period().Start()),
		RentalEnd:        pgconv.TimeToPgtype(it.Period().End()),
		RentalPeriodType: it.PeriodType().String(),
		DurationUnits:    a.Duration,
		LineSubtotal:     pgconv.DecimalToNumeric(a.Subtotal),
		TaxAmount:        pgconv.DecimalToNumeric(a.Tax.Amount),
		Cgst:             pgconv.DecimalToNumeric(a.Tax.CGST),
		Sgst:             pgconv.DecimalToNumeric(a.Tax.SGST),
		Igst:             pgconv.DecimalToNumeric(a.Tax.IGST),
		LineTotal:        pgconv.DecimalToNumeric(a.Total),
		CreatedAt:        pgconv.TimeToPgtype(it.CreatedAt()),
	}
}

func OrderToDomain(row sqlc.Orders, itemRows []sqlc.OrderItems) (*order.Order, error) {
	status, err := order.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	method, err := order.NewDeliveryMethod(row.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		it, err := OrderItemToDomain(ir)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	var n Numerics
	snap := order.Snapshot{
		ID:                row.ID,
		Number:            row.OrderNumber,
		CustomerID:        row.CustomerID,
		VendorID:          row.VendorID,
		Status:            status,
		Items:             items,
		RentalStart:       pgconv.TimePtrFromPgtype(row.RentalStart),
		RentalEnd:         pgconv.TimePtrFromPgtype(row.RentalEnd),
		DeliveryMethod:    method,
		BillingAddress:    pgconv.StringFromPgtype(row.BillingAddress),
		DeliveryAddress:   pgconv.StringFromPgtype(row.DeliveryAddress),
		TaxRate:           n.Dec(row.TaxRate),
		InterState:        row.InterState,
		DiscountCode:      pgconv.StringFromPgtype(row.DiscountCode),
		DiscountAmount:    n.Dec(row.DiscountAmount),
		RequestedDiscount: n.Dec(row.DiscountRequested),
		DeliveryCharges:   n.Dec(row.DeliveryCharges),
		LateFees:          n.Dec(row.LateFeesApplied),
		DownpaymentAmount: n.Dec(row.DownpaymentAmount),
		DownpaymentPaid:   row.DownpaymentPaid,
		CustomerNotes:     pgconv.StringFromPgtype(row.CustomerNotes),
		InternalNotes:     pgconv.StringFromPgtype(row.InternalNotes),
		PickupDate:        pgconv.TimePtrFromPgtype(row.PickupDate),
		PickupNotes:       pgconv.StringFromPgtype(row.PickupNotes),
		ActualReturnDate:  pgconv.TimePtrFromPgtype(row.ActualReturnDate),
		ReturnNotes:       pgconv.StringFromPgtype(row.ReturnNotes),
		ConfirmedAt:       pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if n.Err != nil {
		return nil, n.Err
	}
	return order.ReconstructOrder(snap), nil
}

func OrderItemToDomain(row sqlc.OrderItems) (*order.Item, error) {
	period, err := reservation.NewPeriod(row.RentalStart.Time, row.RentalEnd.Time)
	if err != nil {
		return nil, err
	}
	periodType, err := pricing.NewPeriodType(row.RentalPeriodType)
	if err != nil {
		return nil, err
	}

	var n Numerics
	unitPrice := n.Dec(row.UnitPrice)
	deposit := n.Dec(row.DepositPerUnit)
	amounts := pricing.LineAmounts{
		Duration: row.DurationUnits,
		Subtotal: n.Dec(row.LineSubtotal),
		Tax:      taxFromColumns(&n, row.TaxAmount, row.Cgst, row.Sgst, row.Igst),
		Total:    n.Dec(row.LineTotal),
	}
	if n.Err != nil {
		return nil, n.Err
	}

	return order.ReconstructItem(
		row.ID,
		row.OrderID,
		row.ProductID,
		pgconv.UUIDPtrFromPgtype(row.VariantID),
		row.ProductName,
		row.ProductSku,
		int(row.Quantity),
		unitPrice,
		deposit,
		period,
		periodType,
		amounts,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func PickupDocumentToInfra(d *order.PickupDocument) sqlc.PickupDocuments {
	return sqlc.PickupDocuments{
		ID:           d.ID(),
		OrderID:      d.OrderID(),
		PickupNumber: d.Number(),
		Instructions: d.Instructions(),
		Location:     pgconv.OptionalText(d.Location()),
		ScheduledAt:  pgconv.TimePtrToPgtype(d.ScheduledAt()),
		IsPickedUp:   d.IsPickedUp(),
		PickedUpAt:   pgconv.TimePtrToPgtype(d.PickedUpAt()),
		PickedUpBy:   pgconv.UUIDPtrToPgtype(d.PickedUpBy()),
		CreatedAt:    pgconv.TimeToPgtype(d.CreatedAt()),
	}
}

func PickupDocumentToDomain(row sqlc.PickupDocuments) *order.PickupDocument {
	return order.ReconstructPickupDocument(
		row.ID,
		row.OrderID,
		row.PickupNumber,
		row.Instructions,
		pgconv.StringFromPgtype(row.Location),
		pgconv.TimePtrFromPgtype(row.ScheduledAt),
		row.IsPickedUp,
		pgconv.TimePtrFromPgtype(row.PickedUpAt),
		pgconv.UUIDPtrFromPgtype(row.PickedUpBy),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ReturnDocumentToInfra(d *order.ReturnDocument) sqlc.ReturnDocuments {
	return sqlc.ReturnDocuments{
		ID:                d.ID(),
		OrderID:           d.OrderID(),
		ReturnNumber:      d.Number(),
		ReceivedBy:        d.ReceivedBy(),
		ConditionNotes:    pgconv.OptionalText(d.ConditionNotes()),
		DamageReported:    d.DamageReported(),
		DamageDescription: pgconv.OptionalText(d.DamageDescription()),
		ExpectedReturn:    pgconv.TimePtrToPgtype(d.ExpectedReturn()),
		ActualReturn:      pgconv.TimeToPgtype(d.ActualReturn()),
		IsLate:            d.IsLate(),
		LateDays:          pgconv.IntToInt32(d.LateDays()),
		LateFee:           pgconv.DecimalToNumeric(d.LateFee()),
		CreatedAt:         pgconv.TimeToPgtype(d.CreatedAt()),
	}
}
