package converter

import (
	"rental-core/internal/domain/payment"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
)

func PaymentToInfra(p *payment.Payment) sqlc.Payments {
	return sqlc.Payments{
		ID:               p.ID(),
		PaymentNumber:    p.Number(),
		InvoiceID:        p.InvoiceID(),
		OrderID:          p.OrderID(),
		CustomerID:       p.CustomerID(),
		Amount:           pgconv.DecimalToNumeric(p.Amount()),
		Currency:         p.Currency(),
		Method:           p.Method().String(),
		Status:           p.Status().String(),
		GatewayOrderID:   pgconv.StringPtrToPgtype(p.GatewayOrderID()),
		GatewayPaymentID: pgconv.StringPtrToPgtype(p.GatewayPaymentID()),
		GatewaySignature: pgconv.StringPtrToPgtype(p.GatewaySignature()),
		TransactionID:    pgconv.OptionalText(p.TransactionID()),
		CardLastFour:     pgconv.OptionalText(p.CardLastFour()),
		CardBrand:        pgconv.OptionalText(p.CardBrand()),
		Notes:            pgconv.OptionalText(p.Notes()),
		FailureReason:    pgconv.OptionalText(p.FailureReason()),
		PaidAt:           pgconv.TimePtrToPgtype(p.PaidAt()),
		CreatedAt:        pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentToDomain(row sqlc.Payments) (*payment.Payment, error) {
	method, err := payment.NewMethod(row.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(payment.Snapshot{
		ID:               row.ID,
		Number:           row.PaymentNumber,
		InvoiceID:        row.InvoiceID,
		OrderID:          row.OrderID,
		CustomerID:       row.CustomerID,
		Amount:           amount,
		Currency:         row.Currency,
		Method:           method,
		Status:           status,
		GatewayOrderID:   pgconv.StringPtrFromPgtype(row.GatewayOrderID),
		GatewayPaymentID: pgconv.StringPtrFromPgtype(row.GatewayPaymentID),
		GatewaySignature: pgconv.StringPtrFromPgtype(row.GatewaySignature),
		TransactionID:    pgconv.StringFromPgtype(row.TransactionID),
		CardLastFour:     pgconv.StringFromPgtype(row.CardLastFour),
		CardBrand:        pgconv.StringFromPgtype(row.CardBrand),
		Notes:            pgconv.StringFromPgtype(row.Notes),
		FailureReason:    pgconv.StringFromPgtype(row.FailureReason),
		PaidAt:           pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
