package readstore

import (
	"context"

	"rental-core/internal/infra"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/readstore/payment.go -package=readstoremock
type PaymentReadQueries interface {
	ListPayments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPaymentsParams) ([]sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) List(ctx context.Context, filters queries.PaymentFilters, after *queries.Keyset, limit int32) ([]*queries.PaymentView, error) {
	params := sqlc.ListPaymentsParams{
		CustomerID: pgconv.UUIDPtrToPgtype(filters.CustomerID),
		VendorID:   pgconv.UUIDPtrToPgtype(filters.VendorID),
		InvoiceID:  pgconv.UUIDPtrToPgtype(filters.InvoiceID),
		Status:     pgconv.StringPtrToPgtype(filters.Status),
		Limit:      limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListPayments(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	result := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payment amount", err)
		}
		result[i] = &queries.PaymentView{
			ID:               row.ID,
			PaymentNumber:    row.PaymentNumber,
			InvoiceID:        row.InvoiceID,
			OrderID:          row.OrderID,
			CustomerID:       row.CustomerID,
			Amount:           amount,
			Currency:         row.Currency,
			Method:           row.Method,
			Status:           row.Status,
			GatewayOrderID:   pgconv.StringPtrFromPgtype(row.GatewayOrderID),
			GatewayPaymentID: pgconv.StringPtrFromPgtype(row.GatewayPaymentID),
			TransactionID:    pgconv.StringPtrFromPgtype(row.TransactionID),
			CardLastFour:     pgconv.StringPtrFromPgtype(row.CardLastFour),
			CardBrand:        pgconv.StringPtrFromPgtype(row.CardBrand),
			Notes:            pgconv.StringPtrFromPgtype(row.Notes),
			FailureReason:    pgconv.StringPtrFromPgtype(row.FailureReason),
			PaidAt:           pgconv.TimePtrFromPgtype(row.PaidAt),
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
