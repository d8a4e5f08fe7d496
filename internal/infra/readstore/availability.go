package readstore

import (
	"context"
	"time"

	"rental-core/internal/domain/product"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/readstore/availability.go -package=readstoremock
type AvailabilityReadQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListVariantsByProductIDs(ctx context.Context, db sqlc.DBTX, productIDs []uuid.UUID) ([]sqlc.ProductVariants, error)
	ListActiveReservationsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsOverlappingParams) ([]sqlc.Reservations, error)
	ListProductCalendar(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProductCalendarParams) ([]sqlc.ListProductCalendarRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) FindProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	variants, err := r.queries.ListVariantsByProductIDs(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product variants", err)
	}
	p, err := converter.ProductToDomain(row, variants)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product row", err)
	}
	return p, nil
}

func (r *AvailabilityReadStore) ListHolds(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, period reservation.Period) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservationsOverlapping(ctx, r.db, sqlc.ListActiveReservationsOverlappingParams{
		ProductID: productID,
		VariantID: pgconv.UUIDPtrToPgtype(variantID),
		StartAt:   pgconv.TimeToPgtype(period.Start()),
		EndAt:     pgconv.TimeToPgtype(period.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}
	holds := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		holds[i], err = converter.ReservationToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", err)
		}
	}
	return holds, nil
}

func (r *AvailabilityReadStore) Calendar(ctx context.Context, productID uuid.UUID, from, to time.Time) ([]*queries.CalendarEntry, error) {
	rows, err := r.queries.ListProductCalendar(ctx, r.db, sqlc.ListProductCalendarParams{
		ProductID: productID,
		From:      pgconv.TimeToPgtype(from),
		To:        pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product calendar", err)
	}
	result := make([]*queries.CalendarEntry, len(rows))
	for i, row := range rows {
		result[i] = &queries.CalendarEntry{
			ReservationID: row.ID,
			OrderID:       row.OrderID,
			OrderNumber:   row.OrderNumber,
			VariantID:     pgconv.UUIDPtrFromPgtype(row.VariantID),
			Quantity:      row.Quantity,
			StartAt:       pgconv.TimeFromPgtype(row.StartAt),
			EndAt:         pgconv.TimeFromPgtype(row.EndAt),
			StockStatus:   row.StockStatus,
			Consumed:      row.Consumed,
		}
	}
	return result, nil
}
