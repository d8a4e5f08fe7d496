package repository

import (
	"context"

	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock
type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.Reservations) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	ListReservationsByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.Reservations, error)
	ListActiveReservationsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsOverlappingParams) ([]sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Save(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservation(ctx, tx, sqlc.UpdateReservationParams{
		ID:          res.ID(),
		Status:      res.Status().String(),
		StockStatus: res.StockStatus().String(),
		Consumed:    res.Consumed(),
		ReleasedAt:  pgconv.TimePtrToPgtype(res.ReleasedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ListByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByOrder(ctx, tx, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by order", err)
	}
	return toReservations(rows)
}

func (r *ReservationRepository) ListHolds(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, variantID *uuid.UUID, period reservation.Period) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservationsOverlapping(ctx, tx, sqlc.ListActiveReservationsOverlappingParams{
		ProductID: productID,
		VariantID: pgconv.UUIDPtrToPgtype(variantID),
		StartAt:   pgconv.TimeToPgtype(period.Start()),
		EndAt:     pgconv.TimeToPgtype(period.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}
	return toReservations(rows)
}

func toReservations(rows []sqlc.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", err)
		}
		out = append(out, res)
	}
	return out, nil
}
