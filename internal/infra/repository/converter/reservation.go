package converter

import (
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
)

func ReservationToInfra(r *reservation.Reservation) sqlc.Reservations {
	return sqlc.Reservations{
		ID:          r.ID(),
		OrderID:     r.OrderID(),
		OrderItemID: r.OrderItemID(),
		ProductID:   r.ProductID(),
		VariantID:   pgconv.UUIDPtrToPgtype(r.VariantID()),
		Quantity:    pgconv.IntToInt32(r.Quantity()),
		StartAt:     pgconv.TimeToPgtype(r.Period().Start()),
		EndAt:       pgconv.TimeToPgtype(r.Period().End()),
		Status:      r.Status().String(),
		StockStatus: r.StockStatus().String(),
		Consumed:    r.Consumed(),
		ReleasedAt:  pgconv.TimePtrToPgtype(r.ReleasedAt()),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationToDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	period, err := reservation.NewPeriod(row.StartAt.Time, row.EndAt.Time)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	stockStatus, err := reservation.NewStockStatus(row.StockStatus)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.OrderID,
		row.OrderItemID,
		row.ProductID,
		pgconv.UUIDPtrFromPgtype(row.VariantID),
		int(row.Quantity),
		period,
		status,
		stockStatus,
		row.Consumed,
		pgconv.TimePtrFromPgtype(row.ReleasedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
