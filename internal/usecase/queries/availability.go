package queries

import (
	"context"
	"time"

	"rental-core/internal/domain/product"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errs.Validation("quantity must be positive")
	ErrCalendarTooWide  = errs.Validation("calendar range cannot exceed 366 days")
	ErrInvalidDateRange = errs.Validation("end date must be after start date")
)

const (
	defaultCalendarSpan = 30 * 24 * time.Hour
	maxCalendarSpan     = 366 * 24 * time.Hour
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

type AvailabilityReadStore interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*product.Product, error)
	ListHolds(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, period reservation.Period) ([]*reservation.Reservation, error)
	Calendar(ctx context.Context, productID uuid.UUID, from, to time.Time) ([]*CalendarEntry, error)
}

type AvailabilityQueries interface {
	Check(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, start, end time.Time, quantity int) (*AvailabilityView, error)
	Calendar(ctx context.Context, productID uuid.UUID, from, to *time.Time) ([]*CalendarEntry, error)
}

type availabilityQueriesImpl struct {
	repo  AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(repo AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, clock: clk}
}

// Check is the optimistic availability answer shown to browsing customers.
// Confirmation repeats it under a product row lock.
func (q *availabilityQueriesImpl) Check(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, start, end time.Time, quantity int) (*AvailabilityView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	period, err := reservation.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	p, err := q.repo.FindProduct(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}
	stock, err := p.StockFor(variantID)
	if err != nil {
		return nil, err
	}

	holds, err := q.repo.ListHolds(ctx, productID, variantID, period)
	if err != nil {
		return nil, err
	}

	a := reservation.Check(stock.OnHand(), holds, reservation.AvailabilityRequest{
		ProductID: productID,
		VariantID: variantID,
		Period:    period,
		Quantity:  quantity,
	})
	return &AvailabilityView{
		ProductID:         a.ProductID,
		VariantID:         a.VariantID,
		StartDate:         a.Period.Start(),
		EndDate:           a.Period.End(),
		RequestedQuantity: a.RequestedQuantity,
		StockOnHand:       a.StockOnHand,
		ReservedQuantity:  a.ReservedQuantity,
		AvailableQuantity: a.AvailableQuantity,
		IsAvailable:       a.IsAvailable,
		Conflicts:         a.Conflicts,
	}, nil
}

// Calendar lists active reservations overlapping [from, to). Without bounds
// it covers the next 30 days.
func (q *availabilityQueriesImpl) Calendar(ctx context.Context, productID uuid.UUID, from, to *time.Time) ([]*CalendarEntry, error) {
	start := q.clock.Now()
	if from != nil {
		start = *from
	}
	end := start.Add(defaultCalendarSpan)
	if to != nil {
		end = *to
	}
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}
	if end.Sub(start) > maxCalendarSpan {
		return nil, ErrCalendarTooWide
	}

	if _, err := q.repo.FindProduct(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}
	return q.repo.Calendar(ctx, productID, start, end)
}
