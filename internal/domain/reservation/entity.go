package reservation

import (
	"time"

	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errs.Validation("reservation quantity must be positive")
	ErrNotActive       = errs.InvalidState("reservation is not active")
	ErrAlreadyConsumed = errs.InvalidState("reserved stock already consumed")
)

// Reservation holds quantity units of a product (or variant) for an order
// line. It counts against the product's reserved counter while active.
type Reservation struct {
	id          uuid.UUID
	orderID     uuid.UUID
	orderItemID uuid.UUID
	productID   uuid.UUID
	variantID   *uuid.UUID
	quantity    int
	period      Period
	status      Status
	stockStatus StockStatus
	consumed    bool
	releasedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(orderID, orderItemID, productID uuid.UUID, variantID *uuid.UUID, quantity int, period Period, now time.Time) (*Reservation, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Reservation{
		id:          uuid.New(),
		orderID:     orderID,
		orderItemID: orderItemID,
		productID:   productID,
		variantID:   variantID,
		quantity:    quantity,
		period:      period,
		status:      StatusActive,
		stockStatus: StockReserved,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, orderID, orderItemID, productID uuid.UUID,
	variantID *uuid.UUID,
	quantity int,
	period Period,
	status Status,
	stockStatus StockStatus,
	consumed bool,
	releasedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		orderID:     orderID,
		orderItemID: orderItemID,
		productID:   productID,
		variantID:   variantID,
		quantity:    quantity,
		period:      period,
		status:      status,
		stockStatus: stockStatus,
		consumed:    consumed,
		releasedAt:  releasedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) OrderID() uuid.UUID       { return r.orderID }
func (r *Reservation) OrderItemID() uuid.UUID   { return r.orderItemID }
func (r *Reservation) ProductID() uuid.UUID     { return r.productID }
func (r *Reservation) VariantID() *uuid.UUID    { return r.variantID }
func (r *Reservation) Quantity() int            { return r.quantity }
func (r *Reservation) Period() Period           { return r.period }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) StockStatus() StockStatus { return r.stockStatus }
func (r *Reservation) Consumed() bool           { return r.consumed }
func (r *Reservation) ReleasedAt() *time.Time   { return r.releasedAt }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// HoldsStock reports whether the reservation still counts against the
// reserved counter. Consumed units already left the on-hand count.
func (r *Reservation) HoldsStock() bool {
	return r.IsActive() && !r.consumed
}

func (r *Reservation) MarkWithCustomer(now time.Time) error {
	if !r.IsActive() {
		return ErrNotActive
	}
	r.stockStatus = StockWithCustomer
	r.updatedAt = now
	return nil
}

// MarkConsumed records that the held units were taken out of on-hand stock.
func (r *Reservation) MarkConsumed(now time.Time) error {
	if !r.IsActive() {
		return ErrNotActive
	}
	if r.consumed {
		return ErrAlreadyConsumed
	}
	r.consumed = true
	r.updatedAt = now
	return nil
}

// Fulfill closes the reservation after the units came back.
func (r *Reservation) Fulfill(now time.Time) error {
	if !r.IsActive() {
		return ErrNotActive
	}
	r.status = StatusFulfilled
	r.stockStatus = StockReturned
	r.releasedAt = &now
	r.updatedAt = now
	return nil
}

// Release drops the hold without the units having been rented out.
func (r *Reservation) Release(now time.Time) error {
	if !r.IsActive() {
		return ErrNotActive
	}
	r.status = StatusReleased
	r.releasedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Reservation) Expire(now time.Time) error {
	if !r.IsActive() {
		return ErrNotActive
	}
	r.status = StatusExpired
	r.releasedAt = &now
	r.updatedAt = now
	return nil
}
