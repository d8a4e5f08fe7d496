package commands

import (
	"context"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/domain/product"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInsufficientAvailability = errs.Availability("requested quantity is not available for the selected dates")

// lockOrderProducts takes row locks on every product of o.
func lockOrderProducts(ctx context.Context, tx shared.Tx, o *order.Order) (map[uuid.UUID]*product.Product, error) {
	seen := make(map[uuid.UUID]struct{}, len(o.Items()))
	ids := make([]uuid.UUID, 0, len(o.Items()))
	for _, it := range o.Items() {
		if _, ok := seen[it.ProductID()]; ok {
			continue
		}
		seen[it.ProductID()] = struct{}{}
		ids = append(ids, it.ProductID())
	}

	products, err := tx.Products().LockForUpdate(ctx, tx.DB(), ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, product.ErrProductNotFound
		}
	}
	return products, nil
}

// checkAvailability runs the overlap check for one request inside tx.
func checkAvailability(ctx context.Context, tx shared.Tx, p *product.Product, req reservation.AvailabilityRequest) (reservation.Availability, error) {
	stock, err := p.StockFor(req.VariantID)
	if err != nil {
		return reservation.Availability{}, err
	}
	holds, err := tx.Reservations().ListHolds(ctx, tx.DB(), req.ProductID, req.VariantID, req.Period)
	if err != nil {
		return reservation.Availability{}, err
	}
	return reservation.Check(stock.OnHand(), holds, req), nil
}

// reserveOrder re-checks every line of o under the product locks and creates
// one active reservation per line. Any shortfall aborts the whole order.
func reserveOrder(ctx context.Context, tx shared.Tx, o *order.Order, products map[uuid.UUID]*product.Product, now time.Time) error {
	plan, err := o.ReservationPlan(now)
	if err != nil {
		return err
	}
	for _, r := range plan {
		p := products[r.ProductID()]
		avail, err := checkAvailability(ctx, tx, p, reservation.AvailabilityRequest{
			ProductID: r.ProductID(),
			VariantID: r.VariantID(),
			Period:    r.Period(),
			Quantity:  r.Quantity(),
		})
		if err != nil {
			return err
		}
		if !avail.IsAvailable {
			return errs.Wrapf(ErrInsufficientAvailability, "product %s: only %d available", p.Name(), avail.AvailableQuantity)
		}
		if err := p.Reserve(r.VariantID(), r.Quantity()); err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
			return err
		}
	}
	return saveProducts(ctx, tx, products)
}

// releaseOrder closes every active reservation of orderID and returns its
// units to stock. returned picks Fulfill over Release.
func releaseOrder(ctx context.Context, tx shared.Tx, o *order.Order, returned bool, now time.Time) error {
	holds, err := tx.Reservations().ListByOrder(ctx, tx.DB(), o.ID())
	if err != nil {
		return err
	}
	active := make([]*reservation.Reservation, 0, len(holds))
	for _, r := range holds {
		if r.IsActive() {
			active = append(active, r)
		}
	}
	if len(active) == 0 {
		return nil
	}

	products, err := lockOrderProducts(ctx, tx, o)
	if err != nil {
		return err
	}
	for _, r := range active {
		p, ok := products[r.ProductID()]
		if !ok {
			return product.ErrProductNotFound
		}
		if r.Consumed() {
			err = p.Restock(r.VariantID(), r.Quantity())
		} else {
			err = p.Release(r.VariantID(), r.Quantity())
		}
		if err != nil {
			return err
		}
		if returned {
			err = r.Fulfill(now)
		} else {
			err = r.Release(now)
		}
		if err != nil {
			return err
		}
		if err := tx.Reservations().Save(ctx, tx.DB(), r); err != nil {
			return err
		}
	}
	return saveProducts(ctx, tx, products)
}

// consumeOrder takes the reserved units of o out of on-hand stock once the
// order is fully paid.
func consumeOrder(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	holds, err := tx.Reservations().ListByOrder(ctx, tx.DB(), o.ID())
	if err != nil {
		return err
	}
	products, err := lockOrderProducts(ctx, tx, o)
	if err != nil {
		return err
	}
	for _, r := range holds {
		if !r.HoldsStock() {
			continue
		}
		p, ok := products[r.ProductID()]
		if !ok {
			return product.ErrProductNotFound
		}
		if err := p.Consume(r.VariantID(), r.Quantity()); err != nil {
			return err
		}
		if err := r.MarkConsumed(now); err != nil {
			return err
		}
		if err := tx.Reservations().Save(ctx, tx.DB(), r); err != nil {
			return err
		}
	}
	return saveProducts(ctx, tx, products)
}

func saveProducts(ctx context.Context, tx shared.Tx, products map[uuid.UUID]*product.Product) error {
	for _, p := range products {
		if err := tx.Products().SaveStock(ctx, tx.DB(), p); err != nil {
			return err
		}
	}
	return nil
}

// loadProduct maps a missing row to the product sentinel.
func loadProduct(ctx context.Context, tx shared.Tx, id uuid.UUID) (*product.Product, error) {
	p, err := tx.Products().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
