package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-core/internal/domain/coupon"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const endpointConfirmOrder = "POST /api/orders/:id/confirm"

var (
	ErrOrderNotFound  = errs.NotFound("order not found")
	ErrOrderForbidden = errs.Forbidden("order belongs to another account")
	ErrVendorOnly     = errs.Forbidden("only vendors or admins can perform this action")
	ErrNoItems        = errs.Validation("at least one item is required")
)

type QuotationItemInput struct {
	ProductID  uuid.UUID
	VariantID  *uuid.UUID
	Quantity   int
	StartAt    time.Time
	EndAt      time.Time
	PeriodType string
}

type CreateQuotationInput struct {
	Items []QuotationItemInput
}

type ConfirmOrderInput struct {
	DeliveryMethod    string
	BillingAddress    string
	DeliveryAddress   string
	DownpaymentAmount *decimal.Decimal
	CustomerNotes     string
	IdempotencyKey    *uuid.UUID
}

type ReturnOrderInput struct {
	ConditionNotes    string
	DamageReported    bool
	DamageDescription string
	Notes             string
}

type OrderResult struct {
	OrderID uuid.UUID
	Status  order.Status
	// Replayed is set when an Idempotency-Key matched a finished request.
	Replayed bool
}

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commandsmock
type OrderCommands interface {
	CreateQuotation(ctx context.Context, actor shared.Actor, in CreateQuotationInput) ([]uuid.UUID, error)
	Confirm(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in ConfirmOrderInput) (*OrderResult, error)
	MarkPickedUp(ctx context.Context, actor shared.Actor, orderID uuid.UUID, notes string) (*OrderResult, error)
	MarkReturned(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in ReturnOrderInput) (*OrderResult, error)
	Cancel(ctx context.Context, actor shared.Actor, orderID uuid.UUID, reason string) (*OrderResult, error)
	Complete(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*OrderResult, error)
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	invoices InvoiceCommands
	policy   pricing.Policy
	clock    clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, invoices InvoiceCommands, policy pricing.Policy, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{
		uow:      uow,
		invoices: invoices,
		policy:   policy,
		clock:    clk,
	}
}

// CreateQuotation splits the requested lines by vendor and issues one
// quotation per vendor. The quotations are marked sent so they never collide
// with the customer's open cart.
func (uc *orderUseCaseImpl) CreateQuotation(ctx context.Context, actor shared.Actor, in CreateQuotationInput) ([]uuid.UUID, error) {
	if !actor.IsCustomer() {
		return nil, ErrCustomerOnly
	}
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}

	type line struct {
		in         QuotationItemInput
		period     reservation.Period
		periodType pricing.PeriodType
	}
	lines := make([]line, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, pricing.ErrInvalidQuantity
		}
		pt := pricing.PeriodDaily
		if it.PeriodType != "" {
			parsed, err := pricing.NewPeriodType(it.PeriodType)
			if err != nil {
				return nil, err
			}
			pt = parsed
		}
		period, err := reservation.NewPeriod(it.StartAt, it.EndAt)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line{in: it, period: period, periodType: pt})
	}

	var ids []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		ids = ids[:0]

		byVendor := make(map[uuid.UUID]*order.Order)
		vendors := make([]uuid.UUID, 0)
		for _, l := range lines {
			p, err := loadProduct(ctx, tx, l.in.ProductID)
			if err != nil {
				return err
			}
			if err := p.EnsureRentable(); err != nil {
				return err
			}
			price, err := p.UnitPrice(l.periodType, l.in.VariantID)
			if err != nil {
				return err
			}
			avail, err := checkAvailability(ctx, tx, p, reservation.AvailabilityRequest{
				ProductID: p.ID(),
				VariantID: l.in.VariantID,
				Period:    l.period,
				Quantity:  l.in.Quantity,
			})
			if err != nil {
				return err
			}
			if !avail.IsAvailable {
				return errs.Wrapf(ErrInsufficientAvailability, "product %s: only %d available", p.Name(), avail.AvailableQuantity)
			}

			q, ok := byVendor[p.VendorID()]
			if !ok {
				seq, err := tx.Orders().NextNumber(ctx, tx.DB())
				if err != nil {
					return err
				}
				q, err = order.NewQuotation(order.FormatNumber(now, seq), actor.ID, p.VendorID(), uc.policy, now)
				if err != nil {
					return err
				}
				byVendor[p.VendorID()] = q
				vendors = append(vendors, p.VendorID())
			}
			if _, err := q.AddItem(order.ItemInput{
				ProductID:      p.ID(),
				VariantID:      l.in.VariantID,
				VendorID:       p.VendorID(),
				ProductName:    p.Name(),
				ProductSKU:     p.SKU(),
				Quantity:       l.in.Quantity,
				UnitPrice:      price,
				DepositPerUnit: p.SecurityDeposit(),
				Period:         l.period,
				PeriodType:     l.periodType,
			}, now); err != nil {
				return err
			}
		}

		for _, vendorID := range vendors {
			q := byVendor[vendorID]
			if err := q.MarkQuotationSent(now); err != nil {
				return err
			}
			if err := tx.Orders().Create(ctx, tx.DB(), q); err != nil {
				return err
			}
			ids = append(ids, q.ID())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Confirm turns a quotation into a sale order. Reservations are created under
// product row locks, so two confirms racing for the last units cannot both
// succeed. An invoice is drafted after commit; failing that does not fail the
// confirm.
func (uc *orderUseCaseImpl) Confirm(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in ConfirmOrderInput) (*OrderResult, error) {
	if actor.IsVendor() {
		return nil, ErrCustomerOnly
	}
	method, err := order.NewDeliveryMethod(in.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	req := newIdempotentRequest(in.IdempotencyKey, actor.ID, endpointConfirmOrder, struct {
		OrderID uuid.UUID
		Input   ConfirmOrderInput
	}{orderID, in})

	var (
		result  OrderResult
		changed bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		changed = false

		replayed, err := req.claim(ctx, tx, now)
		if err != nil {
			return err
		}
		if replayed != nil {
			result = OrderResult{OrderID: *replayed, Replayed: true}
			return nil
		}

		o, err := findOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if !actor.Owns(o.CustomerID(), o.VendorID()) {
			return ErrOrderForbidden
		}

		changed, err = o.Confirm(order.ConfirmDetails{
			DeliveryMethod:    method,
			BillingAddress:    in.BillingAddress,
			DeliveryAddress:   in.DeliveryAddress,
			DownpaymentAmount: in.DownpaymentAmount,
			CustomerNotes:     in.CustomerNotes,
		}, now)
		if err != nil {
			return err
		}
		if changed {
			if err := uc.confirmInTx(ctx, tx, o, now); err != nil {
				return err
			}
		}
		if err := req.complete(ctx, tx, o.ID()); err != nil {
			return err
		}
		result = OrderResult{OrderID: o.ID(), Status: o.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		if _, err := uc.invoices.CreateFromOrder(ctx, actor, result.OrderID); err != nil {
			slog.WarnContext(ctx, "invoice creation after confirm failed",
				"order_id", result.OrderID,
				"error", err)
		}
	}
	return &result, nil
}

func (uc *orderUseCaseImpl) confirmInTx(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	products, err := lockOrderProducts(ctx, tx, o)
	if err != nil {
		return err
	}
	if err := reserveOrder(ctx, tx, o, products, now); err != nil {
		return err
	}
	if o.DiscountCode() != "" {
		c, err := loadCoupon(ctx, tx, o.DiscountCode())
		if err != nil {
			return err
		}
		if err := tx.Coupons().IncrementUsage(ctx, tx.DB(), c.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return coupon.ErrUsageLimitReached
			}
			return err
		}
	}
	if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
		return err
	}
	if err := tx.Documents().CreatePickup(ctx, tx.DB(), order.NewPickupDocument(o, now)); err != nil {
		return err
	}
	return enqueue(ctx, tx, TopicOrderConfirmed, newOrderEvent(o), now)
}

func (uc *orderUseCaseImpl) MarkPickedUp(ctx context.Context, actor shared.Actor, orderID uuid.UUID, notes string) (*OrderResult, error) {
	return uc.vendorTransition(ctx, actor, orderID, func(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
		if err := o.MarkPickedUp(now, notes); err != nil {
			return err
		}
		holds, err := tx.Reservations().ListByOrder(ctx, tx.DB(), o.ID())
		if err != nil {
			return err
		}
		for _, r := range holds {
			if !r.IsActive() {
				continue
			}
			if err := r.MarkWithCustomer(now); err != nil {
				return err
			}
			if err := tx.Reservations().Save(ctx, tx.DB(), r); err != nil {
				return err
			}
		}
		return uc.stampPickup(ctx, tx, o, actor.ID, now)
	})
}

// stampPickup records the handover on the order's pickup document, creating
// it for orders confirmed before documents existed.
func (uc *orderUseCaseImpl) stampPickup(ctx context.Context, tx shared.Tx, o *order.Order, by uuid.UUID, now time.Time) error {
	doc, err := tx.Documents().FindPickupByOrder(ctx, tx.DB(), o.ID())
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		doc = order.NewPickupDocument(o, now)
		doc.MarkPickedUp(by, now)
		return tx.Documents().CreatePickup(ctx, tx.DB(), doc)
	}
	doc.MarkPickedUp(by, now)
	return tx.Documents().SavePickup(ctx, tx.DB(), doc)
}

// MarkReturned closes the rental, assesses the late fee and returns the units
// to stock. A draft invoice picks up the late fee.
func (uc *orderUseCaseImpl) MarkReturned(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in ReturnOrderInput) (*OrderResult, error) {
	return uc.vendorTransition(ctx, actor, orderID, func(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
		late, err := o.MarkReturned(now, in.Notes, uc.policy.LateFeePercentage)
		if err != nil {
			return err
		}
		if err := releaseOrder(ctx, tx, o, true, now); err != nil {
			return err
		}
		doc := order.NewReturnDocument(o, order.ReturnDetails{
			ReturnedAt:        now,
			ReceivedBy:        actor.ID,
			ConditionNotes:    in.ConditionNotes,
			DamageReported:    in.DamageReported,
			DamageDescription: in.DamageDescription,
			Notes:             in.Notes,
		}, late)
		if err := tx.Documents().CreateReturn(ctx, tx.DB(), doc); err != nil {
			return err
		}
		if late.IsLate() {
			slog.InfoContext(ctx, "late return assessed",
				"order_id", o.ID(),
				"days_late", late.DaysLate,
				"late_fee", late.Fee.StringFixed(2))
		}
		return rebuildDraftInvoice(ctx, tx, o, now)
	})
}

func (uc *orderUseCaseImpl) Complete(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*OrderResult, error) {
	return uc.vendorTransition(ctx, actor, orderID, func(_ context.Context, _ shared.Tx, o *order.Order, now time.Time) error {
		return o.Complete(now)
	})
}

// Cancel is open to both parties of the order. Active reservations are
// released in the same transaction.
func (uc *orderUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, orderID uuid.UUID, reason string) (*OrderResult, error) {
	var result OrderResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		o, err := findOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if !actor.Owns(o.CustomerID(), o.VendorID()) {
			return ErrOrderForbidden
		}
		if err := o.Cancel(reason, now); err != nil {
			return err
		}
		if err := releaseOrder(ctx, tx, o, false, now); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		result = OrderResult{OrderID: o.ID(), Status: o.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type orderTransition func(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error

// vendorTransition locks the order, checks the actor is its vendor or an
// admin, applies fn and saves.
func (uc *orderUseCaseImpl) vendorTransition(ctx context.Context, actor shared.Actor, orderID uuid.UUID, fn orderTransition) (*OrderResult, error) {
	if actor.IsCustomer() {
		return nil, ErrVendorOnly
	}

	var result OrderResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		o, err := findOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if !actor.Owns(o.CustomerID(), o.VendorID()) {
			return ErrOrderForbidden
		}
		if err := fn(ctx, tx, o, now); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		result = OrderResult{OrderID: o.ID(), Status: o.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func findOrder(ctx context.Context, tx shared.Tx, id uuid.UUID, forUpdate bool) (*order.Order, error) {
	var (
		o   *order.Order
		err error
	)
	if forUpdate {
		o, err = tx.Orders().FindByIDForUpdate(ctx, tx.DB(), id)
	} else {
		o, err = tx.Orders().FindByID(ctx, tx.DB(), id)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func newOrderEvent(o *order.Order) orderEvent {
	return orderEvent{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		CustomerID:  o.CustomerID(),
		VendorID:    o.VendorID(),
		Status:      o.Status().String(),
		RentalEnd:   o.RentalEnd(),
	}
}
