//go:build unit

package fake

import (
	"context"
	"slices"
	"time"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/product"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/domain/review"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type productRepo struct{ s *Store }

func (r productRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*product.Product, error) {
	if err := r.s.fail("Products.FindByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.st.products[id]
	if !ok {
		return nil, notFound("product not found")
	}
	return r.s.productToDomain(row)
}

func (r productRepo) LockForUpdate(_ context.Context, _ sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error) {
	out := make(map[uuid.UUID]*product.Product, len(ids))
	for _, id := range ids {
		row, ok := r.s.st.products[id]
		if !ok {
			continue
		}
		p, err := r.s.productToDomain(row)
		if err != nil {
			return nil, err
		}
		out[id] = p
	}
	return out, nil
}

func (r productRepo) SaveStock(_ context.Context, _ sqlc.DBTX, p *product.Product) error {
	if err := r.s.fail("Products.SaveStock"); err != nil {
		return err
	}
	row, ok := r.s.st.products[p.ID()]
	if !ok {
		return notFound("product not found")
	}
	row.QuantityOnHand = pgconv.IntToInt32(p.Stock().OnHand())
	row.QuantityReserved = pgconv.IntToInt32(p.Stock().Reserved())
	r.s.st.products[p.ID()] = row

	if len(p.Variants()) == 0 {
		return nil
	}
	rows := slices.Clone(r.s.st.variants[p.ID()])
	for i, vr := range rows {
		v, err := p.Variant(vr.ID)
		if err != nil {
			continue
		}
		rows[i].QuantityOnHand = pgconv.IntToInt32(v.Stock().OnHand())
		rows[i].QuantityReserved = pgconv.IntToInt32(v.Stock().Reserved())
	}
	r.s.st.variants[p.ID()] = rows
	return nil
}

func (s *Store) productToDomain(row sqlc.Products) (*product.Product, error) {
	p, err := converter.ProductToDomain(row, s.st.variants[row.ID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product row", err)
	}
	return p, nil
}

type orderRepo struct{ s *Store }

func (r orderRepo) NextNumber(context.Context, sqlc.DBTX) (int64, error) {
	r.s.st.orderSeq++
	return r.s.st.orderSeq, nil
}

func (r orderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	if err := r.s.fail("Orders.Create"); err != nil {
		return err
	}
	if _, ok := r.s.st.orders[o.ID()]; ok {
		return duplicate("order already exists")
	}
	if o.Status() == order.StatusQuotation {
		for _, row := range r.s.st.orders {
			if row.CustomerID == o.CustomerID() && row.Status == order.StatusQuotation.String() {
				return duplicate("customer already has an open cart")
			}
		}
	}
	r.s.putOrder(o)
	return nil
}

func (r orderRepo) Save(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	if err := r.s.fail("Orders.Save"); err != nil {
		return err
	}
	if _, ok := r.s.st.orders[o.ID()]; !ok {
		return notFound("order not found")
	}
	r.s.putOrder(o)
	return nil
}

func (r orderRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	return r.s.loadOrder(id)
}

func (r orderRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	return r.s.loadOrder(id)
}

func (r orderRepo) FindOpenCart(_ context.Context, _ sqlc.DBTX, customerID uuid.UUID) (*order.Order, error) {
	for id, row := range r.s.st.orders {
		if row.CustomerID == customerID && row.Status == order.StatusQuotation.String() {
			return r.s.loadOrder(id)
		}
	}
	return nil, notFound("open cart not found")
}

func (r orderRepo) ListOverdue(_ context.Context, _ sqlc.DBTX, now time.Time) ([]*order.Order, error) {
	return r.s.listOut(func(end time.Time) bool { return end.Before(now) })
}

func (r orderRepo) ListDueForReturn(_ context.Context, _ sqlc.DBTX, from, to time.Time) ([]*order.Order, error) {
	return r.s.listOut(func(end time.Time) bool { return !end.Before(from) && end.Before(to) })
}

// listOut loads picked up or active orders whose rental end matches, ordered
// by rental end.
func (s *Store) listOut(match func(end time.Time) bool) ([]*order.Order, error) {
	var rows []sqlc.Orders
	for _, row := range s.st.orders {
		if row.Status != order.StatusPickedUp.String() && row.Status != order.StatusActive.String() {
			continue
		}
		if !row.RentalEnd.Valid || !match(row.RentalEnd.Time) {
			continue
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b sqlc.Orders) int { return a.RentalEnd.Time.Compare(b.RentalEnd.Time) })

	out := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := s.loadOrder(row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *Store) putOrder(o *order.Order) {
	s.st.orders[o.ID()] = sqlc.Orders(converter.OrderToInfra(o))
	items := make([]sqlc.OrderItems, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, converter.OrderItemToInfra(it))
	}
	s.st.orderItems[o.ID()] = items
}

func (s *Store) loadOrder(id uuid.UUID) (*order.Order, error) {
	row, ok := s.st.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	o, err := converter.OrderToDomain(row, s.st.orderItems[id])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order row", err)
	}
	return o, nil
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.s.fail("Reservations.Create"); err != nil {
		return err
	}
	if _, ok := r.s.st.reservations[res.ID()]; ok {
		return duplicate("reservation already exists")
	}
	r.s.st.reservations[res.ID()] = converter.ReservationToInfra(res)
	return nil
}

func (r reservationRepo) Save(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.st.reservations[res.ID()]; !ok {
		return notFound("reservation not found")
	}
	r.s.st.reservations[res.ID()] = converter.ReservationToInfra(res)
	return nil
}

func (r reservationRepo) ListByOrder(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.s.listReservations(func(row sqlc.Reservations) bool { return row.OrderID == orderID })
}

func (r reservationRepo) ListHolds(_ context.Context, _ sqlc.DBTX, productID uuid.UUID, variantID *uuid.UUID, period reservation.Period) ([]*reservation.Reservation, error) {
	want := pgconv.UUIDPtrToPgtype(variantID)
	return r.s.listReservations(func(row sqlc.Reservations) bool {
		return row.ProductID == productID &&
			row.VariantID == want &&
			row.Status == reservation.StatusActive.String() &&
			row.StartAt.Time.Before(period.End()) &&
			row.EndAt.Time.After(period.Start())
	})
}

func (s *Store) listReservations(match func(sqlc.Reservations) bool) ([]*reservation.Reservation, error) {
	var rows []sqlc.Reservations
	for _, row := range s.st.reservations {
		if match(row) {
			rows = append(rows, row)
		}
	}
	slices.SortFunc(rows, func(a, b sqlc.Reservations) int { return a.StartAt.Time.Compare(b.StartAt.Time) })

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

type documentRepo struct{ s *Store }

func (r documentRepo) CreatePickup(_ context.Context, _ sqlc.DBTX, d *order.PickupDocument) error {
	if _, ok := r.s.st.pickups[d.OrderID()]; ok {
		return duplicate("pickup document already exists")
	}
	r.s.st.pickups[d.OrderID()] = converter.PickupDocumentToInfra(d)
	return nil
}

func (r documentRepo) FindPickupByOrder(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) (*order.PickupDocument, error) {
	row, ok := r.s.st.pickups[orderID]
	if !ok {
		return nil, notFound("pickup document not found")
	}
	return converter.PickupDocumentToDomain(row), nil
}

func (r documentRepo) SavePickup(_ context.Context, _ sqlc.DBTX, d *order.PickupDocument) error {
	if _, ok := r.s.st.pickups[d.OrderID()]; !ok {
		return notFound("pickup document not found")
	}
	r.s.st.pickups[d.OrderID()] = converter.PickupDocumentToInfra(d)
	return nil
}

func (r documentRepo) CreateReturn(_ context.Context, _ sqlc.DBTX, d *order.ReturnDocument) error {
	if _, ok := r.s.st.returns[d.OrderID()]; ok {
		return duplicate("return document already exists")
	}
	r.s.st.returns[d.OrderID()] = converter.ReturnDocumentToInfra(d)
	return nil
}

type invoiceRepo struct{ s *Store }

func (r invoiceRepo) NextNumber(context.Context, sqlc.DBTX) (int64, error) {
	r.s.st.invoiceSeq++
	return r.s.st.invoiceSeq, nil
}

func (r invoiceRepo) Create(_ context.Context, _ sqlc.DBTX, inv *invoice.Invoice) error {
	if err := r.s.fail("Invoices.Create"); err != nil {
		return err
	}
	for _, row := range r.s.st.invoices {
		if row.ID == inv.ID() || row.OrderID == inv.OrderID() {
			return duplicate("invoice already exists for order")
		}
	}
	r.s.putInvoice(inv)
	return nil
}

func (r invoiceRepo) Save(_ context.Context, _ sqlc.DBTX, inv *invoice.Invoice) error {
	if _, ok := r.s.st.invoices[inv.ID()]; !ok {
		return notFound("invoice not found")
	}
	r.s.putInvoice(inv)
	return nil
}

func (r invoiceRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*invoice.Invoice, error) {
	return r.s.loadInvoice(id)
}

func (r invoiceRepo) FindByOrderIDForUpdate(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) (*invoice.Invoice, error) {
	for id, row := range r.s.st.invoices {
		if row.OrderID == orderID {
			return r.s.loadInvoice(id)
		}
	}
	return nil, notFound("invoice not found")
}

func (s *Store) putInvoice(inv *invoice.Invoice) {
	s.st.invoices[inv.ID()] = converter.InvoiceToInfra(inv)
	s.st.invoiceItems[inv.ID()] = converter.InvoiceItemsToInfra(inv)
}

func (s *Store) loadInvoice(id uuid.UUID) (*invoice.Invoice, error) {
	row, ok := s.st.invoices[id]
	if !ok {
		return nil, notFound("invoice not found")
	}
	inv, err := converter.InvoiceToDomain(row, s.st.invoiceItems[id])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert invoice row", err)
	}
	return inv, nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) NextNumber(context.Context, sqlc.DBTX) (int64, error) {
	r.s.st.paymentSeq++
	return r.s.st.paymentSeq, nil
}

func (r paymentRepo) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	if err := r.s.fail("Payments.Create"); err != nil {
		return err
	}
	if _, ok := r.s.st.payments[p.ID()]; ok {
		return duplicate("payment already exists")
	}
	r.s.st.payments[p.ID()] = converter.PaymentToInfra(p)
	return nil
}

func (r paymentRepo) Save(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	if _, ok := r.s.st.payments[p.ID()]; !ok {
		return notFound("payment not found")
	}
	r.s.st.payments[p.ID()] = converter.PaymentToInfra(p)
	return nil
}

func (r paymentRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*payment.Payment, error) {
	return r.s.loadPayment(id)
}

func (r paymentRepo) FindByGatewayOrderIDForUpdate(_ context.Context, _ sqlc.DBTX, gatewayOrderID string) (*payment.Payment, error) {
	for id, row := range r.s.st.payments {
		if row.GatewayOrderID.Valid && row.GatewayOrderID.String == gatewayOrderID {
			return r.s.loadPayment(id)
		}
	}
	return nil, notFound("payment not found")
}

func (s *Store) loadPayment(id uuid.UUID) (*payment.Payment, error) {
	row, ok := s.st.payments[id]
	if !ok {
		return nil, notFound("payment not found")
	}
	p, err := converter.PaymentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment row", err)
	}
	return p, nil
}

type couponRepo struct{ s *Store }

// IncrementUsage mirrors the guarded UPDATE: a coupon at its limit is a
// conflict.
func (r couponRepo) IncrementUsage(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	for code, c := range r.s.st.coupons {
		if c.ID != id {
			continue
		}
		if !c.IsActive || (c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit) {
			return infra.WrapRepoErr("coupon usage limit reached", nil, infra.KindConflict)
		}
		c.UsedCount++
		r.s.st.coupons[code] = c
		return nil
	}
	return notFound("coupon not found")
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, _ sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	for _, row := range r.s.st.reviews {
		if row.OrderID == rev.OrderID() && row.ProductID == rev.ProductID() && row.CustomerID == rev.CustomerID() {
			return uuid.Nil, duplicate("review already exists")
		}
	}
	params := converter.ReviewToCreateParams(rev)
	r.s.st.reviews[params.ID] = params
	return params.ID, nil
}

type idempotencyRepo struct{ s *Store }

// TryInsert ignores an existing key like ON CONFLICT DO NOTHING.
func (r idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	k := idempotencyKey{key: key, userID: userID}
	if _, ok := r.s.st.idempotency[k]; ok {
		return nil
	}
	r.s.st.idempotency[k] = idempotencyRow{
		IdempotencyRecord: shared.IdempotencyRecord{
			Key:         key,
			UserID:      userID,
			Status:      shared.IdempotencyProcessing,
			RequestHash: requestHash,
			ExpiresAt:   expiresAt,
		},
		Endpoint: endpoint,
	}
	return nil
}

func (r idempotencyRepo) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, resultID uuid.UUID) error {
	k := idempotencyKey{key: key, userID: userID}
	row, ok := r.s.st.idempotency[k]
	if !ok {
		return notFound("idempotency key not found")
	}
	row.Status = shared.IdempotencyCompleted
	row.ResultID = &resultID
	r.s.st.idempotency[k] = row
	return nil
}

func (r idempotencyRepo) DeleteExpired(context.Context, sqlc.DBTX) (int64, error) {
	now := r.s.clock.Now()
	var n int64
	for k, row := range r.s.st.idempotency {
		if row.ExpiresAt.Before(now) {
			delete(r.s.st.idempotency, k)
			n++
		}
	}
	return n, nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if err := r.s.fail("Notifications.CreateJob"); err != nil {
		return err
	}
	id := uuid.New()
	r.s.st.jobs[id] = Job{
		NotificationJob: shared.NotificationJob{ID: id, Kind: kind, Topic: topic, Payload: payload, RunAt: runAt},
		Status:          shared.NotificationQueued,
	}
	r.s.st.jobOrder = append(r.s.st.jobOrder, id)
	return nil
}

func (r notificationRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	var out []shared.NotificationJob
	for _, id := range r.s.st.jobOrder {
		if len(out) == limit {
			break
		}
		j := r.s.st.jobs[id]
		if j.Status == shared.NotificationQueued && !j.RunAt.After(now) {
			out = append(out, j.NotificationJob)
		}
	}
	return out, nil
}

// UpdateJobStatus counts an attempt on every call, like the SQL it replaces.
func (r notificationRepo) UpdateJobStatus(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	j, ok := r.s.st.jobs[jobID]
	if !ok {
		return notFound("notification job not found")
	}
	j.Status = status
	j.LastError = lastError
	j.Attempts++
	r.s.st.jobs[jobID] = j
	return nil
}
