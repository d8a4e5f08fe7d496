//go:build unit

package fake

import (
	"time"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/product"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductSeed struct {
	VendorID    uuid.UUID
	Name        string
	HourlyPrice *decimal.Decimal
	DailyPrice  *decimal.Decimal
	Deposit     decimal.Decimal
	OnHand      int
	NotRentable bool
}

// AddProduct stores a product without variants and returns its id.
func (s *Store) AddProduct(p ProductSeed) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	now := pgconv.TimeToPgtype(time.Now())
	s.st.products[id] = sqlc.Products{
		ID:              id,
		VendorID:        p.VendorID,
		Name:            p.Name,
		Sku:             "SKU-" + id.String()[:8],
		PriceHourly:     pgconv.DecimalPtrToNumeric(p.HourlyPrice),
		PriceDaily:      pgconv.DecimalPtrToNumeric(p.DailyPrice),
		PriceWeekly:     pgconv.DecimalPtrToNumeric(nil),
		PriceMonthly:    pgconv.DecimalPtrToNumeric(nil),
		SecurityDeposit: pgconv.DecimalToNumeric(p.Deposit),
		QuantityOnHand:  pgconv.IntToInt32(p.OnHand),
		IsRentable:      !p.NotRentable,
		IsPublished:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return id
}

// AddOrder stores o as it stands, bypassing the uniqueness checks of Create.
func (s *Store) AddOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putOrder(o)
}

func (s *Store) AddCoupon(c shared.CouponSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.coupons[c.Code] = c
}

func (s *Store) AddParty(p shared.PartySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.parties[p.ID] = p
}

// ExpireIdempotencyKeys moves every stored key's expiry to at.
func (s *Store) ExpireIdempotencyKeys(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, row := range s.st.idempotency {
		row.ExpiresAt = at
		s.st.idempotency[k] = row
	}
}

func (s *Store) Product(id uuid.UUID) *product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.products[id]
	if !ok {
		return nil
	}
	p, err := s.productToDomain(row)
	if err != nil {
		panic(err)
	}
	return p
}

func (s *Store) Order(id uuid.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, err := s.loadOrder(id)
	if err != nil {
		return nil
	}
	return o
}

// OrderCount counts stored orders in any status.
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.orders)
}

func (s *Store) Reservations(orderID uuid.UUID) []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := s.listReservations(func(row sqlc.Reservations) bool { return row.OrderID == orderID })
	if err != nil {
		panic(err)
	}
	return out
}

func (s *Store) InvoiceByOrder(orderID uuid.UUID) *invoice.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, row := range s.st.invoices {
		if row.OrderID == orderID {
			inv, err := s.loadInvoice(id)
			if err != nil {
				panic(err)
			}
			return inv
		}
	}
	return nil
}

func (s *Store) Payment(id uuid.UUID) *payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadPayment(id)
	if err != nil {
		return nil
	}
	return p
}

func (s *Store) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.payments)
}

func (s *Store) HasPickupDocument(orderID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.st.pickups[orderID]
	return ok
}

func (s *Store) ReturnDocument(orderID uuid.UUID) (sqlc.ReturnDocuments, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.returns[orderID]
	return row, ok
}

// Jobs lists outbox rows in insertion order.
func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Job, 0, len(s.st.jobOrder))
	for _, id := range s.st.jobOrder {
		out = append(out, s.st.jobs[id])
	}
	return out
}

func (s *Store) CouponUsage(code string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.coupons[code].UsedCount
}

func (s *Store) ReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.reviews)
}

func (s *Store) IdempotencyRecord(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.idempotency[idempotencyKey{key: key, userID: userID}]
	return row.IdempotencyRecord, ok
}

// ProductRow exposes the stored stock columns of a product.
func (s *Store) ProductRow(id uuid.UUID) sqlc.Products {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.products[id]
}
