//go:build unit

// Package fake is an in-memory shared.UnitOfWork for use case tests. Rows are
// kept in their sqlc shape and converted with the repository converters, so a
// failed Within rolls back like a Postgres transaction. Transactions run one
// at a time, which stands in for row locks.
package fake

import (
	"context"
	"maps"
	"sync"

	"rental-core/internal/infra"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type idempotencyKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type idempotencyRow struct {
	shared.IdempotencyRecord
	Endpoint string
}

// Job is an outbox row as the dispatcher sees it.
type Job struct {
	shared.NotificationJob
	Status    string
	LastError *string
}

type state struct {
	products     map[uuid.UUID]sqlc.Products
	variants     map[uuid.UUID][]sqlc.ProductVariants
	orders       map[uuid.UUID]sqlc.Orders
	orderItems   map[uuid.UUID][]sqlc.OrderItems
	reservations map[uuid.UUID]sqlc.Reservations
	pickups      map[uuid.UUID]sqlc.PickupDocuments
	returns      map[uuid.UUID]sqlc.ReturnDocuments
	invoices     map[uuid.UUID]sqlc.Invoices
	invoiceItems map[uuid.UUID][]sqlc.InvoiceItems
	payments     map[uuid.UUID]sqlc.Payments
	coupons      map[string]shared.CouponSnapshot
	parties      map[uuid.UUID]shared.PartySnapshot
	reviews      map[uuid.UUID]sqlc.CreateReviewParams
	idempotency  map[idempotencyKey]idempotencyRow
	jobs         map[uuid.UUID]Job
	jobOrder     []uuid.UUID

	orderSeq   int64
	invoiceSeq int64
	paymentSeq int64
}

func newState() state {
	return state{
		products:     map[uuid.UUID]sqlc.Products{},
		variants:     map[uuid.UUID][]sqlc.ProductVariants{},
		orders:       map[uuid.UUID]sqlc.Orders{},
		orderItems:   map[uuid.UUID][]sqlc.OrderItems{},
		reservations: map[uuid.UUID]sqlc.Reservations{},
		pickups:      map[uuid.UUID]sqlc.PickupDocuments{},
		returns:      map[uuid.UUID]sqlc.ReturnDocuments{},
		invoices:     map[uuid.UUID]sqlc.Invoices{},
		invoiceItems: map[uuid.UUID][]sqlc.InvoiceItems{},
		payments:     map[uuid.UUID]sqlc.Payments{},
		coupons:      map[string]shared.CouponSnapshot{},
		parties:      map[uuid.UUID]shared.PartySnapshot{},
		reviews:      map[uuid.UUID]sqlc.CreateReviewParams{},
		idempotency:  map[idempotencyKey]idempotencyRow{},
		jobs:         map[uuid.UUID]Job{},
	}
}

// clone copies every table. Slices held in the maps are replaced wholesale on
// write, never mutated, so sharing them is safe.
func (s state) clone() state {
	c := s
	c.products = maps.Clone(s.products)
	c.variants = maps.Clone(s.variants)
	c.orders = maps.Clone(s.orders)
	c.orderItems = maps.Clone(s.orderItems)
	c.reservations = maps.Clone(s.reservations)
	c.pickups = maps.Clone(s.pickups)
	c.returns = maps.Clone(s.returns)
	c.invoices = maps.Clone(s.invoices)
	c.invoiceItems = maps.Clone(s.invoiceItems)
	c.payments = maps.Clone(s.payments)
	c.coupons = maps.Clone(s.coupons)
	c.parties = maps.Clone(s.parties)
	c.reviews = maps.Clone(s.reviews)
	c.idempotency = maps.Clone(s.idempotency)
	c.jobs = maps.Clone(s.jobs)
	c.jobOrder = append([]uuid.UUID(nil), s.jobOrder...)
	return c
}

// Store implements shared.UnitOfWork.
type Store struct {
	mu       sync.Mutex
	st       state
	failures map[string]error
	commits  int
	clock    clock.Clock
}

var _ shared.UnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{st: newState(), failures: map[string]error{}, clock: clock.NewRealClock()}
}

// SetClock replaces the database's notion of now() used by expiry queries.
func (s *Store) SetClock(c clock.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = c
}

// FailOn makes the repository method op (for example "Orders.Create") return
// err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Commits counts the Within calls that committed.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.st.clone()
	if err := fn(ctx, &txView{s: s}); err != nil {
		s.st = saved
		return err
	}
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return lockedReads{s: s}
}

func (s *Store) fail(op string) error {
	return s.failures[op]
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

// txView hands out repositories bound to the store's current state. The
// store lock is already held by Within.
type txView struct {
	s *Store
}

func (t *txView) Products() shared.ProductRepository           { return productRepo{t.s} }
func (t *txView) Orders() shared.OrderRepository               { return orderRepo{t.s} }
func (t *txView) Reservations() shared.ReservationRepository   { return reservationRepo{t.s} }
func (t *txView) Documents() shared.DocumentRepository         { return documentRepo{t.s} }
func (t *txView) Invoices() shared.InvoiceRepository           { return invoiceRepo{t.s} }
func (t *txView) Payments() shared.PaymentRepository           { return paymentRepo{t.s} }
func (t *txView) Coupons() shared.CouponRepository             { return couponRepo{t.s} }
func (t *txView) Reviews() shared.ReviewRepository             { return reviewRepo{t.s} }
func (t *txView) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t.s} }
func (t *txView) Notifications() shared.NotificationRepository { return notificationRepo{t.s} }
func (t *txView) Reads() shared.CommandReads                   { return reads{t.s} }
func (t *txView) DB() sqlc.DBTX                                { return nil }

type lockedReads struct {
	s *Store
}

func (r lockedReads) CouponByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(r).CouponByCode(ctx, code)
}

func (r lockedReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(r).IdempotencyByKey(ctx, key, userID)
}

func (r lockedReads) PartyByUserID(ctx context.Context, id uuid.UUID) (*shared.PartySnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(r).PartyByUserID(ctx, id)
}

type reads struct {
	s *Store
}

func (r reads) CouponByCode(_ context.Context, code string) (*shared.CouponSnapshot, error) {
	c, ok := r.s.st.coupons[code]
	if !ok {
		return nil, notFound("coupon not found")
	}
	return &c, nil
}

func (r reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, ok := r.s.st.idempotency[idempotencyKey{key: key, userID: userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	rec := row.IdempotencyRecord
	return &rec, nil
}

func (r reads) PartyByUserID(_ context.Context, id uuid.UUID) (*shared.PartySnapshot, error) {
	p, ok := r.s.st.parties[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return &p, nil
}
