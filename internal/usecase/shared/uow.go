package shared

import (
	"context"
	"time"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/product"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/domain/review"
	"rental-core/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Orders() OrderRepository
	Reservations() ReservationRepository
	Documents() DocumentRepository
	Invoices() InvoiceRepository
	Payments() PaymentRepository
	Coupons() CouponRepository
	Reviews() ReviewRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	PartyByUserID(ctx context.Context, id uuid.UUID) (*PartySnapshot, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*product.Product, error)
	// LockForUpdate locks the product rows in id order and returns them with
	// their variants. Missing ids are absent from the map.
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error)
	SaveStock(ctx context.Context, tx sqlc.DBTX, p *product.Product) error
}

type OrderRepository interface {
	NextNumber(ctx context.Context, tx sqlc.DBTX) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	FindOpenCart(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) (*order.Order, error)
	ListOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) ([]*order.Order, error)
	ListDueForReturn(ctx context.Context, tx sqlc.DBTX, from, to time.Time) ([]*order.Order, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *reservation.Reservation) error
	Save(ctx context.Context, tx sqlc.DBTX, r *reservation.Reservation) error
	ListByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]*reservation.Reservation, error)
	// ListHolds returns active reservations on the product/variant overlapping period.
	ListHolds(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, variantID *uuid.UUID, period reservation.Period) ([]*reservation.Reservation, error)
}

type DocumentRepository interface {
	CreatePickup(ctx context.Context, tx sqlc.DBTX, d *order.PickupDocument) error
	FindPickupByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*order.PickupDocument, error)
	SavePickup(ctx context.Context, tx sqlc.DBTX, d *order.PickupDocument) error
	CreateReturn(ctx context.Context, tx sqlc.DBTX, d *order.ReturnDocument) error
}

type InvoiceRepository interface {
	NextNumber(ctx context.Context, tx sqlc.DBTX) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error
	// Save rewrites the header and replaces the lines.
	Save(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*invoice.Invoice, error)
	FindByOrderIDForUpdate(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*invoice.Invoice, error)
}

type PaymentRepository interface {
	NextNumber(ctx context.Context, tx sqlc.DBTX) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	Save(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*payment.Payment, error)
	FindByGatewayOrderIDForUpdate(ctx context.Context, tx sqlc.DBTX, gatewayOrderID string) (*payment.Payment, error)
}

type CouponRepository interface {
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, resultID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}
