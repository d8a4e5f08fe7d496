package shared

import (
	"time"

	"rental-core/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor is the authenticated caller, taken from the bearer token.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsCustomer() bool { return a.Role == user.RoleCustomer }
func (a Actor) IsVendor() bool   { return a.Role == user.RoleVendor }
func (a Actor) IsAdmin() bool    { return a.Role == user.RoleAdmin }

// Owns reports whether the actor may see a document between customerID and
// vendorID. Admins see everything.
func (a Actor) Owns(customerID, vendorID uuid.UUID) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleVendor:
		return a.ID == vendorID
	case user.RoleCustomer:
		return a.ID == customerID
	default:
		return false
	}
}

type CouponSnapshot struct {
	ID            uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MaxDiscount   *decimal.Decimal
	MinOrderValue *decimal.Decimal
	ValidFrom     *time.Time
	ValidTo       *time.Time
	UsageLimit    *int
	UsedCount     int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

// PartySnapshot is the billing identity copied onto invoices.
type PartySnapshot struct {
	ID          uuid.UUID
	Email       string
	Name        string
	CompanyName string
	GSTIN       string
	Address     string
	Role        string
	IsActive    bool
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}

const (
	NotificationQueued = "queued"
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)
