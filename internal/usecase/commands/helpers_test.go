//go:build unit

package commands_test

import (
	"context"
	"time"

	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/user"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"
	"rental-core/tests/fake"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// rentalSuite wires the command use cases to an in-memory store. Every test
// starts with one camera (two units, 100/day, 50 deposit) sold by vendor and
// a three day rental window starting tomorrow.
type rentalSuite struct {
	suite.Suite
	ctx   context.Context
	store *fake.Store
	clock *clock.MockClock

	cart     commands.CartCommands
	orders   commands.OrderCommands
	invoices commands.InvoiceCommands

	customer shared.Actor
	vendor   shared.Actor
	admin    shared.Actor
	camera   uuid.UUID
	start    time.Time
	end      time.Time
}

func (s *rentalSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = fake.NewStore()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	s.store.SetClock(s.clock)
	policy := pricing.DefaultPolicy()

	s.cart = commands.NewCartCommands(s.store, policy, s.clock)
	s.invoices = commands.NewInvoiceCommands(s.store, policy, s.clock)
	s.orders = commands.NewOrderCommands(s.store, s.invoices, policy, s.clock)

	s.customer = shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	s.vendor = shared.Actor{ID: uuid.New(), Role: user.RoleVendor}
	s.admin = shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	s.addParty(s.customer, "Asha Rao")
	s.addParty(s.vendor, "Lens Hire")

	s.camera = s.store.AddProduct(fake.ProductSeed{
		VendorID:   s.vendor.ID,
		Name:       "Mirrorless Camera",
		DailyPrice: dec("100"),
		Deposit:    decimal.RequireFromString("50"),
		OnHand:     2,
	})
	s.start = s.clock.Now().Add(24 * time.Hour)
	s.end = s.start.Add(72 * time.Hour)
}

func (s *rentalSuite) addParty(a shared.Actor, name string) {
	s.store.AddParty(shared.PartySnapshot{
		ID:       a.ID,
		Email:    a.ID.String()[:8] + "@example.com",
		Name:     name,
		Address:  "12 MG Road, Bengaluru",
		Role:     a.Role.String(),
		IsActive: true,
	})
}

func (s *rentalSuite) newCustomer(name string) shared.Actor {
	a := shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	s.addParty(a, name)
	return a
}

// cartFor adds qty cameras to the actor's cart and returns the cart id.
func (s *rentalSuite) cartFor(actor shared.Actor, qty int) uuid.UUID {
	res, err := s.cart.AddItem(s.ctx, actor, commands.AddCartItemInput{
		ProductID: s.camera,
		Quantity:  qty,
		StartAt:   s.start,
		EndAt:     s.end,
	})
	s.Require().NoError(err)
	return res.OrderID
}

func (s *rentalSuite) confirm(actor shared.Actor, orderID uuid.UUID) (*commands.OrderResult, error) {
	return s.orders.Confirm(s.ctx, actor, orderID, commands.ConfirmOrderInput{
		BillingAddress: "12 MG Road, Bengaluru",
	})
}

// confirmedOrder runs a two unit rental through checkout and returns the
// order id.
func (s *rentalSuite) confirmedOrder() uuid.UUID {
	id := s.cartFor(s.customer, 2)
	_, err := s.confirm(s.customer, id)
	s.Require().NoError(err)
	return id
}

func (s *rentalSuite) reserved() int {
	return int(s.store.ProductRow(s.camera).QuantityReserved)
}

func (s *rentalSuite) onHand() int {
	return int(s.store.ProductRow(s.camera).QuantityOnHand)
}

func (s *rentalSuite) topics() []string {
	var out []string
	for _, j := range s.store.Jobs() {
		out = append(out, j.Topic)
	}
	return out
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
