//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/domain/user"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/queries"
	"rental-core/internal/usecase/shared"
	queriesmock "rental-core/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	ctrl  *gomock.Controller
	repo  *queriesmock.MockOrderReadStore
	clock *clock.MockClock
	q     queries.OrderQueries

	customer shared.Actor
	vendor   shared.Actor
	admin    shared.Actor
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockOrderReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	s.q = queries.NewOrderQueries(s.repo, s.clock)

	s.customer = shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	s.vendor = shared.Actor{ID: uuid.New(), Role: user.RoleVendor}
	s.admin = shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func (s *OrderQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderQueriesSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func (s *OrderQueriesTestSuite) view(status order.Status, end time.Time) *queries.OrderView {
	notes := "check lens cap"
	return &queries.OrderView{
		ID:            uuid.New(),
		CustomerID:    s.customer.ID,
		VendorID:      s.vendor.ID,
		Status:        status.String(),
		RentalEnd:     &end,
		TotalAmount:   decimal.NewFromInt(808),
		InternalNotes: &notes,
		CreatedAt:     s.clock.Now(),
		Items:         []*queries.OrderItemView{{ID: uuid.New()}, {ID: uuid.New()}},
	}
}

func notFound() error {
	return infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound)
}

func (s *OrderQueriesTestSuite) TestGetCart() {
	s.Run("no open cart is an empty cart", func() {
		s.repo.EXPECT().FindOpenCart(gomock.Any(), s.customer.ID).Return(nil, notFound())

		cart, err := s.q.GetCart(s.ctx, s.customer)
		s.Require().NoError(err)
		s.Nil(cart.Order)
		s.Zero(cart.ItemCount)
		s.True(cart.TotalAmount.IsZero())
	})

	s.Run("open cart carries its totals", func() {
		ov := s.view(order.StatusQuotation, s.clock.Now().Add(72*time.Hour))
		s.repo.EXPECT().FindOpenCart(gomock.Any(), s.customer.ID).Return(ov, nil)

		cart, err := s.q.GetCart(s.ctx, s.customer)
		s.Require().NoError(err)
		s.Equal(2, cart.ItemCount)
		s.True(decimal.NewFromInt(808).Equal(cart.TotalAmount))
		s.Nil(cart.Order.InternalNotes)
	})

	s.Run("store failure is passed through", func() {
		boom := errors.New("connection reset")
		s.repo.EXPECT().FindOpenCart(gomock.Any(), s.customer.ID).Return(nil, boom)

		_, err := s.q.GetCart(s.ctx, s.customer)
		s.ErrorIs(err, boom)
	})
}

func (s *OrderQueriesTestSuite) TestGetByID() {
	ov := s.view(order.StatusPickedUp, s.clock.Now().Add(-2*time.Hour))

	s.Run("vendor sees internal notes and the late flag", func() {
		s.repo.EXPECT().FindByID(gomock.Any(), ov.ID).Return(ov, nil)

		got, err := s.q.GetByID(s.ctx, s.vendor, ov.ID)
		s.Require().NoError(err)
		s.True(got.IsLate)
		s.NotNil(got.InternalNotes)
	})

	s.Run("customer does not see internal notes", func() {
		s.repo.EXPECT().FindByID(gomock.Any(), ov.ID).Return(ov, nil)

		got, err := s.q.GetByID(s.ctx, s.customer, ov.ID)
		s.Require().NoError(err)
		s.Nil(got.InternalNotes)
	})

	s.Run("stranger is denied", func() {
		fresh := s.view(order.StatusConfirmed, s.clock.Now().Add(time.Hour))
		s.repo.EXPECT().FindByID(gomock.Any(), fresh.ID).Return(fresh, nil)

		stranger := shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
		_, err := s.q.GetByID(s.ctx, stranger, fresh.ID)
		s.ErrorIs(err, queries.ErrOrderAccess)
	})

	s.Run("admin sees any order", func() {
		fresh := s.view(order.StatusConfirmed, s.clock.Now().Add(time.Hour))
		s.repo.EXPECT().FindByID(gomock.Any(), fresh.ID).Return(fresh, nil)

		got, err := s.q.GetByID(s.ctx, s.admin, fresh.ID)
		s.Require().NoError(err)
		s.False(got.IsLate)
	})

	s.Run("missing order", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		_, err := s.q.GetByID(s.ctx, s.vendor, id)
		s.ErrorIs(err, queries.ErrOrderNotFound)
	})
}

func (s *OrderQueriesTestSuite) TestList() {
	s.Run("customer is scoped to own orders and paged", func() {
		rows := []*queries.OrderView{
			s.view(order.StatusQuotation, s.clock.Now()),
			s.view(order.StatusQuotation, s.clock.Now()),
			s.view(order.StatusQuotation, s.clock.Now()),
		}
		s.repo.EXPECT().
			List(gomock.Any(), gomock.Any(), (*queries.Keyset)(nil), int32(3)).
			DoAndReturn(func(_ context.Context, f queries.OrderFilters, _ *queries.Keyset, _ int32) ([]*queries.OrderView, error) {
				s.Require().NotNil(f.CustomerID)
				s.Equal(s.customer.ID, *f.CustomerID)
				s.Nil(f.VendorID)
				return rows, nil
			})

		got, next, err := s.q.List(s.ctx, s.customer, queries.OrderFilters{}, nil, 2)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Require().NotNil(next)

		_, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(rows[1].ID, id)
	})

	s.Run("vendor filter is forced to self", func() {
		other := uuid.New()
		s.repo.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any(), int32(21)).
			DoAndReturn(func(_ context.Context, f queries.OrderFilters, _ *queries.Keyset, _ int32) ([]*queries.OrderView, error) {
				s.Equal(s.vendor.ID, *f.VendorID)
				return nil, nil
			})

		got, next, err := s.q.List(s.ctx, s.vendor, queries.OrderFilters{VendorID: &other}, nil, 0)
		s.Require().NoError(err)
		s.Empty(got)
		s.Nil(next)
	})

	s.Run("bad cursor never reaches the store", func() {
		_, _, err := s.q.List(s.ctx, s.admin, queries.OrderFilters{}, &queries.Cursor{After: "%%"}, 10)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})
}

func (s *OrderQueriesTestSuite) TestVendorViews() {
	now := s.clock.Now()

	s.Run("customers are denied", func() {
		_, err := s.q.PendingPickups(s.ctx, s.customer)
		s.ErrorIs(err, queries.ErrVendorViewAccess)
		_, err = s.q.UpcomingReturns(s.ctx, s.customer, 1)
		s.ErrorIs(err, queries.ErrVendorViewAccess)
		_, err = s.q.Overdue(s.ctx, s.customer)
		s.ErrorIs(err, queries.ErrVendorViewAccess)
	})

	s.Run("pending pickups for the vendor", func() {
		s.repo.EXPECT().
			ListByStatus(gomock.Any(), &s.vendor.ID,
				[]order.Status{order.StatusSaleOrder, order.StatusConfirmed},
				(*time.Time)(nil), (*time.Time)(nil)).
			Return([]*queries.OrderView{s.view(order.StatusConfirmed, now.Add(time.Hour))}, nil)

		got, err := s.q.PendingPickups(s.ctx, s.vendor)
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("admins see every vendor", func() {
		s.repo.EXPECT().
			ListByStatus(gomock.Any(), (*uuid.UUID)(nil), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := s.q.PendingPickups(s.ctx, s.admin)
		s.NoError(err)
	})

	s.Run("upcoming returns default to one day", func() {
		until := now.AddDate(0, 0, 1)
		s.repo.EXPECT().
			ListByStatus(gomock.Any(), &s.vendor.ID,
				[]order.Status{order.StatusPickedUp, order.StatusActive}, &until, &now).
			Return(nil, nil)

		_, err := s.q.UpcomingReturns(s.ctx, s.vendor, 0)
		s.NoError(err)
	})

	s.Run("upcoming returns window is bounded", func() {
		_, err := s.q.UpcomingReturns(s.ctx, s.vendor, queries.MaxUpcomingReturnDays+1)
		s.ErrorIs(err, queries.ErrInvalidDays)
		_, err = s.q.UpcomingReturns(s.ctx, s.vendor, -1)
		s.ErrorIs(err, queries.ErrInvalidDays)
	})

	s.Run("overdue rentals are flagged late", func() {
		s.repo.EXPECT().
			ListByStatus(gomock.Any(), &s.vendor.ID,
				[]order.Status{order.StatusPickedUp, order.StatusActive, order.StatusLate}, &now, (*time.Time)(nil)).
			Return([]*queries.OrderView{
				s.view(order.StatusPickedUp, now.Add(-time.Hour)),
				s.view(order.StatusLate, now.Add(-48*time.Hour)),
			}, nil)

		got, err := s.q.Overdue(s.ctx, s.vendor)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		for _, ov := range got {
			s.True(ov.IsLate, ov.Status)
		}
	})
}
