//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-core/internal/domain/product"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/queries"
	queriesmock "rental-core/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	ctrl  *gomock.Controller
	repo  *queriesmock.MockAvailabilityReadStore
	clock *clock.MockClock
	q     queries.AvailabilityQueries

	camera *product.Product
	start  time.Time
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockAvailabilityReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	s.q = queries.NewAvailabilityQueries(s.repo, s.clock)

	daily := decimal.NewFromInt(100)
	p, err := product.NewProduct(uuid.New(), "Mirrorless Camera", "CAM-01",
		product.Prices{Daily: &daily}, decimal.NewFromInt(50), 3)
	s.Require().NoError(err)
	s.camera = p
	s.start = s.clock.Now().Add(24 * time.Hour)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) hold(qty int, from, to time.Time) *reservation.Reservation {
	period, err := reservation.NewPeriod(from, to)
	s.Require().NoError(err)
	r, err := reservation.NewReservation(uuid.New(), uuid.New(), s.camera.ID(), nil, qty, period, s.clock.Now())
	s.Require().NoError(err)
	return r
}

func (s *AvailabilityQueriesTestSuite) TestCheck() {
	end := s.start.Add(72 * time.Hour)

	s.Run("free units net of overlapping holds", func() {
		s.repo.EXPECT().FindProduct(gomock.Any(), s.camera.ID()).Return(s.camera, nil)
		s.repo.EXPECT().ListHolds(gomock.Any(), s.camera.ID(), (*uuid.UUID)(nil), gomock.Any()).
			Return([]*reservation.Reservation{s.hold(2, s.start, end)}, nil)

		v, err := s.q.Check(s.ctx, s.camera.ID(), nil, s.start, end, 1)
		s.Require().NoError(err)
		s.True(v.IsAvailable)
		s.Equal(3, v.StockOnHand)
		s.Equal(2, v.ReservedQuantity)
		s.Equal(1, v.AvailableQuantity)
		s.Empty(v.Conflicts)
	})

	s.Run("shortfall is reported as a conflict", func() {
		s.repo.EXPECT().FindProduct(gomock.Any(), s.camera.ID()).Return(s.camera, nil)
		s.repo.EXPECT().ListHolds(gomock.Any(), s.camera.ID(), (*uuid.UUID)(nil), gomock.Any()).
			Return([]*reservation.Reservation{s.hold(2, s.start, end)}, nil)

		v, err := s.q.Check(s.ctx, s.camera.ID(), nil, s.start, end, 2)
		s.Require().NoError(err)
		s.False(v.IsAvailable)
		s.Equal([]string{"Only 1 available"}, v.Conflicts)
	})

	s.Run("unknown product", func() {
		id := uuid.New()
		s.repo.EXPECT().FindProduct(gomock.Any(), id).Return(nil, notFound())

		_, err := s.q.Check(s.ctx, id, nil, s.start, end, 1)
		s.ErrorIs(err, product.ErrProductNotFound)
	})

	s.Run("unknown variant", func() {
		variant := uuid.New()
		s.repo.EXPECT().FindProduct(gomock.Any(), s.camera.ID()).Return(s.camera, nil)

		_, err := s.q.Check(s.ctx, s.camera.ID(), &variant, s.start, end, 1)
		s.ErrorIs(err, product.ErrVariantNotFound)
	})

	s.Run("invalid input never reaches the store", func() {
		_, err := s.q.Check(s.ctx, s.camera.ID(), nil, s.start, end, 0)
		s.ErrorIs(err, queries.ErrInvalidQuantity)

		_, err = s.q.Check(s.ctx, s.camera.ID(), nil, end, s.start, 1)
		s.ErrorIs(err, reservation.ErrInvalidPeriod)
	})
}

func (s *AvailabilityQueriesTestSuite) TestCalendar() {
	s.Run("defaults to the next thirty days", func() {
		now := s.clock.Now()
		s.repo.EXPECT().FindProduct(gomock.Any(), s.camera.ID()).Return(s.camera, nil)
		s.repo.EXPECT().Calendar(gomock.Any(), s.camera.ID(), now, now.Add(30*24*time.Hour)).
			Return([]*queries.CalendarEntry{{ReservationID: uuid.New(), Quantity: 1}}, nil)

		got, err := s.q.Calendar(s.ctx, s.camera.ID(), nil, nil)
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("explicit range", func() {
		to := s.start.Add(7 * 24 * time.Hour)
		s.repo.EXPECT().FindProduct(gomock.Any(), s.camera.ID()).Return(s.camera, nil)
		s.repo.EXPECT().Calendar(gomock.Any(), s.camera.ID(), s.start, to).Return(nil, nil)

		_, err := s.q.Calendar(s.ctx, s.camera.ID(), &s.start, &to)
		s.NoError(err)
	})

	s.Run("range checks", func() {
		before := s.start.Add(-time.Hour)
		_, err := s.q.Calendar(s.ctx, s.camera.ID(), &s.start, &before)
		s.ErrorIs(err, queries.ErrInvalidDateRange)

		far := s.start.Add(400 * 24 * time.Hour)
		_, err = s.q.Calendar(s.ctx, s.camera.ID(), &s.start, &far)
		s.ErrorIs(err, queries.ErrCalendarTooWide)
	})

	s.Run("unknown product", func() {
		id := uuid.New()
		s.repo.EXPECT().FindProduct(gomock.Any(), id).Return(nil, notFound())

		_, err := s.q.Calendar(s.ctx, id, nil, nil)
		s.ErrorIs(err, product.ErrProductNotFound)
	})
}
