//go:build unit

package commands_test

import (
	"testing"

	domreview "rental-core/internal/domain/review"
	"rental-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReviewCommandsTestSuite struct {
	rentalSuite
	reviews commands.ReviewCommands
	orderID uuid.UUID
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.rentalSuite.SetupTest()
	s.reviews = commands.NewReviewCommands(s.store, s.clock)
	s.orderID = s.confirmedOrder()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) request(rating int) commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		OrderID:   s.orderID,
		ProductID: s.camera,
		Rating:    rating,
		Comment:   "Sharp lens, battery lasted all day",
	}
}

func (s *ReviewCommandsTestSuite) returnOrder() {
	_, err := s.orders.MarkPickedUp(s.ctx, s.vendor, s.orderID, "")
	s.Require().NoError(err)
	_, err = s.orders.MarkReturned(s.ctx, s.vendor, s.orderID, commands.ReturnOrderInput{})
	s.Require().NoError(err)
}

func (s *ReviewCommandsTestSuite) TestCreateReview() {
	s.Run("error: rental still open", func() {
		_, err := s.reviews.CreateReview(s.ctx, s.customer, s.request(5))
		s.ErrorIs(err, domreview.ErrOrderNotEligible)
	})

	s.returnOrder()

	s.Run("success", func() {
		res, err := s.reviews.CreateReview(s.ctx, s.customer, s.request(4))
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, res.ReviewID)
		s.Equal(1, s.store.ReviewCount())
	})

	s.Run("error: second review of the same rental", func() {
		_, err := s.reviews.CreateReview(s.ctx, s.customer, s.request(2))
		s.ErrorIs(err, domreview.ErrReviewAlreadyExists)
		s.Equal(1, s.store.ReviewCount())
	})
}

func (s *ReviewCommandsTestSuite) TestCreateReviewRejections() {
	s.returnOrder()

	notRented := s.request(5)
	notRented.ProductID = uuid.New()
	unknownOrder := s.request(5)
	unknownOrder.OrderID = uuid.New()

	cases := []struct {
		name string
		run  func() error
		err  error
	}{
		{
			name: "vendors cannot review",
			run: func() error {
				_, err := s.reviews.CreateReview(s.ctx, s.vendor, s.request(5))
				return err
			},
			err: commands.ErrCustomerOnly,
		},
		{
			name: "rating out of range",
			run: func() error {
				_, err := s.reviews.CreateReview(s.ctx, s.customer, s.request(6))
				return err
			},
			err: domreview.ErrInvalidRating,
		},
		{
			name: "someone else's order",
			run: func() error {
				_, err := s.reviews.CreateReview(s.ctx, s.newCustomer("Other"), s.request(5))
				return err
			},
			err: domreview.ErrNotOrderOwner,
		},
		{
			name: "product not in the order",
			run: func() error {
				_, err := s.reviews.CreateReview(s.ctx, s.customer, notRented)
				return err
			},
			err: domreview.ErrProductNotInOrder,
		},
		{
			name: "unknown order",
			run: func() error {
				_, err := s.reviews.CreateReview(s.ctx, s.customer, unknownOrder)
				return err
			},
			err: commands.ErrOrderNotFound,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.ErrorIs(tc.run(), tc.err)
		})
	}
	s.Zero(s.store.ReviewCount())
}
