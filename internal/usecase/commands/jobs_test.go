//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"
	commandsmock "rental-core/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JobCommandsTestSuite struct {
	rentalSuite
	ctrl      *gomock.Controller
	publisher *commandsmock.MockNotificationPublisher
	jobs      commands.JobCommands
}

func (s *JobCommandsTestSuite) SetupTest() {
	s.rentalSuite.SetupTest()
	s.ctrl = gomock.NewController(s.T())
	s.publisher = commandsmock.NewMockNotificationPublisher(s.ctrl)
	s.jobs = commands.NewJobCommands(s.store, s.publisher, s.clock)
}

func (s *JobCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestJobCommandsSuite(t *testing.T) {
	suite.Run(t, new(JobCommandsTestSuite))
}

func (s *JobCommandsTestSuite) rentedOut() uuid.UUID {
	id := s.confirmedOrder()
	_, err := s.orders.MarkPickedUp(s.ctx, s.vendor, id, "")
	s.Require().NoError(err)
	return id
}

func (s *JobCommandsTestSuite) TestMarkOverdue() {
	id := s.rentedOut()

	s.Run("not yet due", func() {
		n, err := s.jobs.MarkOverdue(s.ctx)
		s.Require().NoError(err)
		s.Zero(n)
		s.Equal(order.StatusPickedUp, s.store.Order(id).Status())
	})

	s.Run("past the rental end", func() {
		s.clock.Set(s.end.Add(time.Minute))
		n, err := s.jobs.MarkOverdue(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal(order.StatusLate, s.store.Order(id).Status())
	})

	s.Run("late orders are not flagged twice", func() {
		n, err := s.jobs.MarkOverdue(s.ctx)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("late orders can still be returned", func() {
		_, err := s.orders.MarkReturned(s.ctx, s.vendor, id, commands.ReturnOrderInput{})
		s.NoError(err)
	})
}

func (s *JobCommandsTestSuite) TestQueueReturnReminders() {
	s.rentedOut()
	s.confirmedOrderFor(s.newCustomer("Not Picked Up"))

	n, err := s.jobs.QueueReturnReminders(s.ctx, 24*time.Hour)
	s.Require().NoError(err)
	s.Zero(n)

	s.clock.Set(s.end.Add(-12 * time.Hour))
	n, err = s.jobs.QueueReturnReminders(s.ctx, 24*time.Hour)
	s.Require().NoError(err)
	s.Equal(1, n)

	topics := s.topics()
	s.Equal(commands.TopicReturnReminder, topics[len(topics)-1])
}

// confirmedOrderFor confirms a one unit rental in a later window so it does
// not compete with the default order.
func (s *JobCommandsTestSuite) confirmedOrderFor(a shared.Actor) uuid.UUID {
	res, err := s.cart.AddItem(s.ctx, a, commands.AddCartItemInput{
		ProductID: s.camera, Quantity: 1, StartAt: s.end, EndAt: s.end.Add(24 * time.Hour),
	})
	s.Require().NoError(err)
	_, err = s.confirm(a, res.OrderID)
	s.Require().NoError(err)
	return res.OrderID
}

func (s *JobCommandsTestSuite) TestDispatchNotifications() {
	s.confirmedOrder()

	s.Run("jobs not yet due stay queued", func() {
		s.clock.Add(-time.Minute)
		n, err := s.jobs.DispatchNotifications(s.ctx, 10)
		s.Require().NoError(err)
		s.Zero(n)
		s.clock.Add(time.Minute)
	})

	s.Run("published jobs are marked sent", func() {
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job shared.NotificationJob) error {
				s.Equal(commands.TopicOrderConfirmed, job.Topic)
				s.Contains(string(job.Payload), `"status":"sale_order"`)
				return nil
			})

		n, err := s.jobs.DispatchNotifications(s.ctx, 10)
		s.Require().NoError(err)
		s.Equal(1, n)

		job := s.store.Jobs()[0]
		s.Equal(shared.NotificationSent, job.Status)
		s.Equal(1, job.Attempts)
		s.Nil(job.LastError)
	})

	s.Run("nothing left to send", func() {
		n, err := s.jobs.DispatchNotifications(s.ctx, 10)
		s.Require().NoError(err)
		s.Zero(n)
	})
}

func (s *JobCommandsTestSuite) TestDispatchNotificationsRetries() {
	s.confirmedOrder()
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable")).
		Times(5)

	for attempt := 1; attempt <= 5; attempt++ {
		n, err := s.jobs.DispatchNotifications(s.ctx, 10)
		s.Require().NoError(err)
		s.Zero(n)

		job := s.store.Jobs()[0]
		s.Equal(attempt, job.Attempts)
		s.Require().NotNil(job.LastError)
		s.Equal("broker unreachable", *job.LastError)
		if attempt < 5 {
			s.Equal(shared.NotificationQueued, job.Status)
		}
	}
	s.Equal(shared.NotificationFailed, s.store.Jobs()[0].Status)

	n, err := s.jobs.DispatchNotifications(s.ctx, 10)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *JobCommandsTestSuite) TestPurgeIdempotencyKeys() {
	id := s.cartFor(s.customer, 1)
	key := uuid.New()
	_, err := s.orders.Confirm(s.ctx, s.customer, id, commands.ConfirmOrderInput{IdempotencyKey: &key})
	s.Require().NoError(err)

	n, err := s.jobs.PurgeIdempotencyKeys(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)

	s.store.ExpireIdempotencyKeys(s.clock.Now().Add(-time.Hour))
	n, err = s.jobs.PurgeIdempotencyKeys(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(1, n)
	_, ok := s.store.IdempotencyRecord(key, s.customer.ID)
	s.False(ok)
}
