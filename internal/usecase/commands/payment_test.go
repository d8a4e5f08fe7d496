//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/order"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/pricing"
	"rental-core/internal/domain/reservation"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/commands"
	commandsmock "rental-core/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	rentalSuite
	ctrl     *gomock.Controller
	gateway  *commandsmock.MockPaymentGateway
	payments commands.PaymentCommands

	orderID   uuid.UUID
	invoiceID uuid.UUID
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.rentalSuite.SetupTest()
	s.ctrl = gomock.NewController(s.T())
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.payments = commands.NewPaymentCommands(s.store, s.gateway, pricing.DefaultPolicy(), s.clock)

	s.orderID = s.confirmedOrder()
	inv := s.store.InvoiceByOrder(s.orderID)
	s.Require().NotNil(inv)
	s.invoiceID = inv.ID()
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) cash(amount string, key *uuid.UUID) (*commands.PaymentResult, error) {
	return s.payments.RecordCash(s.ctx, s.vendor, commands.RecordCashInput{
		InvoiceID:      s.invoiceID,
		Amount:         decimal.RequireFromString(amount),
		IdempotencyKey: key,
	})
}

func (s *PaymentCommandsTestSuite) TestRecordCashSettlesInvoice() {
	res, err := s.cash("808", nil)
	s.Require().NoError(err)
	s.Equal(payment.StatusCompleted, res.Status)
	s.Equal(invoice.StatusPaid, res.InvoiceStatus)

	inv := s.store.InvoiceByOrder(s.orderID)
	s.True(inv.AmountDue().IsZero())
	s.NotNil(inv.PaidAt())

	o := s.store.Order(s.orderID)
	s.Equal(order.StatusConfirmed, o.Status())
	s.True(o.DownpaymentPaid())

	s.Equal(0, s.onHand(), "paid units leave on-hand stock")
	s.Equal(0, s.reserved())
	holds := s.store.Reservations(s.orderID)
	s.Require().Len(holds, 1)
	s.True(holds[0].Consumed())
	s.Equal(reservation.StatusActive, holds[0].Status())

	s.Equal([]string{commands.TopicOrderConfirmed, commands.TopicPaymentReceived}, s.topics())
}

func (s *PaymentCommandsTestSuite) TestRecordCashInInstalments() {
	res, err := s.cash("300", nil)
	s.Require().NoError(err)
	s.Equal(invoice.StatusPartiallyPaid, res.InvoiceStatus)
	s.Equal(order.StatusSaleOrder, s.store.Order(s.orderID).Status())
	s.Equal(2, s.onHand())

	res, err = s.cash("508", nil)
	s.Require().NoError(err)
	s.Equal(invoice.StatusPaid, res.InvoiceStatus)
	s.Equal(order.StatusConfirmed, s.store.Order(s.orderID).Status())
	s.Equal(0, s.onHand())

	s.Run("error: nothing left to pay", func() {
		_, err := s.cash("1", nil)
		s.ErrorIs(err, invoice.ErrAlreadyPaid)
		s.Equal(2, s.store.PaymentCount())
	})
}

func (s *PaymentCommandsTestSuite) TestRecordCashReturnRestocks() {
	s.Equal(2, s.onHand(), "confirm only holds the units")
	s.Equal(2, s.reserved())

	_, err := s.cash("808", nil)
	s.Require().NoError(err)
	s.Equal(0, s.onHand())
	s.Equal(0, s.reserved())

	_, err = s.orders.MarkPickedUp(s.ctx, s.vendor, s.orderID, "")
	s.Require().NoError(err)
	s.Equal(0, s.onHand(), "pickup leaves counters alone")
	s.Equal(0, s.reserved())
	s.clock.Set(s.end)

	_, err = s.orders.MarkReturned(s.ctx, s.vendor, s.orderID, commands.ReturnOrderInput{})
	s.Require().NoError(err)
	s.Equal(2, s.onHand())
	s.Equal(0, s.reserved())
}

func (s *PaymentCommandsTestSuite) TestRecordCashRejections() {
	cases := []struct {
		name string
		run  func() error
		err  error
	}{
		{
			name: "customers cannot book cash",
			run: func() error {
				_, err := s.payments.RecordCash(s.ctx, s.customer, commands.RecordCashInput{
					InvoiceID: s.invoiceID, Amount: decimal.NewFromInt(10),
				})
				return err
			},
			err: commands.ErrVendorOnly,
		},
		{
			name: "online method",
			run: func() error {
				_, err := s.payments.RecordCash(s.ctx, s.vendor, commands.RecordCashInput{
					InvoiceID: s.invoiceID, Amount: decimal.NewFromInt(10), Method: "card",
				})
				return err
			},
			err: commands.ErrNotGatewayPayment,
		},
		{
			name: "zero amount",
			run: func() error {
				_, err := s.cash("0", nil)
				return err
			},
			err: payment.ErrInvalidAmount,
		},
		{
			name: "more than due",
			run: func() error {
				_, err := s.cash("900", nil)
				return err
			},
			err: invoice.ErrOverpayment,
		},
		{
			name: "unknown invoice",
			run: func() error {
				_, err := s.payments.RecordCash(s.ctx, s.vendor, commands.RecordCashInput{
					InvoiceID: uuid.New(), Amount: decimal.NewFromInt(10),
				})
				return err
			},
			err: commands.ErrInvoiceNotFound,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.ErrorIs(tc.run(), tc.err)
			s.Equal(0, s.store.PaymentCount())
		})
	}
}

func (s *PaymentCommandsTestSuite) TestRecordCashIdempotency() {
	key := uuid.New()
	first, err := s.cash("300", &key)
	s.Require().NoError(err)

	again, err := s.cash("300", &key)
	s.Require().NoError(err)
	s.True(again.Replayed)
	s.Equal(first.PaymentID, again.PaymentID)
	s.Equal(1, s.store.PaymentCount())
	s.True(decimal.RequireFromString("300").Equal(s.store.InvoiceByOrder(s.orderID).AmountPaid()))

	_, err = s.cash("400", &key)
	s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
}

func (s *PaymentCommandsTestSuite) expectGatewayOrder(id string) {
	s.gateway.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), "INR", gomock.Any()).
		DoAndReturn(func(_ context.Context, amount decimal.Decimal, currency, receipt string) (*commands.GatewayOrder, error) {
			s.True(decimal.RequireFromString("808").Equal(amount), amount.String())
			return &commands.GatewayOrder{ID: id, Amount: amount, Currency: currency, Receipt: receipt}, nil
		})
	s.gateway.EXPECT().KeyID().Return("rzp_test_key")
}

func (s *PaymentCommandsTestSuite) TestCreateGatewayOrder() {
	s.Run("success: pending payment for the amount due", func() {
		s.expectGatewayOrder("order_Q1")

		out, err := s.payments.CreateGatewayOrder(s.ctx, s.customer, s.invoiceID)
		s.Require().NoError(err)
		s.Equal("order_Q1", out.GatewayOrderID)
		s.Equal("rzp_test_key", out.KeyID)
		s.Equal(s.invoiceID, out.InvoiceID)

		p := s.store.Payment(out.PaymentID)
		s.Require().NotNil(p)
		s.Equal(payment.StatusPending, p.Status())
		s.Require().NotNil(p.GatewayOrderID())
		s.Equal("order_Q1", *p.GatewayOrderID())
	})

	s.Run("error: vendor is not the payer", func() {
		_, err := s.payments.CreateGatewayOrder(s.ctx, s.vendor, s.invoiceID)
		s.ErrorIs(err, commands.ErrInvoiceForbidden)
	})

	s.Run("error: gateway down", func() {
		s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("dial tcp: i/o timeout"))

		_, err := s.payments.CreateGatewayOrder(s.ctx, s.customer, s.invoiceID)
		s.True(errs.HasMark(err, commands.ErrGatewayUnavailable))
		s.Equal(1, s.store.PaymentCount())
	})
}

func (s *PaymentCommandsTestSuite) TestVerify() {
	s.expectGatewayOrder("order_Q2")
	checkout, err := s.payments.CreateGatewayOrder(s.ctx, s.customer, s.invoiceID)
	s.Require().NoError(err)

	in := commands.VerifyPaymentInput{GatewayOrderID: "order_Q2", GatewayPaymentID: "pay_9", Signature: "sig"}
	captured := &commands.GatewayPayment{
		ID:        "pay_9",
		OrderID:   "order_Q2",
		Status:    "captured",
		Method:    "card",
		Amount:    decimal.NewFromInt(808),
		CardLast4: "4242",
	}

	s.Run("error: captured against another order", func() {
		s.gateway.EXPECT().VerifySignature("order_Q2", "pay_9", "sig").Return(true)
		s.gateway.EXPECT().FetchPayment(gomock.Any(), "order_Q2", "pay_9").
			Return(&commands.GatewayPayment{ID: "pay_9", OrderID: "order_ZZ", Amount: decimal.NewFromInt(808)}, nil)

		_, err := s.payments.Verify(s.ctx, s.customer, in)
		s.ErrorIs(err, commands.ErrGatewayMismatch)
		s.Equal(payment.StatusPending, s.store.Payment(checkout.PaymentID).Status())
	})

	s.Run("success: settles the invoice", func() {
		s.gateway.EXPECT().VerifySignature("order_Q2", "pay_9", "sig").Return(true)
		s.gateway.EXPECT().FetchPayment(gomock.Any(), "order_Q2", "pay_9").Return(captured, nil)

		res, err := s.payments.Verify(s.ctx, s.customer, in)
		s.Require().NoError(err)
		s.False(res.Replayed)
		s.Equal(payment.StatusCompleted, res.Status)
		s.Equal(invoice.StatusPaid, res.InvoiceStatus)

		p := s.store.Payment(checkout.PaymentID)
		s.Equal(payment.MethodCard, p.Method())
		s.Equal("4242", p.CardLastFour())
		s.Equal(order.StatusConfirmed, s.store.Order(s.orderID).Status())
	})

	s.Run("success: repeated callback is a replay", func() {
		s.gateway.EXPECT().VerifySignature("order_Q2", "pay_9", "sig").Return(true)
		s.gateway.EXPECT().FetchPayment(gomock.Any(), "order_Q2", "pay_9").Return(captured, nil)

		res, err := s.payments.Verify(s.ctx, s.customer, in)
		s.Require().NoError(err)
		s.True(res.Replayed)
		s.Len(s.topics(), 2)
	})
}

func (s *PaymentCommandsTestSuite) TestVerifyAfterPartialCash() {
	s.expectGatewayOrder("order_Q4")
	checkout, err := s.payments.CreateGatewayOrder(s.ctx, s.customer, s.invoiceID)
	s.Require().NoError(err)

	_, err = s.cash("300", nil)
	s.Require().NoError(err)

	s.gateway.EXPECT().VerifySignature("order_Q4", "pay_4", "sig").Return(true)
	s.gateway.EXPECT().FetchPayment(gomock.Any(), "order_Q4", "pay_4").Return(&commands.GatewayPayment{
		ID:      "pay_4",
		OrderID: "order_Q4",
		Status:  "captured",
		Method:  "upi",
		Amount:  decimal.NewFromInt(808),
	}, nil)

	res, err := s.payments.Verify(s.ctx, s.customer, commands.VerifyPaymentInput{
		GatewayOrderID: "order_Q4", GatewayPaymentID: "pay_4", Signature: "sig",
	})
	s.Require().NoError(err)
	s.Equal(payment.StatusCompleted, res.Status)
	s.Equal(invoice.StatusPaid, res.InvoiceStatus)
	s.Equal(payment.StatusCompleted, s.store.Payment(checkout.PaymentID).Status())

	inv := s.store.InvoiceByOrder(s.orderID)
	s.True(inv.AmountDue().LessThanOrEqual(decimal.Zero), inv.AmountDue().String())
	s.True(decimal.NewFromInt(1108).Equal(inv.AmountPaid()), inv.AmountPaid().String())
	s.Equal(order.StatusConfirmed, s.store.Order(s.orderID).Status())
	s.Equal(0, s.onHand())
}

func (s *PaymentCommandsTestSuite) TestVerifyBadSignature() {
	s.expectGatewayOrder("order_Q3")
	checkout, err := s.payments.CreateGatewayOrder(s.ctx, s.customer, s.invoiceID)
	s.Require().NoError(err)

	s.gateway.EXPECT().VerifySignature("order_Q3", "pay_1", "forged").Return(false)

	_, err = s.payments.Verify(s.ctx, s.customer, commands.VerifyPaymentInput{
		GatewayOrderID: "order_Q3", GatewayPaymentID: "pay_1", Signature: "forged",
	})
	s.ErrorIs(err, payment.ErrBadSignature)

	p := s.store.Payment(checkout.PaymentID)
	s.Equal(payment.StatusFailed, p.Status())
	s.NotEmpty(p.FailureReason())
	s.Equal(invoice.StatusDraft, s.store.InvoiceByOrder(s.orderID).Status())
}
