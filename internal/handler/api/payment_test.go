//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/payment"
	"rental-core/internal/handler/api"
	reqdto "rental-core/internal/handler/dto/request"
	resdto "rental-core/internal/handler/dto/response"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"
	"rental-core/tests/common/httptest"
	commandsmock "rental-core/tests/mock/commands"
	queriesmock "rental-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	actor        shared.Actor
}

func (s *PaymentHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	h := api.NewPaymentHandler(s.mockCommands, s.mockQueries)
	s.actor = customer()

	g := s.router.Group("/payments", fakeAuth(&s.actor))
	g.POST("/create-order", h.CreateOrder)
	g.POST("/verify", h.Verify)
	g.POST("/cash", h.RecordCash)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreateOrder() {
	invoiceID := uuid.New()
	body := map[string]any{"invoice_id": invoiceID.String()}

	s.Run("success: returns the checkout in gateway field names", func() {
		s.mockCommands.EXPECT().CreateGatewayOrder(gomock.Any(), s.actor, invoiceID).
			Return(&commands.GatewayCheckout{
				PaymentID:      uuid.New(),
				InvoiceID:      invoiceID,
				GatewayOrderID: "order_abc",
				Amount:         decimal.RequireFromString("1180"),
				Currency:       "INR",
				KeyID:          "rzp_test_key",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/create-order", body, bearer)

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("order_abc", res["razorpay_order_id"])
		s.Equal("rzp_test_key", res["key_id"])
		s.Equal("INR", res["currency"])
	})

	s.Run("error: 502 when the gateway is unreachable", func() {
		s.mockCommands.EXPECT().CreateGatewayOrder(gomock.Any(), s.actor, invoiceID).
			Return(nil, errs.Mark(errs.New("dial tcp: timeout"), commands.ErrGatewayUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/create-order", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment gateway unavailable")
	})

	s.Run("error: 400 when nothing is due", func() {
		s.mockCommands.EXPECT().CreateGatewayOrder(gomock.Any(), s.actor, invoiceID).
			Return(nil, commands.ErrNothingDue).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/create-order", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no amount due")
	})

	s.Run("error: 400 without an invoice id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/create-order", map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *PaymentHandlerTestSuite) TestVerify() {
	body := map[string]any{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "deadbeef",
	}
	in := commands.VerifyPaymentInput{GatewayOrderID: "order_abc", GatewayPaymentID: "pay_xyz", Signature: "deadbeef"}

	s.Run("success: invoice settles", func() {
		result := &commands.PaymentResult{
			PaymentID:     uuid.New(),
			InvoiceID:     uuid.New(),
			Status:        payment.StatusCompleted,
			InvoiceStatus: invoice.StatusPaid,
		}
		s.mockCommands.EXPECT().Verify(gomock.Any(), s.actor, in).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/verify", body, bearer)

		var res resdto.PaymentResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(result.PaymentID, res.PaymentID)
		s.Equal("completed", res.Status)
		s.Equal("paid", res.InvoiceStatus)
	})

	s.Run("error: 400 on a bad signature", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), s.actor, in).Return(nil, payment.ErrBadSignature).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/verify", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid payment signature")
	})

	s.Run("error: 400 when the signature field is missing", func() {
		delete(body, "razorpay_signature")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/verify", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *PaymentHandlerTestSuite) TestRecordCash() {
	invoiceID := uuid.New()
	key := uuid.New()
	body := map[string]any{"invoice_id": invoiceID.String(), "amount": "500.00", "payment_method": "cash"}

	matchInput := func(want *uuid.UUID) any {
		return gomock.Cond(func(x any) bool {
			in, ok := x.(commands.RecordCashInput)
			if !ok || in.InvoiceID != invoiceID || in.Method != "cash" || !in.Amount.Equal(decimal.NewFromInt(500)) {
				return false
			}
			if want == nil {
				return in.IdempotencyKey == nil
			}
			return in.IdempotencyKey != nil && *in.IdempotencyKey == *want
		})
	}

	s.Run("success: 201 on first recording", func() {
		s.mockCommands.EXPECT().RecordCash(gomock.Any(), s.actor, matchInput(&key)).
			Return(&commands.PaymentResult{PaymentID: uuid.New(), InvoiceID: invoiceID, Status: payment.StatusCompleted, InvoiceStatus: invoice.StatusPartiallyPaid}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/cash", body, bearer,
			map[string]string{"Idempotency-Key": key.String()})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: 200 when the key replays", func() {
		s.mockCommands.EXPECT().RecordCash(gomock.Any(), s.actor, matchInput(&key)).
			Return(&commands.PaymentResult{PaymentID: uuid.New(), InvoiceID: invoiceID, Status: payment.StatusCompleted, InvoiceStatus: invoice.StatusPaid, Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/cash", body, bearer,
			map[string]string{"Idempotency-Key": key.String()})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: key is optional", func() {
		s.mockCommands.EXPECT().RecordCash(gomock.Any(), s.actor, matchInput(nil)).
			Return(&commands.PaymentResult{PaymentID: uuid.New(), InvoiceID: invoiceID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/cash", body, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 when the key was used for another request", func() {
		s.mockCommands.EXPECT().RecordCash(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, commands.ErrIdempotencyKeyReused).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/cash", body, bearer,
			map[string]string{"Idempotency-Key": key.String()})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "different request")
	})

	s.Run("error: 400 on overpayment", func() {
		s.mockCommands.EXPECT().RecordCash(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, invoice.ErrOverpayment).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/cash", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "exceeds amount due")
	})

	s.Run("error: 400 on an online method", func() {
		bad := map[string]any{"invoice_id": invoiceID.String(), "amount": "500", "payment_method": "upi"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/cash", bad, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}
