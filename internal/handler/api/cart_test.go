//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-core/internal/domain/coupon"
	"rental-core/internal/domain/order"
	"rental-core/internal/handler/api"
	reqdto "rental-core/internal/handler/dto/request"
	resdto "rental-core/internal/handler/dto/response"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"
	"rental-core/internal/usecase/shared"
	"rental-core/tests/common/builder"
	"rental-core/tests/common/httptest"
	"rental-core/tests/common/testutil"
	commandsmock "rental-core/tests/mock/commands"
	queriesmock "rental-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockOrderQueries
	actor        shared.Actor
}

func (s *CartHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	h := api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.actor = customer()

	g := s.router.Group("/cart", fakeAuth(&s.actor))
	g.GET("", h.Get)
	g.POST("/items", h.AddItem)
	g.DELETE("/items/:item_id", h.RemoveItem)
	g.POST("/coupon", h.ApplyCoupon)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: empty cart renders a null order", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.actor).Return(&queries.CartView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, bearer)

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Contains(res, "order")
		s.Nil(res["order"])
		s.Equal("0.00", res["total_amount"])
	})

	s.Run("success: totals are rendered with two decimals", func() {
		cart := builder.NewOrderBuilder().WithDailyItem("99.5", 2, 1).BuildCartView()
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.actor).Return(cart, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, bearer)

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(2, res.ItemCount)
		s.Equal(cart.Subtotal.StringFixed(2), res.Subtotal)
		s.Require().NotNil(res.Order)
		s.Equal(cart.Order.ID, res.Order.ID)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	productID := uuid.New()
	start := builder.BaseTime.AddDate(0, 0, 2)
	reqBody := reqdto.AddCartItemRequest{
		ProductID:  productID,
		Quantity:   1,
		StartDate:  start,
		EndDate:    start.Add(6 * time.Hour),
		PeriodType: "hourly",
	}

	s.Run("success: 201 with the refreshed cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.actor, reqBody.ToInput()).
			Return(&commands.CartResult{OrderID: uuid.New()}, nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.actor).
			Return(builder.NewOrderBuilder().BuildCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	invalid := []struct {
		name   string
		mutate testutil.Edit
	}{
		{name: "missing product", mutate: testutil.Drop("product_id")},
		{name: "zero quantity", mutate: testutil.Set("quantity", 0)},
		{name: "unsupported period", mutate: testutil.Set("period_type", "yearly")},
		{name: "end before start", mutate: testutil.Set("end_date", start.Add(-time.Hour).Format(time.RFC3339))},
	}
	for _, tc := range invalid {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items",
				testutil.JSONBody(s.T(), reqBody, tc.mutate), bearer)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		})
	}

	s.Run("error: 409 when the cart belongs to another vendor", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, order.ErrVendorMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "another vendor")
	})

	s.Run("error: 409 when the cart is busy", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, commands.ErrCartBusy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "changed concurrently")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	itemID := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.actor, itemID).
			Return(&commands.CartResult{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+itemID.String(), nil, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown line", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.actor, itemID).
			Return(nil, order.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+itemID.String(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order item not found")
	})
}

func (s *CartHandlerTestSuite) TestApplyCoupon() {
	s.Run("success: code is normalised before reaching the command", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), s.actor, "SUMMER10").
			Return(&commands.CartResult{}, nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.actor).
			Return(builder.NewOrderBuilder().BuildCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon", map[string]any{"code": " summer10 "}, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an expired coupon", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), s.actor, "OLD").
			Return(nil, coupon.ErrCouponExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon", map[string]any{"code": "old"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "coupon has expired")
	})
}
