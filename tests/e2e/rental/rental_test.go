//go:build e2e

package rental_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"rental-core/internal/domain/user"
	"rental-core/internal/handler/dto/request"
	"rental-core/internal/handler/dto/response"
	"rental-core/tests/common/dbtest"
	"rental-core/tests/common/httptest"
	"rental-core/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RentalSuite struct {
	e2e.SharedSuite
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RentalSuite))
}

func (s *RentalSuite) TestCheckoutToReturn() {
	t := s.T()
	r := s.SeedRental(2)

	cart := s.AddToCart(r, r.CustomerToken, 2)
	orderID := cart.Order.ID
	require.Equal(t, "quotation", cart.Order.Status)
	require.Equal(t, "808.00", cart.TotalAmount)

	confirmed := s.Confirm(orderID, r.CustomerToken)
	require.Equal(t, "sale_order", confirmed.Status)
	onHand, reserved := dbtest.ProductStock(t, s.DB, r.ProductID)
	require.Equal(t, 2, onHand)
	require.Equal(t, 2, reserved)

	inv := s.InvoiceFor(orderID, r.CustomerToken)
	want := response.InvoiceResponse{
		OrderID:         orderID,
		CustomerID:      r.CustomerID,
		VendorID:        r.VendorID,
		Status:          "draft",
		VendorName:      "Lens Hire",
		CustomerName:    "Asha Rao",
		Subtotal:        "600.00",
		TaxAmount:       "108.00",
		CGST:            "54.00",
		SGST:            "54.00",
		IGST:            "0.00",
		DiscountAmount:  "0.00",
		SecurityDeposit: "100.00",
		DeliveryCharges: "0.00",
		LateFees:        "0.00",
		TotalAmount:     "808.00",
		AmountPaid:      "0.00",
		AmountDue:       "808.00",
	}
	opts := []cmp.Option{
		cmpopts.IgnoreFields(response.InvoiceResponse{},
			"ID", "InvoiceNumber", "InvoiceDate", "DueDate", "RentalStart", "RentalEnd",
			"VendorCompanyName", "VendorGSTIN", "VendorAddress", "CustomerEmail", "CustomerGSTIN",
			"BillingAddress", "DeliveryAddress", "TaxRate", "InterState", "CreatedAt", "UpdatedAt", "Items"),
	}
	if diff := cmp.Diff(want, inv, opts...); diff != "" {
		t.Errorf("invoice mismatch (-want +got):\n%s", diff)
	}

	paid := s.PayOnline(inv.ID, r.CustomerToken)
	require.Equal(t, "completed", paid.Status)
	require.Equal(t, "paid", paid.InvoiceStatus)
	onHand, reserved = dbtest.ProductStock(t, s.DB, r.ProductID)
	require.Equal(t, 0, onHand, "paid units leave on-hand stock")
	require.Equal(t, 0, reserved)

	orderURL := fmt.Sprintf("/api/orders/%s", orderID)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, orderURL+"/pickup", nil, r.VendorToken)
	var o response.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &o)
	require.Equal(t, "picked_up", o.Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, orderURL+"/return",
		request.ReturnOrderRequest{ConditionNotes: "Good"}, r.VendorToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &o)
	require.Equal(t, "returned", o.Status)
	require.Equal(t, "0.00", o.LateFeesApplied)
	require.Equal(t, 1, dbtest.CountRows(t, s.DB, "return_documents", "order_id = $1", orderID))

	onHand, reserved = dbtest.ProductStock(t, s.DB, r.ProductID)
	require.Equal(t, 2, onHand)
	require.Equal(t, 0, reserved)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, orderURL+"/complete", nil, r.VendorToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &o)
	require.Equal(t, "completed", o.Status)

	require.Positive(t, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = $1", "order_confirmed"))
}

func (s *RentalSuite) TestCashInstalments() {
	t := s.T()
	r := s.SeedRental(1)
	cart := s.AddToCart(r, r.CustomerToken, 1)
	s.Confirm(cart.Order.ID, r.CustomerToken)
	inv := s.InvoiceFor(cart.Order.ID, r.VendorToken)
	require.Equal(t, "404.00", inv.TotalAmount)

	key := uuid.NewString()
	pay := func(amount string) *stdhttptest.ResponseRecorder {
		body := map[string]any{"invoice_id": inv.ID, "amount": amount}
		return httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/payments/cash", body,
			r.VendorToken, map[string]string{"Idempotency-Key": key})
	}

	var first response.PaymentResultResponse
	httptest.AssertSuccessResponse(t, pay("200"), http.StatusCreated, &first)
	require.Equal(t, "partially_paid", first.InvoiceStatus)

	var replay response.PaymentResultResponse
	httptest.AssertSuccessResponse(t, pay("200"), http.StatusOK, &replay)
	require.True(t, replay.Replayed)
	require.Equal(t, first.PaymentID, replay.PaymentID)

	httptest.AssertErrorResponse(t, pay("150"), http.StatusConflict, "")

	key = uuid.NewString()
	httptest.AssertErrorResponse(t, pay("500"), http.StatusBadRequest, "")

	var last response.PaymentResultResponse
	httptest.AssertSuccessResponse(t, pay("204"), http.StatusCreated, &last)
	require.Equal(t, "paid", last.InvoiceStatus)
	require.Equal(t, 2, dbtest.CountRows(t, s.DB, "payments", "invoice_id = $1", inv.ID))
}

func (s *RentalSuite) TestConcurrentConfirmHoldsStockOnce() {
	t := s.T()
	r := s.SeedRental(1)

	const customers = 4
	orderIDs := make([]uuid.UUID, customers)
	tokens := make([]string, customers)
	for i := range customers {
		id := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("c%d@rental.test", i), fmt.Sprintf("Customer %d", i), user.RoleCustomer.String())
		tokens[i] = s.Token(id, user.RoleCustomer)
		orderIDs[i] = s.AddToCart(r, tokens[i], 1).Order.ID
	}

	codes := make([]int, customers)
	var wg sync.WaitGroup
	for i := range customers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost,
				fmt.Sprintf("/api/orders/%s/confirm", orderIDs[i]), nil, tokens[i])
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, c := range codes {
		if c == http.StatusOK {
			ok++
		} else {
			require.Contains(t, []int{http.StatusBadRequest, http.StatusConflict}, c)
		}
	}
	require.Equal(t, 1, ok, "codes: %v", codes)
	_, reserved := dbtest.ProductStock(t, s.DB, r.ProductID)
	require.Equal(t, 1, reserved)
	require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations", "product_id = $1 AND status = 'active'", r.ProductID))
}

func (s *RentalSuite) TestCancelReleasesStock() {
	t := s.T()
	r := s.SeedRental(2)
	cart := s.AddToCart(r, r.CustomerToken, 2)
	s.Confirm(cart.Order.ID, r.CustomerToken)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%s/cancel", cart.Order.ID),
		request.CancelOrderRequest{Reason: "plans changed"}, r.CustomerToken)
	var o response.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &o)
	require.Equal(t, "cancelled", o.Status)

	_, reserved := dbtest.ProductStock(t, s.DB, r.ProductID)
	require.Equal(t, 0, reserved)
	require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservations", "product_id = $1 AND status = 'active'", r.ProductID))
}

func (s *RentalSuite) TestAvailabilityAndCalendar() {
	t := s.T()
	r := s.SeedRental(3)
	cart := s.AddToCart(r, r.CustomerToken, 2)
	s.Confirm(cart.Order.ID, r.CustomerToken)

	q := url.Values{}
	q.Set("start_date", r.Start.Format(time.RFC3339))
	q.Set("end_date", r.End.Format(time.RFC3339))
	q.Set("quantity", "2")
	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf("/api/products/%s/availability?%s", r.ProductID, q.Encode()), nil, "")
	var avail response.AvailabilityResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
	require.False(t, avail.IsAvailable)
	require.Equal(t, 1, avail.AvailableQuantity)
	require.Equal(t, 2, avail.ReservedQuantity)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf("/api/products/%s/calendar", r.ProductID), nil, "")
	var cal response.CalendarResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cal)
	require.Len(t, cal.Entries, 1)
	require.Equal(t, cart.Order.ID, cal.Entries[0].OrderID)
	require.EqualValues(t, 2, cal.Entries[0].Quantity)
}

func (s *RentalSuite) TestVendorViewsAndAccess() {
	t := s.T()
	r := s.SeedRental(2)
	cart := s.AddToCart(r, r.CustomerToken, 1)
	s.Confirm(cart.Order.ID, r.CustomerToken)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/pending-pickups", nil, r.VendorToken)
	var pending []response.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
	require.Len(t, pending, 1)
	require.Equal(t, cart.Order.ID, pending[0].ID)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/pending-pickups", nil, r.CustomerToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	otherID := dbtest.CreateTestUser(t, s.DB, "other@rental.test", "Other", user.RoleCustomer.String())
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/orders/%s", cart.Order.ID), nil,
		s.Token(otherID, user.RoleCustomer))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func (s *RentalSuite) TestCouponAtCheckout() {
	t := s.T()
	r := s.SeedRental(2)
	limit := 1
	dbtest.CreateTestCoupon(t, s.DB, "WELCOME10", 10, &limit)

	cart := s.AddToCart(r, r.CustomerToken, 2)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/cart/coupon",
		request.ApplyCouponRequest{Code: "welcome10"}, r.CustomerToken)
	var withCoupon response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &withCoupon)
	require.Equal(t, "748.00", withCoupon.TotalAmount)

	o := s.Confirm(cart.Order.ID, r.CustomerToken)
	require.Equal(t, "60.00", o.DiscountAmount)
	require.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupons", "code = 'WELCOME10' AND used_count = 1"))
}
