//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"time"

	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/user"
	"rental-core/internal/handler/dto/request"
	"rental-core/internal/handler/dto/response"
	"rental-core/tests/common/dbtest"
	"rental-core/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Rental is one customer, one vendor and a camera listed by the vendor at
// 100 per day with a 50 deposit.
type Rental struct {
	CustomerID    uuid.UUID
	VendorID      uuid.UUID
	CustomerToken string
	VendorToken   string
	ProductID     uuid.UUID
	Start         time.Time
	End           time.Time
}

func (s *SharedSuite) SeedRental(onHand int) Rental {
	t := s.T()
	r := Rental{
		CustomerID: dbtest.CreateTestUser(t, s.DB, "asha@rental.test", "Asha Rao", user.RoleCustomer.String()),
		VendorID:   dbtest.CreateTestUser(t, s.DB, "lens@rental.test", "Lens Hire", user.RoleVendor.String()),
	}
	r.CustomerToken = s.Token(r.CustomerID, user.RoleCustomer)
	r.VendorToken = s.Token(r.VendorID, user.RoleVendor)
	r.ProductID = dbtest.CreateTestProduct(t, s.DB, dbtest.ProductFixture{
		VendorID:   r.VendorID,
		Name:       "Mirrorless Camera",
		DailyPrice: "100",
		Deposit:    "50",
		OnHand:     onHand,
	})
	r.Start = time.Now().UTC().Truncate(time.Hour).Add(24 * time.Hour)
	r.End = r.Start.Add(72 * time.Hour)
	return r
}

func (s *SharedSuite) AddToCart(r Rental, token string, qty int) response.CartResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/cart/items", request.AddCartItemRequest{
		ProductID:  r.ProductID,
		Quantity:   qty,
		StartDate:  r.Start,
		EndDate:    r.End,
		PeriodType: "daily",
	}, token)
	var cart response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &cart)
	require.NotNil(t, cart.Order)
	return cart
}

func (s *SharedSuite) Confirm(orderID uuid.UUID, token string) response.OrderResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%s/confirm", orderID),
		request.ConfirmOrderRequest{BillingAddress: "12 MG Road, Bengaluru"}, token)
	var o response.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &o)
	return o
}

// InvoiceFor returns the invoice drafted when the order was confirmed.
func (s *SharedSuite) InvoiceFor(orderID uuid.UUID, token string) response.InvoiceResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/invoices",
		request.CreateInvoiceRequest{OrderID: orderID}, token)
	var inv response.InvoiceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &inv)
	return inv
}

// PayOnline runs the gateway checkout against the sandbox and signs the
// callback with the test secret.
func (s *SharedSuite) PayOnline(invoiceID uuid.UUID, token string) response.PaymentResultResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/create-order",
		request.CreateGatewayOrderRequest{InvoiceID: invoiceID}, token)
	var checkout response.GatewayCheckoutResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &checkout)

	paymentID := "pay_" + uuid.NewString()[:8]
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/verify", request.VerifyPaymentRequest{
		GatewayOrderID:   checkout.GatewayOrderID,
		GatewayPaymentID: paymentID,
		Signature:        payment.Sign(s.Config.Gateway.KeySecret, checkout.GatewayOrderID, paymentID),
	}, token)
	var res response.PaymentResultResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}
