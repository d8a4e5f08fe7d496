package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"rental-core/internal/domain/payment"
	"rental-core/internal/pkg/config"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

var ErrGatewayResponse = errs.New("unexpected gateway response")

// RazorpayClient talks to a Razorpay-compatible orders/payments API with
// basic auth.
type RazorpayClient struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

func NewRazorpayClient(cfg config.GatewayConfig) *RazorpayClient {
	return &RazorpayClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type paymentResponse struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Status   string `json:"status"`
	Method   string `json:"method"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Card     *struct {
		Last4   string `json:"last4"`
		Network string `json:"network"`
	} `json:"card"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *RazorpayClient) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*commands.GatewayOrder, error) {
	var out orderResponse
	err := c.do(ctx, http.MethodPost, "/orders", createOrderRequest{
		Amount:   payment.ToMinorUnits(amount),
		Currency: currency,
		Receipt:  receipt,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &commands.GatewayOrder{
		ID:       out.ID,
		Amount:   payment.FromMinorUnits(out.Amount),
		Currency: out.Currency,
		Receipt:  out.Receipt,
	}, nil
}

func (c *RazorpayClient) FetchPayment(ctx context.Context, gatewayOrderID, paymentID string) (*commands.GatewayPayment, error) {
	var out paymentResponse
	if err := c.do(ctx, http.MethodGet, "/payments/"+paymentID, nil, &out); err != nil {
		return nil, err
	}
	gp := &commands.GatewayPayment{
		ID:      out.ID,
		OrderID: out.OrderID,
		Status:  out.Status,
		Method:  out.Method,
		Amount:  payment.FromMinorUnits(out.Amount),
	}
	if out.Card != nil {
		gp.CardLast4 = out.Card.Last4
		gp.CardNetwork = out.Card.Network
	}
	return gp, nil
}

func (c *RazorpayClient) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return payment.VerifySignature(c.keySecret, gatewayOrderID, gatewayPaymentID, signature)
}

func (c *RazorpayClient) KeyID() string {
	return c.keyID
}

func (c *RazorpayClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode gateway request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build gateway request")
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrapf(err, "gateway %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "read gateway response")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var e errorResponse
		if json.Unmarshal(raw, &e) == nil && e.Error.Description != "" {
			return errs.Mark(errs.Newf("gateway %s %s: %d %s: %s", method, path, resp.StatusCode, e.Error.Code, e.Error.Description), ErrGatewayResponse)
		}
		return errs.Mark(errs.Newf("gateway %s %s: status %d", method, path, resp.StatusCode), ErrGatewayResponse)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode gateway response"), ErrGatewayResponse)
	}
	return nil
}

var _ commands.PaymentGateway = (*RazorpayClient)(nil)
