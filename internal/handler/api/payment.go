package api

import (
	"net/http"

	reqdto "rental-core/internal/handler/dto/request"
	resdto "rental-core/internal/handler/dto/response"
	"rental-core/internal/handler/httperr"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create gateway order
// @Description Open a gateway checkout for the amount due on an invoice
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGatewayOrderRequest true "Invoice"
// @Success 201 {object} resdto.GatewayCheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateGatewayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	checkout, err := h.cmds.CreateGatewayOrder(c.Request.Context(), actor, req.InvoiceID)
	if err != nil {
		if errs.HasMark(err, commands.ErrGatewayUnavailable) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway unavailable", nil)
			return
		}
		httperr.Abort(c, err, "Create gateway order failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGatewayCheckout(checkout))
}

// @Summary Verify gateway payment
// @Description Check the gateway signature and settle the invoice
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyPaymentRequest true "Gateway callback"
// @Success 200 {object} resdto.PaymentResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.Verify(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		if errs.HasMark(err, commands.ErrGatewayUnavailable) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway unavailable", nil)
			return
		}
		httperr.Abort(c, err, "Payment verification failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}

// @Summary Record offline payment
// @Description Record a cash or bank transfer payment. Honours Idempotency-Key.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.RecordCashRequest true "Payment"
// @Success 201 {object} resdto.PaymentResultResponse
// @Success 200 {object} resdto.PaymentResultResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/cash [post]
func (h *PaymentHandler) RecordCash(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.RecordCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.RecordCash(c.Request.Context(), actor, req.ToInput(key))
	if err != nil {
		httperr.Abort(c, err, "Record payment failed")
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPaymentResult(result))
}

// @Summary List payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Payment status"
// @Param invoice_id query string false "Invoice ID"
// @Param customer_id query string false "Customer ID"
// @Param vendor_id query string false "Vendor ID"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.Page[resdto.PaymentResponse]
// @Failure 400 {object} httperr.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListPaymentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	views, next, err := h.q.List(c.Request.Context(), actor, q.ToFilters(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Abort(c, err, "List payments failed")
		return
	}
	page, err := resdto.FromPaymentPage(views, next)
	if err != nil {
		httperr.Abort(c, err, "Failed to render payments")
		return
	}
	c.JSON(http.StatusOK, page)
}
