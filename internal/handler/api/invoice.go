package api

import (
	"net/http"

	reqdto "rental-core/internal/handler/dto/request"
	resdto "rental-core/internal/handler/dto/response"
	"rental-core/internal/handler/httperr"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"
	"rental-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary Create invoice
// @Description Create or refresh the draft invoice of an order
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInvoiceRequest true "Order"
// @Success 201 {object} resdto.InvoiceResponse
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.CreateFromOrder(c.Request.Context(), actor, req.OrderID)
	if err != nil {
		httperr.Abort(c, err, "Create invoice failed")
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	h.respondInvoice(c, actor, result.InvoiceID, status)
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param status query string false "Invoice status"
// @Param customer_id query string false "Customer ID"
// @Param vendor_id query string false "Vendor ID"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.Page[resdto.InvoiceResponse]
// @Failure 400 {object} httperr.Response
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListInvoicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	views, next, err := h.q.List(c.Request.Context(), actor, q.ToFilters(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Abort(c, err, "List invoices failed")
		return
	}
	page, err := resdto.FromInvoicePage(views, next)
	if err != nil {
		httperr.Abort(c, err, "Failed to render invoices")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondInvoice(c, actor, id, http.StatusOK)
}

// @Summary Post invoice
// @Description Move a draft invoice to posted so it can be paid
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id}/post [post]
func (h *InvoiceHandler) Post(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.cmds.Post(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, "Post invoice failed")
		return
	}
	h.respondInvoice(c, actor, id, http.StatusOK)
}

func (h *InvoiceHandler) respondInvoice(c *gin.Context, actor shared.Actor, id uuid.UUID, status int) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load invoice")
		return
	}
	res, err := resdto.FromInvoiceView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render invoice")
		return
	}
	c.JSON(status, res)
}
