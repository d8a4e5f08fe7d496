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

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create quotations
// @Description Create one quotation per vendor from a multi-item request
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Quotation items"
// @Success 201 {object} resdto.QuotationsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	ids, err := h.cmds.CreateQuotation(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Create quotation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.QuotationsResponse{OrderIDs: ids})
}

// @Summary List orders
// @Description List orders visible to the caller, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param customer_id query string false "Customer ID"
// @Param vendor_id query string false "Vendor ID"
// @Param created_from query string false "RFC3339 lower bound"
// @Param created_to query string false "RFC3339 upper bound"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.Page[resdto.OrderResponse]
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	views, next, err := h.q.List(c.Request.Context(), actor, q.ToFilters(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Abort(c, err, "List orders failed")
		return
	}
	page, err := resdto.FromOrderPage(views, next)
	if err != nil {
		httperr.Abort(c, err, "Failed to render orders")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondOrder(c, actor, id, http.StatusOK)
}

// @Summary Confirm order
// @Description Confirm a quotation, reserving stock. Honours Idempotency-Key.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param id path string true "Order ID"
// @Param request body reqdto.ConfirmOrderRequest false "Confirmation details"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBind(c, err)
			return
		}
	}
	if _, err := h.cmds.Confirm(c.Request.Context(), actor, id, req.ToInput(key)); err != nil {
		httperr.Abort(c, err, "Confirm order failed")
		return
	}
	h.respondOrder(c, actor, id, http.StatusOK)
}

// @Summary Mark picked up
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.PickupOrderRequest false "Pickup notes"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/pickup [post]
func (h *OrderHandler) Pickup(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PickupOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBind(c, err)
			return
		}
	}
	if _, err := h.cmds.MarkPickedUp(c.Request.Context(), actor, id, req.Notes); err != nil {
		httperr.Abort(c, err, "Pickup failed")
		return
	}
	h.respondOrder(c, actor, id, http.StatusOK)
}

// @Summary Mark returned
// @Description Record the return, releasing stock and charging late fees
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ReturnOrderRequest false "Return inspection"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/return [post]
func (h *OrderHandler) Return(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReturnOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBind(c, err)
			return
		}
	}
	if _, err := h.cmds.MarkReturned(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		httperr.Abort(c, err, "Return failed")
		return
	}
	h.respondOrder(c, actor, id, http.StatusOK)
}

// @Summary Cancel order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CancelOrderRequest false "Reason"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBind(c, err)
			return
		}
	}
	if _, err := h.cmds.Cancel(c.Request.Context(), actor, id, req.Reason); err != nil {
		httperr.Abort(c, err, "Cancel failed")
		return
	}
	h.respondOrder(c, actor, id, http.StatusOK)
}

// @Summary Complete order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/complete [post]
func (h *OrderHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.cmds.Complete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, "Complete failed")
		return
	}
	h.respondOrder(c, actor, id, http.StatusOK)
}

// @Summary Pending pickups
// @Description Confirmed orders waiting for pickup
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Router /orders/pending-pickups [get]
func (h *OrderHandler) PendingPickups(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.PendingPickups(c.Request.Context(), actor)
	h.respondOrders(c, views, err)
}

// @Summary Upcoming returns
// @Description Rentals due back within the given number of days
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days (default 7)"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /orders/upcoming-returns [get]
func (h *OrderHandler) UpcomingReturns(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.UpcomingReturnsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	views, err := h.q.UpcomingReturns(c.Request.Context(), actor, q.Days)
	h.respondOrders(c, views, err)
}

// @Summary Overdue orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Router /orders/overdue [get]
func (h *OrderHandler) Overdue(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.Overdue(c.Request.Context(), actor)
	h.respondOrders(c, views, err)
}

func (h *OrderHandler) respondOrder(c *gin.Context, actor shared.Actor, id uuid.UUID, status int) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load order")
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render order")
		return
	}
	c.JSON(status, res)
}

func (h *OrderHandler) respondOrders(c *gin.Context, views []*queries.OrderView, err error) {
	if err != nil {
		httperr.Abort(c, err, "List orders failed")
		return
	}
	res, err := resdto.FromOrderViews(views)
	if err != nil {
		httperr.Abort(c, err, "Failed to render orders")
		return
	}
	c.JSON(http.StatusOK, res)
}
