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
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.OrderQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.OrderQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the caller's open quotation with totals
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.respondCart(c, actor, http.StatusOK)
}

// @Summary Add cart item
// @Description Add a product line to the cart, creating the cart on first use
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 201 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if _, err := h.cmds.AddItem(c.Request.Context(), actor, req.ToInput()); err != nil {
		httperr.Abort(c, err, "Add to cart failed")
		return
	}
	h.respondCart(c, actor, http.StatusCreated)
}

// @Summary Remove cart item
// @Tags cart
// @Security BearerAuth
// @Param item_id path string true "Order item ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	if _, err := h.cmds.RemoveItem(c.Request.Context(), actor, itemID); err != nil {
		httperr.Abort(c, err, "Remove from cart failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Apply coupon
// @Description Apply a discount code to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyCouponRequest true "Coupon"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if _, err := h.cmds.ApplyCoupon(c.Request.Context(), actor, req.NormalizedCode()); err != nil {
		httperr.Abort(c, err, "Apply coupon failed")
		return
	}
	h.respondCart(c, actor, http.StatusOK)
}

func (h *CartHandler) respondCart(c *gin.Context, actor shared.Actor, status int) {
	view, err := h.q.GetCart(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err, "Failed to load cart")
		return
	}
	res, err := resdto.FromCartView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render cart")
		return
	}
	c.JSON(status, res)
}
