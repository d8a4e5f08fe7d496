package api

import (
	"net/http"
	"strconv"

	reqdto "rental-core/internal/handler/dto/request"
	resdto "rental-core/internal/handler/dto/response"
	"rental-core/internal/handler/httperr"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a product from a returned or completed order
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Create review failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.ReviewCreatedResponse{ID: result.ReviewID})
}

// @Summary List product reviews
// @Description Reviews of a product with rating stats, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ProductReviewsResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByProduct(c.Request.Context(), id, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List reviews failed")
		return
	}
	stats, err := h.q.GetProductRatingStats(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load rating stats")
		return
	}

	res := resdto.ProductReviewsResponse{
		Stats: resdto.FromProductRatingStats(stats),
		Items: resdto.FromReviewList(items),
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, res)
}
