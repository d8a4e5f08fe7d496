package api

import (
	"net/http"

	reqdto "rental-core/internal/handler/dto/request"
	resdto "rental-core/internal/handler/dto/response"
	"rental-core/internal/handler/httperr"
	"rental-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q queries.AvailabilityQueries
}

func NewProductHandler(q queries.AvailabilityQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary Check availability
// @Description Units free for the whole window after active holds
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param variant_id query string false "Variant ID"
// @Param start_date query string true "RFC3339 start"
// @Param end_date query string true "RFC3339 end"
// @Param quantity query int false "Requested quantity (default 1)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/availability [get]
func (h *ProductHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	view, err := h.q.Check(c.Request.Context(), id, q.Variant(), q.StartDate, q.EndDate, q.RequestedQuantity())
	if err != nil {
		httperr.Abort(c, err, "Availability check failed")
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render availability")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Availability calendar
// @Description Active reservations of a product in a date range
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param from query string false "RFC3339 start (default now)"
// @Param to query string false "RFC3339 end (default from + 30 days)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/calendar [get]
func (h *ProductHandler) Calendar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	entries, err := h.q.Calendar(c.Request.Context(), id, q.From, q.To)
	if err != nil {
		httperr.Abort(c, err, "Calendar lookup failed")
		return
	}
	res, err := resdto.FromCalendar(id, entries)
	if err != nil {
		httperr.Abort(c, err, "Failed to render calendar")
		return
	}
	c.JSON(http.StatusOK, res)
}
