package api

import (
	"net/http"

	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary List my orders
// @Description Orders of the authenticated user, newest first, with item snapshots
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OrderListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch orders", nil)
		return
	}
	res, err := resdto.FromOrderViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch orders", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
