package api

import (
	"net/http"

	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.AdminQueries
}

func NewAdminHandler(q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary Dashboard stats
// @Description Product, order and user counts plus paid revenue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.q.GetStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch stats", nil)
		return
	}
	res, err := resdto.FromStatsView(stats)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch stats", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary All local products
// @Description Every product in the local store including inactive ones, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProductListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/products [get]
func (h *AdminHandler) Products(c *gin.Context) {
	products, err := h.q.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithEmptyList(c, http.StatusInternalServerError, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(products))
}
