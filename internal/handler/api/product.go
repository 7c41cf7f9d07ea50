package api

import (
	"net/http"

	reqdto "gin-storefront/internal/handler/dto/request"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q queries.CatalogQueries
}

func NewProductHandler(q queries.CatalogQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary List products
// @Description List active products from the configured catalog source
// @Tags products
// @Produce json
// @Param category query string false "Category or tag"
// @Param search query string false "Free text search"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param sortBy query string false "newest | price-low | price-high | name"
// @Param featured query bool false "Only featured products"
// @Param limit query int false "Maximum number of products (default 100)"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query reqdto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price filter", nil)
		return
	}

	products, err := h.q.ListProducts(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithEmptyList(c, http.StatusInternalServerError, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(products))
}

// @Summary Get product
// @Description Get a product with its reviews. Shopify-backed stores resolve the id as a handle.
// @Tags products
// @Produce json
// @Param id path string true "Product ID or handle"
// @Success 200 {object} resdto.ProductDetailEnvelope
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	detail, err := h.q.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetail(detail))
}
