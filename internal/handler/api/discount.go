package api

import (
	"net/http"

	reqdto "gin-storefront/internal/handler/dto/request"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	cmds commands.DiscountCommands
}

func NewDiscountHandler(cmds commands.DiscountCommands) *DiscountHandler {
	return &DiscountHandler{cmds: cmds}
}

// @Summary Validate discount code
// @Description Check a code against a cart subtotal without redeeming it
// @Tags discount
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateDiscountRequest true "Code and subtotal"
// @Success 200 {object} resdto.ValidateDiscountResponse
// @Failure 400 {object} resdto.ValidateDiscountResponse
// @Failure 500 {object} resdto.ValidateDiscountResponse
// @Router /discount/validate [post]
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, resdto.ValidateDiscountResponse{Valid: false, Error: "Invalid request format"})
		return
	}

	result, err := h.cmds.Validate(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, resdto.ValidateDiscountResponse{Valid: false, Error: "Failed to validate code"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountValidation(result))
}
