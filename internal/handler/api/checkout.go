package api

import (
	"net/http"

	reqdto "gin-storefront/internal/handler/dto/request"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Create checkout session
// @Description Price the cart, open a hosted checkout and record a pending order
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; retries with the same key replay the first result"
// @Param request body reqdto.CreateCheckoutRequest true "Cart, shipping address and optional discount code"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /checkout/create [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	idempotencyKey, err := parseIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd := req.ToCommand()
	cmd.IdempotencyKey = idempotencyKey

	result, err := h.cmds.Create(c.Request.Context(), cmd, userID)
	if err != nil {
		if msg, ok := commands.RejectionMessage(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
			return
		}
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, commands.ErrIdempotencyKeyReused):
			httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency-Key was already used for a different cart", nil)
		case errs.Is(err, commands.ErrIdempotencyInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Checkout is already being processed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create checkout session", nil)
		}
		return
	}

	if result.Replayed {
		c.Header(middleware.IdempotentReplayedHeader, "true")
	}
	c.JSON(http.StatusOK, resdto.CheckoutResponse{URL: result.URL})
}

// parseIdempotencyKey returns uuid.Nil when the header is absent.
func parseIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(middleware.IdempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
