package api

import (
	"net/http"

	reqdto "gin-storefront/internal/handler/dto/request"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.UserQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Get my profile
// @Description Profile fields and the default address (country defaults to UK)
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /account/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch profile", nil)
		return
	}

	res, err := resdto.FromProfileView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch profile", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update my profile
// @Description Update profile fields. The default address is saved when addressLine1 is present.
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile update"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /account/profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), userID, req.ToCommand()); err != nil {
		if msg, ok := commands.RejectionMessage(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
			return
		}
		if errs.Is(err, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update profile", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Profile updated successfully"})
}
