package api

import (
	"net/http"

	reqdto "parking-app/internal/handler/dto/request"
	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/httperr"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	commands commands.ProfileCommands
	users    queries.UserQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, users queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{
		commands: cmds,
		users:    users,
	}
}

// @Summary Get profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortUserQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update profile
// @Description Partial update; omitted fields keep their value
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidProfile):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile", err.Error())
		case errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, commands.ErrUsernameTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Username already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update profile", nil)
		}
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortUserQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
