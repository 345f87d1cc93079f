package api

import (
	"net/http"

	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/httperr"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	queries queries.UserQueries
}

func NewUserHandler(qs queries.UserQueries) *UserHandler {
	return &UserHandler{queries: qs}
}

// @Summary List users
// @Description Non-admin accounts only
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.queries.ListUsers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list users", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}
