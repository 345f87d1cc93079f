package api

import (
	"net/http"

	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/httperr"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	queries queries.StatsQueries
}

func NewStatsHandler(qs queries.StatsQueries) *StatsHandler {
	return &StatsHandler{queries: qs}
}

// @Summary Admin dashboard statistics
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminStatsResponse
// @Failure 503 {object} httperr.Response
// @Router /admin/stats [get]
func (h *StatsHandler) Admin(c *gin.Context) {
	view, err := h.queries.GetAdminStats(c.Request.Context())
	if err != nil {
		abortStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminStats(view))
}

// @Summary Own dashboard statistics
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserStatsResponse
// @Failure 503 {object} httperr.Response
// @Router /stats [get]
func (h *StatsHandler) User(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}

	view, err := h.queries.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		abortStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserStats(view))
}

func abortStatsError(c *gin.Context, err error) {
	if errs.Is(err, queries.ErrStatsUnavailable) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Statistics temporarily unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load statistics", nil)
}
