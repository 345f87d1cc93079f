package api

import (
	"net/http"

	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/httperr"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HistoryHandler struct {
	queries queries.HistoryQueries
}

func NewHistoryHandler(qs queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{queries: qs}
}

// @Summary Own billing history
// @Description Most recently released first
// @Tags history
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BillingResponse
// @Router /history [get]
func (h *HistoryHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}
	h.respond(c, userID)
}

// @Summary User billing history
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.BillingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/history [get]
func (h *HistoryHandler) ListForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}
	h.respond(c, userID)
}

func (h *HistoryHandler) respond(c *gin.Context, userID uuid.UUID) {
	views, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load history", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBillingViews(views))
}
