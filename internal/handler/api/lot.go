package api

import (
	"net/http"

	reqdto "parking-app/internal/handler/dto/request"
	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/httperr"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LotHandler struct {
	commands commands.LotCommands
	queries  queries.LotQueries
}

func NewLotHandler(cmds commands.LotCommands, qs queries.LotQueries) *LotHandler {
	return &LotHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List lots
// @Description Lots with available and occupied spot counts
// @Tags lots
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.LotResponse
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.queries.ListLots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list lots", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLotViews(views))
}

// @Summary Create lot
// @Description Creates the lot and its spots, all available
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLotRequest true "Lot"
// @Success 201 {object} resdto.CreateLotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.commands.CreateLot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidLot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create lot", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateLotResponse{ID: id})
}

// @Summary Delete lot
// @Description Fails while any spot of the lot is occupied
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/lots/{id} [delete]
func (h *LotHandler) Delete(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID", nil)
		return
	}

	if err := h.commands.DeleteLot(c.Request.Context(), lotID); err != nil {
		switch {
		case errs.Is(err, commands.ErrLotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lot not found", nil)
		case errs.Is(err, commands.ErrLotOccupied):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cannot delete lot: spots are occupied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete lot", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
