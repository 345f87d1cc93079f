package api

import (
	"net/http"
	"time"

	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/httperr"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
	loc      *time.Location
}

// NewReservationHandler renders reservation times in loc.
func NewReservationHandler(
	cmds commands.ReservationCommands,
	qs queries.ReservationQueries,
	loc *time.Location,
) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
		loc:      loc,
	}
}

// @Summary Reserve a spot
// @Description Books the lowest-numbered available spot of the lot
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lot ID"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /lots/{id}/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}

	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID", nil)
		return
	}

	result, err := h.commands.ReserveSpot(c.Request.Context(), lotID, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrLotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lot not found", nil)
		case errs.Is(err, commands.ErrNoAvailableSpot):
			httperr.AbortWithError(c, http.StatusConflict, err, "No available spot in this lot", nil)
		case errs.Is(err, commands.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Spot was taken concurrently, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reserve spot", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Release a reservation
// @Description Frees the spot and bills the elapsed hours, rounded up
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/release [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}

	result, err := h.commands.ReleaseReservation(c.Request.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errs.Is(err, commands.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation changed concurrently", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to release reservation", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReleaseResult(result))
}

// @Summary List own reservations
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}

	views, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views, h.loc))
}

// @Summary Get own reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view, h.loc))
}
