//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-app/internal/domain/user"
	"parking-app/internal/handler/api"
	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/mock/commandsmock"
	"parking-app/internal/mock/queriesmock"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/testutil/httptest"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: any bearer token authenticates as userID.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetAuthContext(c, userID, role)
		c.Next()
	}
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	userID       uuid.UUID
	loc          *time.Location
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.loc = time.FixedZone("IST", 19800)

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries, s.loc)
	auth := fakeAuth(s.userID, user.RoleUser)
	s.router.POST("/lots/:id/reservations", auth, h.Reserve)
	s.router.POST("/reservations/:id/release", auth, h.Release)
	s.router.GET("/reservations", auth, h.List)
	s.router.GET("/reservations/:id", auth, h.Get)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *ReservationHandlerTestSuite) TestReserve() {
	lotID := uuid.New()
	url := "/lots/" + lotID.String() + "/reservations"

	s.Run("success: returns 201 with the allocated spot", func() {
		result := &commands.ReserveResult{
			ReservationID:     uuid.New(),
			LotID:             lotID,
			SpotID:            uuid.New(),
			SpotNumber:        1,
			StartTime:         time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			PricePerHourCents: 1000,
		}
		s.mockCommands.EXPECT().ReserveSpot(gomock.Any(), lotID, s.userID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.ReservationID, body.ReservationID)
		s.Equal(1, body.SpotNumber)
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "lot not found", err: commands.ErrLotNotFound, expectCode: http.StatusNotFound, expectMsg: "Lot not found"},
		{name: "lot full", err: commands.ErrNoAvailableSpot, expectCode: http.StatusConflict, expectMsg: "No available spot"},
		{name: "lost race", err: errs.Mark(errs.New("cas failed"), commands.ErrReservationConflict), expectCode: http.StatusConflict, expectMsg: "retry"},
		{name: "database failure", err: errs.Mark(errs.New("conn reset"), commands.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Failed to reserve"},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().ReserveSpot(gomock.Any(), lotID, s.userID).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: malformed lot id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lots/not-a-uuid/reservations", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lot ID")
	})

	s.Run("error: unauthenticated returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestRelease
// ================================================================================

func (s *ReservationHandlerTestSuite) TestRelease() {
	resID := uuid.New()
	url := "/reservations/" + resID.String() + "/release"

	s.Run("success: returns billed amount", func() {
		start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		result := &commands.ReleaseResult{
			ReservationID: resID,
			LotID:         uuid.New(),
			LotName:       "Central",
			SpotID:        uuid.New(),
			StartTime:     start,
			EndTime:       start.Add(90 * time.Minute),
			DurationHours: 1.5,
			AmountCents:   2000,
		}
		s.mockCommands.EXPECT().ReleaseReservation(gomock.Any(), resID, s.userID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2000), body.AmountCents)
		s.InDelta(1.5, body.DurationHours, 1e-9)
	})

	s.Run("error: not owned or already closed returns 404", func() {
		s.mockCommands.EXPECT().ReleaseReservation(gomock.Any(), resID, s.userID).
			Return(nil, commands.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: concurrent release returns 409", func() {
		s.mockCommands.EXPECT().ReleaseReservation(gomock.Any(), resID, s.userID).
			Return(nil, commands.ErrReservationConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	start := time.Date(2024, 3, 1, 3, 30, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	views := []*queries.ReservationView{
		{ID: uuid.New(), SpotNumber: 2, LotName: "Central", StartTime: start, PricePerHourCents: 500, Status: "active"},
		{ID: uuid.New(), SpotNumber: 1, LotName: "Central", StartTime: start, EndTime: &end, PricePerHourCents: 500, Status: "closed"},
	}

	s.Run("success: formats times in the configured zone", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("2024-03-01 09:00", body[0].StartTime)
		s.Equal(resdto.OngoingLabel, body[0].EndTime)
		s.Equal("2024-03-01 11:00", body[1].EndTime)
	})

	s.Run("success: empty list encodes as []", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	resID := uuid.New()

	s.Run("error: other user's reservation returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), resID, s.userID).
			Return(nil, queries.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+resID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
