//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"parking-app/internal/domain/stats"
	"parking-app/internal/domain/user"
	"parking-app/internal/handler/api"
	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/mock/queriesmock"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/testutil/httptest"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockStats   *queriesmock.MockStatsQueries
	mockHistory *queriesmock.MockHistoryQueries
	mockUsers   *queriesmock.MockUserQueries
	userID      uuid.UUID
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStats = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.mockHistory = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()

	statsHandler := api.NewStatsHandler(s.mockStats)
	historyHandler := api.NewHistoryHandler(s.mockHistory)
	userHandler := api.NewUserHandler(s.mockUsers)

	auth := fakeAuth(s.userID, user.RoleUser)
	s.router.GET("/stats", auth, statsHandler.User)
	s.router.GET("/admin/stats", auth, statsHandler.Admin)
	s.router.GET("/history", auth, historyHandler.ListOwn)
	s.router.GET("/admin/users/:id/history", auth, historyHandler.ListForUser)
	s.router.GET("/admin/users", auth, userHandler.List)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func sevenDaySeries() []stats.Point {
	pts := make([]stats.Point, 7)
	for i := range pts {
		pts[i] = stats.Point{Date: fmt.Sprintf("2024-03-%02d", i+1), Label: "Mar", Value: float64(i)}
	}
	return pts
}

func (s *DashboardHandlerTestSuite) TestAdminStats() {
	s.Run("success", func() {
		s.mockStats.EXPECT().GetAdminStats(gomock.Any()).Return(&queries.AdminStatsView{
			TotalRevenueCents: 12000,
			OccupancyRate:     25,
			TotalUsers:        4,
			RecentBookings:    []queries.RecentBookingView{{Username: "alice", LotName: "Central", AmountPaidCents: 1000}},
			RevenueSeries:     sevenDaySeries(),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "bearer-token")

		var body resdto.AdminStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(12000), body.TotalRevenueCents)
		s.InDelta(25.0, body.OccupancyRate, 1e-9)
		s.Len(body.RevenueSeries, 7)
		s.Require().Len(body.RecentBookings, 1)
		s.Equal("alice", body.RecentBookings[0].Username)
	})

	s.Run("error: aggregation failure returns 503", func() {
		s.mockStats.EXPECT().GetAdminStats(gomock.Any()).
			Return(nil, errs.Mark(errs.New("timeout"), queries.ErrStatsUnavailable)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")
	})
}

func (s *DashboardHandlerTestSuite) TestUserStats() {
	s.mockStats.EXPECT().GetUserStats(gomock.Any(), s.userID).Return(&queries.UserStatsView{
		TotalSpentCents: 3000,
		TotalBookings:   2,
		UsageSeries:     sevenDaySeries(),
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil, "bearer-token")

	var body resdto.UserStatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(2), body.TotalBookings)
	s.Len(body.UsageSeries, 7)
}

func (s *DashboardHandlerTestSuite) TestHistory() {
	s.Run("own history", func() {
		s.mockHistory.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]*queries.BillingView{
			{ID: uuid.New(), UserID: s.userID, LotName: "Central", AmountPaidCents: 2000},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "bearer-token")

		var body []resdto.BillingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(2000), body[0].AmountPaidCents)
	})

	s.Run("admin view of unknown user returns 404", func() {
		other := uuid.New()
		s.mockHistory.EXPECT().ListByUser(gomock.Any(), other).Return(nil, queries.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/"+other.String()+"/history", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *DashboardHandlerTestSuite) TestListUsers() {
	s.mockUsers.EXPECT().ListUsers(gomock.Any()).Return([]*queries.UserView{
		{ID: uuid.New(), Username: "alice", Role: "user"},
		{ID: uuid.New(), Username: "bob", Role: "user"},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "bearer-token")

	var body []resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 2)
}
