//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parking-app/internal/domain/user"
	"parking-app/internal/handler/api"
	reqdto "parking-app/internal/handler/dto/request"
	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/mock/commandsmock"
	"parking-app/internal/mock/queriesmock"
	"parking-app/internal/testutil"
	"parking-app/internal/testutil/httptest"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProfileCommands
	mockUsers    *queriesmock.MockUserQueries
	userID       uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewProfileHandler(s.mockCommands, s.mockUsers)
	auth := fakeAuth(s.userID, user.RoleUser)
	s.router.GET("/profile", auth, h.Get)
	s.router.PUT("/profile", auth, h.Update)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) TestUpdate() {
	s.Run("success: partial update returns the fresh profile", func() {
		req := reqdto.UpdateProfileRequest{Address: testutil.StrPtr("7 Brigade Road")}
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.userID, req).Return(nil).Times(1)
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(&queries.UserView{
			ID:      s.userID,
			Address: "7 Brigade Road",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile", map[string]any{"address": "7 Brigade Road"}, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("7 Brigade Road", body.Address)
	})

	s.Run("error: bad email is rejected at binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile", map[string]any{"email": "nope"}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: username collision returns 409", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.userID, gomock.Any()).Return(commands.ErrUsernameTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile", map[string]any{"username": "bob"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Username already exists")
	})
}

func (s *ProfileHandlerTestSuite) TestGet() {
	s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(&queries.UserView{ID: s.userID, Username: "alice"}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profile", nil, "bearer-token")

	var body resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("alice", body.Username)
}
