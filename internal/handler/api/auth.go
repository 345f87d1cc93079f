package api

import (
	"net/http"
	"time"

	reqdto "parking-app/internal/handler/dto/request"
	resdto "parking-app/internal/handler/dto/response"
	"parking-app/internal/handler/httperr"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/config"
	"parking-app/internal/pkg/cookie"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	commands      commands.AuthCommands
	users         queries.UserQueries
	cookieCfg     config.CookieConfig
	tokenLifetime TokenLifetime
}

// TokenLifetime reports how long an issued access token stays valid.
type TokenLifetime interface {
	TokenDuration() time.Duration
}

func NewAuthHandler(
	cmds commands.AuthCommands,
	users queries.UserQueries,
	cookieCfg config.CookieConfig,
	tokenLifetime TokenLifetime,
) *AuthHandler {
	return &AuthHandler{
		commands:      cmds,
		users:         users,
		cookieCfg:     cookieCfg,
		tokenLifetime: tokenLifetime,
	}
}

// @Summary Register
// @Description Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.commands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidRegistration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration", err.Error())
		case errs.Is(err, commands.ErrUsernameTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Username already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to register", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{ID: id})
}

// @Summary Login
// @Description Issue an access token; also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to login", nil)
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.tokenLifetime.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		UserID:      result.UserID,
		Role:        string(result.Role),
	})
}

// @Summary Logout
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
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

func abortUserQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
	}
}
