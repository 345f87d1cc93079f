package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-app/internal/domain/user"
	"parking-app/internal/handler/api"
	"parking-app/internal/handler/dto/request"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth        *api.AuthHandler
	Profile     *api.ProfileHandler
	Lot         *api.LotHandler
	Reservation *api.ReservationHandler
	History     *api.HistoryHandler
	Stats       *api.StatsHandler
	User        *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := request.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Profile.Get},
				{Method: http.MethodPut, Path: "/profile", Handler: h.Profile.Update},

				{Method: http.MethodGet, Path: "/lots", Handler: h.Lot.List},
				{Method: http.MethodPost, Path: "/lots/:id/reservations", Handler: h.Reservation.Reserve},

				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/reservations/:id/release", Handler: h.Reservation.Release},

				{Method: http.MethodGet, Path: "/history", Handler: h.History.ListOwn},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.User},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/lots", Handler: h.Lot.Create},
				{Method: http.MethodDelete, Path: "/lots/:id", Handler: h.Lot.Delete},
				{Method: http.MethodGet, Path: "/users", Handler: h.User.List},
				{Method: http.MethodGet, Path: "/users/:id/history", Handler: h.History.ListForUser},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.Admin},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
