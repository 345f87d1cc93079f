package components

import (
	"parking-app/internal/handler"
	"parking-app/internal/handler/api"
	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/config"
	"parking-app/internal/pkg/jwt"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewProfileHandler,
		api.NewLotHandler,
		api.NewReservationHandler,
		api.NewHistoryHandler,
		api.NewStatsHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(cmds, users, cfg.Cookie, jwtService)
}

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Profile     *api.ProfileHandler
	Lot         *api.LotHandler
	Reservation *api.ReservationHandler
	History     *api.HistoryHandler
	Stats       *api.StatsHandler
	User        *api.UserHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		Profile:     p.Profile,
		Lot:         p.Lot,
		Reservation: p.Reservation,
		History:     p.History,
		Stats:       p.Stats,
		User:        p.User,
	}
}
