package components

import (
	"parking-app/internal/domain/reservation"
	"parking-app/internal/pkg/clock"
	"parking-app/internal/usecase"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewHourlyCeilingCalculator,
		fx.As(new(reservation.BillingCalculator)),
	),
	func(clock clock.Clock, billing reservation.BillingCalculator) *reservation.Services {
		return &reservation.Services{
			Clock:   clock,
			Billing: billing,
		}
	},
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewLotCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewLotQueries,
		queries.NewReservationQueries,
		queries.NewHistoryQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
