package components

import (
	"parking-app/internal/infra/query"
	"parking-app/internal/infra/readstore"
	"parking-app/internal/infra/repository"
	"parking-app/internal/infra/uow"
	"parking-app/internal/pkg/config"
	"parking-app/internal/usecase/queries"
	"parking-app/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Lot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LotReadQueries)),
		),
		fx.Annotate(
			readstore.NewLotReadStore,
			fx.As(new(queries.LotReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// History
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HistoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.As(new(queries.HistoryReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
		// Login reads outside a transaction through this one.
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserWriteQueries)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewUnitOfWork(pool *pgxpool.Pool, q *query.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, cfg.DB.TxMaxRetries)
}
