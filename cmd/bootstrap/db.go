package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"parking-app/internal/infra/db"
	"parking-app/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects eagerly so a bad DSN fails fx startup rather than the
// first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns,
		"tx_max_retries", cfg.DB.TxMaxRetries)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
