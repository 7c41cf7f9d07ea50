package bootstrap

import (
	"context"
	"log/slog"

	"gin-storefront/internal/infra/db"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the shared pool; the same pool backs catalog reads, checkout transactions and the idempotency store.
func NewDB(lc fx.Lifecycle, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg)
	if err != nil {
		return nil, errs.Wrapf(err, "connect to %s/%s", cfg.Host, cfg.DBName)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool ready",
				"host", cfg.Host,
				"db", cfg.DBName,
				"max_conns", stat.MaxConns(),
				"total_conns", stat.TotalConns())
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
