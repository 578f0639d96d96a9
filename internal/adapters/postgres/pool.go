package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

// PoolOption adjusts the pool configuration before the pool is built.
type PoolOption func(*pgxpool.Config)

// WithQueryTracer installs a pgx query tracer on every connection.
func WithQueryTracer(tracer pgx.QueryTracer) PoolOption {
	return func(c *pgxpool.Config) {
		c.ConnConfig.Tracer = tracer
	}
}

// NewPool parses cfg.URL, applies the TLS settings, and returns an
// unconnected pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, opts ...PoolOption) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		// pgconn masks the password in ParseConfigError.
		return nil, fmt.Errorf("parsing database url: %w", err)
	}

	applyTLS(&poolCfg.ConnConfig.Config, cfg.TLS)

	for _, opt := range opts {
		opt(poolCfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating pgx pool: %w", err)
	}
	return pool, nil
}
