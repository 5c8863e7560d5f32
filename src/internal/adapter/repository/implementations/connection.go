package implementations

import (
	"context"
	"fmt"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PoolOptions sizes the Postgres connection pool. Zero values keep the defaults.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

func (o PoolOptions) withDefaults() PoolOptions {
	if o.MaxOpenConns <= 0 {
		o.MaxOpenConns = 30
	}
	if o.MaxIdleConns <= 0 {
		o.MaxIdleConns = 20
	}
	if o.MaxIdleConns > o.MaxOpenConns {
		o.MaxIdleConns = o.MaxOpenConns
	}
	if o.ConnMaxIdleTime <= 0 {
		o.ConnMaxIdleTime = 5 * time.Minute
	}
	if o.ConnMaxLifetime <= 0 {
		o.ConnMaxLifetime = 15 * time.Minute
	}
	return o
}

// Open connects to Postgres and verifies the connection before returning.
func Open(ctx context.Context, dsn string, pool PoolOptions) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	pool = pool.withDefaults()
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	logger.Info("postgres connection pool ready", logger.Fields{
		"maxOpenConns": pool.MaxOpenConns,
		"maxIdleConns": pool.MaxIdleConns,
	})
	return db, nil
}
