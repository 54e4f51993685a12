package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings carries the tuning knobs for the connection pool. Values come
// from application config so deployments can size the pool per environment.
type PoolSettings struct {
	MaxConns     int32
	MinConns     int32
	ConnLifetime time.Duration
	ConnIdleTime time.Duration
}

type DB struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string, settings PoolSettings) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	cfg.MaxConns = settings.MaxConns
	cfg.MinConns = settings.MinConns
	cfg.MaxConnLifetime = settings.ConnLifetime
	cfg.MaxConnIdleTime = settings.ConnIdleTime
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connected",
		"max_conns", settings.MaxConns,
		"min_conns", settings.MinConns,
		"conn_lifetime", settings.ConnLifetime)
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

func (db *DB) Health(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}
