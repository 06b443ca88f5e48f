// Package database builds the shared Postgres connection pool and applies
// schema migrations. The pool is created once at process start and injected
// into every repo; nothing in this package holds global state.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mds-studio/mds-backend/migrations"
)

// PoolConfig carries the pool settings read from configuration.
type PoolConfig struct {
	DatabaseURL string
	MaxConns    int32
}

// NewPool parses the DSN, applies the pool sizing, and verifies the store is
// reachable before returning. Callers own the returned pool and must Close it.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database.NewPool: parse DSN: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("database.NewPool: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database.NewPool: ping: %w", err)
	}
	return pool, nil
}

// Migrate applies every pending migration embedded in the migrations package.
// goose needs database/sql, so the pool is exposed through the pgx stdlib
// driver. The *sql.DB borrows pool connections and keeps none idle, so it is
// left for the pool to reclaim rather than closed.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationResult, error) {
	return MigrateDB(ctx, stdlib.OpenDBFromPool(pool))
}

// NewMigrationProvider returns a goose provider over the embedded migrations.
func NewMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("database.NewMigrationProvider: %w", err)
	}
	return provider, nil
}

// MigrateDB applies every pending migration on an existing *sql.DB.
func MigrateDB(ctx context.Context, db *sql.DB) ([]*goose.MigrationResult, error) {
	provider, err := NewMigrationProvider(db)
	if err != nil {
		return nil, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("database.Migrate: up: %w", err)
	}
	return results, nil
}

// RegisterPoolMetrics exposes the pool's connection counts on reg.
func RegisterPoolMetrics(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "mds_db_pool_total_conns",
			Help: "Connections currently open in the pool",
		}, func() float64 { return float64(pool.Stat().TotalConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "mds_db_pool_acquired_conns",
			Help: "Connections currently checked out by requests",
		}, func() float64 { return float64(pool.Stat().AcquiredConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "mds_db_pool_max_conns",
			Help: "Configured pool size",
		}, func() float64 { return float64(pool.Stat().MaxConns()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "mds_db_pool_empty_acquire_total",
			Help: "Acquires that had to wait because the pool was empty",
		}, func() float64 { return float64(pool.Stat().EmptyAcquireCount()) }),
	}
	for _, g := range gauges {
		if err := reg.Register(g); err != nil {
			return fmt.Errorf("database.RegisterPoolMetrics: %w", err)
		}
	}
	return nil
}
