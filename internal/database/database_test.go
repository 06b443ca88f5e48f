package database_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mds-studio/mds-backend/internal/database"
	dbtest "github.com/mds-studio/mds-backend/testutil"
)

func TestNewPool_rejectsBadDSN(t *testing.T) {
	_, err := database.NewPool(context.Background(), database.PoolConfig{DatabaseURL: "postgres://%zz"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse DSN")
}

func TestNewPool_appliesMaxConns(t *testing.T) {
	pool, err := database.NewPool(context.Background(), database.PoolConfig{
		DatabaseURL: dbtest.DSN(t),
		MaxConns:    3,
	})
	require.NoError(t, err)
	defer pool.Close()

	assert.Equal(t, int32(3), pool.Stat().MaxConns())
}

func TestMigrate_isIdempotent(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()

	_, err := database.Migrate(ctx, pool)
	require.NoError(t, err)

	results, err := database.Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, results, "second run has nothing to apply")
	require.NoError(t, pool.Ping(ctx), "pool survives the migration handle")
}

func TestRegisterPoolMetrics(t *testing.T) {
	pool := dbtest.NewPool(t)
	reg := prometheus.NewRegistry()

	require.NoError(t, database.RegisterPoolMetrics(reg, pool))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Error(t, database.RegisterPoolMetrics(reg, pool), "duplicate registration is refused")
}
