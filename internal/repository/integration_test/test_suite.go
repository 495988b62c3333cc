package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"orders/internal/pkg/config"
	"orders/internal/pkg/postgres"
	"orders/pkg/logger/zap_adapter"
	"orders/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier connects to the database described by the POSTGRES_* variables
// and applies migrations once per test binary.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		if err := postgres.Migrate(zapLogger, connPool); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// GetPool returns the pool behind GetQuerier, for transaction managers.
func GetPool() *pgxpool.Pool {
	GetQuerier()
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `TRUNCATE TABLE orders;`)
	require.NoError(t, err)
}
