package database

import (
	"context"
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/config"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Database is the query surface the services code against. *pgxpool.Pool
// satisfies it, and tests can swap in a fake.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func NewPostgresPool() (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(config.GetDBConnectionString())
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	return pgxpool.ConnectConfig(context.Background(), poolConfig)
}
