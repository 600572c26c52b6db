package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the read repositories use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool Querier
}
