// Package pg implements the relational catalog store on Postgres via pgx:
// filter taxonomy lookups, slug resolution, the direct-database fallback
// search, and the document loaders used by the index sync.
package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gunplahub/kitsearch/internal/domain"
)

// Store wraps a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to Postgres and verifies the connection.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Store{pool: pool}, nil
}

// NewStoreFromPool wraps an existing pool. Used by tests and embedding hosts.
func NewStoreFromPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", queryErr(err))
	}
	return nil
}

// queryErr classifies a catalog query failure. Missing rows map to
// domain.ErrNotFound; anything else means the catalog could not serve
// the query and maps to domain.ErrCatalogUnavailable so the transport
// answers 503 instead of a generic internal error.
func queryErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
