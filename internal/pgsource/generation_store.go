package pgsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dd0wney/graphaccel/internal/generation"
)

// bootstrapSchema mirrors the original's extension_sql! bootstrap block:
// a single table keyed by graph_name holding a monotonic counter.
const bootstrapSchema = `
CREATE SCHEMA IF NOT EXISTS graphaccel;

CREATE TABLE IF NOT EXISTS graphaccel.generation (
    graph_name text PRIMARY KEY,
    generation bigint NOT NULL DEFAULT 1,
    updated_at timestamptz NOT NULL DEFAULT now()
);`

// EnsureSchema creates the generation table if it does not already exist.
// Call once at startup before using Source as a generation.Store.
func (s *Source) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, bootstrapSchema)
	if err != nil {
		return fmt.Errorf("pgsource: bootstrap schema: %w", err)
	}
	return nil
}

// Invalidate bumps graphName's generation (creating the row on first call)
// and satisfies generation.Store. Notification is left to the caller's
// generation.Notifier, since this project supports more than pg_notify
// (see internal/generation's CallbackNotifier and MangosNotifier).
func (s *Source) Invalidate(ctx context.Context, graphName string) (int64, error) {
	const q = `
		INSERT INTO graphaccel.generation (graph_name, generation, updated_at)
		VALUES ($1, 1, now())
		ON CONFLICT (graph_name)
		DO UPDATE SET generation = graphaccel.generation.generation + 1,
		              updated_at = now()
		RETURNING generation`

	var newGen int64
	if err := s.pool.QueryRow(ctx, q, graphName).Scan(&newGen); err != nil {
		return 0, fmt.Errorf("pgsource: invalidate %s: %w", graphName, err)
	}
	return newGen, nil
}

// Fetch reads the current generation for graphName, returning 0 if no row
// exists yet (never invalidated) and generation.ErrStoreUnavailable if the
// table itself can't be reached.
func (s *Source) Fetch(ctx context.Context, graphName string) (int64, error) {
	const q = `SELECT generation FROM graphaccel.generation WHERE graph_name = $1`

	var gen int64
	err := s.pool.QueryRow(ctx, q, graphName).Scan(&gen)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, generation.ErrStoreUnavailable
	}
	return gen, nil
}

var _ generation.Store = (*Source)(nil)
