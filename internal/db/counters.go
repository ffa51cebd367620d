package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/dtalab/internal/counter"
	embedsql "github.com/gyeh/dtalab/internal/sql"
)

// CounterStore keeps reference counters in dtalab.reference_counters. Each
// reservation runs in its own transaction holding a row lock.
type CounterStore struct {
	pool *pgxpool.Pool
}

// NewCounterStore returns a Postgres-backed counter.Store.
func NewCounterStore(pool *pgxpool.Pool) *CounterStore {
	return &CounterStore{pool: pool}
}

func (s *CounterStore) Peek(ctx context.Context, track counter.Track) (int, error) {
	var next int
	err := s.pool.QueryRow(ctx, embedsql.PeekCounter, string(track)).Scan(&next)
	if errors.Is(err, pgx.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("peek counter %s: %w", track, err)
	}
	return counter.Normalize(next), nil
}

func (s *CounterStore) Reserve(ctx context.Context, track counter.Track, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("reserve %d values: count must be positive", n)
	}
	var first int
	err := WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, embedsql.EnsureCounter, string(track)); err != nil {
			return fmt.Errorf("ensure counter: %w", err)
		}
		var next int
		if err := tx.QueryRow(ctx, embedsql.LockCounter, string(track)).Scan(&next); err != nil {
			return fmt.Errorf("lock counter: %w", err)
		}
		first = counter.Normalize(next)
		if _, err := tx.Exec(ctx, embedsql.SetCounter, string(track), counter.Advance(first, n)); err != nil {
			return fmt.Errorf("advance counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reserve counter %s: %w", track, err)
	}
	return first, nil
}

func (s *CounterStore) Set(ctx context.Context, track counter.Track, next int) error {
	if _, err := s.pool.Exec(ctx, embedsql.SetCounter, string(track), counter.Normalize(next)); err != nil {
		return fmt.Errorf("set counter %s: %w", track, err)
	}
	return nil
}

// Compile-time check that CounterStore satisfies the interface.
var _ counter.Store = (*CounterStore)(nil)
