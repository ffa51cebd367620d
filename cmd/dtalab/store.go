package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/dtalab/internal/counter"
	"github.com/gyeh/dtalab/internal/db"
	"github.com/gyeh/dtalab/internal/generate"
)

// openStore returns an in-memory store for --ephemeral-counters, the Postgres
// counter store when a DSN is configured and the YAML state file otherwise.
// The pool is nil unless Postgres is used; the caller closes it.
func openStore(ctx context.Context, log zerolog.Logger) (counter.Store, *pgxpool.Pool, error) {
	if cfg.EphemeralCounters {
		log.Debug().Msg("using in-memory counter store")
		return counter.NewMemoryStore(), nil, nil
	}
	if cfg.DSN == "" {
		log.Debug().Str("state_file", cfg.StateFile).Msg("using file counter store")
		return counter.NewFileStore(cfg.StateFile), nil, nil
	}
	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return db.NewCounterStore(pool), pool, nil
}

// resolveRefs fills the request's starting references, reserving count
// values only on the tracks that were not given explicitly.
func resolveRefs(ctx context.Context, store counter.Store, req *generate.Request, count int) error {
	if req.InterchangeRef == 0 {
		ic, err := generate.ReserveRef(ctx, store, counter.InterchangeTrack(req.Mode), count)
		if err != nil {
			return err
		}
		req.InterchangeRef = ic
	}
	if req.MessageRef == 0 {
		msg, err := generate.ReserveRef(ctx, store, counter.TrackMessage, count)
		if err != nil {
			return err
		}
		req.MessageRef = msg
	}
	return nil
}

// precheck validates req with placeholder references so that no counter
// values are consumed for a request that cannot be generated.
func precheck(req generate.Request) error {
	candidate := req.Normalized()
	if candidate.InterchangeRef == 0 {
		candidate.InterchangeRef = 1
	}
	if candidate.MessageRef == 0 {
		candidate.MessageRef = 1
	}
	if problems := generate.ValidateRequest(candidate); len(problems) > 0 {
		return &generate.StepError{Step: generate.StepValidate, Err: &generate.ValidationError{Problems: problems}}
	}
	return nil
}
