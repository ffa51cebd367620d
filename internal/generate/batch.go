package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/dtalab/internal/counter"
	"github.com/gyeh/dtalab/internal/model"
)

// BatchOptions controls RunBatch.
type BatchOptions struct {
	Count   int
	Workers int
	// FailFast aborts the batch on the first failed file. Otherwise failed
	// files are kept in the summary with Err set.
	FailFast bool
}

// ReserveRef consumes count values of one track and returns the first.
func ReserveRef(ctx context.Context, store counter.Store, track counter.Track, count int) (int, error) {
	first, err := store.Reserve(ctx, track, count)
	if err != nil {
		return 0, &StepError{Step: StepCounters, Err: fmt.Errorf("reserve %s refs: %w", track, err)}
	}
	return first, nil
}

// ReserveRefs consumes count interchange and message references for mode and
// returns the first of each.
func ReserveRefs(ctx context.Context, store counter.Store, mode model.Mode, count int) (interchangeRef, messageRef int, err error) {
	interchangeRef, err = ReserveRef(ctx, store, counter.InterchangeTrack(mode), count)
	if err != nil {
		return 0, 0, err
	}
	messageRef, err = ReserveRef(ctx, store, counter.TrackMessage, count)
	if err != nil {
		return 0, 0, err
	}
	return interchangeRef, messageRef, nil
}

// RunBatch generates opts.Count files. File i uses the references
// req.InterchangeRef+i and req.MessageRef+i (wrapping at 99999) and lands at
// index i of the summary regardless of completion order.
func RunBatch(ctx context.Context, log zerolog.Logger, req Request, opts BatchOptions) (*model.BatchSummary, error) {
	start := time.Now()
	req = req.Normalized().withClock(start)

	problems := ValidateRequest(req)
	if opts.Count < 1 {
		problems = append(problems, "count must be at least 1")
	}
	if len(problems) > 0 {
		return nil, &StepError{Step: StepValidate, Err: &ValidationError{Problems: problems}}
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	batchID := uuid.New()
	log = log.With().Str("batch_id", batchID.String()).Logger()
	log.Info().
		Int("count", opts.Count).
		Int("workers", workers).
		Str("type", req.MessageType).
		Str("mode", string(req.Mode)).
		Strs("scenarios", req.Scenarios).
		Msg("starting batch")

	files := make([]model.GeneratedFile, opts.Count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Count; i++ {
		if gctx.Err() != nil {
			break
		}
		item := req
		item.InterchangeRef = counter.Advance(req.InterchangeRef, i)
		item.MessageRef = counter.Advance(req.MessageRef, i)

		g.Go(func() error {
			f, err := Generate(item)
			if f == nil {
				return err
			}
			f.Index = i
			files[i] = *f
			if err != nil {
				log.Warn().
					Err(err).
					Int("index", i).
					Str("interchange_ref", f.InterchangeRef).
					Msg("file failed")
				if opts.FailFast {
					return fmt.Errorf("file %d (interchange %s): %w", i, f.InterchangeRef, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &model.BatchSummary{
		BatchID:   batchID.String(),
		Requested: opts.Count,
		Files:     files,
		Duration:  time.Since(start),
	}
	for i := range files {
		if files[i].OK() {
			summary.Generated++
		} else {
			summary.Failed++
		}
	}

	log.Info().
		Int("generated", summary.Generated).
		Int("failed", summary.Failed).
		Dur("duration", summary.Duration).
		Msg("batch complete")
	return summary, nil
}

// withClock fills a zero Now with now and a zero Today with now's day, so
// every file of a batch shares one reference day and one UNB timestamp.
func (r Request) withClock(now time.Time) Request {
	if r.Now.IsZero() {
		r.Now = now
	}
	if r.Today.IsZero() {
		y, m, d := r.Now.Date()
		r.Today = time.Date(y, m, d, 0, 0, 0, 0, r.Now.Location())
	}
	return r
}

// IsValidation reports whether err came from request validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
