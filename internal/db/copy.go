package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/dtalab/internal/model"
	"github.com/gyeh/dtalab/internal/normalize"
)

// GeneratedFileColumns returns the ordered column names for COPY into
// dtalab.generated_files.
func GeneratedFileColumns() []string {
	return []string{
		"batch_id",
		"file_index",
		"file_name",
		"mode",
		"message_type",
		"interchange_ref",
		"message_ref",
		"seed",
		"scenarios",
		"payload_segments",
		"total_cents",
		"sha256",
		"error",
	}
}

// fileValues returns f's values in COPY column order. Failed files carry
// their error text instead of a content hash.
func fileValues(batchID uuid.UUID, f *model.GeneratedFile) []any {
	var sha, errText *string
	var totalCents *int64
	if f.OK() {
		h := normalize.ContentHash(f.Content)
		sha = &h
		if f.MessageType == model.MessageRECH {
			tc := f.TotalCents
			totalCents = &tc
		}
	} else {
		e := f.Err.Error()
		errText = &e
	}
	scenarios := f.Scenarios
	if scenarios == nil {
		scenarios = []string{}
	}
	return []any{
		batchID,
		int32(f.Index),
		f.FileName,
		string(f.Mode),
		f.MessageType.String(),
		f.InterchangeRef,
		f.MessageRef,
		f.Seed,
		scenarios,
		int32(f.PayloadCount),
		totalCents,
		sha,
		errText,
	}
}

// RecordFiles COPY-loads a batch's files into dtalab.generated_files.
func RecordFiles(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, files []model.GeneratedFile) (int64, error) {
	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{"dtalab", "generated_files"},
		GeneratedFileColumns(),
		pgx.CopyFromSlice(len(files), func(i int) ([]any, error) {
			return fileValues(batchID, &files[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy generated files: %w", err)
	}
	return n, nil
}
