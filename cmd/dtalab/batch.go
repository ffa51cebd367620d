package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gyeh/dtalab/internal/archive"
	"github.com/gyeh/dtalab/internal/db"
	"github.com/gyeh/dtalab/internal/exitcode"
	"github.com/gyeh/dtalab/internal/generate"
	"github.com/gyeh/dtalab/internal/logging"
	"github.com/gyeh/dtalab/internal/manifest"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate many interchanges into a directory or zip",
	RunE:  runBatch,
}

func init() {
	addGenerationFlags(batchCmd)
	f := batchCmd.Flags()
	f.IntVar(&cfg.Count, "count", 10, "Number of files to generate")
	f.IntVar(&cfg.Workers, "workers", 0, "Parallel workers (default number of CPUs)")
	f.StringVar(&cfg.OutDir, "out-dir", "", "Write files into this directory")
	f.StringVar(&cfg.ZipPath, "zip", "", "Write files into this zip archive")
	f.StringVar(&cfg.ManifestPath, "manifest", "", "Write a Parquet manifest of the batch")
	f.BoolVar(&cfg.FailFast, "fail-fast", false, "Abort on the first failed file instead of skipping it")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cfg.ValidateBatch(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	req, err := cfg.Request()
	if err != nil {
		log.Error().Err(err).Msg("invalid flags")
		os.Exit(exitcode.UsageError)
	}
	req = req.Normalized()
	if err := precheck(req); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(exitFor(err))
	}

	store, pool, err := openStore(ctx, log)
	if err != nil {
		log.Error().Err(err).Msg("counter store unavailable")
		os.Exit(exitcode.CounterStoreError)
	}
	if pool != nil {
		defer pool.Close()
	}
	if err := resolveRefs(ctx, store, &req, cfg.Count); err != nil {
		log.Error().Err(err).Msg("reserving references failed")
		os.Exit(exitFor(err))
	}

	summary, err := generate.RunBatch(ctx, log, req, generate.BatchOptions{
		Count:    cfg.Count,
		Workers:  cfg.Workers,
		FailFast: cfg.FailFast,
	})
	if err != nil {
		log.Error().Err(err).Msg("batch failed")
		os.Exit(exitFor(err))
	}

	if cfg.OutDir != "" {
		n, err := archive.WriteDir(cfg.OutDir, summary.Files)
		if err != nil {
			log.Error().Err(err).Msg("writing files failed")
			os.Exit(exitcode.WriteError)
		}
		log.Info().Int("files", n).Str("dir", cfg.OutDir).Msg("files written")
	}
	if cfg.ZipPath != "" {
		n, err := archive.WriteZip(cfg.ZipPath, summary.Files)
		if err != nil {
			log.Error().Err(err).Msg("writing zip failed")
			os.Exit(exitcode.WriteError)
		}
		log.Info().Int("files", n).Str("zip", cfg.ZipPath).Msg("zip written")
	}
	if cfg.ManifestPath != "" {
		if err := manifest.Write(cfg.ManifestPath, summary.BatchID, summary.Files); err != nil {
			log.Error().Err(err).Msg("writing manifest failed")
			os.Exit(exitcode.WriteError)
		}
		log.Info().Str("manifest", cfg.ManifestPath).Msg("manifest written")
	}
	if pool != nil {
		n, err := db.RecordFiles(ctx, pool, uuid.MustParse(summary.BatchID), summary.Files)
		if err != nil {
			log.Error().Err(err).Msg("recording batch failed")
			os.Exit(exitcode.WriteError)
		}
		log.Info().Int64("rows", n).Msg("batch recorded")
	}

	fmt.Printf("Batch %s: %d generated, %d failed of %d (%.2fs)\n",
		summary.BatchID, summary.Generated, summary.Failed, summary.Requested, summary.Duration.Seconds())
	if summary.Failed > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
