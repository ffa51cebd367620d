package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gyeh/dtalab/internal/archive"
	"github.com/gyeh/dtalab/internal/exitcode"
	"github.com/gyeh/dtalab/internal/generate"
	"github.com/gyeh/dtalab/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one interchange file",
	RunE:  runGenerate,
}

func init() {
	addGenerationFlags(generateCmd)
	generateCmd.Flags().StringVar(&cfg.OutPath, "out", "-", "Output file or directory; - writes to stdout")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

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
	if err := resolveRefs(ctx, store, &req, 1); err != nil {
		log.Error().Err(err).Msg("reserving references failed")
		os.Exit(exitFor(err))
	}

	f, err := generate.Generate(req)
	if err != nil {
		log.Error().Err(err).Str("type", req.MessageType).Int("interchange_ref", req.InterchangeRef).Msg("generation failed")
		os.Exit(exitFor(err))
	}

	if cfg.OutPath == "-" {
		fmt.Print(f.Content)
	} else {
		path := cfg.OutPath
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			path = filepath.Join(path, f.FileName)
		}
		if err := archive.WriteFile(path, f.Content); err != nil {
			log.Error().Err(err).Msg("write failed")
			os.Exit(exitcode.WriteError)
		}
		log.Info().Str("file", path).Msg("interchange written")
	}

	log.Info().
		Str("file_name", f.FileName).
		Str("interchange_ref", f.InterchangeRef).
		Str("message_ref", f.MessageRef).
		Int64("seed", f.Seed).
		Int("payload_segments", f.PayloadCount).
		Msg("generated")
	return nil
}
