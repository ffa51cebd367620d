package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gyeh/dtalab/internal/counter"
	"github.com/gyeh/dtalab/internal/edifact"
	"github.com/gyeh/dtalab/internal/exitcode"
	"github.com/gyeh/dtalab/internal/logging"
)

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Inspect or override reference counters",
}

var countersShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the next value of every counter track",
	Args:  cobra.NoArgs,
	RunE:  runCountersShow,
}

var countersSetCmd = &cobra.Command{
	Use:   "set <track> <next>",
	Short: "Set the next value of a counter track",
	Args:  cobra.ExactArgs(2),
	RunE:  runCountersSet,
}

func init() {
	countersCmd.AddCommand(countersShowCmd, countersSetCmd)
	rootCmd.AddCommand(countersCmd)
}

func runCountersShow(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	store, pool, err := openStore(ctx, log)
	if err != nil {
		log.Error().Err(err).Msg("counter store unavailable")
		os.Exit(exitcode.CounterStoreError)
	}
	if pool != nil {
		defer pool.Close()
	}

	for _, track := range counter.AllTracks {
		v, err := store.Peek(ctx, track)
		if err != nil {
			log.Error().Err(err).Str("track", string(track)).Msg("read counter failed")
			os.Exit(exitcode.CounterStoreError)
		}
		fmt.Printf("%-18s %s\n", track, edifact.Pad(v, 5))
	}
	return nil
}

func runCountersSet(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	track, err := counter.ParseTrack(args[0])
	if err != nil {
		log.Error().Err(err).Msg("invalid track")
		os.Exit(exitcode.UsageError)
	}
	next, err := strconv.Atoi(args[1])
	if err != nil || next < 1 || next > counter.MaxValue {
		log.Error().Str("value", args[1]).Msgf("next value must be 1-%d", counter.MaxValue)
		os.Exit(exitcode.UsageError)
	}

	store, pool, err := openStore(ctx, log)
	if err != nil {
		log.Error().Err(err).Msg("counter store unavailable")
		os.Exit(exitcode.CounterStoreError)
	}
	if pool != nil {
		defer pool.Close()
	}
	if err := store.Set(ctx, track, next); err != nil {
		log.Error().Err(err).Msg("set counter failed")
		os.Exit(exitcode.CounterStoreError)
	}
	log.Info().Str("track", string(track)).Int("next", next).Msg("counter updated")
	return nil
}
