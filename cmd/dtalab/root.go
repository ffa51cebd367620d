package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/dtalab/internal/casegen"
	"github.com/gyeh/dtalab/internal/config"
	"github.com/gyeh/dtalab/internal/exitcode"
	"github.com/gyeh/dtalab/internal/generate"
	"github.com/gyeh/dtalab/internal/model"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "dtalab",
	Short: "Synthetic TP4a EDIFACT test-file generator",
	Long: "Generates synthetic, reproducible hospital data-exchange interchanges " +
		"(UNA/UNB/UNH/UNT/UNZ) for admission, discharge, billing and the other TP4a message types.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ConfigFile != "" {
			if err := cfg.LoadFromFile(cfg.ConfigFile); err != nil {
				return err
			}
		}
		cfg.ApplyDefaults()
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.ConfigFile, "config", "", "YAML file with default generation settings")
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DTALAB_DB_URL"), "Postgres connection string for counters and batch records (or set DTALAB_DB_URL)")
	pf.StringVar(&cfg.StateFile, "state-file", "", "YAML counter state file used when no DSN is set (default "+config.DefaultStateFile+")")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&cfg.EphemeralCounters, "ephemeral-counters", false, "Start every counter at 1 and persist nothing (ignores --dsn and --state-file)")
}

// addGenerationFlags registers the flags shared by generate and batch.
func addGenerationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cfg.SenderID, "sender", "", "Sender IK (9 digits)")
	f.StringVar(&cfg.ReceiverID, "receiver", "", "Receiver IK (9 digits)")
	f.StringVar(&cfg.AppRef, "app-ref", "", "Application reference, 11 characters A-Z/0-9")
	f.StringVar(&cfg.MessageType, "type", "", "Message type: "+strings.Join(model.MessageTypeCodes(), ", ")+" (default "+config.DefaultMessageType+")")
	f.StringVar(&cfg.ProcessCode, "process", "", "2-digit process code (default "+config.DefaultProcessCode+")")
	f.StringVar(&cfg.SequenceNo, "seq", "", "2-digit sequence number (default "+config.DefaultSequenceNo+")")
	f.StringVar(&cfg.Mode, "mode", "", "TEST or ECHT (default TEST)")
	f.BoolVar(&cfg.OmitUNA, "no-una", false, "Omit the UNA service string advice")
	f.StringSliceVar(&cfg.Scenarios, "scenario", nil, "Error scenario to inject (repeatable): "+scenarioList())
	f.StringVar(&cfg.Today, "today", "", "Reference day for case dates, e.g. 2026-10-16 (default today)")
	f.IntVar(&cfg.InterchangeRef, "interchange-ref", 0, "Override the first interchange reference instead of using the counter store")
	f.IntVar(&cfg.MessageRef, "message-ref", 0, "Override the first message reference instead of using the counter store")
}

func scenarioList() string {
	names := make([]string, 0)
	for _, s := range casegen.Scenarios() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// exitFor maps a pipeline error to a process exit code.
func exitFor(err error) int {
	var se *generate.StepError
	if !errors.As(err, &se) {
		return exitcode.GenerationError
	}
	switch se.Step {
	case generate.StepValidate:
		return exitcode.ValidationError
	case generate.StepCounters:
		return exitcode.CounterStoreError
	case generate.StepWrite:
		return exitcode.WriteError
	default:
		return exitcode.GenerationError
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
