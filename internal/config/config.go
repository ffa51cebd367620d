package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/dtalab/internal/generate"
	"github.com/gyeh/dtalab/internal/model"
	"github.com/gyeh/dtalab/internal/normalize"
)

// Built-in defaults applied after flags and the config file.
const (
	DefaultMessageType = "AUFN"
	DefaultProcessCode = "10"
	DefaultSequenceNo  = "01"
	DefaultStateFile   = "dtalab-counters.yaml"
)

// Config holds all runtime configuration for a dtalab run.
type Config struct {
	LogFormat  string // "text" or "json"
	ConfigFile string
	StateFile  string
	DSN        string
	// EphemeralCounters keeps counters in memory for this run only.
	EphemeralCounters bool

	SenderID    string
	ReceiverID  string
	AppRef      string
	MessageType string
	ProcessCode string
	SequenceNo  string
	Mode        string
	OmitUNA     bool
	Scenarios   []string
	Today       string // reference day for case dates; empty means today

	// InterchangeRef and MessageRef override the counter store when > 0.
	InterchangeRef int
	MessageRef     int

	Count        int
	Workers      int
	OutPath      string
	OutDir       string
	ZipPath      string
	ManifestPath string
	FailFast     bool
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	SenderID    string   `yaml:"sender_id"`
	ReceiverID  string   `yaml:"receiver_id"`
	AppRef      string   `yaml:"app_ref"`
	MessageType string   `yaml:"message_type"`
	ProcessCode string   `yaml:"process_code"`
	SequenceNo  string   `yaml:"sequence_no"`
	Mode        string   `yaml:"mode"`
	IncludeUNA  *bool    `yaml:"include_una"`
	Scenarios   []string `yaml:"scenarios"`
	Workers     int      `yaml:"workers"`
	StateFile   string   `yaml:"state_file"`
	DSN         string   `yaml:"dsn"`
}

// LoadFromFile reads a YAML config file and fills every field that flags
// left unset.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	fill(&c.SenderID, yc.SenderID)
	fill(&c.ReceiverID, yc.ReceiverID)
	fill(&c.AppRef, yc.AppRef)
	fill(&c.MessageType, yc.MessageType)
	fill(&c.ProcessCode, yc.ProcessCode)
	fill(&c.SequenceNo, yc.SequenceNo)
	fill(&c.Mode, yc.Mode)
	fill(&c.StateFile, yc.StateFile)
	fill(&c.DSN, yc.DSN)
	if !c.OmitUNA && yc.IncludeUNA != nil && !*yc.IncludeUNA {
		c.OmitUNA = true
	}
	if len(c.Scenarios) == 0 {
		c.Scenarios = yc.Scenarios
	}
	if c.Workers == 0 {
		c.Workers = yc.Workers
	}

	if c.Mode != "" {
		if _, err := model.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	return nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// ApplyDefaults fills whatever is still unset after flags and the config file.
func (c *Config) ApplyDefaults() {
	fill(&c.MessageType, DefaultMessageType)
	fill(&c.ProcessCode, DefaultProcessCode)
	fill(&c.SequenceNo, DefaultSequenceNo)
	fill(&c.Mode, string(model.ModeTest))
	fill(&c.StateFile, DefaultStateFile)
	fill(&c.LogFormat, "text")
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	if c.Count < 1 {
		c.Count = 1
	}
}

// TodayTime parses Today, returning the zero time when it is empty.
func (c *Config) TodayTime() (time.Time, error) {
	if c.Today == "" {
		return time.Time{}, nil
	}
	t := normalize.ParseDate(c.Today)
	if t == nil {
		return time.Time{}, fmt.Errorf("--today %q is not a date", c.Today)
	}
	return *t, nil
}

// Request builds a generation request. References are left for the caller
// to fill from the counter store unless overridden.
func (c *Config) Request() (generate.Request, error) {
	today, err := c.TodayTime()
	if err != nil {
		return generate.Request{}, err
	}
	return generate.Request{
		SenderID:       c.SenderID,
		ReceiverID:     c.ReceiverID,
		AppRef:         c.AppRef,
		MessageType:    c.MessageType,
		ProcessCode:    c.ProcessCode,
		SequenceNo:     c.SequenceNo,
		IncludeUNA:     !c.OmitUNA,
		Mode:           model.Mode(c.Mode),
		Scenarios:      c.Scenarios,
		InterchangeRef: c.InterchangeRef,
		MessageRef:     c.MessageRef,
		Today:          today,
	}, nil
}

// ValidateBatch checks the batch output settings.
func (c *Config) ValidateBatch() error {
	if c.Count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if c.OutDir == "" && c.ZipPath == "" {
		return fmt.Errorf("--out-dir or --zip is required")
	}
	return nil
}

// ValidateWithDSN checks that a database connection string is present.
func (c *Config) ValidateWithDSN() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DTALAB_DB_URL is required")
	}
	return nil
}
