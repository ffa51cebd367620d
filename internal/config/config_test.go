package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gyeh/dtalab/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, `
sender_id: "123456789"
receiver_id: "987654321"
app_ref: KRH00000001
message_type: RECH
mode: ECHT
include_una: false
scenarios:
  - empty_department
workers: 3
`)
	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.SenderID != "123456789" || c.ReceiverID != "987654321" || c.AppRef != "KRH00000001" {
		t.Errorf("identifiers = %q %q %q", c.SenderID, c.ReceiverID, c.AppRef)
	}
	if c.MessageType != "RECH" || c.Mode != "ECHT" || !c.OmitUNA || c.Workers != 3 {
		t.Errorf("config = %+v", c)
	}
	if len(c.Scenarios) != 1 || c.Scenarios[0] != "empty_department" {
		t.Errorf("scenarios = %v", c.Scenarios)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	path := writeConfig(t, "sender_id: \"111111111\"\nmessage_type: ENTL\nscenarios: [invalid_insured_id]\n")
	c := Config{SenderID: "222222222", Scenarios: []string{"empty_department"}}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatal(err)
	}
	if c.SenderID != "222222222" {
		t.Errorf("flag value overwritten: %q", c.SenderID)
	}
	if c.MessageType != "ENTL" {
		t.Errorf("unset field not filled: %q", c.MessageType)
	}
	if c.Scenarios[0] != "empty_department" {
		t.Errorf("scenarios overwritten: %v", c.Scenarios)
	}
}

func TestLoadFromFile_UnknownMode(t *testing.T) {
	var c Config
	if err := c.LoadFromFile(writeConfig(t, "mode: LIVE\n")); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestLoadFromFile_BadYAML(t *testing.T) {
	var c Config
	if err := c.LoadFromFile(writeConfig(t, "sender_id: [\n")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyDefaults(t *testing.T) {
	c := Config{ProcessCode: "20"}
	c.ApplyDefaults()
	if c.ProcessCode != "20" {
		t.Errorf("explicit process code replaced: %q", c.ProcessCode)
	}
	if c.MessageType != DefaultMessageType || c.SequenceNo != DefaultSequenceNo || c.Mode != "TEST" {
		t.Errorf("defaults = %+v", c)
	}
	if c.Workers < 1 || c.Count != 1 || c.StateFile != DefaultStateFile {
		t.Errorf("defaults = %+v", c)
	}
}

func TestRequest(t *testing.T) {
	c := Config{SenderID: "123456789", Mode: "ECHT", Today: "16.10.2026", OmitUNA: true}
	c.ApplyDefaults()
	r, err := c.Request()
	if err != nil {
		t.Fatal(err)
	}
	if r.Mode != model.ModeProd || r.IncludeUNA || r.ProcessCode != "10" {
		t.Errorf("request = %+v", r)
	}
	if r.Today.Year() != 2026 || r.Today.Month() != time.October || r.Today.Day() != 16 {
		t.Errorf("today = %v", r.Today)
	}

	c.Today = "yesterday"
	if _, err := c.Request(); err == nil {
		t.Error("expected error for unparsable --today")
	}
}

func TestValidateBatch(t *testing.T) {
	c := Config{Count: 2}
	if err := c.ValidateBatch(); err == nil {
		t.Error("expected error without an output")
	}
	c.ZipPath = "out.zip"
	if err := c.ValidateBatch(); err != nil {
		t.Errorf("ValidateBatch: %v", err)
	}
}

func TestValidateWithDSN(t *testing.T) {
	var c Config
	if err := c.ValidateWithDSN(); err == nil {
		t.Error("expected error for empty DSN")
	}
}
