package model

import "time"

// GeneratedFile is one interchange produced by a run.
type GeneratedFile struct {
	Index          int
	FileName       string
	Mode           Mode
	MessageType    MessageType
	InterchangeRef string
	MessageRef     string
	Seed           int64
	Scenarios      []string
	PayloadCount   int
	TotalCents     int64
	Content        string
	Err            error
}

// OK reports whether the file was generated.
func (f *GeneratedFile) OK() bool {
	return f.Err == nil
}

// BatchSummary captures metrics from a single batch run.
type BatchSummary struct {
	BatchID   string
	Requested int
	Generated int
	Failed    int
	Files     []GeneratedFile
	Duration  time.Duration
}
