package manifest

import (
	"github.com/gyeh/dtalab/internal/model"
	"github.com/gyeh/dtalab/internal/normalize"
)

// Row is one generated (or failed) interchange as recorded in a manifest.
type Row struct {
	BatchID         string   `parquet:"batch_id"`
	Index           int32    `parquet:"index"`
	FileName        string   `parquet:"file_name"`
	Mode            string   `parquet:"mode"`
	MessageType     string   `parquet:"message_type"`
	InterchangeRef  string   `parquet:"interchange_ref"`
	MessageRef      string   `parquet:"message_ref"`
	Seed            int64    `parquet:"seed"`
	Scenarios       []string `parquet:"scenarios,list"`
	PayloadSegments int32    `parquet:"payload_segments"`
	TotalCents      *int64   `parquet:"total_cents,optional"`
	SHA256          *string  `parquet:"sha256,optional"`
	Error           *string  `parquet:"error,optional"`
}

// OK reports whether the row describes a file that was written.
func (r *Row) OK() bool {
	return r.Error == nil
}

// FromFile converts a generated file into a manifest row. TotalCents is only
// set for billing messages.
func FromFile(batchID string, f *model.GeneratedFile) Row {
	row := Row{
		BatchID:         batchID,
		Index:           int32(f.Index),
		FileName:        f.FileName,
		Mode:            string(f.Mode),
		MessageType:     f.MessageType.String(),
		InterchangeRef:  f.InterchangeRef,
		MessageRef:      f.MessageRef,
		Seed:            f.Seed,
		Scenarios:       f.Scenarios,
		PayloadSegments: int32(f.PayloadCount),
	}
	if !f.OK() {
		e := f.Err.Error()
		row.Error = &e
		return row
	}
	sha := normalize.ContentHash(f.Content)
	row.SHA256 = &sha
	if f.MessageType == model.MessageRECH {
		tc := f.TotalCents
		row.TotalCents = &tc
	}
	return row
}
