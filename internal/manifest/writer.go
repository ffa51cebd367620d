package manifest

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/dtalab/internal/model"
)

// Write stores one row per file at path, replacing any existing file.
func Write(path, batchID string, files []model.GeneratedFile) error {
	rows := make([]Row, len(files))
	for i := range files {
		rows[i] = FromFile(batchID, &files[i])
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer out.Close()

	w := parquet.NewGenericWriter[Row](out)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write manifest rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close manifest writer: %w", err)
	}
	return out.Close()
}
