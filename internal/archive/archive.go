// Package archive packages generated interchanges as a zip file or as plain
// files in a directory.
package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/gyeh/dtalab/internal/model"
)

// WriteZip stores every generated file in a new zip archive at path and
// returns the number of entries written. Failed files are skipped.
func WriteZip(path string, files []model.GeneratedFile) (int, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create zip: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	n := 0
	for i := range files {
		f := &files[i]
		if !f.OK() {
			continue
		}
		w, err := zw.Create(f.FileName)
		if err != nil {
			return n, fmt.Errorf("zip entry %s: %w", f.FileName, err)
		}
		if _, err := w.Write([]byte(f.Content)); err != nil {
			return n, fmt.Errorf("zip write %s: %w", f.FileName, err)
		}
		n++
	}
	if err := zw.Close(); err != nil {
		return n, fmt.Errorf("close zip: %w", err)
	}
	return n, out.Close()
}

// WriteDir writes every generated file into dir, creating it if needed.
func WriteDir(dir string, files []model.GeneratedFile) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	n := 0
	for i := range files {
		f := &files[i]
		if !f.OK() {
			continue
		}
		if err := WriteFile(filepath.Join(dir, f.FileName), f.Content); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// WriteFile writes a single interchange.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
