package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagecheck"
)

// Ensure ReportWriter implements pagecheck.ReportWriter at compile time.
var _ pagecheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports as indented JSON files with atomic replace
// semantics. The report is written to a temporary file in the target
// directory and renamed over the target, so a failed write never leaves a
// truncated report behind.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter targeting path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// Path returns the target file path.
func (w *ReportWriter) Path() string {
	return w.path
}

// WriteReport encodes the report and replaces the target file.
func (w *ReportWriter) WriteReport(ctx context.Context, report *pagecheck.Report) error {
	data, err := EncodeReport(report)
	if err != nil {
		return err
	}
	return WriteFileAtomic(w.path, data)
}

// EncodeReport returns the JSON encoding of a report: two-space indent,
// non-ASCII characters and markup characters left as is, trailing newline.
func EncodeReport(report *pagecheck.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it over path. Parent directories are created as needed.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(0644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace report: %w", err)
	}
	return nil
}
