package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperifyio/tripexport/internal/extract"
)

// Sink receives finished tables. Write returns a human-readable location
// for progress output. Close flushes whatever the sink buffered; a sink is
// only complete once Close returns nil.
type Sink interface {
	Write(ctx context.Context, t extract.Table) (string, error)
	Close() error
}

var (
	_ Sink = (*CSVDir)(nil)
	_ Sink = (*SQLite)(nil)
)

// CSVDir writes each table to <Dir>/<name>.csv with a header row. Rows end
// in CRLF, matching the files produced by the earlier Python exporter.
// Distinct tables go to distinct files, so concurrent Writes are safe.
type CSVDir struct {
	Dir string
}

// PathFor returns the file a table is written to.
func (c *CSVDir) PathFor(name string) string {
	return filepath.Join(c.Dir, name+".csv")
}

func (c *CSVDir) Write(ctx context.Context, t extract.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir output dir: %w", err)
	}
	path := c.PathFor(t.Name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeCSV(f, t); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func (c *CSVDir) Close() error { return nil }

func writeCSV(f *os.File, t extract.Table) error {
	w := csv.NewWriter(f)
	w.UseCRLF = true
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	return w.Error()
}
