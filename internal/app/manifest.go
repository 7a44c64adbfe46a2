package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// manifestEntry is a compact record of a single exported table.
type manifestEntry struct {
	Table  string `json:"table"`
	File   string `json:"file"`
	Rows   int    `json:"rows"`
	SHA256 string `json:"sha256"`
}

// manifestMeta captures run details that aid reproducibility.
type manifestMeta struct {
	RunID       string    `json:"run_id"`
	Version     string    `json:"version"`
	Input       string    `json:"input"`
	InputSHA256 string    `json:"input_sha256"`
	Places      int       `json:"places"`
	GeneratedAt time.Time `json:"generated_at"`
}

const (
	manifestName = "manifest.json"
	sumsName     = "SHA256SUMS"
)

// buildManifestEntries digests every written table file. Entries keep the
// order of results.
func buildManifestEntries(results []tableResult) ([]manifestEntry, error) {
	out := make([]manifestEntry, 0, len(results))
	for _, r := range results {
		if r.path == "" {
			continue
		}
		sum, err := sha256File(r.path)
		if err != nil {
			return nil, err
		}
		out = append(out, manifestEntry{
			Table:  r.table.Name,
			File:   filepath.Base(r.path),
			Rows:   len(r.table.Rows),
			SHA256: sum,
		})
	}
	return out, nil
}

func marshalManifestJSON(meta manifestMeta, entries []manifestEntry) ([]byte, error) {
	payload := struct {
		Meta   manifestMeta    `json:"meta"`
		Tables []manifestEntry `json:"tables"`
	}{Meta: meta, Tables: entries}
	return json.MarshalIndent(payload, "", "  ")
}

// writeManifest writes manifest.json and a SHA256SUMS file covering the
// manifest and every table file into dir.
func writeManifest(dir string, meta manifestMeta, entries []manifestEntry) error {
	data, err := marshalManifestJSON(meta, entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), data, 0o644); err != nil {
		return err
	}
	sums := map[string]string{manifestName: computeSHA256Hex(data)}
	for _, e := range entries {
		sums[e.File] = e.SHA256
	}
	names := make([]string, 0, len(sums))
	for n := range sums {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		b.WriteString(sums[n])
		b.WriteString("  ")
		b.WriteString(n)
		b.WriteString("\n")
	}
	return os.WriteFile(filepath.Join(dir, sumsName), []byte(b.String()), 0o644)
}

func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
