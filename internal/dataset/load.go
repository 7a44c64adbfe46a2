package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Format selects the document decoder.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks YAML for .yaml/.yml and JSON for everything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadError reports a document that is missing or not well-formed. It is
// fatal for a run: nothing is exported from a partial document.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "load dataset: " + e.Err.Error()
	}
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the Place sequence stored at path.
func Load(path string) ([]Place, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	places, err := decodeBytes(b, FormatFromPath(path))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return places, nil
}

// Decode reads a Place sequence from r.
func Decode(r io.Reader, format Format) ([]Place, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	places, err := decodeBytes(b, format)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return places, nil
}

func decodeBytes(b []byte, format Format) ([]Place, error) {
	var places []Place
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &places); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &places); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	return places, nil
}
