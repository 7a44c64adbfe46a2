package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks configuration problems detected before a run.
var ErrInvalidConfig = errors.New("invalid config")

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input  string   `yaml:"input" json:"input"`
	Output string   `yaml:"output" json:"output"`
	Tables []string `yaml:"tables" json:"tables"`

	Workers int  `yaml:"workers" json:"workers"`
	Quiet   bool `yaml:"quiet" json:"quiet"`
	Verbose bool `yaml:"verbose" json:"verbose"`

	Artifacts struct {
		SQLite   string `yaml:"sqlite" json:"sqlite"`
		PDF      string `yaml:"pdf" json:"pdf"`
		Metrics  string `yaml:"metrics" json:"metrics"`
		Graph    string `yaml:"graph" json:"graph"`
		Manifest bool   `yaml:"manifest" json:"manifest"`
	} `yaml:"artifacts" json:"artifacts"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc onto cfg for any field that is
// still unset or at its flag default, so explicit flags and env win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == DefaultInputPath) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputDir == "" || cfg.OutputDir == DefaultOutputDir) && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if len(cfg.Tables) == 0 && len(fc.Tables) > 0 {
		cfg.Tables = append([]string{}, fc.Tables...)
	}
	if (cfg.Workers == 0 || cfg.Workers == DefaultWorkers) && fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if !cfg.Quiet && fc.Quiet {
		cfg.Quiet = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if cfg.SQLitePath == "" && fc.Artifacts.SQLite != "" {
		cfg.SQLitePath = fc.Artifacts.SQLite
	}
	if cfg.PDFPath == "" && fc.Artifacts.PDF != "" {
		cfg.PDFPath = fc.Artifacts.PDF
	}
	if cfg.MetricsFile == "" && fc.Artifacts.Metrics != "" {
		cfg.MetricsFile = fc.Artifacts.Metrics
	}
	if cfg.GraphPath == "" && fc.Artifacts.Graph != "" {
		cfg.GraphPath = fc.Artifacts.Graph
	}
	if !cfg.Manifest && fc.Artifacts.Manifest {
		cfg.Manifest = true
	}
}

// ValidateConfig performs minimal validation of required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SplitList splits a comma-separated flag value, dropping blanks.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}
