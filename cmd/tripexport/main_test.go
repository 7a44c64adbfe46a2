package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	apppkg "github.com/hyperifyio/tripexport/internal/app"
	"github.com/hyperifyio/tripexport/internal/dataset"
)

// Smoke test: run exports every table for a minimal document.
func TestRun_WritesTables(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "database.json")
	out := filepath.Join(dir, "export")
	doc := `[{"place_id":1,"place_name":"Goa","state":"Goa","travel_options":[{"travel_id":"T1","source_city":"Pune","travel_mode":"Bus","approx_cost":800,"approx_duration_hours":10}]}]`
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := apppkg.Config{InputPath: in, OutputDir: out, Quiet: true}
	if err := run(cfg); err != nil {
		t.Fatalf("run error: %v", err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(entries) != 9 {
		t.Fatalf("expected 9 tables, got %d", len(entries))
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := apppkg.Config{InputPath: filepath.Join(dir, "nope.json"), OutputDir: filepath.Join(dir, "export"), Quiet: true}
	err := run(cfg)
	var le *dataset.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if exitCode(err) != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode(err))
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(fmt.Errorf("init app: %w", apppkg.ErrInvalidConfig)); got != 2 {
		t.Fatalf("invalid config should exit 2, got %d", got)
	}
	if got := exitCode(errors.New("disk full")); got != 1 {
		t.Fatalf("other errors should exit 1, got %d", got)
	}
}

func TestParseFlags_EnvDefaultsAndOverrides(t *testing.T) {
	t.Setenv(apppkg.EnvOutput, "env-out")
	t.Setenv(apppkg.EnvWorkers, "3")
	t.Setenv(apppkg.EnvTables, "places, travel_*")

	fs := flag.NewFlagSet("tripexport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, configPath, showVersion := parseFlags(fs, []string{"-workers", "5", "-manifest", "-config", "c.yaml"})

	if cfg.OutputDir != "env-out" {
		t.Fatalf("env default not applied: %q", cfg.OutputDir)
	}
	if cfg.Workers != 5 {
		t.Fatalf("flag should override env: %d", cfg.Workers)
	}
	if cfg.InputPath != apppkg.DefaultInputPath {
		t.Fatalf("unexpected input default: %q", cfg.InputPath)
	}
	if !reflect.DeepEqual(cfg.Tables, []string{"places", "travel_*"}) {
		t.Fatalf("tables: %v", cfg.Tables)
	}
	if !cfg.Manifest || configPath != "c.yaml" || showVersion {
		t.Fatalf("unexpected flags: manifest=%v config=%q version=%v", cfg.Manifest, configPath, showVersion)
	}
}

func TestParseFlags_ConfigFileTablesApplyWithoutFlag(t *testing.T) {
	t.Setenv(apppkg.EnvTables, "")

	fs := flag.NewFlagSet("tripexport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, _, _ := parseFlags(fs, nil)
	if len(cfg.Tables) != 0 {
		t.Fatalf("expected no table patterns by default, got %v", cfg.Tables)
	}
	apppkg.ApplyFileConfig(&cfg, apppkg.FileConfig{Tables: []string{"places"}})
	if !reflect.DeepEqual(cfg.Tables, []string{"places"}) {
		t.Fatalf("config file tables ignored: got %v", cfg.Tables)
	}

	// An explicit flag still wins over the file.
	fs = flag.NewFlagSet("tripexport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, _, _ = parseFlags(fs, []string{"-tables", "travel_*"})
	apppkg.ApplyFileConfig(&cfg, apppkg.FileConfig{Tables: []string{"places"}})
	if !reflect.DeepEqual(cfg.Tables, []string{"travel_*"}) {
		t.Fatalf("flag should win over config file: got %v", cfg.Tables)
	}
}
