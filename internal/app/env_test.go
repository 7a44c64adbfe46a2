package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFiles_PrecedenceAndParsing(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")
	if err := os.WriteFile(base, []byte("# comment\nTRIPEXPORT_TEST_A=base\nexport TRIPEXPORT_TEST_B=\"quoted value\"\nTRIPEXPORT_TEST_C=base\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(local, []byte("TRIPEXPORT_TEST_A=local\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("TRIPEXPORT_TEST_C", "process")
	// Register cleanup for keys the loader sets.
	t.Setenv("TRIPEXPORT_TEST_A", "")
	os.Unsetenv("TRIPEXPORT_TEST_A")
	t.Setenv("TRIPEXPORT_TEST_B", "")
	os.Unsetenv("TRIPEXPORT_TEST_B")

	if err := LoadEnvFiles(base, local, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("TRIPEXPORT_TEST_A"); got != "local" {
		t.Fatalf("later file should win, got %q", got)
	}
	if got := os.Getenv("TRIPEXPORT_TEST_B"); got != "quoted value" {
		t.Fatalf("quotes not stripped, got %q", got)
	}
	if got := os.Getenv("TRIPEXPORT_TEST_C"); got != "process" {
		t.Fatalf("process env overridden, got %q", got)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv(EnvWorkers, "4")
	t.Setenv(EnvOutput, "  ")
	t.Setenv(EnvVerbose, "TRUE")
	if EnvInt(EnvWorkers, 1) != 4 {
		t.Fatalf("EnvInt did not parse")
	}
	if EnvOr(EnvOutput, DefaultOutputDir) != DefaultOutputDir {
		t.Fatalf("blank env should fall back")
	}
	if !EnvBool(EnvVerbose) {
		t.Fatalf("EnvBool should accept TRUE")
	}
	t.Setenv(EnvWorkers, "zero")
	if EnvInt(EnvWorkers, 1) != 1 {
		t.Fatalf("bad int should fall back")
	}
}
