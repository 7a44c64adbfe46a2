package app

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read as flag defaults.
const (
	EnvInput       = "TRIPEXPORT_INPUT"
	EnvOutput      = "TRIPEXPORT_OUT"
	EnvConfig      = "TRIPEXPORT_CONFIG"
	EnvTables      = "TRIPEXPORT_TABLES"
	EnvWorkers     = "TRIPEXPORT_WORKERS"
	EnvSQLite      = "TRIPEXPORT_SQLITE"
	EnvPDF         = "TRIPEXPORT_PDF"
	EnvMetricsFile = "TRIPEXPORT_METRICS_FILE"
	EnvGraph       = "TRIPEXPORT_GRAPH"
	EnvVerbose     = "VERBOSE"
)

// EnvOr returns the trimmed value of key, or def when unset or blank.
func EnvOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// EnvInt parses key as a positive integer, or returns def.
func EnvInt(key string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil && n > 0 {
		return n
	}
	return def
}

// EnvBool reports whether key holds a truthy value.
func EnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
