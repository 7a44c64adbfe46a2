package app

// Config holds runtime configuration for the application.
type Config struct {
	InputPath string
	OutputDir string

	// Tables holds glob patterns selecting which extracts to produce; empty
	// means all of them.
	Tables  []string
	Workers int

	// Optional artifacts; an empty path disables each one.
	SQLitePath  string
	PDFPath     string
	MetricsFile string
	GraphPath   string
	Manifest    bool

	// Behavior
	Quiet   bool
	Verbose bool
}

// Defaults used by the CLI flags. ApplyFileConfig treats a field still equal
// to its default as unset.
const (
	DefaultInputPath = "data/processed/database.json"
	DefaultOutputDir = "data/tableau_export"
	DefaultWorkers   = 1
)
