package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/tripexport/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Dotenv files only seed the environment; real env vars win.
	if err := app.LoadEnvFiles(".env", ".env.local"); err != nil {
		log.Warn().Err(err).Msg("env file ignored")
	}

	cfg, configPath, showVersion := parseFlags(flag.CommandLine, os.Args[1:])
	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitCode(err))
	}
}

// parseFlags registers the command line on fs. Environment variables supply
// the defaults so that explicit flags always take precedence.
func parseFlags(fs *flag.FlagSet, args []string) (cfg app.Config, configPath string, showVersion bool) {
	var tables string

	fs.StringVar(&cfg.InputPath, "input", app.EnvOr(app.EnvInput, app.DefaultInputPath), "Path to the travel database (JSON or YAML)")
	fs.StringVar(&cfg.OutputDir, "out", app.EnvOr(app.EnvOutput, app.DefaultOutputDir), "Directory to write CSV tables into")
	fs.StringVar(&configPath, "config", os.Getenv(app.EnvConfig), "Optional YAML/JSON config file")
	fs.StringVar(&tables, "tables", os.Getenv(app.EnvTables), "Comma-separated table name globs to export (default all)")
	fs.IntVar(&cfg.Workers, "workers", app.EnvInt(app.EnvWorkers, app.DefaultWorkers), "Tables extracted concurrently")
	fs.StringVar(&cfg.SQLitePath, "sqlite", os.Getenv(app.EnvSQLite), "Also write every table into this SQLite database")
	fs.StringVar(&cfg.PDFPath, "pdf", os.Getenv(app.EnvPDF), "Also write a PDF summary to this path")
	fs.BoolVar(&cfg.Manifest, "manifest", false, "Write manifest.json and SHA256SUMS next to the tables")
	fs.StringVar(&cfg.MetricsFile, "metrics.file", os.Getenv(app.EnvMetricsFile), "Write Prometheus textfile metrics to this path")
	fs.StringVar(&cfg.GraphPath, "graph", os.Getenv(app.EnvGraph), "Write the source-city connectivity graph as DOT to this path")
	fs.BoolVar(&cfg.Quiet, "q", false, "Disable the progress bar")
	fs.BoolVar(&cfg.Verbose, "v", app.EnvBool(app.EnvVerbose), "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	_ = fs.Parse(args)

	cfg.Tables = app.SplitList(tables)
	return cfg, configPath, showVersion
}

// exitCode maps run errors: 2 for configuration problems, 1 for everything
// else (unreadable input, failed writes).
func exitCode(err error) int {
	if errors.Is(err, app.ErrInvalidConfig) {
		return 2
	}
	return 1
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
