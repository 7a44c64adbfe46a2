package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/tripexport/internal/dataset"
	"github.com/hyperifyio/tripexport/internal/extract"
	"github.com/hyperifyio/tripexport/internal/sink"
)

type App struct {
	cfg        Config
	extractors []extract.Extractor
	csv        sink.Sink

	// out receives the human-readable run log; barOut the progress bar.
	out    io.Writer
	barOut io.Writer
	now    func() time.Time
}

// tableResult pairs a finished table with the CSV file it went to.
type tableResult struct {
	table extract.Table
	path  string
}

// New validates cfg and resolves the table selection. Nothing is read or
// written until Run.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	a := &App{
		cfg:    cfg,
		csv:    &sink.CSVDir{Dir: cfg.OutputDir},
		out:    os.Stdout,
		barOut: os.Stderr,
		now:    time.Now,
	}
	selected, err := extract.Select(extract.Registry(a.clock), cfg.Tables)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no table matches %v", ErrInvalidConfig, cfg.Tables)
	}
	a.extractors = selected
	log.Debug().Int("tables", len(selected)).Int("workers", cfg.Workers).Msg("app configured")
	return a, nil
}

// clock defers to a.now so tests can pin it after New.
func (a *App) clock() time.Time { return a.now() }

func (a *App) Close() {
	if err := a.csv.Close(); err != nil {
		log.Warn().Err(err).Msg("close csv sink")
	}
}

func (a *App) Run(ctx context.Context) error {
	started := a.now()
	writeBanner(a.out)

	// 1) Load the document; any failure aborts before output is touched.
	fmt.Fprintln(a.out, "\n📂 Loading database...")
	places, err := dataset.Load(a.cfg.InputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "   Loaded %d places\n\n", len(places))
	log.Debug().Str("input", a.cfg.InputPath).Int("places", len(places)).Msg("dataset loaded")

	// 2) Extract and write every selected table.
	fmt.Fprintln(a.out, "📊 Generating CSV files for Tableau...")
	fmt.Fprintln(a.out)
	results, err := a.exportTables(ctx, places)
	if err != nil {
		return err
	}

	// 3) Optional artifacts built from the finished tables.
	if err := a.writeArtifacts(ctx, places, results, started); err != nil {
		return err
	}

	writeRunSummary(a.out, len(results), a.cfg.OutputDir)
	log.Info().Str("out", a.cfg.OutputDir).Int("tables", len(results)).Dur("took", a.now().Sub(started)).Msg("export complete")
	return nil
}

// exportTables runs the extractors with at most cfg.Workers in flight. Each
// extractor only reads places and writes its own file, so no further
// coordination is needed. Results keep registry order.
func (a *App) exportTables(ctx context.Context, places []dataset.Place) ([]tableResult, error) {
	results := make([]tableResult, len(a.extractors))
	progress := newProgressReporter(a.out, a.barOut, a.cfg.Quiet, len(a.extractors))
	defer progress.finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, e := range a.extractors {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := e.Extract(places)
			path, err := a.csv.Write(gctx, t)
			if err != nil {
				return fmt.Errorf("export %s: %w", e.Name(), err)
			}
			results[i] = tableResult{table: t, path: path}
			log.Debug().Str("table", t.Name).Int("rows", len(t.Rows)).Msg("table written")
			progress.generated(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) writeArtifacts(ctx context.Context, places []dataset.Place, results []tableResult, started time.Time) error {
	for _, target := range a.artifactSinks() {
		if err := writeToSink(ctx, target, results); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "✅ Generated: %s\n", target.location)
	}
	if a.cfg.GraphPath != "" {
		if err := writeConnectivityDOT(a.cfg.GraphPath, places); err != nil {
			return fmt.Errorf("write graph: %w", err)
		}
		fmt.Fprintf(a.out, "✅ Generated: %s\n", a.cfg.GraphPath)
	}
	if a.cfg.PDFPath != "" {
		summary := findTable(results, extract.TableSummaryStatistics)
		if summary == nil {
			t := extract.SummaryStatistics(places, a.now())
			summary = &t
		}
		budget := findTable(results, extract.TableBudgetDistribution)
		if budget == nil {
			t := extract.BudgetDistribution(places)
			budget = &t
		}
		if err := writeSummaryPDF(a.cfg.PDFPath, summary, budget, a.now()); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "✅ Generated: %s\n", a.cfg.PDFPath)
	}
	if a.cfg.Manifest {
		if err := a.writeManifest(places, results); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}
	if a.cfg.MetricsFile != "" {
		m := newRunMetrics()
		finished := a.now()
		m.observe(len(places), results, finished.Sub(started), finished)
		if err := m.writeTextfile(a.cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// sinkTarget is an artifact sink that receives every table after the CSV
// export. Sinks are opened one at a time so a failure leaves nothing open.
type sinkTarget struct {
	location string
	open     func() (sink.Sink, error)
}

func (a *App) artifactSinks() []sinkTarget {
	var targets []sinkTarget
	if a.cfg.SQLitePath != "" {
		path := a.cfg.SQLitePath
		targets = append(targets, sinkTarget{
			location: path,
			open:     func() (sink.Sink, error) { return sink.OpenSQLite(path) },
		})
	}
	return targets
}

// writeToSink writes all results in order. The sink is closed either way;
// its Close error counts because that is where buffered sinks commit.
func writeToSink(ctx context.Context, target sinkTarget, results []tableResult) (err error) {
	s, err := target.open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", target.location, cerr)
		}
	}()
	for _, r := range results {
		if _, err := s.Write(ctx, r.table); err != nil {
			return fmt.Errorf("write %s: %w", target.location, err)
		}
		log.Debug().Str("sink", target.location).Str("table", r.table.Name).Msg("table stored")
	}
	return nil
}

func (a *App) writeManifest(places []dataset.Place, results []tableResult) error {
	entries, err := buildManifestEntries(results)
	if err != nil {
		return err
	}
	inputSum, err := sha256File(a.cfg.InputPath)
	if err != nil {
		return err
	}
	meta := manifestMeta{
		RunID:       uuid.NewString(),
		Version:     BuildVersion,
		Input:       a.cfg.InputPath,
		InputSHA256: inputSum,
		Places:      len(places),
		GeneratedAt: a.now().UTC(),
	}
	return writeManifest(a.cfg.OutputDir, meta, entries)
}

func findTable(results []tableResult, name string) *extract.Table {
	for i := range results {
		if results[i].table.Name == name {
			return &results[i].table
		}
	}
	return nil
}
