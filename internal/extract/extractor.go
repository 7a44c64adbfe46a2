package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"github.com/hyperifyio/tripexport/internal/dataset"
)

// Table is one flat extract: a name used for the output file, the header
// columns and one row of cells per record or group.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Extractor turns the place tree into one table. Implementations only read
// the tree, so any number of them may run against the same input at once.
type Extractor interface {
	Name() string
	Extract(places []dataset.Place) Table
}

type extractorFunc struct {
	name string
	fn   func([]dataset.Place) Table
}

func (e extractorFunc) Name() string { return e.name }

func (e extractorFunc) Extract(places []dataset.Place) Table { return e.fn(places) }

// Table names, also used as output file stems.
const (
	TablePlaces             = "places"
	TableAttractions        = "attractions"
	TableDiningOptions      = "dining_options"
	TableAccommodation      = "accommodation_options"
	TableTravelOptions      = "travel_options"
	TableSummaryStatistics  = "summary_statistics"
	TableTravelModeAnalysis = "travel_mode_analysis"
	TableSourceCityAnalysis = "source_city_analysis"
	TableBudgetDistribution = "budget_distribution"
)

// Registry returns every extractor in export order. now stamps the summary
// table; nil means time.Now.
func Registry(now func() time.Time) []Extractor {
	if now == nil {
		now = time.Now
	}
	return []Extractor{
		extractorFunc{TablePlaces, Places},
		extractorFunc{TableAttractions, Attractions},
		extractorFunc{TableDiningOptions, DiningOptions},
		extractorFunc{TableAccommodation, AccommodationOptions},
		extractorFunc{TableTravelOptions, TravelOptions},
		extractorFunc{TableSummaryStatistics, func(p []dataset.Place) Table { return SummaryStatistics(p, now()) }},
		extractorFunc{TableTravelModeAnalysis, TravelModeAnalysis},
		extractorFunc{TableSourceCityAnalysis, SourceCityAnalysis},
		extractorFunc{TableBudgetDistribution, BudgetDistribution},
	}
}

// Select keeps the extractors whose name matches at least one glob pattern.
// An empty pattern list keeps everything.
func Select(all []Extractor, patterns []string) ([]Extractor, error) {
	var globs []glob.Glob
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("table pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	if len(globs) == 0 {
		return all, nil
	}
	out := make([]Extractor, 0, len(all))
	for _, e := range all {
		for _, g := range globs {
			if g.Match(e.Name()) {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}
