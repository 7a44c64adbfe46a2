package extract

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hyperifyio/tripexport/internal/aggregate"
	"github.com/hyperifyio/tripexport/internal/dataset"
)

// GeneratedOnLayout is the timestamp format of the data_generated_on metric.
const GeneratedOnLayout = "2006-01-02 15:04:05"

// unknownKey labels groups whose key field is missing or empty.
const unknownKey = "Unknown"

// SummaryStatistics builds the metric/value KPI table over the whole tree.
func SummaryStatistics(places []dataset.Place, generatedOn time.Time) Table {
	var (
		attractions, dining, stays, routes int
		cities                             aggregate.Set[string]
		modes                              aggregate.Set[string]
		costs, durations                   aggregate.Series
	)
	for _, p := range places {
		attractions += len(p.Attractions)
		for _, a := range p.Attractions {
			dining += len(a.Dining)
			stays += len(a.Accommodation)
		}
		routes += len(p.TravelOptions)
		for _, o := range p.TravelOptions {
			if city := o.SourceCity.String(); city != "" {
				cities.Add(city)
			}
			modes.Add(o.Mode.Or(unknownKey))
			costs.Add(o.ApproxCost.Float())
			durations.Add(o.DurationHours.Float())
		}
	}

	metric := func(name, value string) []string { return []string{name, value} }
	return Table{
		Name:    TableSummaryStatistics,
		Columns: []string{"metric", "value"},
		Rows: [][]string{
			metric("total_places", intCell(len(places))),
			metric("total_attractions", intCell(attractions)),
			metric("total_dining_options", intCell(dining)),
			metric("total_accommodation_options", intCell(stays)),
			metric("total_travel_routes", intCell(routes)),
			metric("unique_source_cities", intCell(cities.Len())),
			metric("unique_travel_modes", intCell(modes.Len())),
			metric("avg_travel_cost", meanCell(costs)),
			metric("min_travel_cost", minCell(costs)),
			metric("max_travel_cost", maxCell(costs)),
			metric("avg_travel_duration_hours", meanCell(durations)),
			metric("data_generated_on", generatedOn.Format(GeneratedOnLayout)),
		},
	}
}

type modeStats struct {
	costs, durations aggregate.Series
}

// TravelModeAnalysis emits one row per travel mode, in first-seen order.
// Modes are compared case-sensitively.
func TravelModeAnalysis(places []dataset.Place) Table {
	var groups aggregate.Groups[string, modeStats]
	for _, p := range places {
		for _, o := range p.TravelOptions {
			g := groups.Get(o.Mode.Or(unknownKey))
			g.costs.Add(o.ApproxCost.Float())
			g.durations.Add(o.DurationHours.Float())
		}
	}

	t := Table{
		Name: TableTravelModeAnalysis,
		Columns: []string{
			"travel_mode", "total_routes", "avg_cost", "min_cost", "max_cost",
			"avg_duration_hours", "min_duration_hours", "max_duration_hours",
		},
		Rows: make([][]string, 0, groups.Len()),
	}
	groups.Each(func(mode string, g *modeStats) {
		t.Rows = append(t.Rows, []string{
			mode,
			intCell(g.costs.Count()),
			meanCell(g.costs),
			minCell(g.costs),
			maxCell(g.costs),
			meanCell(g.durations),
			minCell(g.durations),
			maxCell(g.durations),
		})
	})
	return t
}

type cityStats struct {
	destinations aggregate.Set[string]
	costs        aggregate.Series
}

// SourceCityAnalysis emits one row per source city with the number of
// distinct destinations reached from it and its route costs.
func SourceCityAnalysis(places []dataset.Place) Table {
	var groups aggregate.Groups[string, cityStats]
	for _, p := range places {
		for _, o := range p.TravelOptions {
			g := groups.Get(o.SourceCity.Or(unknownKey))
			g.destinations.Add(p.Name.String())
			g.costs.Add(o.ApproxCost.Float())
		}
	}

	t := Table{
		Name: TableSourceCityAnalysis,
		Columns: []string{
			"source_city", "connected_destinations", "total_routes",
			"avg_cost", "min_cost", "max_cost",
		},
		Rows: make([][]string, 0, groups.Len()),
	}
	groups.Each(func(city string, g *cityStats) {
		t.Rows = append(t.Rows, []string{
			city,
			intCell(g.destinations.Len()),
			intCell(g.costs.Count()),
			meanCell(g.costs),
			minCell(g.costs),
			maxCell(g.costs),
		})
	})
	return t
}

// BudgetTiers are the recognized budget labels, in output order.
var BudgetTiers = []string{"low", "mid", "high"}

// BudgetDistribution counts dining and accommodation options per budget
// tier. Labels match case-insensitively; anything else is left out. The
// table always has len(BudgetTiers) rows per category.
func BudgetDistribution(places []dataset.Place) Table {
	dining := make(map[string]int, len(BudgetTiers))
	stays := make(map[string]int, len(BudgetTiers))
	for _, p := range places {
		for _, a := range p.Attractions {
			for _, d := range a.Dining {
				dining[strings.ToLower(d.BudgetRange.String())]++
			}
			for _, s := range a.Accommodation {
				stays[strings.ToLower(s.BudgetRange.String())]++
			}
		}
	}

	title := cases.Title(language.English)
	t := Table{
		Name:    TableBudgetDistribution,
		Columns: []string{"category", "budget_range", "count"},
		Rows:    make([][]string, 0, 2*len(BudgetTiers)),
	}
	for _, c := range []struct {
		label  string
		counts map[string]int
	}{{"Dining", dining}, {"Accommodation", stays}} {
		for _, tier := range BudgetTiers {
			t.Rows = append(t.Rows, []string{c.label, title.String(tier), intCell(c.counts[tier])})
		}
	}
	return t
}
