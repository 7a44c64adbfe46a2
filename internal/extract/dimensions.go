package extract

import (
	"github.com/hyperifyio/tripexport/internal/aggregate"
	"github.com/hyperifyio/tripexport/internal/dataset"
)

// Places emits one row per place with its child counts.
func Places(places []dataset.Place) Table {
	t := Table{
		Name:    TablePlaces,
		Columns: []string{"place_id", "place_name", "state", "description", "num_attractions", "num_travel_options"},
		Rows:    make([][]string, 0, len(places)),
	}
	for _, p := range places {
		t.Rows = append(t.Rows, []string{
			p.ID.String(),
			p.Name.String(),
			p.Region.String(),
			p.Description.String(),
			intCell(len(p.Attractions)),
			intCell(len(p.TravelOptions)),
		})
	}
	return t
}

// Attractions emits one row per attraction, denormalized with its place and
// carrying dining and stay price aggregates. Prices are truncated to whole
// units; absent and zero prices do not count towards the aggregates.
func Attractions(places []dataset.Place) Table {
	t := Table{
		Name: TableAttractions,
		Columns: []string{
			"spot_id", "place_id", "place_name", "state", "spot_name",
			"description", "num_dining_options", "num_stay_options",
			"avg_dining_price", "avg_stay_price", "min_dining_price", "max_dining_price",
			"min_stay_price", "max_stay_price",
		},
	}
	for _, p := range places {
		for _, a := range p.Attractions {
			var dining, stays aggregate.Series
			for _, d := range a.Dining {
				addPrice(&dining, d.PricePerPerson)
			}
			for _, s := range a.Accommodation {
				addPrice(&stays, s.PricePerNight)
			}
			t.Rows = append(t.Rows, []string{
				a.ID.String(),
				p.ID.String(),
				p.Name.String(),
				p.Region.String(),
				a.Name.String(),
				a.Description.String(),
				intCell(len(a.Dining)),
				intCell(len(a.Accommodation)),
				meanCell(dining),
				meanCell(stays),
				wholeMinCell(dining),
				wholeMaxCell(dining),
				wholeMinCell(stays),
				wholeMaxCell(stays),
			})
		}
	}
	return t
}

func addPrice(s *aggregate.Series, price dataset.Number) {
	if v := price.Int(); v != 0 {
		s.Add(float64(v))
	}
}

// DiningOptions flattens every dining option with its ancestors. Values are
// passed through as written.
func DiningOptions(places []dataset.Place) Table {
	t := Table{
		Name: TableDiningOptions,
		Columns: []string{
			"food_id", "spot_id", "place_id", "place_name", "spot_name",
			"food_place_name", "price_per_person", "budget_range",
		},
	}
	for _, p := range places {
		for _, a := range p.Attractions {
			for _, d := range a.Dining {
				t.Rows = append(t.Rows, []string{
					d.ID.String(),
					a.ID.String(),
					p.ID.String(),
					p.Name.String(),
					a.Name.String(),
					d.VenueName.String(),
					d.PricePerPerson.Raw(),
					d.BudgetRange.String(),
				})
			}
		}
	}
	return t
}

// AccommodationOptions flattens every accommodation option with its
// ancestors. Values are passed through as written.
func AccommodationOptions(places []dataset.Place) Table {
	t := Table{
		Name: TableAccommodation,
		Columns: []string{
			"stay_id", "spot_id", "place_id", "place_name", "spot_name",
			"stay_name", "price_per_night", "budget_range",
		},
	}
	for _, p := range places {
		for _, a := range p.Attractions {
			for _, s := range a.Accommodation {
				t.Rows = append(t.Rows, []string{
					s.ID.String(),
					a.ID.String(),
					p.ID.String(),
					p.Name.String(),
					a.Name.String(),
					s.VenueName.String(),
					s.PricePerNight.Raw(),
					s.BudgetRange.String(),
				})
			}
		}
	}
	return t
}

// TravelOptions emits one row per route with cost per hour and cost tier.
func TravelOptions(places []dataset.Place) Table {
	t := Table{
		Name: TableTravelOptions,
		Columns: []string{
			"travel_id", "place_id", "place_name", "source_city",
			"travel_mode", "approx_cost", "approx_duration_hours",
			"cost_per_hour", "cost_category",
		},
	}
	for _, p := range places {
		for _, o := range p.TravelOptions {
			cost := o.ApproxCost.Float()
			t.Rows = append(t.Rows, []string{
				o.ID.String(),
				p.ID.String(),
				p.Name.String(),
				o.SourceCity.String(),
				o.Mode.String(),
				o.ApproxCost.Raw(),
				o.DurationHours.Raw(),
				costPerHourCell(cost, o.DurationHours.Float()),
				CostTier(cost),
			})
		}
	}
	return t
}

// CostPerHour returns cost/duration rounded to 2 dp, or 0 when the duration
// is not positive.
func CostPerHour(cost, durationHours float64) float64 {
	return aggregate.Round2(aggregate.Ratio(cost, durationHours))
}

func costPerHourCell(cost, durationHours float64) string {
	if durationHours <= 0 {
		return "0"
	}
	return floatCell(CostPerHour(cost, durationHours))
}

// Cost tiers. Each tier includes its lower bound.
const (
	TierBudget   = "Budget"
	TierEconomy  = "Economy"
	TierStandard = "Standard"
	TierPremium  = "Premium"
)

// CostTier buckets a travel cost.
func CostTier(cost float64) string {
	switch {
	case cost < 1000:
		return TierBudget
	case cost < 3000:
		return TierEconomy
	case cost < 5000:
		return TierStandard
	default:
		return TierPremium
	}
}
