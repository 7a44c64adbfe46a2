package dataset

// Place is a top-level destination record. Every field is optional in the
// source document; absent collections decode to nil slices.
type Place struct {
	ID            Text           `json:"place_id" yaml:"place_id"`
	Name          Text           `json:"place_name" yaml:"place_name"`
	Region        Text           `json:"state" yaml:"state"`
	Description   Text           `json:"description" yaml:"description"`
	Attractions   []Attraction   `json:"attractions" yaml:"attractions"`
	TravelOptions []TravelOption `json:"travel_options" yaml:"travel_options"`
}

// Attraction is a point of interest owned by exactly one Place.
type Attraction struct {
	ID            Text                  `json:"spot_id" yaml:"spot_id"`
	Name          Text                  `json:"spot_name" yaml:"spot_name"`
	Description   Text                  `json:"description" yaml:"description"`
	Dining        []DiningOption        `json:"dining" yaml:"dining"`
	Accommodation []AccommodationOption `json:"accommodation" yaml:"accommodation"`
}

type DiningOption struct {
	ID             Text   `json:"food_id" yaml:"food_id"`
	VenueName      Text   `json:"food_place_name" yaml:"food_place_name"`
	PricePerPerson Number `json:"price_per_person" yaml:"price_per_person"`
	BudgetRange    Text   `json:"budget_range" yaml:"budget_range"`
}

type AccommodationOption struct {
	ID            Text   `json:"stay_id" yaml:"stay_id"`
	VenueName     Text   `json:"stay_name" yaml:"stay_name"`
	PricePerNight Number `json:"price_per_night" yaml:"price_per_night"`
	BudgetRange   Text   `json:"budget_range" yaml:"budget_range"`
}

// TravelOption describes one route from a source city to the owning Place.
type TravelOption struct {
	ID            Text   `json:"travel_id" yaml:"travel_id"`
	SourceCity    Text   `json:"source_city" yaml:"source_city"`
	Mode          Text   `json:"travel_mode" yaml:"travel_mode"`
	ApproxCost    Number `json:"approx_cost" yaml:"approx_cost"`
	DurationHours Number `json:"approx_duration_hours" yaml:"approx_duration_hours"`
}
