package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {
    "place_id": 1,
    "place_name": "Goa",
    "state": "Goa",
    "description": "Beaches",
    "attractions": [
      {
        "spot_id": "S1",
        "spot_name": "Baga Beach",
        "dining": [
          {"food_id": "F1", "food_place_name": "Britto's", "price_per_person": 450, "budget_range": "mid"},
          {"food_id": "F2", "food_place_name": "Shack", "price_per_person": "200", "budget_range": "Low"}
        ],
        "accommodation": [
          {"stay_id": "H1", "stay_name": "Hostel", "price_per_night": null, "budget_range": "low"}
        ]
      }
    ],
    "travel_options": [
      {"travel_id": "T1", "source_city": "Mumbai", "travel_mode": "Train", "approx_cost": "1200.50", "approx_duration_hours": 12}
    ]
  },
  {"place_name": "Empty"}
]`

func TestDecode_JSONCoercesScalars(t *testing.T) {
	places, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	require.NoError(t, err)
	require.Len(t, places, 2)

	goa := places[0]
	assert.Equal(t, "1", goa.ID.String())
	assert.True(t, goa.ID.Valid())
	require.Len(t, goa.Attractions, 1)
	spot := goa.Attractions[0]
	require.Len(t, spot.Dining, 2)
	assert.Equal(t, "450", spot.Dining[0].PricePerPerson.Raw())
	assert.Equal(t, "200", spot.Dining[1].PricePerPerson.Raw())
	assert.Equal(t, int64(200), spot.Dining[1].PricePerPerson.Int())

	stay := spot.Accommodation[0]
	assert.False(t, stay.PricePerNight.Valid())
	assert.Equal(t, "", stay.PricePerNight.Raw())
	assert.Equal(t, 0.0, stay.PricePerNight.Float())

	travel := goa.TravelOptions[0]
	assert.InDelta(t, 1200.50, travel.ApproxCost.Float(), 1e-9)
	assert.Equal(t, "1200.50", travel.ApproxCost.Raw())
	assert.Equal(t, 12.0, travel.DurationHours.Float())
}

func TestDecode_MissingFieldsDefault(t *testing.T) {
	places, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	require.NoError(t, err)

	empty := places[1]
	assert.False(t, empty.ID.Valid())
	assert.Equal(t, "", empty.Region.String())
	assert.Empty(t, empty.Attractions)
	assert.Empty(t, empty.TravelOptions)
	assert.Equal(t, "Unknown", empty.Region.Or("Unknown"))
}

func TestDecode_YAML(t *testing.T) {
	doc := `
- place_id: P1
  place_name: Jaipur
  travel_options:
    - travel_id: T9
      source_city: Delhi
      travel_mode: Bus
      approx_cost: 650
      approx_duration_hours: ~
`
	places, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, places, 1)
	opt := places[0].TravelOptions[0]
	assert.Equal(t, "650", opt.ApproxCost.Raw())
	assert.False(t, opt.DurationHours.Valid())
	assert.Equal(t, 0.0, opt.DurationHours.Float())
}

func TestDecode_CompoundValuesMatchAcrossFormats(t *testing.T) {
	jsonDoc := `[{"place_name": "Goa", "description": {"a": 1, "b": ["x", "y"]}, "state": ["Goa", "IN"]}]`
	yamlDoc := `
- place_name: Goa
  description:
    a: 1
    b: [x, y]
  state: [Goa, IN]
`
	fromJSON, err := Decode(strings.NewReader(jsonDoc), FormatJSON)
	require.NoError(t, err)
	fromYAML, err := Decode(strings.NewReader(yamlDoc), FormatYAML)
	require.NoError(t, err)

	require.Len(t, fromYAML, 1)
	assert.Equal(t, `{"a":1,"b":["x","y"]}`, fromYAML[0].Description.String())
	assert.Equal(t, `["Goa","IN"]`, fromYAML[0].Region.String())
	assert.Equal(t, fromJSON[0].Description.String(), fromYAML[0].Description.String())
	assert.Equal(t, fromJSON[0].Region.String(), fromYAML[0].Region.String())
}

func TestLoad_MissingFileIsLoadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_MalformedIsLoadError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"place_id": `), 0o644))
	_, err := Load(p)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, p, le.Path)
	assert.Contains(t, err.Error(), "parse json")
}

func TestLoad_PicksDecoderByExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "db.yml")
	require.NoError(t, os.WriteFile(p, []byte("- place_name: Ooty\n"), 0o644))
	places, err := Load(p)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Ooty", places[0].Name.String())
}

func TestNumber_FloatRejectsGarbage(t *testing.T) {
	assert.Equal(t, 0.0, NewNumber("about 300").Float())
	assert.Equal(t, 0.0, NewNumber("NaN").Float())
	assert.Equal(t, 42.5, NewNumber(" 42.5 ").Float())
	assert.Equal(t, int64(-3), NewNumber("-3.9").Int())
}
