package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroups_FirstSeenOrder(t *testing.T) {
	var g Groups[string, int]
	for _, k := range []string{"Train", "Bus", "Train", "Flight", "Bus"} {
		*g.Get(k)++
	}
	var keys []string
	var counts []int
	g.Each(func(k string, v *int) {
		keys = append(keys, k)
		counts = append(counts, *v)
	})
	assert.Equal(t, []string{"Train", "Bus", "Flight"}, keys)
	assert.Equal(t, []int{2, 2, 1}, counts)
	assert.Equal(t, 3, g.Len())
}

func TestSet_Distinct(t *testing.T) {
	var s Set[string]
	assert.Equal(t, 0, s.Len())
	s.Add("Goa")
	s.Add("Goa")
	s.Add("goa")
	assert.Equal(t, 2, s.Len())
}

func TestSeries_EmptyIsZero(t *testing.T) {
	var s Series
	assert.True(t, s.Empty())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Min())
	assert.Equal(t, 0.0, s.Max())
}

func TestSeries_Stats(t *testing.T) {
	var s Series
	for _, v := range []float64{300, -5, 1200} {
		s.Add(v)
	}
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, -5.0, s.Min())
	assert.Equal(t, 1200.0, s.Max())
	assert.InDelta(t, 498.333333, s.Mean(), 1e-6)
	assert.Equal(t, 498.33, Round2(s.Mean()))
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 33.33, Round2(100.0/3))
}

func TestRatio_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(4500, 0))
	assert.Equal(t, 0.0, Ratio(4500, -1))
	assert.Equal(t, 375.0, Ratio(4500, 12))
}
