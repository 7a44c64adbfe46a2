package aggregate

import "math"

// Groups accumulates one value per key and remembers the order in which keys
// were first seen, so reports come out in document order. The zero value is
// ready to use. Groups is not safe for concurrent use; each report builds its
// own.
type Groups[K comparable, V any] struct {
	keys []K
	vals map[K]*V
}

// Get returns the accumulator for k, creating a zero one on first sight.
func (g *Groups[K, V]) Get(k K) *V {
	if g.vals == nil {
		g.vals = make(map[K]*V)
	}
	v, ok := g.vals[k]
	if !ok {
		v = new(V)
		g.vals[k] = v
		g.keys = append(g.keys, k)
	}
	return v
}

// Len returns the number of distinct keys.
func (g *Groups[K, V]) Len() int { return len(g.keys) }

// Each visits groups in first-seen order.
func (g *Groups[K, V]) Each(fn func(k K, v *V)) {
	for _, k := range g.keys {
		fn(k, g.vals[k])
	}
}

// Set counts distinct keys.
type Set[K comparable] struct {
	seen map[K]struct{}
}

func (s *Set[K]) Add(k K) {
	if s.seen == nil {
		s.seen = make(map[K]struct{})
	}
	s.seen[k] = struct{}{}
}

func (s *Set[K]) Len() int { return len(s.seen) }

// Series keeps count, sum, min and max of a stream of values. Min, Max and
// Mean are 0 for an empty series.
type Series struct {
	n   int
	sum float64
	min float64
	max float64
}

func (s *Series) Add(v float64) {
	if s.n == 0 || v < s.min {
		s.min = v
	}
	if s.n == 0 || v > s.max {
		s.max = v
	}
	s.n++
	s.sum += v
}

func (s Series) Count() int   { return s.n }
func (s Series) Empty() bool  { return s.n == 0 }
func (s Series) Min() float64 { return s.min }
func (s Series) Max() float64 { return s.max }

func (s Series) Mean() float64 {
	if s.n == 0 {
		return 0
	}
	return s.sum / float64(s.n)
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ratio returns num/den, or 0 when den is not positive.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
