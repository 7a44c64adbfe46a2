package extract

import (
	"strconv"
	"strings"

	"github.com/hyperifyio/tripexport/internal/aggregate"
)

// Cell formatting: integers print bare, computed floats always carry a
// fractional part ("150.0"), and an aggregate over an empty population prints
// as a bare "0". Existing Tableau workbooks depend on these column types.

func intCell(n int) string { return strconv.Itoa(n) }

func int64Cell(n int64) string { return strconv.FormatInt(n, 10) }

func floatCell(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// meanCell renders the 2-dp rounded mean, or "0" for an empty series.
func meanCell(s aggregate.Series) string {
	if s.Empty() {
		return "0"
	}
	return floatCell(aggregate.Round2(s.Mean()))
}

func minCell(s aggregate.Series) string {
	if s.Empty() {
		return "0"
	}
	return floatCell(s.Min())
}

func maxCell(s aggregate.Series) string {
	if s.Empty() {
		return "0"
	}
	return floatCell(s.Max())
}

// wholeMinCell and wholeMaxCell render series built from truncated integer
// prices.
func wholeMinCell(s aggregate.Series) string {
	if s.Empty() {
		return "0"
	}
	return int64Cell(int64(s.Min()))
}

func wholeMaxCell(s aggregate.Series) string {
	if s.Empty() {
		return "0"
	}
	return int64Cell(int64(s.Max()))
}
