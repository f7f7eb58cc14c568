package render

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Percent formats a proportion as a percentage with one decimal place,
// rounding half away from zero: 0.4567 -> "45.7%".
func Percent(v float64) string {
	return PercentValue(v) + "%"
}

// PercentValue is Percent without the trailing sign.
func PercentValue(v float64) string {
	r := math.Round(v*1000) / 10
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// Number formats a value exactly as provided, using the shortest
// representation that round-trips (26.0 -> "26", 0.0879 -> "0.0879").
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Grouped formats a count with thousands separators.
func Grouped(n int) string {
	return humanize.Comma(int64(n))
}
