package metrics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// round2 rounds to two decimal places, half away from zero. This matches
// SQLite's ROUND(), which the persisted views used for every ratio.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// pctOf returns round2(100 * part / whole), guarding the zero denominator:
// a zero whole yields 0 rather than a division fault.
func pctOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return round2(100 * part / whole)
}

// daysBetween returns the whole number of days from one instant to another,
// negative when "to" is in the past.
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
