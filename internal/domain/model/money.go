package model

import "math"

// RoundPrice rounds a monetary value to two decimal places.
// All derived prices (unit prices, line totals, subtotals) pass through
// this so repeated recomputation cannot drift.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
