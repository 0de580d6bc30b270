package heuristic

import (
	"math"

	"github.com/dustin/go-humanize"
)

// INR formats rupees with thousands separators and no decimals.
func INR(n float64) string {
	return "₹" + humanize.CommafWithDigits(math.Round(n), 0)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
