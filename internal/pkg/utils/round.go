package utils

import "math"

// Round keeps n decimal places. Used only at the presentation boundary;
// domain values stay unrounded.
func Round(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}
