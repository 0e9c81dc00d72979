// domain/rounding.go
package domain

import "math"

// RoundResult applies magnitude-adaptive display rounding to every
// numeric value the service returns. Small magnitudes keep more decimal
// places so they do not collapse to zero; large magnitudes stay compact.
// The thresholds and decimal counts are part of the wire contract.
func RoundResult(value float64) float64 {
	abs := math.Abs(value)
	switch {
	case abs < 1e-6:
		return 0
	case abs < 1:
		return roundTo(value, 6)
	case abs < 100:
		return roundTo(value, 4)
	case abs < 10000:
		return roundTo(value, 2)
	default:
		return roundTo(value, 1)
	}
}

func roundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
