package utils

import "math"

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// RoundUpToHundred rounds a value up to the nearest multiple of 100.
// Government registration fees are quoted to the next full hundred.
func RoundUpToHundred(val float64) float64 {
	if val <= 0 {
		return 0
	}
	return math.Ceil(val/100) * 100
}
