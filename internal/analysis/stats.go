// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import "math"

// SafeRatio divides num by den, returning 0 when the denominator is zero.
// Every mean, percentage, and ratio in this package goes through here (or
// SafePercent) so that an empty filter result degrades to zeros instead of
// NaN or a panic.
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// SafePercent returns num/den as a percentage, 0 when den is zero.
func SafePercent(num, den float64) float64 {
	return SafeRatio(num, den) * 100
}

// Mean returns the arithmetic mean of vals, 0 for an empty slice.
func Mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return SafeRatio(sum, float64(len(vals)))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator,
// matching the source methodology). Fewer than two values yields 0.
func SampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := Mean(vals)
	var ss float64
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}
