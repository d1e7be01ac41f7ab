// Package statistics provides descriptive statistics over analysis results.
package statistics

import (
	"math"
	"sort"
)

// Summary describes a set of observations.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
}

// Summarize computes a Summary. StdDev is the population standard
// deviation. An empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	m := mean(sorted)
	variance := 0.0
	for _, v := range sorted {
		variance += (v - m) * (v - m)
	}
	variance /= float64(n)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Summary{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   m,
		Median: median,
		StdDev: math.Sqrt(variance),
	}
}

// Efficiency is the share of distinct tokens, in percent.
func Efficiency(unique, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(unique) / float64(total) * 100
}

// RepetitionRate is the share of repeated tokens, in percent.
func RepetitionRate(unique, total int) float64 {
	if total == 0 {
		return 0
	}
	return (1 - float64(unique)/float64(total)) * 100
}

// Share returns part as a percentage of whole, or 0 when whole is 0.
func Share(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
