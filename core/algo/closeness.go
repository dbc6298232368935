package algo

import "github.com/fuzzyrank/fuzzyrank/schema"

// Distances sums, per alternative, the vertex distances to an ideal solution.
func Distances(weighted [][]schema.TFN, ideal []schema.TFN) []float64 {
	out := make([]float64, len(weighted))
	for a, row := range weighted {
		var d float64
		for j, t := range row {
			if j < len(ideal) {
				d += Distance(t, ideal[j])
			}
		}
		out[a] = d
	}
	return out
}

// Closeness returns D- / (D+ + D-) per alternative, or 0 when both are 0.
func Closeness(distPositive, distNegative []float64) []float64 {
	out := make([]float64, len(distPositive))
	for a, dp := range distPositive {
		var dn float64
		if a < len(distNegative) {
			dn = distNegative[a]
		}
		if denom := dp + dn; denom != 0 {
			out[a] = dn / denom
		}
	}
	return out
}
