package algo

import (
	"math"

	"github.com/fuzzyrank/fuzzyrank/schema"
	"gonum.org/v1/gonum/floats"
)

// NormalizationDivisors returns, per criterion, the largest upper bound over
// all alternatives. A zero or non-finite maximum becomes 1.
func NormalizationDivisors(agg [][]schema.TFN, criteria int) []float64 {
	out := make([]float64, criteria)
	column := make([]float64, 0, len(agg))
	for j := range criteria {
		column = column[:0]
		for _, row := range agg {
			if j < len(row) {
				column = append(column, row[j].U)
			}
		}
		out[j] = 1
		if len(column) == 0 {
			continue
		}
		if m := floats.Max(column); m != 0 && !math.IsNaN(m) && !math.IsInf(m, 0) {
			out[j] = m
		}
	}
	return out
}

// Normalize divides every aggregated rating by its criterion divisor.
func Normalize(agg [][]schema.TFN, divisors []float64) [][]schema.TFN {
	out := make([][]schema.TFN, len(agg))
	for a, row := range agg {
		out[a] = make([]schema.TFN, len(row))
		for j, t := range row {
			d := 1.0
			if j < len(divisors) && divisors[j] != 0 {
				d = divisors[j]
			}
			out[a][j] = Div(t, d)
		}
	}
	return out
}
