package algo

import "github.com/fuzzyrank/fuzzyrank/schema"

// WeightScalars reduces each aggregated weight to its middle component.
func WeightScalars(weights []schema.TFN) []float64 {
	out := make([]float64, len(weights))
	for j, w := range weights {
		out[j] = w.M
	}
	return out
}

// ApplyWeights multiplies every normalized rating by its criterion scalar.
func ApplyWeights(normalized [][]schema.TFN, scalars []float64) [][]schema.TFN {
	out := make([][]schema.TFN, len(normalized))
	for a, row := range normalized {
		out[a] = make([]schema.TFN, len(row))
		for j, t := range row {
			var w float64
			if j < len(scalars) {
				w = scalars[j]
			}
			out[a][j] = Scale(t, w)
		}
	}
	return out
}
