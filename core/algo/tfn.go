package algo

import (
	"math"

	"github.com/fuzzyrank/fuzzyrank/schema"
)

// Add returns the component-wise sum of a and b.
func Add(a, b schema.TFN) schema.TFN {
	return schema.TFN{L: a.L + b.L, M: a.M + b.M, U: a.U + b.U}
}

// Scale multiplies each component of t by k.
func Scale(t schema.TFN, k float64) schema.TFN {
	return schema.TFN{L: t.L * k, M: t.M * k, U: t.U * k}
}

// Div divides each component of t by d. The caller guarantees d != 0.
func Div(t schema.TFN, d float64) schema.TFN {
	return schema.TFN{L: t.L / d, M: t.M / d, U: t.U / d}
}

// Crisp returns the degenerate fuzzy number (v, v, v).
func Crisp(v float64) schema.TFN {
	return schema.TFN{L: v, M: v, U: v}
}

// Distance is the vertex distance between two fuzzy numbers.
func Distance(a, b schema.TFN) float64 {
	dl := a.L - b.L
	dm := a.M - b.M
	du := a.U - b.U
	return math.Sqrt((dl*dl + dm*dm + du*du) / 3)
}
