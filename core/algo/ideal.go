package algo

import (
	"github.com/fuzzyrank/fuzzyrank/schema"
	"gonum.org/v1/gonum/floats"
)

// IdealSolutions returns the fuzzy positive ideal solution (FPIS) and the
// fuzzy negative ideal solution (FNIS). For each criterion the FPIS is the
// crisp maximum upper bound and the FNIS the crisp minimum lower bound.
// Criteria without alternatives get (0, 0, 0) for both.
func IdealSolutions(weighted [][]schema.TFN, criteria int) (fpis, fnis []schema.TFN) {
	fpis = make([]schema.TFN, criteria)
	fnis = make([]schema.TFN, criteria)
	uppers := make([]float64, 0, len(weighted))
	lowers := make([]float64, 0, len(weighted))
	for j := range criteria {
		uppers, lowers = uppers[:0], lowers[:0]
		for _, row := range weighted {
			if j < len(row) {
				uppers = append(uppers, row[j].U)
				lowers = append(lowers, row[j].L)
			}
		}
		if len(uppers) == 0 {
			continue
		}
		fpis[j] = Crisp(floats.Max(uppers))
		fnis[j] = Crisp(floats.Min(lowers))
	}
	return fpis, fnis
}
