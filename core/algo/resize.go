package algo

import (
	"fmt"

	"github.com/fuzzyrank/fuzzyrank/schema"
)

// DefaultCriterionName returns the generated name of criterion j (zero based).
func DefaultCriterionName(j int) string { return fmt.Sprintf("C%d", j+1) }

// DefaultAlternativeName returns the generated name of alternative i (zero based).
func DefaultAlternativeName(i int) string { return fmt.Sprintf("A%d", i+1) }

// Resize returns a copy of in reshaped to the given counts. Existing cells
// inside the new bounds are kept, new or empty cells are filled with the
// default labels and names, and cells outside the bounds are dropped.
// Negative counts are treated as zero. The input is never modified.
func Resize(in schema.Input, experts, criteria, alternatives int) schema.Input {
	experts = max(experts, 0)
	criteria = max(criteria, 0)
	alternatives = max(alternatives, 0)

	out := schema.Input{
		NumExperts:       experts,
		NumCriteria:      criteria,
		NumAlternatives:  alternatives,
		CriteriaNames:    resizeNames(in.CriteriaNames, criteria, DefaultCriterionName),
		AlternativeNames: resizeNames(in.AlternativeNames, alternatives, DefaultAlternativeName),
		WeightLabels:     make([][]string, experts),
		AssessmentLabels: make([][][]string, experts),
	}

	weightCode := schema.DefaultWeightLabel.Code()
	assessCode := schema.DefaultAssessmentLabel.Code()
	for e := range experts {
		var row []string
		if e < len(in.WeightLabels) {
			row = in.WeightLabels[e]
		}
		out.WeightLabels[e] = resizeRow(row, criteria, weightCode)

		var alts [][]string
		if e < len(in.AssessmentLabels) {
			alts = in.AssessmentLabels[e]
		}
		out.AssessmentLabels[e] = make([][]string, alternatives)
		for a := range alternatives {
			var cells []string
			if a < len(alts) {
				cells = alts[a]
			}
			out.AssessmentLabels[e][a] = resizeRow(cells, criteria, assessCode)
		}
	}
	return out
}

func resizeNames(names []string, n int, gen func(int) string) []string {
	out := make([]string, n)
	for i := range n {
		if i < len(names) && names[i] != "" {
			out[i] = names[i]
		} else {
			out[i] = gen(i)
		}
	}
	return out
}

func resizeRow(row []string, n int, fill string) []string {
	out := make([]string, n)
	for i := range n {
		if i < len(row) && row[i] != "" {
			out[i] = row[i]
		} else {
			out[i] = fill
		}
	}
	return out
}

// InferCounts fills zero counts from the extents of the names and matrices.
func InferCounts(in schema.Input) schema.Input {
	if in.NumExperts == 0 {
		in.NumExperts = max(len(in.WeightLabels), len(in.AssessmentLabels))
	}
	if in.NumCriteria == 0 {
		n := len(in.CriteriaNames)
		for _, row := range in.WeightLabels {
			n = max(n, len(row))
		}
		for _, alts := range in.AssessmentLabels {
			for _, row := range alts {
				n = max(n, len(row))
			}
		}
		in.NumCriteria = n
	}
	if in.NumAlternatives == 0 {
		n := len(in.AlternativeNames)
		for _, alts := range in.AssessmentLabels {
			n = max(n, len(alts))
		}
		in.NumAlternatives = n
	}
	return in
}

// ApplyLimits raises each count to its configured minimum and resizes.
func ApplyLimits(in schema.Input, limits schema.Limits) schema.Input {
	return Resize(in,
		max(in.NumExperts, limits.MinExperts),
		max(in.NumCriteria, limits.MinCriteria),
		max(in.NumAlternatives, limits.MinAlternatives),
	)
}
