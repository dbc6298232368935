package algo

import "github.com/fuzzyrank/fuzzyrank/schema"

// WeightTFNs resolves every weight label, defaulting to Fair.
func WeightTFNs(labels [][]string) [][]schema.TFN {
	out := make([][]schema.TFN, len(labels))
	for e, row := range labels {
		out[e] = make([]schema.TFN, len(row))
		for j, raw := range row {
			out[e][j] = ScaleOf(ResolveLabel(raw, schema.DefaultWeightLabel))
		}
	}
	return out
}

// AssessmentTFNs resolves every assessment label, defaulting to Good.
func AssessmentTFNs(labels [][][]string) [][][]schema.TFN {
	out := make([][][]schema.TFN, len(labels))
	for e, alts := range labels {
		out[e] = make([][]schema.TFN, len(alts))
		for a, row := range alts {
			out[e][a] = make([]schema.TFN, len(row))
			for j, raw := range row {
				out[e][a][j] = ScaleOf(ResolveLabel(raw, schema.DefaultAssessmentLabel))
			}
		}
	}
	return out
}

// expertDivisor is the number of experts, or 1 when there are none.
func expertDivisor(experts int) float64 {
	if experts < 1 {
		return 1
	}
	return float64(experts)
}

// AggregateWeights averages the per-expert weights of each criterion.
// Missing cells count as the default weight.
func AggregateWeights(weights [][]schema.TFN, experts, criteria int) []schema.TFN {
	def := ScaleOf(schema.DefaultWeightLabel)
	div := expertDivisor(experts)
	out := make([]schema.TFN, criteria)
	for j := range criteria {
		var sum schema.TFN
		for e := range experts {
			sum = Add(sum, cellOr(weights, e, j, def))
		}
		out[j] = Div(sum, div)
	}
	return out
}

// AggregateAssessments averages the per-expert ratings of each
// (alternative, criterion) cell. Missing cells count as the default rating.
func AggregateAssessments(assessments [][][]schema.TFN, experts, alternatives, criteria int) [][]schema.TFN {
	def := ScaleOf(schema.DefaultAssessmentLabel)
	div := expertDivisor(experts)
	out := make([][]schema.TFN, alternatives)
	for a := range alternatives {
		out[a] = make([]schema.TFN, criteria)
		for j := range criteria {
			var sum schema.TFN
			for e := range experts {
				var alts [][]schema.TFN
				if e < len(assessments) {
					alts = assessments[e]
				}
				sum = Add(sum, cellOr(alts, a, j, def))
			}
			out[a][j] = Div(sum, div)
		}
	}
	return out
}

func cellOr(m [][]schema.TFN, i, j int, def schema.TFN) schema.TFN {
	if i < len(m) && j < len(m[i]) {
		return m[i][j]
	}
	return def
}
