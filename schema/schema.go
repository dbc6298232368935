// Package schema has the data model shared by every part of fuzzyrank.
package schema

// TFN is a triangular fuzzy number (lower, middle, upper).
// By convention L <= M <= U, but the order is not enforced.
type TFN struct {
	L float64 `json:"l"`
	M float64 `json:"m"`
	U float64 `json:"u"`
}

// Limits holds the configured minimum and maximum counts of a decision
// problem. A zero maximum leaves that count unbounded.
type Limits struct {
	MinExperts      int `json:"min_experts"`
	MinCriteria     int `json:"min_criteria"`
	MinAlternatives int `json:"min_alternatives"`
	MaxExperts      int `json:"max_experts"`
	MaxCriteria     int `json:"max_criteria"`
	MaxAlternatives int `json:"max_alternatives"`
}

// Input is a decision problem as entered by experts.
// Labels are kept as raw strings; they are resolved on the linguistic scale
// during aggregation so that unknown or legacy spellings never fail.
type Input struct {
	NumExperts       int          `json:"experts" yaml:"experts"`
	NumCriteria      int          `json:"num_criteria,omitempty" yaml:"num_criteria,omitempty"`
	NumAlternatives  int          `json:"num_alternatives,omitempty" yaml:"num_alternatives,omitempty"`
	CriteriaNames    []string     `json:"criteria" yaml:"criteria"`
	AlternativeNames []string     `json:"alternatives" yaml:"alternatives"`
	WeightLabels     [][]string   `json:"weights" yaml:"weights"`         // [expert][criterion]
	AssessmentLabels [][][]string `json:"assessments" yaml:"assessments"` // [expert][alternative][criterion]
}

// Clone returns a deep copy of the Input so that callers can keep editing
// the original while a computation runs against the copy.
func (in Input) Clone() Input {
	clone := in
	clone.CriteriaNames = append([]string(nil), in.CriteriaNames...)
	clone.AlternativeNames = append([]string(nil), in.AlternativeNames...)
	if in.WeightLabels != nil {
		clone.WeightLabels = make([][]string, len(in.WeightLabels))
		for e, row := range in.WeightLabels {
			clone.WeightLabels[e] = append([]string(nil), row...)
		}
	}
	if in.AssessmentLabels != nil {
		clone.AssessmentLabels = make([][][]string, len(in.AssessmentLabels))
		for e, alts := range in.AssessmentLabels {
			if alts == nil {
				continue
			}
			clone.AssessmentLabels[e] = make([][]string, len(alts))
			for a, row := range alts {
				clone.AssessmentLabels[e][a] = append([]string(nil), row...)
			}
		}
	}
	return clone
}

// RankingEntry is one alternative in the final ranking.
type RankingEntry struct {
	Alternative           string  `json:"alternative"`
	Index                 int     `json:"index"`
	Closeness             float64 `json:"closeness"`
	DistToFPIS            float64 `json:"dist_to_fpis"`
	DistToFNIS            float64 `json:"dist_to_fnis"`
	WeightedNormalizedRow []TFN   `json:"weighted_normalized_row"`
	AggregatedRow         []TFN   `json:"aggregated_row"`
}

// Result holds every intermediate and final value of one pipeline run.
// Matrices are indexed [alternative][criterion] unless noted otherwise.
type Result struct {
	Fingerprint      string   `json:"fingerprint,omitempty"`
	NumExperts       int      `json:"experts"`
	NumCriteria      int      `json:"num_criteria"`
	NumAlternatives  int      `json:"num_alternatives"`
	CriteriaNames    []string `json:"criteria"`
	AlternativeNames []string `json:"alternatives"`

	ExpertWeights     [][]TFN   `json:"expert_weights"`     // [expert][criterion]
	ExpertAssessments [][][]TFN `json:"expert_assessments"` // [expert][alternative][criterion]

	AggregatedWeights     []TFN     `json:"aggregated_weights"`
	WeightScalars         []float64 `json:"weight_scalars"`
	AggregatedAssessments [][]TFN   `json:"aggregated_assessments"`
	NormalizationDivisors []float64 `json:"normalization_divisors"`
	Normalized            [][]TFN   `json:"normalized"`
	WeightedNormalized    [][]TFN   `json:"weighted_normalized"`

	FPIS []TFN `json:"fpis"`
	FNIS []TFN `json:"fnis"`

	DistToFPIS []float64 `json:"dist_to_fpis"`
	DistToFNIS []float64 `json:"dist_to_fnis"`
	Closeness  []float64 `json:"closeness"`

	Ranking []RankingEntry `json:"ranking"`
}
