// Package algo implements the fuzzy TOPSIS computation.
// Every function here is pure and never mutates its arguments.
package algo

import "github.com/fuzzyrank/fuzzyrank/schema"

// Compute runs the full pipeline on a snapshot of in. It never fails: the
// snapshot is resized to the declared counts and every missing or unknown
// label resolves to its default. Use Validate first to reject such input.
func Compute(in schema.Input) schema.Result {
	snap := Resize(in, in.NumExperts, in.NumCriteria, in.NumAlternatives)
	e, c, a := snap.NumExperts, snap.NumCriteria, snap.NumAlternatives

	r := schema.Result{
		NumExperts:        e,
		NumCriteria:       c,
		NumAlternatives:   a,
		CriteriaNames:     snap.CriteriaNames,
		AlternativeNames:  snap.AlternativeNames,
		ExpertWeights:     WeightTFNs(snap.WeightLabels),
		ExpertAssessments: AssessmentTFNs(snap.AssessmentLabels),
	}

	r.AggregatedWeights = AggregateWeights(r.ExpertWeights, e, c)
	r.WeightScalars = WeightScalars(r.AggregatedWeights)
	r.AggregatedAssessments = AggregateAssessments(r.ExpertAssessments, e, a, c)
	r.NormalizationDivisors = NormalizationDivisors(r.AggregatedAssessments, c)
	r.Normalized = Normalize(r.AggregatedAssessments, r.NormalizationDivisors)
	r.WeightedNormalized = ApplyWeights(r.Normalized, r.WeightScalars)
	r.FPIS, r.FNIS = IdealSolutions(r.WeightedNormalized, c)
	r.DistToFPIS = Distances(r.WeightedNormalized, r.FPIS)
	r.DistToFNIS = Distances(r.WeightedNormalized, r.FNIS)
	r.Closeness = Closeness(r.DistToFPIS, r.DistToFNIS)
	r.Ranking = RankAlternatives(r)
	return r
}

// ComputeStrict validates in against limits and computes it only when valid.
func ComputeStrict(in schema.Input, limits schema.Limits) (schema.Result, error) {
	if err := Validate(in, limits); err != nil {
		return schema.Result{}, err
	}
	return Compute(in), nil
}
