package algo

import (
	"sort"

	"github.com/fuzzyrank/fuzzyrank/schema"
)

// RankAlternatives builds the ranking of a computed result, sorted by
// closeness in descending order. Ties keep their input order.
func RankAlternatives(r schema.Result) []schema.RankingEntry {
	entries := make([]schema.RankingEntry, len(r.Closeness))
	for i, cc := range r.Closeness {
		entries[i] = schema.RankingEntry{
			Alternative:           nameAt(r.AlternativeNames, i, DefaultAlternativeName),
			Index:                 i,
			Closeness:             cc,
			DistToFPIS:            valueAt(r.DistToFPIS, i),
			DistToFNIS:            valueAt(r.DistToFNIS, i),
			WeightedNormalizedRow: rowAt(r.WeightedNormalized, i),
			AggregatedRow:         rowAt(r.AggregatedAssessments, i),
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Closeness > entries[j].Closeness
	})
	return entries
}

func nameAt(names []string, i int, gen func(int) string) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return gen(i)
}

func valueAt(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func rowAt(m [][]schema.TFN, i int) []schema.TFN {
	if i < len(m) {
		return m[i]
	}
	return nil
}
