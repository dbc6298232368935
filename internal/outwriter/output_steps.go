package outwriter

import (
	"fmt"
	"io"

	"github.com/fuzzyrank/fuzzyrank/schema"
)

// writeSteps prints every intermediate table of the pipeline in evaluation order.
func writeSteps(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	steps := []func(io.Writer, schema.Result, func(float64) string) error{
		writeExpertWeights,
		writeExpertAssessments,
		writeAggregatedWeights,
		writeAggregatedAssessments,
		writeNormalized,
		writeWeightedNormalized,
		writeIdealSolutions,
		writeDistances,
	}
	for _, step := range steps {
		if err := step(w, r, fmtFloat); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// criterionHeaders returns a first column header followed by the criteria names.
func criterionHeaders(first string, r schema.Result) []string {
	return append([]string{first}, r.CriteriaNames...)
}

// tfnRow renders a named row of TFNs.
func tfnRow(name string, row []schema.TFN, fmtFloat func(float64) string) []string {
	out := make([]string, 0, len(row)+1)
	out = append(out, name)
	for _, t := range row {
		out = append(out, formatTFN(t, fmtFloat))
	}
	return out
}

// alternativeMatrix renders an alternatives by criteria matrix.
func alternativeMatrix(r schema.Result, m [][]schema.TFN, fmtFloat func(float64) string) [][]string {
	rows := make([][]string, 0, len(m))
	for i, row := range m {
		rows = append(rows, tfnRow(nameOf(r.AlternativeNames, i), row, fmtFloat))
	}
	return rows
}

// nameOf returns names[i], or a positional name when names is short.
func nameOf(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

func writeExpertWeights(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	rows := make([][]string, 0, len(r.ExpertWeights))
	for e, row := range r.ExpertWeights {
		rows = append(rows, tfnRow(fmt.Sprintf("Expert %d", e+1), row, fmtFloat))
	}
	return renderTable(w, "Criteria weights per expert", criterionHeaders("Expert", r), rows)
}

func writeExpertAssessments(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	for e, m := range r.ExpertAssessments {
		title := fmt.Sprintf("Assessments of expert %d", e+1)
		if err := renderTable(w, title, criterionHeaders("Alternative", r), alternativeMatrix(r, m, fmtFloat)); err != nil {
			return err
		}
	}
	return nil
}

func writeAggregatedWeights(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	rows := make([][]string, 0, len(r.AggregatedWeights))
	for j, t := range r.AggregatedWeights {
		scalar := ""
		if j < len(r.WeightScalars) {
			scalar = fmtFloat(r.WeightScalars[j])
		}
		rows = append(rows, []string{nameOf(r.CriteriaNames, j), formatTFN(t, fmtFloat), scalar})
	}
	return renderTable(w, "Aggregated criteria weights", []string{"Criterion", "Weight", "Scalar"}, rows)
}

func writeAggregatedAssessments(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	return renderTable(w, "Aggregated decision matrix", criterionHeaders("Alternative", r),
		alternativeMatrix(r, r.AggregatedAssessments, fmtFloat))
}

func writeNormalized(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	rows := alternativeMatrix(r, r.Normalized, fmtFloat)
	divisors := []string{"max u"}
	for _, d := range r.NormalizationDivisors {
		divisors = append(divisors, fmtFloat(d))
	}
	rows = append(rows, divisors)
	return renderTable(w, "Normalized decision matrix", criterionHeaders("Alternative", r), rows)
}

func writeWeightedNormalized(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	return renderTable(w, "Weighted normalized decision matrix", criterionHeaders("Alternative", r),
		alternativeMatrix(r, r.WeightedNormalized, fmtFloat))
}

func writeIdealSolutions(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	rows := [][]string{
		tfnRow("FPIS (A+)", r.FPIS, fmtFloat),
		tfnRow("FNIS (A-)", r.FNIS, fmtFloat),
	}
	return renderTable(w, "Ideal solutions", criterionHeaders("Solution", r), rows)
}

func writeDistances(w io.Writer, r schema.Result, fmtFloat func(float64) string) error {
	rows := make([][]string, 0, len(r.Closeness))
	for i, cc := range r.Closeness {
		var dp, dn float64
		if i < len(r.DistToFPIS) {
			dp = r.DistToFPIS[i]
		}
		if i < len(r.DistToFNIS) {
			dn = r.DistToFNIS[i]
		}
		rows = append(rows, []string{nameOf(r.AlternativeNames, i), fmtFloat(dp), fmtFloat(dn), fmtFloat(cc)})
	}
	return renderTable(w, "Distances and closeness", []string{"Alternative", "D+", "D-", "CC"}, rows)
}
