package algo

import (
	"testing"

	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() schema.Input {
	return schema.Input{
		NumExperts:       2,
		NumCriteria:      2,
		NumAlternatives:  2,
		CriteriaNames:    []string{"Cost", "Quality"},
		AlternativeNames: []string{"Alpha", "Beta"},
		WeightLabels:     [][]string{{"VG", "P"}, {"G", "F"}},
		AssessmentLabels: [][][]string{
			{{"G", "VG"}, {"P", "F"}},
			{{"VG", "G"}, {"VP", "P"}},
		},
	}
}

func TestResizeGrow(t *testing.T) {
	in := sampleInput()
	out := Resize(in, 3, 3, 3)

	assert.Equal(t, 3, out.NumExperts)
	assert.Equal(t, []string{"Cost", "Quality", "C3"}, out.CriteriaNames)
	assert.Equal(t, []string{"Alpha", "Beta", "A3"}, out.AlternativeNames)

	require.Len(t, out.WeightLabels, 3)
	assert.Equal(t, []string{"VG", "P", "F"}, out.WeightLabels[0])
	assert.Equal(t, []string{"F", "F", "F"}, out.WeightLabels[2])

	require.Len(t, out.AssessmentLabels, 3)
	assert.Equal(t, []string{"G", "VG", "G"}, out.AssessmentLabels[0][0])
	assert.Equal(t, []string{"G", "G", "G"}, out.AssessmentLabels[0][2])
	assert.Equal(t, []string{"G", "G", "G"}, out.AssessmentLabels[2][1])
}

func TestResizeShrink(t *testing.T) {
	out := Resize(sampleInput(), 1, 1, 1)

	assert.Equal(t, []string{"Cost"}, out.CriteriaNames)
	assert.Equal(t, []string{"Alpha"}, out.AlternativeNames)
	assert.Equal(t, [][]string{{"VG"}}, out.WeightLabels)
	assert.Equal(t, [][][]string{{{"G"}}}, out.AssessmentLabels)
}

func TestResizeDoesNotMutateInput(t *testing.T) {
	in := sampleInput()
	out := Resize(in, 2, 2, 2)
	out.WeightLabels[0][0] = "VP"
	out.CriteriaNames[0] = "Changed"

	assert.Equal(t, sampleInput(), in)
}

func TestResizeNegativeAndEmpty(t *testing.T) {
	out := Resize(schema.Input{}, -1, 2, 0)
	assert.Equal(t, 0, out.NumExperts)
	assert.Empty(t, out.WeightLabels)
	assert.Equal(t, []string{"C1", "C2"}, out.CriteriaNames)
	assert.Empty(t, out.AlternativeNames)

	filled := Resize(schema.Input{WeightLabels: [][]string{{"", "VG"}}}, 1, 2, 0)
	assert.Equal(t, []string{"F", "VG"}, filled.WeightLabels[0])
}

func TestInferCounts(t *testing.T) {
	in := schema.Input{
		AlternativeNames: []string{"X"},
		WeightLabels:     [][]string{{"G", "G", "G"}},
		AssessmentLabels: [][][]string{{{"G"}, {"G"}}, {{"F"}}},
	}
	out := InferCounts(in)
	assert.Equal(t, 2, out.NumExperts)
	assert.Equal(t, 3, out.NumCriteria)
	assert.Equal(t, 2, out.NumAlternatives)

	declared := InferCounts(schema.Input{NumExperts: 5, WeightLabels: [][]string{{"G"}}})
	assert.Equal(t, 5, declared.NumExperts)
}

func TestApplyLimits(t *testing.T) {
	out := ApplyLimits(schema.Input{NumExperts: 1, NumCriteria: 6, NumAlternatives: 1}, schema.ClassicLimits)
	assert.Equal(t, 3, out.NumExperts)
	assert.Equal(t, 6, out.NumCriteria)
	assert.Equal(t, 4, out.NumAlternatives)
	assert.Len(t, out.AssessmentLabels[2], 4)
}
