package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCodeAndString(t *testing.T) {
	tests := []struct {
		label Label
		code  string
		name  string
	}{
		{VeryPoor, "VP", "VeryPoor"},
		{Poor, "P", "Poor"},
		{Fair, "F", "Fair"},
		{Good, "G", "Good"},
		{VeryGood, "VG", "VeryGood"},
		{Label(-1), "F", "Fair"},
		{Label(42), "F", "Fair"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.label.Code())
			assert.Equal(t, tt.name, tt.label.String())
		})
	}
}

func TestAllLabelsOrdered(t *testing.T) {
	assert.Len(t, AllLabels, 5)
	for i := 1; i < len(AllLabels); i++ {
		assert.Less(t, AllLabels[i-1], AllLabels[i])
	}
}

func TestInputClone(t *testing.T) {
	in := Input{
		NumExperts:       1,
		CriteriaNames:    []string{"Cost"},
		AlternativeNames: []string{"Alpha"},
		WeightLabels:     [][]string{{"F"}},
		AssessmentLabels: [][][]string{{{"G"}}},
	}
	clone := in.Clone()
	assert.Equal(t, in, clone)

	clone.CriteriaNames[0] = "Price"
	clone.AlternativeNames[0] = "Beta"
	clone.WeightLabels[0][0] = "VG"
	clone.AssessmentLabels[0][0][0] = "VP"

	assert.Equal(t, "Cost", in.CriteriaNames[0])
	assert.Equal(t, "Alpha", in.AlternativeNames[0])
	assert.Equal(t, "F", in.WeightLabels[0][0])
	assert.Equal(t, "G", in.AssessmentLabels[0][0][0])
}

func TestInputCloneNilMatrices(t *testing.T) {
	clone := Input{AssessmentLabels: [][][]string{nil}}.Clone()
	assert.Nil(t, clone.WeightLabels)
	assert.Equal(t, [][][]string{nil}, clone.AssessmentLabels)
}

func TestDefaultsAreValid(t *testing.T) {
	assert.Contains(t, ValidOutputModes, TextOut)
	assert.Contains(t, ValidDatabaseBackends, SQLiteBackend)
	assert.Equal(t, Fair, DefaultWeightLabel)
	assert.Equal(t, Good, DefaultAssessmentLabel)
	assert.Equal(t, 3, ClassicLimits.MinExperts)
	assert.Equal(t, 5, ClassicLimits.MinCriteria)
	assert.Equal(t, 4, ClassicLimits.MinAlternatives)
	assert.Equal(t, DefaultLimits.MaxAlternatives, ClassicLimits.MaxAlternatives)
	for _, l := range []Limits{DefaultLimits, ClassicLimits} {
		assert.LessOrEqual(t, l.MinExperts, l.MaxExperts)
		assert.LessOrEqual(t, l.MinCriteria, l.MaxCriteria)
		assert.LessOrEqual(t, l.MinAlternatives, l.MaxAlternatives)
	}
}
