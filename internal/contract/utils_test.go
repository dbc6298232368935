package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero closeness", input: 0.0, expected: NotRecommendedValue},
		{name: "just before high risk", input: 0.199, expected: NotRecommendedValue},
		{name: "exactly high risk", input: 0.2, expected: HighRiskValue},
		{name: "exactly low risk", input: 0.4, expected: LowRiskValue},
		{name: "just before approved", input: 0.599, expected: LowRiskValue},
		{name: "exactly approved", input: 0.6, expected: ApprovedValue},
		{name: "exactly preferred", input: 0.8, expected: PreferredValue},
		{name: "full closeness", input: 1.0, expected: PreferredValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	for _, cc := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assert.Contains(t, GetColorLabel(cc), GetPlainLabel(cc))
	}
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "Short", TruncateName("Short", 10))
	assert.Equal(t, "Supplie...", TruncateName("Supplier Alpha", 10))
	assert.Equal(t, "abcdef", TruncateName("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestDBFilePaths(t *testing.T) {
	assert.Contains(t, GetCacheDBFilePath(), ".fuzzyrank_cache.db")
	assert.Contains(t, GetHistoryDBFilePath(), ".fuzzyrank_history.db")
	assert.NotEqual(t, GetCacheDBFilePath(), GetHistoryDBFilePath())
}
