package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	mcp_internal "github.com/fuzzyrank/fuzzyrank/internal/mcp"
	"github.com/fuzzyrank/fuzzyrank/internal/outwriter"
	"github.com/fuzzyrank/fuzzyrank/internal/problem"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problemYAML = `
experts: 1
criteria: [Cost]
alternatives: [Alpha, Beta]
weights:
  - [F]
assessments:
  - - [VP]
    - [VG]
`

func newServer() *server.MCPServer {
	baseCfg := &contract.Config{
		Precision: contract.DefaultPrecision,
		Limits:    schema.DefaultLimits,
	}
	// No stores: rankings are computed without caching or history
	var mgr contract.CacheManager
	return mcp_internal.NewMCPServer(baseCfg, mgr)
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRankAlternatives(t *testing.T) {
	s := newServer()

	res := callTool(t, s, "rank_alternatives", map[string]any{"problem": problemYAML})
	require.False(t, res.IsError, resultText(t, res))

	var doc outwriter.RankingDocument
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &doc))
	require.Len(t, doc.Ranking, 2)
	assert.Equal(t, "Beta", doc.Ranking[0].Alternative)
	assert.Equal(t, 1, doc.Ranking[0].Index)
	assert.Equal(t, contract.PreferredValue, doc.Ranking[0].Label)
	assert.Nil(t, doc.Steps)
	assert.NotEmpty(t, doc.RunID)

	res = callTool(t, s, "rank_alternatives", map[string]any{"problem": problemYAML, "steps": true})
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &doc))
	require.NotNil(t, doc.Steps)
	assert.Equal(t, []float64{9}, doc.Steps.NormalizationDivisors)
}

func TestRankAlternatives_Errors(t *testing.T) {
	s := newServer()

	t.Run("missing problem", func(t *testing.T) {
		res := callTool(t, s, "rank_alternatives", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "problem is required")
	})

	t.Run("unparsable problem", func(t *testing.T) {
		res := callTool(t, s, "rank_alternatives", map[string]any{"problem": "experts: [oops"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "failed to parse problem file")
	})

	t.Run("strict rejects unknown labels", func(t *testing.T) {
		doc := strings.Replace(problemYAML, "[VG]", "[excellent]", 1)
		res := callTool(t, s, "rank_alternatives", map[string]any{"problem": doc, "strict": true})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "unknown linguistic label")

		// Lenient mode default-fills the same label
		res = callTool(t, s, "rank_alternatives", map[string]any{"problem": doc})
		assert.False(t, res.IsError)
	})
}

func TestLinguisticScale(t *testing.T) {
	res := callTool(t, newServer(), "linguistic_scale", map[string]any{})
	require.False(t, res.IsError)

	var entries []outwriter.ScaleEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, "VG", entries[4].Code)
}

func TestResizeProblem(t *testing.T) {
	s := newServer()

	res := callTool(t, s, "resize_problem", map[string]any{"problem": problemYAML, "alternatives": 3.0})
	require.False(t, res.IsError, resultText(t, res))
	in, err := problem.Decode(strings.NewReader(resultText(t, res)))
	require.NoError(t, err)
	assert.Equal(t, 1, in.NumExperts)
	assert.Equal(t, []string{"Alpha", "Beta", "A3"}, in.AlternativeNames)
	assert.Equal(t, []string{"G"}, in.AssessmentLabels[0][2])

	res = callTool(t, s, "resize_problem", map[string]any{"experts": 2.0, "criteria": 2.0, "alternatives": 2.0})
	require.False(t, res.IsError)
	in, err = problem.Decode(strings.NewReader(resultText(t, res)))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"F", "F"}, {"F", "F"}}, in.WeightLabels)

	res = callTool(t, s, "resize_problem", map[string]any{"experts": -1.0})
	assert.True(t, res.IsError)
}

func TestResizeProblem_ZeroKeepsCount(t *testing.T) {
	res := callTool(t, newServer(), "resize_problem", map[string]any{
		"problem": problemYAML, "experts": 0.0, "criteria": 0.0, "alternatives": 3.0,
	})
	require.False(t, res.IsError, resultText(t, res))
	in, err := problem.Decode(strings.NewReader(resultText(t, res)))
	require.NoError(t, err)
	assert.Equal(t, 1, in.NumExperts)
	assert.Equal(t, []string{"Cost"}, in.CriteriaNames)
	assert.Equal(t, [][]string{{"F"}}, in.WeightLabels)
	assert.Len(t, in.AssessmentLabels[0], 3)
}

func TestCountsAboveMaximums(t *testing.T) {
	s := newServer()

	res := callTool(t, s, "resize_problem", map[string]any{"experts": 300.0, "criteria": 300.0, "alternatives": 300.0})
	require.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "decision problem too large")

	res = callTool(t, s, "rank_alternatives", map[string]any{
		"problem": `{"experts":300,"num_criteria":300,"num_alternatives":300}`,
	})
	require.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "300 alternatives > 200")
}
