//go:build integration

// Package integration contains integration tests for fuzzyrank.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fuzzyrank/fuzzyrank/internal/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rankingDoc struct {
	Ranking []struct {
		Rank        int     `json:"rank"`
		Alternative string  `json:"alternative"`
		Closeness   float64 `json:"closeness"`
		DistToFPIS  float64 `json:"dist_to_fpis"`
		DistToFNIS  float64 `json:"dist_to_fnis"`
		Label       string  `json:"label"`
	} `json:"ranking"`
}

// TestRankVerification checks the CLI against a hand-computed single-criterion problem.
func TestRankVerification(t *testing.T) {
	home := t.TempDir()

	out, err := runCommand(t, home, "rank", "testdata/single.yaml", "--output", "json", "--cache-backend", "none")
	require.NoError(t, err)

	var doc rankingDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Ranking, 2)

	assert.Equal(t, "A1", doc.Ranking[0].Alternative)
	assert.InDelta(t, 0.8649, doc.Ranking[0].Closeness, 1e-4)
	assert.InDelta(t, 0.6415, doc.Ranking[0].DistToFPIS, 1e-4)
	assert.InDelta(t, 4.1076, doc.Ranking[0].DistToFNIS, 1e-4)
	assert.Equal(t, "Approved and preferred", doc.Ranking[0].Label)

	assert.Equal(t, "A2", doc.Ranking[1].Alternative)
	assert.InDelta(t, 0.1351, doc.Ranking[1].Closeness, 1e-4)
	assert.Equal(t, "Not recommended", doc.Ranking[1].Label)
}

// TestRankFromStdin pipes the problem through standard input.
func TestRankFromStdin(t *testing.T) {
	data, err := os.ReadFile("testdata/single.yaml")
	require.NoError(t, err)

	cmd := exec.Command(getBinary(), "rank", "-", "--output", "csv", "--precision", "2", "--cache-backend", "none")
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
	cmd.Stdin = strings.NewReader(string(data))
	out, err := cmd.Output()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "rank", records[0][0])
	assert.Equal(t, []string{"1", "A1", "0", "0.86"}, records[1][:4])
}

// TestStrictRejectsInvalidProblem checks that --strict exits non-zero on bad labels.
func TestStrictRejectsInvalidProblem(t *testing.T) {
	home := t.TempDir()
	bad := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("experts: 1\ncriteria: [C1]\nalternatives: [A1]\nweights:\n  - [great]\nassessments:\n  - - [G]\n"), 0o644))

	_, err := runCommand(t, home, "rank", bad, "--strict", "--cache-backend", "none")
	assert.Error(t, err)

	// Lenient mode default-fills the unknown weight
	_, err = runCommand(t, home, "rank", bad, "--cache-backend", "none")
	assert.NoError(t, err)
}

// TestTemplateRoundTrip writes a template, resizes it and ranks the result.
func TestTemplateRoundTrip(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "problem.yaml")

	_, err := runCommand(t, home, "template", "--experts", "2", "--criteria", "3", "--alternatives", "4", "--output-file", path)
	require.NoError(t, err)

	resized := filepath.Join(home, "resized.yaml")
	_, err = runCommand(t, home, "template", "--from", path, "--alternatives", "5", "--output-file", resized)
	require.NoError(t, err)

	in, err := problem.Load(resized)
	require.NoError(t, err)
	assert.Equal(t, 2, in.NumExperts)
	assert.Equal(t, 3, in.NumCriteria)
	assert.Equal(t, 5, in.NumAlternatives)

	out, err := runCommand(t, home, "rank", resized, "--output", "json", "--cache-backend", "none")
	require.NoError(t, err)
	var doc rankingDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Ranking, 5)
}

// TestHistoryExport records rankings in SQLite and exports them to Parquet.
func TestHistoryExport(t *testing.T) {
	home := t.TempDir()
	historyDB := filepath.Join(home, "history.db")
	args := []string{"--history-backend", "sqlite", "--history-db-connect", historyDB}

	for range 2 {
		_, err := runCommand(t, home, append([]string{"rank", "testdata/vendors.yaml", "--output", "json"}, args...)...)
		require.NoError(t, err)
	}

	out, err := runCommand(t, home, append([]string{"history", "status"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite")

	prefix := filepath.Join(home, "export")
	_, err = runCommand(t, home, append([]string{"history", "export", "--output-file", prefix}, args...)...)
	require.NoError(t, err)
	assert.FileExists(t, prefix+".ranking_runs.parquet")
	assert.FileExists(t, prefix+".ranking_entries.parquet")
}
