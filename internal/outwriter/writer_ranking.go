package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/parquet"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// RankedEntry is one ranked alternative with its rank and label added.
type RankedEntry struct {
	Rank        int     `json:"rank"`
	Alternative string  `json:"alternative"`
	Index       int     `json:"index"`
	Closeness   float64 `json:"closeness"`
	DistToFPIS  float64 `json:"dist_to_fpis"`
	DistToFNIS  float64 `json:"dist_to_fnis"`
	Label       string  `json:"label"`
}

// RankingDocument is the JSON document of a ranking run, shared by every
// surface that returns rankings as JSON.
type RankingDocument struct {
	RunID           string         `json:"run_id"`
	Fingerprint     string         `json:"fingerprint"`
	CacheHit        bool           `json:"cache_hit"`
	DurationMs      int64          `json:"duration_ms"`
	NumExperts      int            `json:"experts"`
	NumCriteria     int            `json:"num_criteria"`
	NumAlternatives int            `json:"num_alternatives"`
	Ranking         []RankedEntry  `json:"ranking"`
	Steps           *schema.Result `json:"steps,omitempty"`
}

// NewRankingDocument prepares the JSON document; steps attaches the full result record.
func NewRankingDocument(run schema.Run, steps bool) RankingDocument {
	r := run.Result
	out := RankingDocument{
		RunID:           run.RunID,
		Fingerprint:     r.Fingerprint,
		CacheHit:        run.CacheHit,
		DurationMs:      run.Duration.Milliseconds(),
		NumExperts:      r.NumExperts,
		NumCriteria:     r.NumCriteria,
		NumAlternatives: r.NumAlternatives,
		Ranking:         make([]RankedEntry, len(r.Ranking)),
	}
	for i, e := range r.Ranking {
		out.Ranking[i] = RankedEntry{
			Rank:        i + 1,
			Alternative: e.Alternative,
			Index:       e.Index,
			Closeness:   e.Closeness,
			DistToFPIS:  e.DistToFPIS,
			DistToFNIS:  e.DistToFNIS,
			Label:       contract.GetPlainLabel(e.Closeness),
		}
	}
	if steps {
		out.Steps = &r
	}
	return out
}

// writeJSONRanking marshals a ranking run to JSON and writes it.
func writeJSONRanking(w io.Writer, run schema.Run, steps bool) error {
	return writeJSON(w, NewRankingDocument(run, steps))
}

// writeCSVRanking writes one CSV row per ranked alternative.
func writeCSVRanking(w io.Writer, ranking []schema.RankingEntry, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"alternative",
		"index",
		"closeness",
		"dist_to_fpis",
		"dist_to_fnis",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, e := range ranking {
			row := []string{
				strconv.Itoa(i + 1),                 // Rank
				e.Alternative,                       // Alternative
				strconv.Itoa(e.Index),               // Input position
				fmtFloat(e.Closeness),               // Closeness
				fmtFloat(e.DistToFPIS),              // D+
				fmtFloat(e.DistToFNIS),              // D-
				contract.GetPlainLabel(e.Closeness), // Label
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeParquetRanking writes the ranking of a run as Parquet rows.
func writeParquetRanking(w io.Writer, run schema.Run) error {
	return parquet.WriteRankedAlternatives(w, parquet.ConvertRun(run, contract.GetPlainLabel))
}
