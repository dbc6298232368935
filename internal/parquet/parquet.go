// Package parquet exports ranking results and ranking history to Parquet
// files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/parquet-go/parquet-go"
)

// RankingRun maps to the fuzzyrank_ranking_runs database table.
type RankingRun struct {
	RunID           int64      `parquet:"run_id,snappy"`
	RunUUID         string     `parquet:"run_uuid,snappy"`
	StartTime       time.Time  `parquet:"start_time,snappy"`
	EndTime         *time.Time `parquet:"end_time,optional,snappy"`
	RunDurationMs   *int32     `parquet:"run_duration_ms,optional,snappy"`
	NumExperts      int32      `parquet:"num_experts,snappy"`
	NumCriteria     int32      `parquet:"num_criteria,snappy"`
	NumAlternatives int32      `parquet:"num_alternatives,snappy"`
	Fingerprint     string     `parquet:"fingerprint,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RankingEntry maps to the fuzzyrank_ranking_entries database table.
type RankingEntry struct {
	RunID            int64   `parquet:"run_id,snappy"`
	Rank             int32   `parquet:"rank,snappy"`
	AlternativeIndex int32   `parquet:"alternative_index,snappy"`
	Alternative      string  `parquet:"alternative,snappy"`
	Closeness        float64 `parquet:"closeness,snappy"`
	DistToFPIS       float64 `parquet:"dist_to_fpis,snappy"`
	DistToFNIS       float64 `parquet:"dist_to_fnis,snappy"`
	AcceptanceLabel  string  `parquet:"acceptance_label,snappy"`
}

// RankedAlternative is one row of a single ranking written by the rank command.
type RankedAlternative struct {
	RunUUID          string  `parquet:"run_uuid,snappy"`
	Fingerprint      string  `parquet:"fingerprint,snappy"`
	Rank             int32   `parquet:"rank,snappy"`
	AlternativeIndex int32   `parquet:"alternative_index,snappy"`
	Alternative      string  `parquet:"alternative,snappy"`
	Closeness        float64 `parquet:"closeness,snappy"`
	DistToFPIS       float64 `parquet:"dist_to_fpis,snappy"`
	DistToFNIS       float64 `parquet:"dist_to_fnis,snappy"`
	AcceptanceLabel  string  `parquet:"acceptance_label,snappy"`
}

// writeRows writes rows to w using the schema inferred from T's struct tags.
func writeRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// writeFile creates outputPath and writes rows into it.
func writeFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeRows(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteRankingRunsParquet writes ranking runs to a Parquet file.
func WriteRankingRunsParquet(data []RankingRun, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteRankingEntriesParquet writes ranking entries to a Parquet file.
func WriteRankingEntriesParquet(data []RankingEntry, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteRankedAlternatives writes a single ranking to w.
func WriteRankedAlternatives(w io.Writer, data []RankedAlternative) error {
	return writeRows(w, data)
}

// ConvertRankingRunRecords converts history records for Parquet export.
func ConvertRankingRunRecords(records []schema.RankingRunRecord) []RankingRun {
	result := make([]RankingRun, len(records))
	for i, record := range records {
		result[i] = RankingRun{
			RunID:           record.RunID,
			RunUUID:         record.RunUUID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			RunDurationMs:   record.RunDurationMs,
			NumExperts:      record.NumExperts,
			NumCriteria:     record.NumCriteria,
			NumAlternatives: record.NumAlternatives,
			Fingerprint:     record.Fingerprint,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertRankingEntryRecords converts history records for Parquet export.
func ConvertRankingEntryRecords(records []schema.RankingEntryRecord) []RankingEntry {
	result := make([]RankingEntry, len(records))
	for i, record := range records {
		result[i] = RankingEntry{
			RunID:            record.RunID,
			Rank:             record.Rank,
			AlternativeIndex: record.AlternativeIndex,
			Alternative:      record.Alternative,
			Closeness:        record.Closeness,
			DistToFPIS:       record.DistToFPIS,
			DistToFNIS:       record.DistToFNIS,
			AcceptanceLabel:  record.AcceptanceLabel,
		}
	}
	return result
}

// ConvertRun flattens the ranking of a run into Parquet rows. The label
// function maps a closeness coefficient to its acceptance label.
func ConvertRun(run schema.Run, label func(float64) string) []RankedAlternative {
	result := make([]RankedAlternative, len(run.Result.Ranking))
	for i, e := range run.Result.Ranking {
		result[i] = RankedAlternative{
			RunUUID:          run.RunID,
			Fingerprint:      run.Result.Fingerprint,
			Rank:             int32(i + 1),
			AlternativeIndex: int32(e.Index),
			Alternative:      e.Alternative,
			Closeness:        e.Closeness,
			DistToFPIS:       e.DistToFPIS,
			DistToFNIS:       e.DistToFNIS,
			AcceptanceLabel:  label(e.Closeness),
		}
	}
	return result
}
