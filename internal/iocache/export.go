package iocache

import (
	"errors"
	"fmt"
	"io"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/parquet"
)

// ExportHistory writes the ranking history to two Parquet files that share
// the outputFile prefix, and reports progress to w.
func ExportHistory(store contract.HistoryStore, outputFile string, w io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history tracking is disabled. Set --history-backend to enable it")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no ranking history found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total ranking runs: %d\n", status.TotalRuns)
	_, _ = fmt.Fprintf(w, "Total ranked entries: %d\n", status.TableSizes[rankingEntriesTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve ranking runs: %w", err)
	}
	entries, err := store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to retrieve ranking entries: %w", err)
	}

	runsFile := outputFile + ".ranking_runs.parquet"
	if err := parquet.WriteRankingRunsParquet(parquet.ConvertRankingRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write ranking runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d ranking runs to: %s\n", len(runs), runsFile)

	entriesFile := outputFile + ".ranking_entries.parquet"
	if err := parquet.WriteRankingEntriesParquet(parquet.ConvertRankingEntryRecords(entries), entriesFile); err != nil {
		return fmt.Errorf("failed to write ranking entries: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d ranking entries to: %s\n", len(entries), entriesFile)

	return nil
}
