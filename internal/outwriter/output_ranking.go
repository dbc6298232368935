package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// printRanking outputs a ranking run, dispatching based on the output format configured.
func (ow *OutWriter) printRanking(run schema.Run, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONRanking(w, run, cfg.Steps)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRanking(w, run.Result.Ranking, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeParquetRanking(w, run)
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable tables
		if err := ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if cfg.Steps {
				if err := writeSteps(w, run.Result, fmtFloat); err != nil {
					return err
				}
			}
			return writeRankingTable(w, run, cfg, fmtFloat)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeRankingTable prints the final ranking followed by a short summary.
func writeRankingTable(w io.Writer, run schema.Run, cfg *contract.Config, fmtFloat func(float64) string) error {
	headers := []string{"Rank", "Alternative", "Closeness", "Label"}
	if cfg.Detail {
		headers = append(headers, "D+", "D-")
	}

	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, e := range run.Result.Ranking {
		row := []string{
			strconv.Itoa(i + 1),                             // Rank
			contract.TruncateName(e.Alternative, nameWidth), // Alternative
			fmtFloat(e.Closeness),                           // Closeness
			label(e.Closeness),                              // Label
		}
		if cfg.Detail {
			row = append(row, fmtFloat(e.DistToFPIS), fmtFloat(e.DistToFNIS))
		}
		data = append(data, row)
	}

	if err := renderTable(w, "", headers, data); err != nil {
		return err
	}

	r := run.Result
	_, _ = fmt.Fprintf(w, "Ranked %d alternatives on %d criteria from %d experts\n",
		r.NumAlternatives, r.NumCriteria, r.NumExperts)
	_, _ = fmt.Fprintf(w, "Ranking completed in %v (cache hit: %t). Cache backend: %s\n",
		run.Duration, run.CacheHit, backendName(cfg.CacheBackend))
	return nil
}

// backendName reports a disabled store as "none".
func backendName(b schema.DatabaseBackend) string {
	if b == "" {
		return string(schema.NoneBackend)
	}
	return string(b)
}
