package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fuzzyrank/fuzzyrank/core/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// ScaleEntry is one row of the linguistic scale.
type ScaleEntry struct {
	Code    string     `json:"code"`
	Name    string     `json:"name"`
	TFN     schema.TFN `json:"tfn"`
	Aliases []string   `json:"aliases,omitempty"`
}

// BuildScale lists every label of the linguistic scale with the other
// spellings accepted for it.
func BuildScale() []ScaleEntry {
	entries := make([]ScaleEntry, 0, len(schema.AllLabels))
	for _, l := range schema.AllLabels {
		entries = append(entries, ScaleEntry{Code: l.Code(), Name: l.String(), TFN: algo.ScaleOf(l), Aliases: algo.Spellings(l)})
	}
	return entries
}

// printScale outputs the linguistic scale, dispatching based on the output format configured.
func (ow *OutWriter) printScale(cfg *contract.Config) error {
	entries := BuildScale()
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVScale(w, entries, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for the linguistic scale")
	default:
		return ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScaleTable(w, entries, fmtFloat)
		}, "Wrote table")
	}
}

func writeCSVScale(w io.Writer, entries []ScaleEntry, fmtFloat func(float64) string) error {
	header := []string{"code", "name", "l", "m", "u", "aliases"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range entries {
			row := []string{e.Code, e.Name, fmtFloat(e.TFN.L), fmtFloat(e.TFN.M), fmtFloat(e.TFN.U), strings.Join(e.Aliases, "|")}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeScaleTable(w io.Writer, entries []ScaleEntry, fmtFloat func(float64) string) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Code, e.Name, formatTFN(e.TFN, fmtFloat), strings.Join(e.Aliases, ", ")})
	}
	if err := renderTable(w, "", []string{"Code", "Name", "TFN", "Aliases"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Labels match ignoring case, spaces, hyphens and underscores.\nMissing weights default to %s, missing assessments to %s\n",
		schema.DefaultWeightLabel.Code(), schema.DefaultAssessmentLabel.Code())
	return err
}
