package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// An empty outputFile writes to the console stream of the OutWriter.
func (ow *OutWriter) writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	if outputFile == "" {
		return writer(ow.stdout)
	}

	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if err := writer(file); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ow.stderr, "💾 %s to %s\n", successMsg, outputFile)
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatter creates the float formatter shared by every output type.
func createFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// formatTFN renders a triangular fuzzy number as "(l, m, u)".
func formatTFN(t schema.TFN, fmtFloat func(float64) string) string {
	return fmt.Sprintf("(%s, %s, %s)", fmtFloat(t.L), fmtFloat(t.M), fmtFloat(t.U))
}

// renderTable writes an optional title followed by a right aligned table.
func renderTable(w io.Writer, title string, headers []string, rows [][]string) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
