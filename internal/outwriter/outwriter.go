// Package outwriter renders ranking results, their intermediate tables and
// the linguistic scale as text tables, CSV, JSON or Parquet.
package outwriter

import (
	"io"
	"os"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewOutWriter creates a new instance of the output writer for the console.
func NewOutWriter() *OutWriter {
	return &OutWriter{stdout: os.Stdout, stderr: os.Stderr}
}

// NewOutWriterTo creates an output writer over the given streams.
func NewOutWriterTo(stdout, stderr io.Writer) *OutWriter {
	return &OutWriter{stdout: stdout, stderr: stderr}
}

// WriteRanking prints a ranking run using the configured output format.
func (ow *OutWriter) WriteRanking(run schema.Run, cfg *contract.Config) error {
	return ow.printRanking(run, cfg)
}

// WriteScale prints the linguistic scale using the configured output format.
func (ow *OutWriter) WriteScale(cfg *contract.Config) error {
	return ow.printScale(cfg)
}

// WriteTemplate writes a decision problem as YAML, or JSON when requested.
func (ow *OutWriter) WriteTemplate(in schema.Input, cfg *contract.Config) error {
	return ow.printTemplate(in, cfg)
}
