package outwriter

import (
	"io"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/problem"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// printTemplate writes a decision problem, as JSON when requested and YAML otherwise.
func (ow *OutWriter) printTemplate(in schema.Input, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, in)
		}, "Wrote template")
	}
	return ow.writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return problem.Save(w, in)
	}, "Wrote template")
}
