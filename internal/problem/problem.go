// Package problem reads and writes decision problems as YAML documents.
package problem

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fuzzyrank/fuzzyrank/core/algo"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"gopkg.in/yaml.v3"
)

// StdinPath is the path that makes Load read from standard input.
const StdinPath = "-"

// Load reads a decision problem from path, or from stdin when path is "-".
func Load(path string) (schema.Input, error) {
	if path == StdinPath {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return schema.Input{}, fmt.Errorf("failed to open problem file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Decode parses one YAML (or JSON) document into an Input and fills any
// zero counts from the extents of the matrices.
func Decode(r io.Reader) (schema.Input, error) {
	var in schema.Input
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if err == io.EOF {
			return schema.Input{}, fmt.Errorf("problem file is empty")
		}
		return schema.Input{}, fmt.Errorf("failed to parse problem file: %w", err)
	}
	if in.NumExperts < 0 || in.NumCriteria < 0 || in.NumAlternatives < 0 {
		return schema.Input{}, fmt.Errorf("counts cannot be negative")
	}
	return algo.InferCounts(in), nil
}

// Save writes in to w as a YAML document.
func Save(w io.Writer, in schema.Input) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("failed to encode problem: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Template returns a problem of the given shape filled with default labels.
func Template(experts, criteria, alternatives int) schema.Input {
	return algo.Resize(schema.Input{}, experts, criteria, alternatives)
}
