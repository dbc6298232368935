package algo

import (
	"maps"
	"slices"
	"strings"

	"github.com/fuzzyrank/fuzzyrank/schema"
	"golang.org/x/text/unicode/norm"
)

// linguisticScale maps each label to its triangular fuzzy number.
var linguisticScale = map[schema.Label]schema.TFN{
	schema.VeryPoor: {L: 1, M: 1, U: 3},
	schema.Poor:     {L: 1, M: 3, U: 5},
	schema.Fair:     {L: 3, M: 5, U: 7},
	schema.Good:     {L: 5, M: 7, U: 9},
	schema.VeryGood: {L: 7, M: 9, U: 9},
}

// labelSpellings maps folded spellings to labels. Keys are lower case with
// separators removed, see foldLabel.
var labelSpellings = map[string]schema.Label{
	"vp":       schema.VeryPoor,
	"verypoor": schema.VeryPoor,
	"p":        schema.Poor,
	"poor":     schema.Poor,
	"f":        schema.Fair,
	"fair":     schema.Fair,
	"g":        schema.Good,
	"good":     schema.Good,
	"vg":       schema.VeryGood,
	"verygood": schema.VeryGood,

	// legacy three-point entries
	"m":      schema.Fair,
	"medium": schema.Fair,
	"h":      schema.Good,
	"high":   schema.Good,
}

// foldLabel normalizes a raw label for lookup.
func foldLabel(raw string) string {
	s := strings.ToLower(norm.NFKC.String(strings.TrimSpace(raw)))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, s)
}

// ParseLabel resolves a raw label. The second return value reports whether
// the raw string was recognized.
func ParseLabel(raw string) (schema.Label, bool) {
	l, ok := labelSpellings[foldLabel(raw)]
	return l, ok
}

// ResolveLabel resolves a raw label, using fallback when it is not recognized.
func ResolveLabel(raw string, fallback schema.Label) schema.Label {
	if l, ok := ParseLabel(raw); ok {
		return l
	}
	return fallback
}

// Spellings lists the folded spellings accepted for l besides its code,
// sorted. Long names and legacy entries are included.
func Spellings(l schema.Label) []string {
	code := foldLabel(l.Code())
	var out []string
	for _, s := range slices.Sorted(maps.Keys(labelSpellings)) {
		if labelSpellings[s] == l && s != code {
			out = append(out, s)
		}
	}
	return out
}

// ScaleOf returns the fuzzy number for a label.
func ScaleOf(l schema.Label) schema.TFN {
	if t, ok := linguisticScale[l]; ok {
		return t
	}
	return linguisticScale[schema.Fair]
}

// LabelToTFN maps a raw label to its fuzzy number. Empty or unrecognized
// labels map to Fair.
func LabelToTFN(raw string) schema.TFN {
	return ScaleOf(ResolveLabel(raw, schema.Fair))
}
