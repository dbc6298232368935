package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateName fuzzes TruncateName with random names and widths.
func FuzzTruncateName(f *testing.F) {
	seeds := []struct {
		name  string
		width int
	}{
		{"Supplier A", 20},
		{"An extremely long alternative name", 10},
		{"", 0},
		{"日本語の名前", 4},
	}
	for _, seed := range seeds {
		f.Add(seed.name, seed.width)
	}

	f.Fuzz(func(t *testing.T, name string, width int) {
		out := TruncateName(name, width)
		if width > 3 && utf8.RuneCountInString(out) > width {
			t.Fatalf("TruncateName(%q, %d) = %q is too wide", name, width, out)
		}
	})
}
