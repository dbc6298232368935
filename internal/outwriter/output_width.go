package outwriter

import (
	"os"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for alternative names in table output
// based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	baseWidth := 40 // Rank + Closeness + Label with borders/padding

	if cfg.Detail {
		baseWidth += 24 // D+ and D- columns
	}

	// Table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
