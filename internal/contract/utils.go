package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Acceptance label constants, from highest to lowest closeness.
const (
	PreferredValue      = "Approved and preferred"
	ApprovedValue       = "Approved"
	LowRiskValue        = "Low risk"
	HighRiskValue       = "High risk"
	NotRecommendedValue = "Not recommended"
)

// Color variables for console output.
var (
	PreferredColor      = color.New(color.FgGreen, color.Bold)
	ApprovedColor       = color.New(color.FgGreen)
	LowRiskColor        = color.New(color.FgCyan)
	HighRiskColor       = color.New(color.FgYellow)
	NotRecommendedColor = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns the acceptance status of an alternative based on its
// closeness coefficient. This is the core logic used for CSV, JSON,
// and table printing.
func GetPlainLabel(closeness float64) string {
	switch {
	case closeness >= 0.8:
		return PreferredValue
	case closeness >= 0.6:
		return ApprovedValue
	case closeness >= 0.4:
		return LowRiskValue
	case closeness >= 0.2:
		return HighRiskValue
	default:
		return NotRecommendedValue
	}
}

// GetColorLabel returns a colored acceptance label for console output (table).
func GetColorLabel(closeness float64) string {
	text := GetPlainLabel(closeness)

	switch text {
	case PreferredValue:
		return PreferredColor.Sprint(text)
	case ApprovedValue:
		return ApprovedColor.Sprint(text)
	case LowRiskValue:
		return LowRiskColor.Sprint(text)
	case HighRiskValue:
		return HighRiskColor.Sprint(text)
	default:
		return NotRecommendedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for result cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fuzzyrank_cache.db"
	}
	return filepath.Join(homeDir, ".fuzzyrank_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fuzzyrank_history.db"
	}
	return filepath.Join(homeDir, ".fuzzyrank_history.db")
}

// TruncateName truncates a display name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so that at least one character of content remains.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
