package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Diversity label constants, derived from a dataset's evenness value.
const (
	DiverseValue      = "Diverse"      // Citations spread widely across authors
	BalancedValue     = "Balanced"     // Mostly even with a mild head
	SkewedValue       = "Skewed"       // A clear head of favored authors
	ConcentratedValue = "Concentrated" // Few authors hold most citations
)

// Color variables for console output.
var (
	DiverseColor      = color.New(color.FgGreen)           // healthy spread
	BalancedColor     = color.New(color.FgCyan)            // informational
	SkewedColor       = color.New(color.FgYellow)          // standard caution
	ConcentratedColor = color.New(color.FgRed, color.Bold) // standard danger
)

// GetPlainLabel returns a plain text label for a dataset's evenness value.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(evenness float64) string {
	switch {
	case evenness >= 0.9:
		return DiverseValue
	case evenness >= 0.7:
		return BalancedValue
	case evenness >= 0.4:
		return SkewedValue
	default:
		return ConcentratedValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(evenness float64) string {
	text := GetPlainLabel(evenness)

	switch text {
	case DiverseValue:
		return DiverseColor.Sprint(text)
	case BalancedValue:
		return BalancedColor.Sprint(text)
	case SkewedValue:
		return SkewedColor.Sprint(text)
	default: // "Concentrated"
		return ConcentratedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates an author name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for both content and the "...".
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

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
