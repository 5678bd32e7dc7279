// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/citescope/internal/contract"
	"golang.org/x/term"
)

// getMaxTableAuthorWidth calculates the maximum width for author names in
// table output based on terminal width and the number of dataset columns.
func getMaxTableAuthorWidth(cfg *contract.Config, numDatasets int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for one value column per dataset plus borders and padding
	baseWidth := 10 + numDatasets*12

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable author width
		return 15
	}
	if available > 50 {
		// Maximum author width to prevent overly wide name columns
		return 50
	}
	return available
}
