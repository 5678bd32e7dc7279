package cmd

import (
	"github.com/huangsam/citescope/core"
	"github.com/huangsam/citescope/internal/contract"
	"github.com/spf13/cobra"
)

// authorsCmd merges the top cited authors across datasets.
var authorsCmd = &cobra.Command{
	Use:   "authors <dataset-csv> [dataset-csv...]",
	Short: "Show the top cited authors merged across datasets.",
	Long: `Merge the top-N most cited authors of every dataset into one table.

Each row is an author who ranks in the top N of at least one dataset, with
one value per dataset. In count mode the value is the author's citation
count (0 when the author is absent). In rank mode it is the author's rank
within the dataset (K+1 when the author is absent, where K is the dataset's
distinct author count).

Examples:
  # Top 10 authors by citation count across two fields
  citescope authors virology.csv ecology.csv

  # Compare ranks instead of counts
  citescope authors virology.csv ecology.csv --agg rank

  # Widen the window to the top 25 per dataset
  citescope authors virology.csv ecology.csv --top 25`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAuthors(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot run authors analysis", err)
		}
	},
}
