package cmd

import (
	"github.com/huangsam/citescope/core"
	"github.com/huangsam/citescope/internal/contract"
	"github.com/spf13/cobra"
)

// similarityCmd compares datasets by their distinct author sets.
var similarityCmd = &cobra.Command{
	Use:   "similarity <dataset-csv> <dataset-csv> [dataset-csv...]",
	Short: "Show pairwise Jaccard similarity between datasets.",
	Long: `Compute the pairwise Jaccard similarity matrix over the datasets.

Similarity compares the distinct author sets of two datasets:
|intersection| / |union|. The matrix is symmetric with a 1.0 diagonal.
Citation counts do not matter here, only author presence.

Examples:
  # How much do two fields cite the same people?
  citescope similarity virology.csv ecology.csv

  # Full matrix across many fields
  citescope similarity a.csv b.csv c.csv d.csv`,
	Args:    cobra.MinimumNArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSimilarity(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot run similarity analysis", err)
		}
	},
}
