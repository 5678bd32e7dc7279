package cmd

import (
	"github.com/huangsam/citescope/core"
	"github.com/huangsam/citescope/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd computes per-dataset diversity and concentration metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics <dataset-csv> [dataset-csv...]",
	Short: "Show diversity and concentration metrics per dataset.",
	Long: `Compute citation diversity and concentration metrics for each dataset.

For every dataset this reports:
- Total citation events and distinct cited authors
- Shannon entropy of the citation distribution
- Gini index of citation concentration
- Dominance (citation share of the five most cited authors)
- Herfindahl-Hirschman index (HHI)
- Evenness (entropy normalized by its maximum) with a diversity label

Examples:
  # Analyze one bibliography
  citescope metrics refs.csv

  # Compare several fields side by side
  citescope metrics virology.csv ecology.csv genetics.csv

  # Persist the reports for trend tracking
  citescope metrics refs.csv --record

  # Export findings to CSV for a spreadsheet
  citescope metrics refs.csv --output csv --output-file metrics.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot run metrics analysis", err)
		}
	},
}
