package cmd

import (
	"github.com/huangsam/citescope/core"
	"github.com/huangsam/citescope/internal/contract"
	"github.com/spf13/cobra"
)

// lorenzCmd builds the inequality curve for one dataset.
var lorenzCmd = &cobra.Command{
	Use:   "lorenz <dataset-csv>",
	Short: "Show the Lorenz curve of citation concentration for one dataset.",
	Long: `Build the Lorenz curve of a dataset's citation distribution.

Authors are ordered from most to least cited, so each point answers:
"what share of citations do the top X of authors hold?" With --target,
the command also reports the smallest author share whose cumulative
citation share reaches the target.

Examples:
  # Full curve
  citescope lorenz refs.csv

  # What share of authors receives half of all citations?
  citescope lorenz refs.csv --target 0.5`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLorenz(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot run lorenz analysis", err)
		}
	},
}
