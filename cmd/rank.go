package cmd

import (
	"github.com/fuzzyrank/fuzzyrank/core"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/spf13/cobra"
)

// runExecutor adapts a core executor to a cobra Run function.
func runExecutor(name string, fn core.ExecutorFunc) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := fn(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run "+name, err)
		}
	}
}

// rankCmd ranks the alternatives of a decision problem.
var rankCmd = &cobra.Command{
	Use:   "rank [problem-file|-]",
	Short: "Rank the alternatives of a decision problem.",
	Long: `Load a decision problem and rank its alternatives with fuzzy TOPSIS.

The problem file is YAML (or JSON) with the number of experts, the criteria and
alternative names, one row of criterion weights per expert and one matrix of
assessments per expert. Ratings use the linguistic scale VP, P, F, G, VG (see
'fuzzyrank scale'). Reads standard input when the file is '-' or omitted.

Missing or unknown ratings fall back to F for weights and G for assessments,
and counts below the configured minimums are raised. Use --strict to reject
such problems instead.

Examples:
  # Rank and show the acceptance label of each alternative
  fuzzyrank rank vendors.yaml

  # Include distances to the ideal solutions
  fuzzyrank rank vendors.yaml --detail

  # Show every intermediate matrix
  fuzzyrank rank vendors.yaml --steps

  # Export the ranking for a spreadsheet
  fuzzyrank rank vendors.yaml --output csv --output-file ranking.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("ranking", core.ExecuteRank),
}

// scaleCmd prints the linguistic scale.
var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Show the linguistic scale and its fuzzy numbers.",
	Long: `Print every linguistic label accepted in problem files together with its
triangular fuzzy number and the other spellings (long names, legacy
entries) that map to it.

Examples:
  fuzzyrank scale
  fuzzyrank scale --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("scale", core.ExecuteScale),
}

// templateCmd writes a default-filled decision problem.
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a decision problem template, or resize an existing problem.",
	Long: `Write a decision problem filled with default ratings (F for weights, G for
assessments) and generated names (C1.., A1..).

With --from, the given problem is resized instead: existing ratings inside the
new bounds are kept, new cells are default-filled and extra cells are dropped.
Counts left at 0 keep the size of the source problem.

Examples:
  # Three experts, five criteria, four alternatives
  fuzzyrank template --experts 3 --criteria 5 --alternatives 4 --output-file problem.yaml

  # Add a fourth expert to an existing problem
  fuzzyrank template --from problem.yaml --experts 4 --output-file problem.yaml`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("template", core.ExecuteTemplate),
}
