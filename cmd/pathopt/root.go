package main

import (
	"github.com/spf13/cobra"
)

// rootCmd wires the run and validate subcommands. A bare
// "pathopt <file>" is equivalent to "pathopt run <file>": run is also
// registered as the root's own Args/RunE so the positional form works
// without a subcommand name.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathopt <input-file>",
		Short: "Compute Pareto-optimal paths over a multi-metric directed graph",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}
	addRunFlags(root)

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())

	return root
}
