package main

import (
	"fmt"
	"os"

	"github.com/josephcolton/pathopt/parser"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Parse a graph and report errors without optimizing",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", inputPath, err)
	}
	defer f.Close()

	result, err := parser.Load(f)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", inputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d metrics, %d nodes\n", result.Registry.Len(), result.Store.NodeCount())

	return nil
}
