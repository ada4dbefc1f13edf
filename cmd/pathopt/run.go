package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/josephcolton/pathopt/engine"
	"github.com/josephcolton/pathopt/output"
	"github.com/josephcolton/pathopt/parser"
	"github.com/josephcolton/pathopt/relax"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <input-file>",
		Short: "Parse a graph and write its Pareto-optimal paths",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}
	addRunFlags(cmd)

	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("workers", 0, "worker count for parallel-per-source dispatch (0 or 1 means sequential)")
	cmd.Flags().Bool("sequential", false, "force sequential dispatch regardless of --workers")
	cmd.Flags().String("config", "", "path to a YAML engine config overlay")
	cmd.Flags().Int("precision", 0, "decimal precision for output metric values (0 uses the config/default)")
	cmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")
}

func runRun(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	workers, _ := cmd.Flags().GetInt("workers")
	sequential, _ := cmd.Flags().GetBool("sequential")
	configPath, _ := cmd.Flags().GetString("config")
	precision, _ := cmd.Flags().GetInt("precision")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("pathopt: loading config %q: %v", configPath, err)
		}
		cfg = loaded
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if precision > 0 {
		cfg.Precision = precision
	}

	mode := relax.Sequential
	if !sequential && cfg.Workers > 1 {
		mode = relax.Parallel
	}

	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("pathopt: opening %q: %v", inputPath, err)
	}
	defer f.Close()

	result, err := parser.Load(f)
	if err != nil {
		log.Fatalf("pathopt: parsing %q: %v", inputPath, err)
	}

	e, err := engine.New(result.Registry, result.Store, cfg)
	if err != nil {
		log.Fatalf("pathopt: %v", err)
	}

	if _, err := e.Optimize(context.Background(), mode); err != nil {
		log.Fatalf("pathopt: optimizing: %v", err)
	}

	w := os.Stdout
	if outputPath != "" {
		out, err := os.Create(outputPath)
		if err != nil {
			log.Fatalf("pathopt: creating %q: %v", outputPath, err)
		}
		defer out.Close()
		w = out
	}

	if err := output.Write(w, e.Registry, e.Store, e.Table, cfg.Precision); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
