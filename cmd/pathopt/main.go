// Command pathopt loads a graph description, computes the Pareto-optimal
// path set for every ordered pair of nodes, and writes the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
