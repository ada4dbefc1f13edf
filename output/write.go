package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
	"github.com/josephcolton/pathopt/paths"
)

// DefaultPrecision is the number of digits after the decimal point used
// when Precision is not overridden, matching the hard-coded "two digits"
// of the documented format.
const DefaultPrecision = 2

// Write renders table in node declaration order: for every ordered pair
// (s, t) with s != t, a "<s>|<t>" header, one "<metrics>|<nodes>" line
// per non-dominated path, then a blank line. precision controls the
// number of digits after the decimal point for metric values; values
// <= 0 fall back to DefaultPrecision.
// Complexity: O(V^2 + P*k) where P is the total number of emitted paths
// and k their average length.
func Write(w io.Writer, reg *metrics.Registry, store *graphstore.Store, table *paths.Table, precision int) error {
	if precision <= 0 {
		precision = DefaultPrecision
	}

	nodes := store.Nodes()
	for _, src := range nodes {
		for _, dst := range nodes {
			if src == dst {
				continue
			}

			if _, err := fmt.Fprintf(w, "%s|%s\n", src, dst); err != nil {
				return err
			}

			coll, err := table.Lookup(src, dst)
			if err != nil {
				return err
			}

			for _, p := range coll.Members() {
				if err := writePathLine(w, reg, p, precision); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}

func writePathLine(w io.Writer, reg *metrics.Registry, p *paths.Path, precision int) error {
	var metricsPart strings.Builder
	names := reg.Names()
	for i, name := range names {
		if i > 0 {
			metricsPart.WriteByte(',')
		}
		fmt.Fprintf(&metricsPart, "%s=%.*f", name, precision, p.Metrics.Lookup(name))
	}

	_, err := fmt.Fprintf(w, "%s|%s\n", metricsPart.String(), strings.Join(p.Nodes, ","))

	return err
}
