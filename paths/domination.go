package paths

import "github.com/josephcolton/pathopt/metrics"

// Dominates reports whether p dominates other: for every metric in reg's
// declaration order, p is never worse than other, and is strictly better
// on at least one. A path never dominates itself (identity short-circuit,
// spec.md §4.2); ties on every metric yield incomparable paths, not
// domination.
//
// For a Max-optimized metric, p is "better" iff p's value is greater; for
// a Min-optimized metric, "better" iff lesser. Equal values on a metric
// contribute to neither tally.
// Complexity: O(n) in the number of declared metrics.
func Dominates(reg *metrics.Registry, p, other *Path) bool {
	if p == other {
		return false
	}

	better, worse := 0, 0
	for _, name := range reg.Names() {
		decl, _ := reg.Lookup(name)
		pv := p.Metrics.Lookup(name)
		ov := other.Metrics.Lookup(name)

		switch decl.Opt {
		case metrics.Max:
			if pv > ov {
				better++
			} else if pv < ov {
				worse++
			}
		case metrics.Min:
			if pv < ov {
				better++
			} else if pv > ov {
				worse++
			}
		}
	}

	return better > 0 && worse == 0
}

// Duplicate reports whether first and second have pointwise-equal node
// sequences of equal length. Duplicates are detected structurally; metric
// vectors are not consulted (spec.md §4.2).
// Complexity: O(k) in path length.
func Duplicate(first, second *Path) bool {
	return first.SameSequence(second)
}
