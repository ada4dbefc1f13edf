package relax

import (
	"fmt"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
	"github.com/josephcolton/pathopt/paths"
)

// runner holds the mutable state for optimizing a single source. One
// runner is created per source; runners for different sources never share
// state, matching the disjoint-row concurrency contract (SPEC_FULL.md
// §5).
type runner struct {
	reg   *metrics.Registry
	store *graphstore.Store
	table *paths.Table
	src   string
}

// OptimizeSource relaxes all destinations reachable (or not) from src
// until a full round produces no new admissions or evictions. It is the
// entry point named in spec.md §4.4 ("path_optimize_source").
//
// Returns ErrNilTable/ErrNilStore for nil arguments. Any lookup failure
// inside the round (a missing collection, a missing edge during Extend)
// indicates a programmer error or malformed input per spec.md §7 and is
// returned rather than silently ignored.
// Complexity: bounded by the number of simple paths between src and every
// other node in the worst case; typically converges in O(|V|) rounds.
func OptimizeSource(reg *metrics.Registry, store *graphstore.Store, table *paths.Table, src string) error {
	if table == nil {
		return ErrNilTable
	}
	if store == nil {
		return ErrNilStore
	}

	r := &runner{reg: reg, store: store, table: table, src: src}

	return r.run()
}

// OptimizeSourceByIndex looks up the node name at the given 0-based
// declaration-order index and relaxes from it. A convenience named after
// spec.md §4.4's "path_optimize_source_by_index", resolved to use
// declaration order rather than the original C source's LIFO insertion
// order (spec.md §9's resolved "Node index order" question).
func OptimizeSourceByIndex(reg *metrics.Registry, store *graphstore.Store, table *paths.Table, index int) error {
	if store == nil {
		return ErrNilStore
	}

	name, ok := store.NodeAt(index)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSource, index)
	}

	return OptimizeSource(reg, store, table, name)
}

// run is the fixed-point loop: repeat rounds until a full round makes no
// changes. Mirrors spec.md §4.4's pseudocode exactly, including the
// snapshot-before-extension contract.
func (r *runner) run() error {
	nodes := r.store.Nodes()

	for {
		changes := 0

		for _, dst := range nodes {
			if dst == r.src {
				continue
			}

			n, err := r.roundForDestination(nodes, dst)
			if err != nil {
				return err
			}
			changes += n
		}

		if changes == 0 {
			return nil
		}
	}
}

// roundForDestination performs one round's worth of relay-extension
// attempts for a single destination t, followed by a final
// ClearDominated pass, returning the number of admissions/evictions.
//
// spec.md §4.4's pseudocode calls extend(p, t) unconditionally for every
// relay-base path; extend's own contract (spec.md §4.3) requires a
// declared edge (p.dst -> newDst). Most (relay, dst) pairs have no such
// edge, so this loop checks store.HasEdge first and skips — not an
// error, just "this relay cannot reach dst directly" — rather than
// calling Extend and treating its ErrNoEdge as a fatal condition.
func (r *runner) roundForDestination(nodes []string, dst string) (int, error) {
	changes := 0

	cst, err := r.table.Lookup(r.src, dst)
	if err != nil {
		return 0, err
	}

	for _, relay := range nodes {
		if relay == r.src || relay == dst {
			continue // cannot use source or destination as a relay
		}

		if !r.store.HasEdge(relay, dst) {
			continue // no edge to extend along; this relay cannot reach dst directly
		}

		csr, err := r.table.Lookup(r.src, relay)
		if err != nil {
			return 0, err
		}

		// Snapshot before extension begins: paths admitted into csr this
		// round are not used as relay bases until the next round.
		for _, relayPath := range csr.Snapshot() {
			if relayPath.Contains(dst) {
				continue
			}

			trial, err := paths.Extend(r.reg, r.store, relayPath, dst)
			if err != nil {
				return 0, err
			}

			if cst.TryAdd(r.reg, trial) {
				changes++
				changes += cst.ClearDominated(r.reg)
			}
		}
	}

	changes += cst.ClearDominated(r.reg)

	return changes, nil
}
