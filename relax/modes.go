package relax

import (
	"context"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
	"github.com/josephcolton/pathopt/paths"
	"golang.org/x/sync/errgroup"
)

// Mode selects how OptimizeAll dispatches sources.
type Mode int

const (
	// Sequential processes sources one at a time on the calling goroutine.
	Sequential Mode = iota
	// Parallel partitions sources across a bounded worker pool; each
	// worker owns exactly one source's disjoint row of the Table.
	Parallel
)

// OptimizeAll relaxes every node as a source, converging the entire
// Table. workers bounds concurrency when mode is Parallel; a value <= 1
// behaves like Sequential regardless of mode. ctx is checked only at
// per-source dispatch boundaries (SPEC_FULL.md §5 "a host may cancel at
// source granularity") — the core per-source round itself has no
// suspension points and is never interrupted mid-round.
//
// Complexity: sum over all sources of OptimizeSource's cost; Parallel
// mode does not change the total work, only how it is scheduled across
// goroutines.
func OptimizeAll(ctx context.Context, reg *metrics.Registry, store *graphstore.Store, table *paths.Table, mode Mode, workers int) error {
	if store == nil {
		return ErrNilStore
	}
	if table == nil {
		return ErrNilTable
	}

	nodes := store.Nodes()

	if mode != Parallel || workers <= 1 {
		for _, src := range nodes {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := OptimizeSource(reg, store, table, src); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, src := range nodes {
		src := src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return OptimizeSource(reg, store, table, src)
		})
	}

	return g.Wait()
}
