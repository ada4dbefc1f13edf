// Package relax implements the Relaxation Driver: the per-source
// fixed-point loop that grows each (s, *) row of a paths.Table by
// extending known non-dominated paths through relay nodes until no
// destination in the row admits a new non-dominated path in a full round.
//
// Two execution modes share the same per-source round logic:
//
//   - Sequential processes sources one at a time on the calling goroutine.
//   - Parallel partitions sources across a bounded worker pool
//     (golang.org/x/sync/errgroup); each goroutine owns exactly one
//     source's disjoint row of the Table, so no locking is needed between
//     workers (SPEC_FULL.md §5).
//
// Per round, for each destination t, and for each relay r not in {s, t},
// every path currently in the (s, r) collection is extended toward t and
// offered to the (s, t) collection via Collection.TryAdd followed by
// Collection.ClearDominated. Relay-base paths are read from a snapshot
// taken before the round's extensions begin, so paths admitted during the
// round are not themselves used as relay bases until the next round —
// this is what guarantees termination despite cycles in the graph (the
// simple-path constraint already rules out cyclic extensions; the
// snapshot rules out unbounded same-round chaining).
package relax
