// Package graphstore defines the Node and Edge types and the Graph Store
// that holds them: nodes keyed by unique name (in declaration order) and
// directed edges keyed by (src, dst), each carrying one metrics.Vector.
//
// Store is a plain, single-writer-then-many-readers structure: a parser
// populates it, then it is treated as read-only for the lifetime of a
// relaxation run (SPEC_FULL.md §5 "shared, read-only during relaxation").
// Store still guards its maps with an RWMutex, matching core.Graph's
// locking discipline, so concurrent population followed by concurrent
// read-only relaxation is safe without an explicit external barrier.
package graphstore
