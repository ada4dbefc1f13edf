// Package metrics defines the Metric Registry and Metric Vector: the
// declared, ordered set of optimization objectives and the per-edge or
// per-path value vectors that carry them.
//
// A Registry holds metric declarations in insertion order; that order is
// canonical everywhere metrics are compared (Dominates) or combined
// (Combine). Each declaration fixes an optimization direction (MIN or MAX)
// and a combination rule (ADD, MIN, or MAX) used to accumulate the metric
// along a concatenated path.
//
// A Vector is an immutable-by-convention mapping from metric name to real
// value. Combine never mutates its operands; it returns a new Vector.
package metrics
