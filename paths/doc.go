// Package paths defines the Path object, the per-(s,t) Path Collection,
// the Path Table, and the domination primitives (Dominates, Duplicate,
// ClearDominated, TryAdd) that keep each Collection non-dominated.
//
// A Path exclusively owns an ordered, simple (no repeated node) sequence
// of node names and the metrics.Vector accumulated along it. A Collection
// holds the current non-dominated set of Paths for one ordered (src, dst)
// pair; its post-condition, after any public operation, is that no member
// dominates another and no two members share a node sequence. A Table
// maps every ordered pair (s, t), s != t, to its Collection.
package paths
