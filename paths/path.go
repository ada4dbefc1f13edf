package paths

import (
	"fmt"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
)

// Path is an ordered node sequence plus its accumulated metric vector. It
// exclusively owns both: a source and destination name (the first and
// last entries of Nodes), the node sequence itself (length >= 2, no
// repeated node — a simple path), and the combined Metrics vector.
type Path struct {
	// Src is the source node name (Nodes[0]).
	Src string

	// Dst is the destination node name (Nodes[len(Nodes)-1]).
	Dst string

	// Nodes is the ordered sequence of node names from Src to Dst
	// inclusive. len(Nodes) >= 2; every adjacent pair is a declared edge;
	// no name repeats (simple path).
	Nodes []string

	// Metrics is the metric vector accumulated along Nodes.
	Metrics metrics.Vector
}

// CreateDirect builds a Path from the single declared edge src -> dst.
// Returns ErrSameEndpoints if src == dst, or ErrNoDirectEdge if no such
// edge exists in store — the latter is the expected, non-fatal outcome
// for most (s,t) pairs; callers (Table init) leave the collection empty
// rather than treat this as an error (spec.md §9).
// Complexity: O(1) plus O(|metrics|) for the vector copy.
func CreateDirect(store *graphstore.Store, src, dst string) (*Path, error) {
	if src == dst {
		return nil, ErrSameEndpoints
	}

	edge, ok := store.Edge(src, dst)
	if !ok {
		return nil, fmt.Errorf("%w: %s->%s", ErrNoDirectEdge, src, dst)
	}

	return &Path{
		Src:     src,
		Dst:     dst,
		Nodes:   []string{src, dst},
		Metrics: edge.Metrics.Clone(),
	}, nil
}

// Extend builds a new Path that appends newDst to p via the declared edge
// p.Dst -> newDst. p is not mutated. Returns ErrNodeAlreadyInPath if
// newDst already appears in p.Nodes (the simple-path invariant), or
// ErrNoEdge if no declared edge connects p.Dst to newDst — the core never
// fabricates a metric value for a missing edge (spec.md §7).
// Complexity: O(k) to copy and scan the k-node sequence, plus
// O(|metrics|) for the combine.
func Extend(reg *metrics.Registry, store *graphstore.Store, p *Path, newDst string) (*Path, error) {
	for _, n := range p.Nodes {
		if n == newDst {
			return nil, fmt.Errorf("%w: %s", ErrNodeAlreadyInPath, newDst)
		}
	}

	edge, ok := store.Edge(p.Dst, newDst)
	if !ok {
		return nil, fmt.Errorf("%w: %s->%s", ErrNoEdge, p.Dst, newDst)
	}

	nodes := make([]string, len(p.Nodes)+1)
	copy(nodes, p.Nodes)
	nodes[len(p.Nodes)] = newDst

	return &Path{
		Src:     p.Src,
		Dst:     newDst,
		Nodes:   nodes,
		Metrics: metrics.Combine(reg, p.Metrics, edge.Metrics),
	}, nil
}

// Contains reports whether nodeName appears anywhere in p's node
// sequence.
// Complexity: O(k).
func (p *Path) Contains(nodeName string) bool {
	for _, n := range p.Nodes {
		if n == nodeName {
			return true
		}
	}

	return false
}

// SameSequence reports whether p and other have pointwise-equal node
// sequences of equal length. This is the structural test Duplicate uses;
// exposed separately because it is also useful directly in tests.
// Complexity: O(k).
func (p *Path) SameSequence(other *Path) bool {
	if len(p.Nodes) != len(other.Nodes) {
		return false
	}
	for i, n := range p.Nodes {
		if other.Nodes[i] != n {
			return false
		}
	}

	return true
}
