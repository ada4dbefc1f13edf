package graphstore

import "errors"

// Sentinel errors for the graphstore package.
var (
	// ErrEmptyName indicates a node was declared with an empty name.
	ErrEmptyName = errors.New("graphstore: node name is empty")

	// ErrDuplicateNode indicates a second declaration of an already-known
	// node name.
	ErrDuplicateNode = errors.New("graphstore: duplicate node name")

	// ErrVertexNotFound indicates an operation referenced a non-existent
	// node.
	ErrVertexNotFound = errors.New("graphstore: node not found")

	// ErrDuplicateEdge indicates a second declaration of an edge already
	// keyed by the same (src, dst) pair. Edges are unique per ordered pair
	// (spec.md §3 "Edge").
	ErrDuplicateEdge = errors.New("graphstore: duplicate edge for (src,dst)")

	// ErrEdgeNotFound indicates an operation referenced a non-existent
	// edge.
	ErrEdgeNotFound = errors.New("graphstore: edge not found")

	// ErrIncompleteMetrics indicates an edge vector omits a value for a
	// metric declared in the registry. The core rejects this at
	// construction rather than combine it with the Missing sentinel later
	// (spec.md §9's resolved "Missing metric value" question).
	ErrIncompleteMetrics = errors.New("graphstore: edge vector omits a declared metric")
)
