package paths

import "errors"

// Sentinel errors for the paths package.
var (
	// ErrNoDirectEdge indicates CreateDirect was called for a (src, dst)
	// pair with no declared edge. Per spec.md §9's resolved "Seeding
	// without a direct edge" question, this is the correct, expected
	// outcome for many pairs — callers (Table init) treat it as "leave the
	// collection empty", not as a fatal condition.
	ErrNoDirectEdge = errors.New("paths: no direct edge for (src,dst)")

	// ErrNoEdge indicates Extend was called to a newDst with no declared
	// edge from p's current destination. The core refuses to extend along
	// a non-existent edge rather than fabricate metric values (spec.md
	// §7).
	ErrNoEdge = errors.New("paths: no edge for extension")

	// ErrNodeAlreadyInPath indicates Extend was called with a newDst
	// already present in the path's node sequence (would violate the
	// simple-path invariant).
	ErrNodeAlreadyInPath = errors.New("paths: node already in path")

	// ErrCollectionNotFound indicates a Table lookup for a pair that was
	// never initialized — a programmer error per spec.md §7.
	ErrCollectionNotFound = errors.New("paths: collection not found for (src,dst)")

	// ErrSameEndpoints indicates CreateDirect was asked to build a direct
	// path for src == dst, a pair spec.md's Path Table explicitly excludes
	// ("total on {(s,t): s != t}").
	ErrSameEndpoints = errors.New("paths: src and dst must differ")
)
