package paths

import "github.com/josephcolton/pathopt/metrics"

// Collection owns the current non-dominated set of Paths for one ordered
// (Src, Dst) pair. Its invariant, the post-condition of every public
// operation, is: no member dominates another, and no two members share a
// node sequence (spec.md §3 "Path Collection").
//
// Collection is not safe for concurrent use by multiple goroutines; the
// relaxation driver's contract (SPEC_FULL.md §5) gives each source
// goroutine exclusive ownership of its own row {(s,t): t != s} of the
// Path Table, so collections are never shared across goroutines.
type Collection struct {
	Src, Dst string
	members  []*Path
}

// NewCollection creates an empty Collection for the given pair.
// Complexity: O(1).
func NewCollection(src, dst string) *Collection {
	return &Collection{Src: src, Dst: dst}
}

// Members returns the collection's current paths. The returned slice is a
// snapshot copy; mutating it does not affect the Collection. Use Snapshot
// when the caller explicitly needs to freeze the set before further
// mutation (the relaxation driver's relay-base semantics).
// Complexity: O(n).
func (c *Collection) Members() []*Path {
	out := make([]*Path, len(c.members))
	copy(out, c.members)

	return out
}

// Snapshot is an alias for Members, named for the relaxation driver's
// "snapshot before extension begins" contract (spec.md §4.4): newly
// admitted paths from the current round must not be used as relay bases
// within the same round.
// Complexity: O(n).
func (c *Collection) Snapshot() []*Path {
	return c.Members()
}

// Len reports the number of paths currently in the collection.
// Complexity: O(1).
func (c *Collection) Len() int {
	return len(c.members)
}

// TryAdd attempts to admit candidate into the collection.
//
//  1. If any existing member dominates candidate, reject (false); candidate
//     is not retained.
//  2. If any existing member is a structural duplicate of candidate,
//     reject (false).
//  3. Otherwise append candidate and return true.
//
// TryAdd does NOT evict existing members that candidate now dominates;
// eviction is the caller's subsequent responsibility via ClearDominated.
// This separation keeps the admission predicate independent of iteration
// order over the collection (spec.md §4.2).
// Complexity: O(n*k) — n members, k-length sequence comparisons.
func (c *Collection) TryAdd(reg *metrics.Registry, candidate *Path) bool {
	for _, existing := range c.members {
		if Dominates(reg, existing, candidate) {
			return false
		}
		if Duplicate(existing, candidate) {
			return false
		}
	}

	c.members = append(c.members, candidate)

	return true
}

// ClearDominated removes every member dominated by some other member of
// the same collection. Because a removal can change which members
// survive (a path evicted by one dominator might itself have been
// shielding another), the scan repeats until a full pass removes nothing.
// Returns the number of paths removed.
//
// A path is never considered dominated by itself (Dominates already
// short-circuits on identity), so a single-pass scan is safe to implement
// without an explicit index self-check here.
// Complexity: O(rounds * n^2 * k) worst case; in practice collections stay
// small because they hold only mutually non-dominated paths.
func (c *Collection) ClearDominated(reg *metrics.Registry) int {
	removed := 0

	for {
		survivors := make([]*Path, 0, len(c.members))
		anyRemoved := false

		for _, candidate := range c.members {
			dominated := false
			for _, other := range c.members {
				if Dominates(reg, other, candidate) {
					dominated = true
					break
				}
			}
			if dominated {
				anyRemoved = true
				removed++
			} else {
				survivors = append(survivors, candidate)
			}
		}

		c.members = survivors
		if !anyRemoved {
			break
		}
	}

	return removed
}
