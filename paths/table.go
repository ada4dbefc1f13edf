package paths

import (
	"fmt"

	"github.com/josephcolton/pathopt/graphstore"
)

// Table maps every ordered pair (s, t), s != t, to its Collection. It is
// total on that domain after Init and lives for the lifetime of an
// engine run; collections are created once and mutated in place during
// relaxation, never destroyed (spec.md §3 "Path Table").
type Table struct {
	collections map[pairKey]*Collection
}

type pairKey struct {
	src, dst string
}

// Init builds a Table with one Collection per ordered pair (s,t), s != t,
// over store's nodes. A collection is seeded with CreateDirect(s,t) only
// if that direct edge exists; otherwise it starts empty. This is spec.md
// §9's resolved "Seeding without a direct edge" question: the original C
// source unconditionally seeds and dereferences a null edge pointer when
// none exists, which this port fixes by guarding on edge existence.
// Complexity: O(V^2) pair creation, each O(1) plus an O(|metrics|) vector
// copy when a direct edge seeds the collection.
func Init(store *graphstore.Store) *Table {
	nodes := store.Nodes()
	t := &Table{collections: make(map[pairKey]*Collection, len(nodes)*(len(nodes)-1))}

	for _, src := range nodes {
		for _, dst := range nodes {
			if src == dst {
				continue
			}

			coll := NewCollection(src, dst)
			if direct, err := CreateDirect(store, src, dst); err == nil {
				coll.members = append(coll.members, direct)
			}

			t.collections[pairKey{src, dst}] = coll
		}
	}

	return t
}

// Lookup returns the Collection for (src, dst). Returns
// ErrCollectionNotFound if the pair was never initialized (src == dst, or
// a name Init never saw) — a programmer error per spec.md §7, never a
// condition the relaxation driver should hit in normal operation.
// Complexity: O(1) expected.
func (t *Table) Lookup(src, dst string) (*Collection, error) {
	coll, ok := t.collections[pairKey{src, dst}]
	if !ok {
		return nil, fmt.Errorf("%w: %s->%s", ErrCollectionNotFound, src, dst)
	}

	return coll, nil
}

// MustLookup is Lookup without the error return, for callers (the
// relaxation driver's inner loops) that have already validated the pair
// exists via Table construction and would treat a miss as an unrecoverable
// invariant violation.
func (t *Table) MustLookup(src, dst string) *Collection {
	coll, err := t.Lookup(src, dst)
	if err != nil {
		panic(err)
	}

	return coll
}

// Pairs returns every (src, dst) pair the Table covers, in no particular
// order; callers that need deterministic output order should instead walk
// store.Nodes() x store.Nodes() directly (spec.md §6.3).
func (t *Table) Pairs() [][2]string {
	out := make([][2]string, 0, len(t.collections))
	for k := range t.collections {
		out = append(out, [2]string{k.src, k.dst})
	}

	return out
}
