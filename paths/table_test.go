package paths_test

import (
	"errors"
	"testing"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
	"github.com/josephcolton/pathopt/paths"
	"github.com/stretchr/testify/require"
)

func TestTable_Init_SeedsOnlyWhenDirectEdgeExists(t *testing.T) {
	// Scenario 5 from spec.md §8: nodes A,B,C; edges only A->B, B->C.
	// C[A,C] starts empty (no direct edge) but is reachable via relaxation
	// (tested in package relax); C[A,B] and C[B,C] seed directly;
	// C[B,A] stays empty forever (no edge B->A at all).
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", metrics.NewVector(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("B", "C", metrics.NewVector(map[string]float64{"cost": 1})))

	table := paths.Init(store)

	ab, err := table.Lookup("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1, ab.Len())

	ac, err := table.Lookup("A", "C")
	require.NoError(t, err)
	require.Equal(t, 0, ac.Len(), "no direct A->C edge: collection must start empty, not crash")

	ba, err := table.Lookup("B", "A")
	require.NoError(t, err)
	require.Equal(t, 0, ba.Len())
}

func TestTable_Lookup_UnknownPair(t *testing.T) {
	reg := metrics.NewRegistry()
	store := graphstore.New(reg)
	require.NoError(t, store.AddNode("A", ""))
	table := paths.Init(store)

	_, err := table.Lookup("A", "Z")
	require.True(t, errors.Is(err, paths.ErrCollectionNotFound))
}

func TestTable_Init_TotalOnAllOrderedPairsExceptSelf(t *testing.T) {
	reg := metrics.NewRegistry()
	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	table := paths.Init(store)

	require.Len(t, table.Pairs(), 6) // 3*2 ordered pairs, s != t
}
