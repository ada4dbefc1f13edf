package relax_test

import (
	"context"
	"testing"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
	"github.com/josephcolton/pathopt/paths"
	"github.com/josephcolton/pathopt/relax"
	"github.com/stretchr/testify/require"
)

func mustVec(m map[string]float64) metrics.Vector { return metrics.NewVector(m) }

// Scenario 1 from spec.md §8: single-metric minimization, unique shortest
// path. A->B=1, B->C=1, A->C=5: expected C[A,C] = { [A,B,C] cost=2 }.
func TestOptimizeSource_UniqueShortestPath(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("B", "C", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("A", "C", mustVec(map[string]float64{"cost": 5})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeSource(reg, store, table, "A"))

	ac, err := table.Lookup("A", "C")
	require.NoError(t, err)
	require.Equal(t, 1, ac.Len())
	require.Equal(t, []string{"A", "B", "C"}, ac.Members()[0].Nodes)
	require.Equal(t, 2.0, ac.Members()[0].Metrics.Lookup("cost"))
}

// Scenario 2: two-metric Pareto set with two incomparable members.
func TestOptimizeSource_TwoMetricPareto(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))
	require.NoError(t, reg.Declare("bw", metrics.Max, metrics.ComboMin, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1, "bw": 10})))
	require.NoError(t, store.AddEdge("B", "C", mustVec(map[string]float64{"cost": 1, "bw": 10})))
	require.NoError(t, store.AddEdge("A", "C", mustVec(map[string]float64{"cost": 5, "bw": 100})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeSource(reg, store, table, "A"))

	ac, err := table.Lookup("A", "C")
	require.NoError(t, err)
	require.Equal(t, 2, ac.Len())

	seqs := map[string]float64{}
	for _, p := range ac.Members() {
		key := p.Nodes[0]
		for _, n := range p.Nodes[1:] {
			key += "," + n
		}
		seqs[key] = p.Metrics.Lookup("cost")
	}
	require.Contains(t, seqs, "A,B,C")
	require.Contains(t, seqs, "A,C")
	require.Equal(t, 2.0, seqs["A,B,C"])
	require.Equal(t, 5.0, seqs["A,C"])
}

// Scenario 3: ADD with bias. hops|MIN|ADD+1; A->B=0, B->C=0.
func TestOptimizeSource_AddBias(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("hops", metrics.Min, metrics.Add, 1))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"hops": 0})))
	require.NoError(t, store.AddEdge("B", "C", mustVec(map[string]float64{"hops": 0})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeSource(reg, store, table, "A"))

	ac, err := table.Lookup("A", "C")
	require.NoError(t, err)
	require.Equal(t, 1, ac.Len())
	require.Equal(t, 1.0, ac.Members()[0].Metrics.Lookup("hops"))
}

// Scenario 4: cycle rejection. A->B, B->A, B->C: [A,B,A] must never
// appear; [A,B,C] must.
func TestOptimizeSource_CycleRejection(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("B", "A", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("B", "C", mustVec(map[string]float64{"cost": 1})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeSource(reg, store, table, "A"))

	ab, err := table.Lookup("A", "B")
	require.NoError(t, err)
	for _, p := range ab.Members() {
		require.NotEqual(t, []string{"A", "B", "A"}, p.Nodes)
	}

	ac, err := table.Lookup("A", "C")
	require.NoError(t, err)
	found := false
	for _, p := range ac.Members() {
		if len(p.Nodes) == 3 && p.Nodes[0] == "A" && p.Nodes[1] == "B" && p.Nodes[2] == "C" {
			found = true
		}
	}
	require.True(t, found, "[A,B,C] must be discovered")
}

// Scenario 5: no-direct-edge pair. Nodes A,B,C; edges only A->B, B->C.
func TestOptimizeSource_NoDirectEdgePair(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("B", "C", mustVec(map[string]float64{"cost": 1})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeSource(reg, store, table, "A"))
	require.NoError(t, relax.OptimizeSource(reg, store, table, "B"))

	ac, err := table.Lookup("A", "C")
	require.NoError(t, err)
	require.Equal(t, 1, ac.Len())
	require.Equal(t, []string{"A", "B", "C"}, ac.Members()[0].Nodes)

	ab, err := table.Lookup("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1, ab.Len())
	require.Equal(t, []string{"A", "B"}, ab.Members()[0].Nodes)

	ba, err := table.Lookup("B", "A")
	require.NoError(t, err)
	require.Equal(t, 0, ba.Len())
}

// Dominance completeness / idempotence of the fixed point (universal
// invariant 7 from spec.md §8): re-running after convergence makes no
// further changes.
func TestOptimizeAll_Idempotent(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))
	require.NoError(t, reg.Declare("bw", metrics.Max, metrics.ComboMin, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C", "D"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1, "bw": 10})))
	require.NoError(t, store.AddEdge("B", "C", mustVec(map[string]float64{"cost": 1, "bw": 10})))
	require.NoError(t, store.AddEdge("C", "D", mustVec(map[string]float64{"cost": 1, "bw": 10})))
	require.NoError(t, store.AddEdge("A", "D", mustVec(map[string]float64{"cost": 2, "bw": 50})))
	require.NoError(t, store.AddEdge("A", "C", mustVec(map[string]float64{"cost": 5, "bw": 100})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeAll(context.Background(), reg, store, table, relax.Sequential, 1))

	snapshot := map[string][]string{}
	for _, pair := range table.Pairs() {
		c, err := table.Lookup(pair[0], pair[1])
		require.NoError(t, err)
		var seqs []string
		for _, p := range c.Members() {
			seqs = append(seqs, p.Src+">"+p.Dst+":"+pathKey(p))
		}
		snapshot[pair[0]+"->"+pair[1]] = seqs
	}

	require.NoError(t, relax.OptimizeAll(context.Background(), reg, store, table, relax.Sequential, 1))

	for _, pair := range table.Pairs() {
		c, err := table.Lookup(pair[0], pair[1])
		require.NoError(t, err)
		var seqs []string
		for _, p := range c.Members() {
			seqs = append(seqs, p.Src+">"+p.Dst+":"+pathKey(p))
		}
		require.ElementsMatch(t, snapshot[pair[0]+"->"+pair[1]], seqs, "idempotence violated for %s->%s", pair[0], pair[1])
	}
}

func pathKey(p *paths.Path) string {
	key := ""
	for i, n := range p.Nodes {
		if i > 0 {
			key += ","
		}
		key += n
	}

	return key
}

// Parallel equivalence (universal invariant 8): sequential and parallel
// execution produce identical Path Tables.
func TestOptimizeAll_ParallelEquivalence(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))
	require.NoError(t, reg.Declare("bw", metrics.Max, metrics.ComboMin, 0))

	build := func() (*metrics.Registry, *graphstore.Store) {
		r := metrics.NewRegistry()
		require.NoError(t, r.Declare("cost", metrics.Min, metrics.Add, 0))
		require.NoError(t, r.Declare("bw", metrics.Max, metrics.ComboMin, 0))
		s := graphstore.New(r)
		for _, n := range []string{"A", "B", "C", "D", "E"} {
			require.NoError(t, s.AddNode(n, ""))
		}
		require.NoError(t, s.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1, "bw": 10})))
		require.NoError(t, s.AddEdge("B", "C", mustVec(map[string]float64{"cost": 1, "bw": 10})))
		require.NoError(t, s.AddEdge("C", "D", mustVec(map[string]float64{"cost": 1, "bw": 10})))
		require.NoError(t, s.AddEdge("D", "E", mustVec(map[string]float64{"cost": 1, "bw": 10})))
		require.NoError(t, s.AddEdge("A", "D", mustVec(map[string]float64{"cost": 2, "bw": 50})))
		require.NoError(t, s.AddEdge("B", "E", mustVec(map[string]float64{"cost": 9, "bw": 5})))
		require.NoError(t, s.AddEdge("A", "E", mustVec(map[string]float64{"cost": 20, "bw": 200})))

		return r, s
	}

	r1, s1 := build()
	t1 := paths.Init(s1)
	require.NoError(t, relax.OptimizeAll(context.Background(), r1, s1, t1, relax.Sequential, 1))

	r2, s2 := build()
	t2 := paths.Init(s2)
	require.NoError(t, relax.OptimizeAll(context.Background(), r2, s2, t2, relax.Parallel, 4))

	for _, pair := range t1.Pairs() {
		c1, err := t1.Lookup(pair[0], pair[1])
		require.NoError(t, err)
		c2, err := t2.Lookup(pair[0], pair[1])
		require.NoError(t, err)

		var seq1, seq2 []string
		for _, p := range c1.Members() {
			seq1 = append(seq1, pathKey(p))
		}
		for _, p := range c2.Members() {
			seq2 = append(seq2, pathKey(p))
		}
		require.ElementsMatch(t, seq1, seq2, "sequential/parallel mismatch for %s->%s", pair[0], pair[1])
	}
}

// OptimizeSourceByIndex must resolve index to the node at that position
// in declaration order (spec.md §9's resolved "Node index order"
// question) and relax from it exactly as OptimizeSource would.
func TestOptimizeSourceByIndex_ResolvesDeclarationOrder(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("B", "C", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("A", "C", mustVec(map[string]float64{"cost": 5})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeSourceByIndex(reg, store, table, 0)) // "A"

	ac, err := table.Lookup("A", "C")
	require.NoError(t, err)
	require.Equal(t, 1, ac.Len())
	require.Equal(t, []string{"A", "B", "C"}, ac.Members()[0].Nodes)
}

func TestOptimizeSourceByIndex_OutOfRangeIsFatal(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))

	store := graphstore.New(reg)
	require.NoError(t, store.AddNode("A", ""))

	table := paths.Init(store)
	err := relax.OptimizeSourceByIndex(reg, store, table, 5)
	require.ErrorIs(t, err, relax.ErrUnknownSource)
}

func TestOptimizeSource_SelfLoopNeverTraversed(t *testing.T) {
	reg := metrics.NewRegistry()
	require.NoError(t, reg.Declare("cost", metrics.Min, metrics.Add, 0))

	store := graphstore.New(reg)
	for _, n := range []string{"A", "B"} {
		require.NoError(t, store.AddNode(n, ""))
	}
	require.NoError(t, store.AddEdge("A", "A", mustVec(map[string]float64{"cost": 1})))
	require.NoError(t, store.AddEdge("A", "B", mustVec(map[string]float64{"cost": 1})))

	table := paths.Init(store)
	require.NoError(t, relax.OptimizeSource(reg, store, table, "A"))

	ab, err := table.Lookup("A", "B")
	require.NoError(t, err)
	for _, p := range ab.Members() {
		for _, n := range p.Nodes {
			require.NotContains(t, p.Nodes[1:], "A")
			_ = n
		}
	}
}
