package mst_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/converters"
	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/mst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// buildTriangle constructs A-B (1), B-C (2), A-C (3); its MST is A-B, B-C.
func buildTriangle(t *testing.T) *graph.WeightedGraph[string] {
	t.Helper()
	g := graph.NewWeighted("A", "B", "C")
	require.NoError(t, g.AddEdgeByVertices("A", "B", 1))
	require.NoError(t, g.AddEdgeByVertices("B", "C", 2))
	require.NoError(t, g.AddEdgeByVertices("A", "C", 3))
	return g
}

// buildConnected returns a random connected weighted graph: a chain for
// connectivity plus extra random edges (loops and parallels included).
func buildConnected(r *rand.Rand, n, extra int) *graph.WeightedGraph[int] {
	g := graph.NewWeighted[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 1; i < n; i++ {
		_ = g.AddEdge(r.Intn(i), i, 1+float64(r.Intn(50)))
	}
	for k := 0; k < extra; k++ {
		_ = g.AddEdge(r.Intn(n), r.Intn(n), 1+float64(r.Intn(50)))
	}
	return g
}

// asGraph materializes a tree edge list over vertices 0..n-1.
func asGraph(n int, edges []graph.WeightedEdge) *graph.WeightedGraph[int] {
	g := graph.NewWeighted[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for _, e := range edges {
		_ = g.AddEdge(e.U, e.V, e.Weight)
	}
	return g
}

// TestPrim_Triangle picks A-B and B-C.
func TestPrim_Triangle(t *testing.T) {
	g := buildTriangle(t)
	tree, err := mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []graph.WeightedEdge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}}, tree)
	assert.Equal(t, 3.0, mst.TotalWeight(tree))
}

// TestPrim_StartOutOfRange returns no result for an invalid start.
func TestPrim_StartOutOfRange(t *testing.T) {
	g := buildTriangle(t)
	for _, start := range []int{-1, 3} {
		tree, err := mst.Prim(g, start)
		assert.Nil(t, tree)
		assert.ErrorIs(t, err, mst.ErrStartOutOfRange)
	}
	_, err := mst.Prim(graph.NewWeighted[int](), 0)
	assert.ErrorIs(t, err, mst.ErrStartOutOfRange)
}

// TestPrim_SingleVertex has an empty tree.
func TestPrim_SingleVertex(t *testing.T) {
	g := graph.NewWeighted("solo")
	require.NoError(t, g.AddEdge(0, 0, 5))
	tree, err := mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

// TestPrim_Disconnected spans only the start's component.
func TestPrim_Disconnected(t *testing.T) {
	g := graph.NewWeighted(0, 1, 2, 3)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(2, 3, 1))

	tree, err := mst.Prim(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []graph.WeightedEdge{{U: 3, V: 2, Weight: 1}}, tree)

	forest := mst.Kruskal(g)
	assert.Len(t, forest, 2)
	assert.Equal(t, 3.0, mst.TotalWeight(forest))
}

// TestPrim_CLRS checks the textbook nine-vertex example (total weight 37).
func TestPrim_CLRS(t *testing.T) {
	g := graph.NewWeighted('a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i')
	for _, e := range []struct {
		u, v rune
		w    float64
	}{
		{'a', 'b', 4}, {'a', 'h', 8}, {'b', 'c', 8}, {'b', 'h', 11}, {'c', 'd', 7},
		{'c', 'f', 4}, {'c', 'i', 2}, {'d', 'e', 9}, {'d', 'f', 14}, {'e', 'f', 10},
		{'f', 'g', 2}, {'g', 'h', 1}, {'g', 'i', 6}, {'h', 'i', 7},
	} {
		require.NoError(t, g.AddEdgeByVertices(e.u, e.v, e.w))
	}

	for start := 0; start < g.VertexCount(); start++ {
		tree, err := mst.Prim(g, start)
		require.NoError(t, err)
		assert.Len(t, tree, 8)
		assert.Equal(t, 37.0, mst.TotalWeight(tree))
	}
	assert.Equal(t, 37.0, mst.TotalWeight(mst.Kruskal(g)))
}

// TestPrim_MatchesGonum compares total weight with gonum's Prim and Kruskal
// on random connected graphs, and checks the n-1 edge count and that the tree
// spans every vertex.
func TestPrim_MatchesGonum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 2 + r.Intn(40)
		g := buildConnected(r, n, 2*n)

		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		want := path.Prim(dst, converters.ToGonumWeighted(g))

		tree, err := mst.Prim(g, r.Intn(n))
		require.NoError(t, err)
		assert.Len(t, tree, n-1)
		assert.InDelta(t, want, mst.TotalWeight(tree), 1e-9)

		reached := map[int]bool{}
		for _, e := range tree {
			reached[e.U], reached[e.V] = true, true
		}
		assert.Len(t, reached, n)
		assert.False(t, asGraph(n, tree).HasCycle())

		forest := mst.Kruskal(g)
		assert.Len(t, forest, n-1)
		assert.InDelta(t, want, mst.TotalWeight(forest), 1e-9)
	}
}

// TestPrim_CutProperty swaps every tree edge for every non-tree edge that
// reconnects the two halves and checks the total never decreases.
func TestPrim_CutProperty(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for trial := 0; trial < 10; trial++ {
		n := 3 + r.Intn(10)
		g := buildConnected(r, n, n)
		tree, err := mst.Prim(g, 0)
		require.NoError(t, err)
		total := mst.TotalWeight(tree)

		for drop := range tree {
			// label the two components of tree minus tree[drop]
			side := componentsWithout(n, tree, drop)
			for u := 0; u < n; u++ {
				for _, e := range g.EdgesForIndex(u) {
					if side[e.U] == side[e.V] {
						continue
					}
					swapped := total - tree[drop].Weight + e.Weight
					assert.GreaterOrEqual(t, swapped, total-1e-9)
				}
			}
		}
	}
}

func componentsWithout(n int, tree []graph.WeightedEdge, drop int) []int {
	f := graph.New[int]()
	for i := 0; i < n; i++ {
		f.AddVertex(i)
	}
	for i, e := range tree {
		if i != drop {
			_ = f.AddEdge(e.U, e.V)
		}
	}
	side := make([]int, n)
	for gi, grp := range f.ConnectedGroupIndices() {
		for _, v := range grp {
			side[v] = gi
		}
	}
	return side
}

// TestKruskal_Empty returns no edges.
func TestKruskal_Empty(t *testing.T) {
	assert.Empty(t, mst.Kruskal(graph.NewWeighted[string]()))
}

// TestPrim_MatchesKruskal compares total weights on builder fixtures, including
// a disconnected union where Prim only spans the piece holding the start.
func TestPrim_MatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 50)}
		g, err := builder.BuildWeighted(opts, builder.Complete(12), builder.Wheel(6))
		require.NoError(t, err)

		prim, err := mst.Prim(g, 0)
		require.NoError(t, err)
		assert.Len(t, prim, 11)

		forest := mst.Kruskal(g)
		assert.Len(t, forest, 11+5)

		// Kruskal edges inside the K12 piece form its MST too
		var inK12 []graph.WeightedEdge
		for _, e := range forest {
			if e.U < 12 {
				inK12 = append(inK12, e)
			}
		}
		assert.InDelta(t, mst.TotalWeight(prim), mst.TotalWeight(inK12), 1e-9, "seed %d", seed)
	}
}
