package mst_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/mst"
)

// ExamplePrim wires five cities with the least total cable length.
func ExamplePrim() {
	g := graph.NewWeighted("Seattle", "San Francisco", "Los Angeles", "Phoenix", "Chicago")
	_ = g.AddEdgeByVertices("Seattle", "Chicago", 1737)
	_ = g.AddEdgeByVertices("Seattle", "San Francisco", 678)
	_ = g.AddEdgeByVertices("San Francisco", "Los Angeles", 348)
	_ = g.AddEdgeByVertices("Los Angeles", "Phoenix", 357)
	_ = g.AddEdgeByVertices("Phoenix", "Chicago", 1454)
	_ = g.AddEdgeByVertices("San Francisco", "Phoenix", 650)

	tree, err := mst.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range tree {
		fmt.Printf("%s -> %s (%g)\n", g.VertexAt(e.U), g.VertexAt(e.V), e.Weight)
	}
	fmt.Println("total:", mst.TotalWeight(tree))
	// Output:
	// Seattle -> San Francisco (678)
	// San Francisco -> Los Angeles (348)
	// Los Angeles -> Phoenix (357)
	// Phoenix -> Chicago (1454)
	// total: 2837
}
