package mst_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/mst"
)

func benchWeighted(b *testing.B) *graph.WeightedGraph[int] {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)}
	g, err := builder.BuildWeighted(opts, builder.RandomSparse(500, 0.05))
	if err != nil {
		b.Fatalf("setup BuildWeighted failed: %v", err)
	}
	return g
}

// BenchmarkPrim measures Prim on G(500, 0.05) with U[1,100) weights.
func BenchmarkPrim(b *testing.B) {
	g := benchWeighted(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mst.Prim(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkKruskal measures Kruskal on the same graph.
func BenchmarkKruskal(b *testing.B) {
	g := benchWeighted(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mst.Kruskal(g)
	}
}
