// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching the graph
// and return sentinel errors instead of panicking.
type Constructor func(t target, cfg builderConfig) error

// target is the mutation surface shared by unweighted and weighted builds.
type target interface {
	VertexCount() int
	addVertex() int
	addEdge(u, v int, cfg builderConfig) error
}

type unweightedTarget struct{ g *graph.Graph[int] }

func (t unweightedTarget) VertexCount() int { return t.g.VertexCount() }

// addVertex labels every vertex with its own index.
func (t unweightedTarget) addVertex() int { return t.g.AddVertex(t.g.VertexCount()) }

func (t unweightedTarget) addEdge(u, v int, _ builderConfig) error { return t.g.AddEdge(u, v) }

type weightedTarget struct{ g *graph.WeightedGraph[int] }

func (t weightedTarget) VertexCount() int { return t.g.VertexCount() }

func (t weightedTarget) addVertex() int { return t.g.AddVertex(t.g.VertexCount()) }

// addEdge draws one weight per edge, in emission order.
func (t weightedTarget) addEdge(u, v int, cfg builderConfig) error {
	return t.g.AddEdge(u, v, cfg.weightFn(cfg.rng))
}

// BuildGraph creates a new *graph.Graph[int], resolves the builder
// configuration from opts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*graph.Graph[int], error) {
	g := graph.New[int]()
	if err := apply(unweightedTarget{g: g}, "BuildGraph", opts, cons); err != nil {
		return nil, err
	}

	return g, nil
}

// BuildWeighted is BuildGraph for *graph.WeightedGraph[int]; every edge gets
// a weight from the configured WeightFn.
func BuildWeighted(opts []BuilderOption, cons ...Constructor) (*graph.WeightedGraph[int], error) {
	g := graph.NewWeighted[int]()
	if err := apply(weightedTarget{g: g}, "BuildWeighted", opts, cons); err != nil {
		return nil, err
	}

	return g, nil
}

func apply(t target, method string, opts []BuilderOption, cons []Constructor) error {
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// addVertices appends n vertices and returns the index of the first one.
func addVertices(t target, n int) int {
	base := t.VertexCount()
	for i := 0; i < n; i++ {
		t.addVertex()
	}

	return base
}
