// SPDX-License-Identifier: MIT

package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvsearch/graph"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	minStep := math.Inf(1)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.LandThreshold && float64(v) < minStep {
				minStep = float64(v)
			}
		}
	}
	negative := minStep < 0
	if math.IsInf(minStep, 1) || negative {
		minStep = 0
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
		minStep:       minStep,
		negativeLand:  negative,
	}, nil
}

// From2D is NewGridGraph with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *GridGraph) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// Value returns the cell value at p. Panics if p is out of bounds.
func (gg *GridGraph) Value(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// IsLand reports whether p is in bounds and its value reaches LandThreshold.
func (gg *GridGraph) IsLand(p Point) bool {
	return gg.InBounds(p) && gg.CellValues[p.Y][p.X] >= gg.LandThreshold
}

// Neighbors returns every in-bounds neighbor of p, land or water, in the
// fixed clockwise order starting at north.
func (gg *GridGraph) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		if q := p.Add(d); gg.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Successors returns the land neighbors of p. It has the signature expected
// by search.DFS, search.BFS and search.AStar.
func (gg *GridGraph) Successors(p Point) []Point {
	out := make([]Point, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		if q := p.Add(d); gg.IsLand(q) {
			out = append(out, q)
		}
	}

	return out
}

// ToGraph converts the whole grid into a *graph.Graph[Point]. Vertex i is the
// cell at row-major index i; every neighboring pair is joined by one edge.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToGraph() *graph.Graph[Point] {
	return gg.buildGraph(func(Point) bool { return true })
}

// LandGraph is ToGraph restricted to land cells, kept in row-major order.
func (gg *GridGraph) LandGraph() *graph.Graph[Point] {
	return gg.buildGraph(gg.IsLand)
}

func (gg *GridGraph) buildGraph(keep func(Point) bool) *graph.Graph[Point] {
	g := graph.New[Point]()
	at := make([]int, gg.Width*gg.Height)
	for i := range at {
		p := gg.Coordinate(i)
		at[i] = -1
		if keep(p) {
			at[i] = g.AddVertex(p)
		}
	}
	for i, u := range at {
		if u < 0 {
			continue
		}
		for _, q := range gg.Neighbors(gg.Coordinate(i)) {
			// each pair once; AddEdge mirrors it
			if v := at[gg.index(q)]; v > u {
				// u and v come from AddVertex above
				if err := g.AddEdge(u, v); err != nil {
					panic(err)
				}
			}
		}
	}

	return g
}

// index maps p to its row-major index: y*Width + x.
func (gg *GridGraph) index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{X: idx % gg.Width, Y: idx / gg.Width}
}
