// SPDX-License-Identifier: MIT

package mst

import (
	"errors"

	"github.com/katalvlaran/lvsearch/graph"
)

// ErrStartOutOfRange indicates Prim was asked to start from an invalid vertex index.
var ErrStartOutOfRange = errors.New("mst: start vertex index out of range")

// TotalWeight sums the weights of edges.
func TotalWeight(edges []graph.WeightedEdge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
