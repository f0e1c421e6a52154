// SPDX-License-Identifier: MIT

package graph

// HasCycle reports whether the graph contains a cycle. Self-loops and
// parallel edges count as cycles of length 1 and 2.
//
// A graph is a forest exactly when E = V - C, C being the number of connected
// components; any extra edge closes a cycle.
// Complexity: O(V + E + V log V), dominated by ConnectedGroupIndices.
func (a *adjacency[V, E]) HasCycle() bool {
	return a.EdgeCount() > len(a.vertices)-len(a.ConnectedGroupIndices())
}
