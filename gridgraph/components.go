// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn connectivity.
//
// Each component lists its cells in row-major order. Components are ordered
// by size descending, equal sizes by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]Point {
	return gg.LandGraph().ConnectedGroups()
}
