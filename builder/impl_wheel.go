// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds W_n (n ≥ 4): a rim cycle over the first n-1 vertices plus a hub
// as the last vertex joined to every rim vertex.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(t target, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := t.VertexCount()
		if err := Cycle(n-1)(t, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", methodWheel, err)
		}
		hub := t.addVertex()
		for i := 0; i < n-1; i++ {
			if err := t.addEdge(hub, base+i, cfg); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodWheel, hub, base+i, err)
			}
		}

		return nil
	}
}
