// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a simple path P_n (n ≥ 2): edges i-(i+1) in ascending order.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(t target, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := addVertices(t, n)
		for i := 0; i < n-1; i++ {
			if err := t.addEdge(base+i, base+i+1, cfg); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, base+i, base+i+1, err)
			}
		}

		return nil
	}
}
