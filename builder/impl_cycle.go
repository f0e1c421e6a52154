// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds a simple cycle C_n (n ≥ 3): the path 0..n-1 closed by (n-1)-0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(t target, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(t, n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			if err := t.addEdge(u, v, cfg); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
