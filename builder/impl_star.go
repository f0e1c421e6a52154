// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a star with centre at the first vertex and n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(t target, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := addVertices(t, n)
		for i := 1; i < n; i++ {
			if err := t.addEdge(center, center+i, cfg); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, center, center+i, err)
			}
		}

		return nil
	}
}
