// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n (n ≥ 1): every unordered pair i<j, i ascending then j.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(t target, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(t, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := t.addEdge(base+i, base+j, cfg); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
