// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols orthogonal grid. Cell (r,c) is vertex
// base + r*cols + c; each cell emits its Right then Bottom edge where present.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(t target, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := addVertices(t, rows*cols)
		at := func(r, c int) int { return base + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := at(r, c)
				if c+1 < cols {
					if err := t.addEdge(u, at(r, c+1), cfg); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, at(r, c+1), err)
					}
				}
				if r+1 < rows {
					if err := t.addEdge(u, at(r+1, c), cfg); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, at(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}
