// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrNotLand indicates a path endpoint below LandThreshold.
	ErrNotLand = errors.New("gridgraph: point is not land")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNegativeCost indicates land cells with negative values, which CheapestPath cannot price.
	ErrNegativeCost = errors.New("gridgraph: negative land value")
	// ErrNoPath indicates the requested endpoints are not connected.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
