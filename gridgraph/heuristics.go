// SPDX-License-Identifier: MIT

package gridgraph

// Manhattan is the L1 distance between a and b: the exact step count on an
// empty Conn4 grid.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev is the L∞ distance between a and b: the exact step count on an
// empty Conn8 grid.
func Chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
