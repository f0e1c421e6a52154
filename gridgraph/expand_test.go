package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpandIsland_BasicLine converts the single water cell between two land cells.
func TestExpandIsland_BasicLine(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 2)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []P{{0, 0}, {1, 0}, {2, 0}}, path)
}

// TestExpandIsland_MediumRow needs three conversions.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 0, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Len(t, path, 5)
}

// TestExpandIsland_Diagonal8 bridges opposite corners through the centre.
func TestExpandIsland_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []P{{0, 0}, {1, 1}, {2, 2}}, path)
}

// TestExpandIsland_SameComponent is a single cell at zero cost.
func TestExpandIsland_SameComponent(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 1)

	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, []P{comps[0][0]}, path)
}

// TestExpandIsland_TrimsSourcePrefix starts the path at the cell it leaves from.
func TestExpandIsland_TrimsSourcePrefix(t *testing.T) {
	gg, err := gridgraph.From2D(islands, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []P{{0, 1}, {0, 2}, {0, 3}}, path)
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	_, _, err = gg.ExpandIsland(-1, 1)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

// TestExpandIsland_PathProperties checks cost, contiguity and endpoints on random grids.
func TestExpandIsland_PathProperties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		grid := make([][]int, 6)
		for y := range grid {
			grid[y] = make([]int, 7)
			for x := range grid[y] {
				if r.Intn(3) == 0 {
					grid[y][x] = 1
				}
			}
		}
		gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
		require.NoError(t, err)
		comps := gg.ConnectedComponents()
		if len(comps) < 2 {
			continue
		}
		src, dst := 0, len(comps)-1

		path, cost, err := gg.ExpandIsland(src, dst)
		require.NoError(t, err)
		require.NotEmpty(t, path)
		assert.Contains(t, comps[src], path[0])
		assert.Contains(t, comps[dst], path[len(path)-1])

		water := 0
		for i, p := range path {
			if !gg.IsLand(p) {
				water++
			}
			if i > 0 {
				assert.Equal(t, 1, gridgraph.Manhattan(path[i-1], p))
			}
		}
		assert.Equal(t, cost, water)
		// any bridge needs at least one water cell per extra step
		assert.GreaterOrEqual(t, cost, 1)
	}
}
