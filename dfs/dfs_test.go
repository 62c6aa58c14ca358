package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/dfs"
	"github.com/katalvlaran/pathfinder/grid"
)

// setup builds a w×h grid with Start and End placed.
func setup(t *testing.T, w, h int, start, end grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	g.SetTileType(start, grid.StartTile)
	g.SetTileType(end, grid.EndTile)

	return g
}

// requireValidPath checks the path is a chain of adjacent walkable tiles
// from Start to End.
func requireValidPath(t *testing.T, g *grid.Grid, path []grid.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	s, _ := g.StartTile()
	e, _ := g.EndTile()
	require.Equal(t, s.Coord, path[0])
	require.Equal(t, e.Coord, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		require.Equal(t, 1, path[i-1].Manhattan(path[i]), "step %d is not adjacent", i)
		tile, ok := g.Tile(path[i])
		require.True(t, ok)
		require.True(t, tile.Walkable())
	}
}

func TestDFS_Corridor(t *testing.T) {
	g := setup(t, 6, 1, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 5, Y: 0})
	a := dfs.New(g)

	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "5", a.TotalCost(), "corridor cost equals Manhattan distance")
	assert.Equal(t, "5", a.TilesExplored(), "End is detected before it is expanded")
	requireValidPath(t, g, a.Path())
}

func TestDFS_DownFirstOrder(t *testing.T) {
	g := setup(t, 3, 3, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2})
	a := dfs.New(g)

	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)

	want := []grid.Coord{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}
	assert.Equal(t, want, a.Path())
	assert.Equal(t, "8", a.TotalCost())
	assert.Equal(t, "8", a.TilesExplored())
}

func TestDFS_GoesAroundWalls(t *testing.T) {
	// S . .
	// # # .
	// E . .
	// Going Down is blocked at once; the search must go around.
	g := setup(t, 3, 3, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 0, Y: 2})
	g.SetTileType(grid.Coord{X: 0, Y: 1}, grid.WallTile)
	g.SetTileType(grid.Coord{X: 1, Y: 1}, grid.WallTile)

	a := dfs.New(g)
	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	requireValidPath(t, g, a.Path())
	assert.Equal(t, "6", a.TotalCost())
	assert.Equal(t, "6", a.TilesExplored())
}

func TestDFS_BacktrackCountsEveryPeek(t *testing.T) {
	// . S E
	// . . #
	// Down first leads into a loop that dead-ends at (0,0); the search
	// backtracks through (0,1) and (1,1) to Start before trying Right.
	g := setup(t, 3, 2, grid.Coord{X: 1, Y: 0}, grid.Coord{X: 2, Y: 0})
	g.SetTileType(grid.Coord{X: 2, Y: 1}, grid.WallTile)

	a := dfs.New(g)
	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []grid.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}}, a.Path())
	assert.Equal(t, "1", a.TotalCost())
	assert.Equal(t, "7", a.TilesExplored(), "four tiles, three of them peeked again")

	var peeks []grid.Coord
	for _, ev := range a.Timeline().Events() {
		if ev.State == grid.Processed {
			peeks = append(peeks, ev.Coord)
		}
	}
	assert.Equal(t, []grid.Coord{
		{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
	}, peeks)
}

func TestDFS_DeadEndBranch(t *testing.T) {
	// S . # .
	// . # . .
	// . # E .
	// . . . .
	// Down from S reaches the bottom row; the dead end at (1,0) is never needed.
	g := setup(t, 4, 4, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2})
	for _, c := range []grid.Coord{{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
		g.SetTileType(c, grid.WallTile)
	}

	a := dfs.New(g)
	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	requireValidPath(t, g, a.Path())

	assert.Equal(t, "6", a.TotalCost())
	assert.Equal(t, "6", a.TilesExplored(), "no backtracking on the way down and across")
}

func TestDFS_NoPath(t *testing.T) {
	g := setup(t, 3, 3, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2})
	for x := 0; x < 3; x++ {
		g.SetTileType(grid.Coord{X: x, Y: 1}, grid.WallTile)
	}
	a := dfs.New(g)

	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, a.IsPathFound())
	assert.Equal(t, "5", a.TilesExplored(), "the top row forward, then back to Start")
	assert.Equal(t, algorithm.NoPath, a.TotalCost())
}

func TestDFS_RerunAfterClear(t *testing.T) {
	g := setup(t, 5, 5, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4})
	a := dfs.New(g)
	_, err := a.Execute(context.Background())
	require.NoError(t, err)
	first := a.Timeline().Len()

	g.ClearGrid()
	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.StartTile)
	g.SetTileType(grid.Coord{X: 0, Y: 1}, grid.EndTile)

	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "1", a.TilesExplored(), "only Start is expanded before End is seen")
	assert.Less(t, a.Timeline().Len(), first)
}

func TestDFS_StopIsIdempotent(t *testing.T) {
	g := setup(t, 3, 3, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2})
	a := dfs.New(g)
	a.Stop()
	a.Stop()
	assert.Equal(t, algorithm.NotExecuted, a.State())

	_, err := a.Execute(context.Background())
	require.NoError(t, err)
	a.Stop()
	a.Stop()
	assert.Equal(t, algorithm.NotExecuted, a.State())
	assert.Equal(t, 0, dfs.NewStrategy().Pending())
}
