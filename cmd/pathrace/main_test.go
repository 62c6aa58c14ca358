package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/grid"
)

func TestBuildGrid_Maze(t *testing.T) {
	g, err := buildGrid(10, 7, 4, true, 1, 0)
	require.NoError(t, err)
	end, ok := g.EndTile()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 8, Y: 6}, end.Coord)
	assert.True(t, g.Reachable(grid.Coord{X: 0, Y: 0}, end.Coord))
}

func TestRace(t *testing.T) {
	g, err := buildGrid(9, 9, 8, false, 5, 20)
	require.NoError(t, err)

	out, err := race(context.Background(), g)
	require.NoError(t, err)
	for _, name := range []string{"Depth First Search", "Breadth First Search", "Dijkstra's Algorithm", "A*"} {
		assert.Equal(t, 2, strings.Count(out, name), "%s appears in the table and above its path", name)
	}
}

func TestOverlay(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.StartTile)
	g.SetTileType(grid.Coord{X: 2, Y: 1}, grid.EndTile)

	got := overlay(g, []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}})
	assert.Equal(t, "S*.\n.*E\n", got)
}
