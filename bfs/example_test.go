package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathfinder/bfs"
	"github.com/katalvlaran/pathfinder/grid"
)

// ExampleNew finds the fewest-step route around a wall.
//
//	S . .
//	# # .
//	E . .
func ExampleNew() {
	g, _ := grid.New(3, 3)
	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.StartTile)
	g.SetTileType(grid.Coord{X: 0, Y: 2}, grid.EndTile)
	g.SetTileType(grid.Coord{X: 0, Y: 1}, grid.WallTile)
	g.SetTileType(grid.Coord{X: 1, Y: 1}, grid.WallTile)

	alg := bfs.New(g)
	if _, err := alg.Execute(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cost:", alg.TotalCost())
	fmt.Println("path:", alg.Path())
	// Output:
	// cost: 6
	// path: [0,0 1,0 2,0 2,1 2,2 1,2 0,2]
}
