package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/grid"
)

// ExampleNew compares A* with Dijkstra on the same open grid: both find a
// cheapest path, A* expands fewer tiles to do it.
func ExampleNew() {
	g, _ := grid.New(5, 5)
	g.SetTileType(grid.Coord{X: 2, Y: 0}, grid.StartTile)
	g.SetTileType(grid.Coord{X: 2, Y: 4}, grid.EndTile)

	for _, alg := range []*algorithm.Algorithm{astar.New(g), dijkstra.New(g)} {
		if _, err := alg.Execute(context.Background()); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: cost %s, explored %s\n", alg.Name(), alg.TotalCost(), alg.TilesExplored())
	}
	// Output:
	// A*: cost 4, explored 5
	// Dijkstra's Algorithm: cost 4, explored 15
}
