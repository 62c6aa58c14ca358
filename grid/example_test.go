// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/grid"
)

// ExampleGrid_SetTileType marks a start, an end and a wall column, then
// prints the grid. Moving the start leaves the old tile as Default.
func ExampleGrid_SetTileType() {
	g, _ := grid.New(5, 3)

	g.SetTileType(grid.Coord{X: 1, Y: 1}, grid.StartTile)
	g.SetTileType(grid.Coord{X: 0, Y: 1}, grid.StartTile) // moves the start
	g.SetTileType(grid.Coord{X: 4, Y: 1}, grid.EndTile)
	for y := 0; y < 2; y++ {
		g.SetTileType(grid.Coord{X: 2, Y: y}, grid.WallTile)
	}
	g.SetTileType(grid.Coord{X: 9, Y: 9}, grid.WallTile) // off-grid: ignored

	fmt.Print(g)
	// Output:
	// ..#..
	// S.#.E
	// .....
}

// ExampleGrid_GetNeighborTile shows that corner lookups never produce an
// invalid coordinate.
func ExampleGrid_GetNeighborTile() {
	g, _ := grid.New(2, 2)
	for _, d := range grid.ExpansionOrder {
		if tile, ok := g.GetNeighborTile(grid.Coord{X: 0, Y: 0}, d); ok {
			fmt.Println(d, tile.Coord)
		} else {
			fmt.Println(d, "none")
		}
	}
	// Output:
	// down 0,1
	// up none
	// right 1,0
	// left none
}
