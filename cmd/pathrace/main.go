// Command pathrace runs every search strategy on the same grid and prints
// a comparison table followed by each strategy's path.
//
// Scenario:
//
//	Start sits in the top-left corner and End in the bottom-right one.
//	The grid is either a Wilson maze (-maze) or a field of random walls
//	with random tile weights (-weights) on top.
//
// Flags override the PATHFINDER_* settings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/selector"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	cols := flag.Int("cols", cfg.Columns, "grid width")
	rows := flag.Int("rows", cfg.Rows, "grid height")
	seed := flag.Int64("seed", cfg.Seed, "random seed")
	maze := flag.Bool("maze", false, "carve a maze instead of random walls")
	weights := flag.Int("weights", 1, "random tile weights in [1,n]")
	flag.Parse()

	g, err := buildGrid(*cols, *rows, *seed, *maze, *weights, cfg.WallPercent)
	if err != nil {
		log.Fatalf("[APP] [FATAL] grid: %v", err)
	}
	out, err := race(context.Background(), g)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	fmt.Fprint(os.Stdout, out)
}

// buildGrid lays out a w×h grid with Start and End in opposite corners.
func buildGrid(w, h int, seed int64, maze bool, maxWeight, wallPercent int) (*grid.Grid, error) {
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	rng := grid.NewRand(seed)
	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.StartTile)
	// a maze only opens even cells, so keep End on one
	g.SetTileType(grid.Coord{X: (w - 1) &^ 1, Y: (h - 1) &^ 1}, grid.EndTile)

	if maxWeight > 1 {
		for i := 0; i < g.Len(); i++ {
			x, y := g.Coordinate(i)
			if err := g.SetTileWeight(grid.Coord{X: x, Y: y}, 1+rng.Intn(maxWeight)); err != nil {
				return nil, err
			}
		}
	}
	if maze {
		g.GenerateMaze(rng)
		return g, nil
	}
	if _, err := g.GenerateRandomWalls(wallPercent, rng); err != nil {
		return nil, err
	}

	return g, nil
}

// race runs all four strategies and renders the results.
func race(ctx context.Context, g *grid.Grid) (string, error) {
	sel := selector.New(g)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Algorithm", "Found", "Cost", "Explored", "Time")

	paths := ""
	for _, typ := range selector.Types {
		found, err := sel.Execute(ctx, typ)
		if err != nil {
			return "", err
		}
		d, _ := sel.CurrentData()
		tbl.Row(d.Name, strconv.FormatBool(found), d.PathCostString(), strconv.Itoa(d.TilesExplored), d.TimeTakenString())

		alg, _ := sel.Algorithm(typ)
		paths += fmt.Sprintf("\n%s\n%s", d.Name, overlay(g, alg.Path()))
	}

	return tbl.String() + "\n" + paths, nil
}

// overlay draws the grid with the path marked by '*'.
func overlay(g *grid.Grid, path []grid.Coord) string {
	rows := []byte(g.String())
	for _, c := range path {
		t, _ := g.Tile(c)
		if t.Type != grid.Default {
			continue
		}
		rows[c.Y*(g.Width()+1)+c.X] = '*'
	}

	return string(rows)
}
