// Package pathfinder is a grid search-and-replay engine: mark Start, End
// and walls on a rectangular grid, run one of four classic searches, and
// replay how it explored the grid at any speed.
//
// What is in the box:
//
//	grid/              tile arena, Start/End invariants, random walls, mazes
//	timeline/          append-only log of tile state changes
//	algorithm/         shared runtime: lifecycle, bookkeeping, path, Data
//	dfs/ bfs/          unweighted searches (stack, FIFO queue)
//	dijkstra/ astar/   weighted searches over internal/frontier
//	selector/          facade: one algorithm per type, status reporter
//	replay/            frame-paced timeline playback
//	config/            environment and .env settings
//	cmd/pathfinder     terminal front end
//	cmd/pathfinderd    JSON API
//	cmd/pathrace       runs every strategy on one grid and compares them
//
// The key idea:
//
//	A search runs to completion once and records a timeline. Animation is
//	a separate, restartable pass over that timeline, so the speed can
//	change mid-replay and nothing is recomputed.
//
// Quick start:
//
//	g, _ := grid.New(20, 10)
//	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.StartTile)
//	g.SetTileType(grid.Coord{X: 19, Y: 9}, grid.EndTile)
//	g.GenerateRandomWalls(25, grid.NewRand(42))
//
//	alg := astar.New(g)
//	found, err := alg.Execute(context.Background())
//	fmt.Println(found, err, alg.TotalCost(), alg.TilesExplored())
//
//	for !alg.PlayVisualization(replay.Average, frameDelta) {
//		// draw the tiles the replay sink updated
//	}
package pathfinder
